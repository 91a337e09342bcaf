package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/batch"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(getOpts func() *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [directory]",
		Short: "Rename every file according to the configured pipeline",
		Long: `Apply runs the configured rule pipeline against every file in the
directory and performs the filesystem renames. A failure on one file
never aborts the rest; every item's outcome is reported individually.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o := getOpts()

			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			dir, err := o.ResolveDirectory(arg)
			if err != nil {
				return err
			}

			files, err := o.ScanFiles(ctx, dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				o.Status.StartBatch(dir, 0)
				return nil
			}

			renamer, err := batch.New(batch.Options{
				Files: files,
				Rules: o.Rules,
				Async: o.Config.Async,
			})
			if err != nil {
				return errors.Errorf("creating renamer: %w", err)
			}

			o.Status.StartBatch(dir, len(files))
			results := renamer.Commit(ctx)
			failed := 0
			for _, result := range results {
				o.Status.LogResult(result)
				if result.Err != nil {
					failed++
				}
			}
			o.Status.Summary(results)

			if failed > 0 {
				return errors.Errorf("%d of %d files failed to rename", failed, len(results))
			}
			return nil
		},
	}

	return cmd
}
