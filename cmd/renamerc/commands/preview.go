package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/batch"
)

// NewPreviewCmd creates a new preview command
func NewPreviewCmd(getOpts func() *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [directory]",
		Short: "Show what each file would be renamed to",
		Long: `Preview applies the configured rule pipeline to every file in the
directory and prints the original-to-candidate mapping without touching
the filesystem. Safe to run repeatedly.`,
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
			})
			if err != nil {
				return errors.Errorf("creating renamer: %w", err)
			}

			o.Status.StartBatch(dir, len(files))
			for _, mapping := range renamer.Preview(ctx) {
				o.Status.LogMapping(mapping)
			}
			return nil
		},
	}

	return cmd
}
