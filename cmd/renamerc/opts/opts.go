// Package opts carries the shared dependencies handed to every command.
package opts

import (
	"context"
	"os"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/batch"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/fname"
	"github.com/walteh/renamerc/pkg/rule"
	"github.com/walteh/renamerc/pkg/status"
)

// 🎯 RootOpts contains the dependencies shared by all commands
type RootOpts struct {
	Config *config.Config
	Rules  rule.Options
	Status *status.Logger
}

// 📂 ResolveDirectory picks the working directory: explicit argument, then
// the configured directory, then the current working directory, then the
// user's home directory. Errors only when none of those can be resolved.
func (o *RootOpts) ResolveDirectory(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if o.Config.Directory != "" {
		return o.Config.Directory, nil
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd, nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home, nil
	}
	return "", errors.New("no starting directory could be resolved")
}

// 🔍 ScanFiles enumerates the working directory into a sorted batch
func (o *RootOpts) ScanFiles(ctx context.Context, dir string) ([]*fname.File, error) {
	files, err := batch.Scan(ctx, dir, batch.ScanOptions{
		IgnorePatterns: o.Config.IgnorePatterns,
		IncludeDirs:    o.Config.IncludeDirs,
	})
	if err != nil {
		return nil, errors.Errorf("scanning %q: %w", dir, err)
	}
	return files, nil
}
