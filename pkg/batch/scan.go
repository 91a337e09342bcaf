package batch

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/fname"
)

// 🔍 ScanOptions configures directory enumeration
type ScanOptions struct {
	// IgnorePatterns are doublestar globs matched against entry names.
	IgnorePatterns []string
	// IncludeDirs keeps directories in the batch (renamed via stem only).
	IncludeDirs bool
}

// 📂 Scan enumerates a directory into sorted filename models. Entries whose
// name yields no stem are excluded from the batch rather than failing the
// scan, matching the per-item error policy.
func Scan(ctx context.Context, dir string, opts ScanOptions) ([]*fname.File, error) {
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %q: %w", dir, err)
	}

	var files []*fname.File
	for _, entry := range entries {
		if entry.IsDir() && !opts.IncludeDirs {
			continue
		}
		if ignored(entry.Name(), opts.IgnorePatterns) {
			continue
		}

		f, err := fname.New(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.Debug().Str("name", entry.Name()).Err(err).Msg("skipping entry without a stem")
			continue
		}
		f.IsDir = entry.IsDir()
		files = append(files, f)
	}

	// Directories first, then composite-name order.
	sort.SliceStable(files, func(i, j int) bool {
		return fname.Compare(files[i], files[j]) < 0
	})

	logger.Debug().Str("dir", dir).Int("files", len(files)).Msg("scanned directory")
	return files, nil
}

func ignored(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
