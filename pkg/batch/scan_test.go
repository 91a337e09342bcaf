package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/renamerc/pkg/batch"
	"github.com/walteh/renamerc/pkg/fname"
)

func names(files []*fname.File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, filepath.Base(f.Original))
	}
	return out
}

func TestScan(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) string {
		t.Helper()
		dir := t.TempDir()
		for _, name := range []string{"beta.txt", "alpha.txt", "notes.log"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
		}
		require.NoError(t, os.Mkdir(filepath.Join(dir, "zdir"), 0o755))
		return dir
	}

	t.Run("files_only_in_sorted_order", func(t *testing.T) {
		files, err := batch.Scan(ctx, seed(t), batch.ScanOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha.txt", "beta.txt", "notes.log"}, names(files))
	})

	t.Run("directories_sort_first", func(t *testing.T) {
		files, err := batch.Scan(ctx, seed(t), batch.ScanOptions{IncludeDirs: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"zdir", "alpha.txt", "beta.txt", "notes.log"}, names(files))
		assert.True(t, files[0].IsDir)
	})

	t.Run("ignore_patterns_match_entry_names", func(t *testing.T) {
		files, err := batch.Scan(ctx, seed(t), batch.ScanOptions{
			IgnorePatterns: []string{"*.log"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha.txt", "beta.txt"}, names(files))
	})

	t.Run("missing_directory_errors", func(t *testing.T) {
		_, err := batch.Scan(ctx, filepath.Join(t.TempDir(), "nope"), batch.ScanOptions{})
		require.Error(t, err)
	})

	t.Run("empty_directory_yields_empty_batch", func(t *testing.T) {
		files, err := batch.Scan(ctx, t.TempDir(), batch.ScanOptions{})
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}
