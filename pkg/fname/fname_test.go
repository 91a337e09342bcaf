package fname

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantStem  string
		wantExt   string
		wantHas   bool
		wantError bool
	}{
		{
			name:     "stem_and_extension",
			path:     "/path/to/file.txt",
			wantStem: "file",
			wantExt:  "txt",
			wantHas:  true,
		},
		{
			name:     "no_extension",
			path:     "/path/to/file",
			wantStem: "file",
		},
		{
			name:     "dotfile_is_all_stem",
			path:     "/home/user/.bashrc",
			wantStem: ".bashrc",
		},
		{
			name:     "double_extension_splits_on_last_dot",
			path:     "/tmp/archive.tar.gz",
			wantStem: "archive.tar",
			wantExt:  "gz",
			wantHas:  true,
		},
		{
			name:     "relative_path",
			path:     "file.txt",
			wantStem: "file",
			wantExt:  "txt",
			wantHas:  true,
		},
		{
			name:      "root_has_no_stem",
			path:      "/",
			wantError: true,
		},
		{
			name:      "empty_path",
			path:      "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.path)

			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrBadStem)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStem, f.Stem)
			assert.Equal(t, tt.wantExt, f.Ext)
			assert.Equal(t, tt.wantHas, f.HasExt)
			assert.Equal(t, tt.path, f.Original)
		})
	}
}

func TestCandidate(t *testing.T) {
	tests := []struct {
		name string
		path string
		edit func(f *File)
		want string
	}{
		{
			name: "unchanged_round_trip",
			path: "/path/to/file.txt",
			edit: func(f *File) {},
			want: "/path/to/file.txt",
		},
		{
			name: "stem_edit",
			path: "/path/to/file.txt",
			edit: func(f *File) { f.Stem = "renamed" },
			want: "/path/to/renamed.txt",
		},
		{
			name: "extension_cleared",
			path: "/path/to/file.txt",
			edit: func(f *File) { f.ClearExt() },
			want: "/path/to/file",
		},
		{
			name: "extension_set_on_bare_name",
			path: "/path/to/file",
			edit: func(f *File) { f.SetExt("csv") },
			want: "/path/to/file.csv",
		},
		{
			name: "file_at_root",
			path: "/file.txt",
			edit: func(f *File) { f.Stem = "new" },
			want: "/new.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.path)
			require.NoError(t, err)

			tt.edit(f)
			assert.Equal(t, filepath.FromSlash(tt.want), f.Candidate())
		})
	}
}

func TestReset(t *testing.T) {
	f, err := New("/path/to/file.txt")
	require.NoError(t, err)

	f.Stem = "mangled"
	f.ClearExt()
	f.Reset()

	assert.Equal(t, "file", f.Stem)
	assert.Equal(t, "txt", f.Ext)
	assert.True(t, f.HasExt)
}

func TestEqual(t *testing.T) {
	a, err := New("/path/to/file.txt")
	require.NoError(t, err)
	b, err := New("/path/to/file.txt")
	require.NoError(t, err)
	c, err := New("/path/to/other.txt")
	require.NoError(t, err)

	// Equality follows the original path, not the current stem state.
	b.Stem = "mutated"
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestCompare(t *testing.T) {
	mk := func(path string, isDir bool) *File {
		f, err := New(path)
		require.NoError(t, err)
		f.IsDir = isDir
		return f
	}

	dirA := mk("/x/alpha", true)
	dirZ := mk("/x/zulu", true)
	fileA := mk("/x/alpha.txt", false)
	fileB := mk("/x/beta.txt", false)
	bare := mk("/x/alphaz", false)

	t.Run("directories_before_files", func(t *testing.T) {
		assert.Negative(t, Compare(dirZ, fileA))
		assert.Positive(t, Compare(fileA, dirZ))
	})

	t.Run("antisymmetric", func(t *testing.T) {
		files := []*File{dirA, dirZ, fileA, fileB, bare}
		for _, a := range files {
			for _, b := range files {
				assert.Equal(t, -Compare(b, a), Compare(a, b))
			}
		}
	})

	t.Run("composite_name_ordering", func(t *testing.T) {
		// "alpha"+"txt" vs "beta"+"txt"
		assert.Negative(t, Compare(fileA, fileB))
		// extension-less "alphaz" vs "alpha"+"txt": alphaz < alphatxt is false
		assert.Positive(t, Compare(bare, fileA))
	})

	t.Run("transitive_over_sorted_set", func(t *testing.T) {
		ordered := []*File{dirA, dirZ, fileA, fileB}
		for i := 0; i < len(ordered); i++ {
			for j := i + 1; j < len(ordered); j++ {
				assert.Negative(t, Compare(ordered[i], ordered[j]),
					"expected %q < %q", ordered[i].Original, ordered[j].Original)
			}
		}
	})
}

func TestStat(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := Stat(filepath.Join(t.TempDir(), "nope.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("existing_directory", func(t *testing.T) {
		dir := t.TempDir()
		f, err := Stat(dir)
		require.NoError(t, err)
		assert.True(t, f.IsDir)
	})
}
