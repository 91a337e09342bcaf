// Package fname models the renamable identity of a single file: its stem,
// extension and original path. Rules edit the stem and extension as text;
// the original path stays immutable and is only used for metadata lookups
// and as the rename source.
package fname

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gitlab.com/tozd/go/errors"
)

// 📄 File is one file under consideration for renaming
type File struct {
	Stem     string // filename without extension, the working field rules mutate
	Ext      string // extension without the separator dot
	HasExt   bool   // false when the original file has no extension
	Original string // immutable source path
	IsDir    bool   // directories sort before files
}

// 🏭 New creates a File from a path. No check is made that the path exists;
// use Stat for that. Fails with ErrBadStem when no stem can be derived.
func New(path string) (*File, error) {
	base := filepath.Base(path)
	if base == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return nil, errors.Errorf("extracting stem from %q: %w", path, ErrBadStem)
	}

	f := &File{Original: path}
	if idx := strings.LastIndex(base, "."); idx > 0 {
		f.Stem = base[:idx]
		f.Ext = base[idx+1:]
		f.HasExt = true
	} else {
		f.Stem = base
	}
	return f, nil
}

// 🔍 Stat creates a File from a path that must exist on disk
func Stat(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("statting %q: %w", path, ErrNotFound)
		}
		return nil, errors.Errorf("statting %q: %w", path, err)
	}

	f, err := New(path)
	if err != nil {
		return nil, err
	}
	f.IsDir = info.IsDir()
	return f, nil
}

// Clone returns an independent copy, so a preview never disturbs the
// caller's model.
func (f *File) Clone() *File {
	c := *f
	return &c
}

// Name returns the current stem joined with the current extension.
func (f *File) Name() string {
	if f.HasExt {
		return f.Stem + "." + f.Ext
	}
	return f.Stem
}

// 🎯 Candidate rebuilds the target path from the (possibly mutated) stem and
// extension. An empty parent yields a path rooted at the filesystem root.
func (f *File) Candidate() string {
	parent := filepath.Dir(f.Original)
	if parent == "" {
		parent = string(filepath.Separator)
	}
	return filepath.Join(parent, f.Name())
}

// ClearExt drops the extension entirely.
func (f *File) ClearExt() {
	f.Ext = ""
	f.HasExt = false
}

// SetExt replaces the extension (stored without its dot).
func (f *File) SetExt(ext string) {
	f.Ext = ext
	f.HasExt = true
}

// 🔄 Reset restores the stem and extension from the original path,
// discarding any edits made by rules.
func (f *File) Reset() {
	fresh, err := New(f.Original)
	if err != nil {
		return
	}
	f.Stem = fresh.Stem
	f.Ext = fresh.Ext
	f.HasExt = fresh.HasExt
}

// Equal reports whether two models originate from the same path. Current
// stem or extension state does not participate.
func (f *File) Equal(other *File) bool {
	return f.Original == other.Original
}

// 📊 Compare orders two models: directories before files, then by the
// concatenation of stem and extension. Extension-less entries compare by
// stem alone. UI sort and next-file iteration depend on this exact order.
func Compare(a, b *File) int {
	switch {
	case a.IsDir && !b.IsDir:
		return -1
	case !a.IsDir && b.IsDir:
		return 1
	case a.IsDir && b.IsDir:
		return strings.Compare(a.Stem, b.Stem)
	}
	return strings.Compare(a.sortKey(), b.sortKey())
}

func (f *File) sortKey() string {
	if f.HasExt {
		return f.Stem + f.Ext
	}
	return f.Stem
}

// 📅 Times holds the OS-reported timestamps for a file. Created is only
// meaningful when HasCreated is set; not every platform reports it.
type Times struct {
	Size       int64
	Modified   time.Time
	Created    time.Time
	HasCreated bool
}

// Times reads size and timestamps from the original path.
func (f *File) Times() (Times, error) {
	info, err := os.Stat(f.Original)
	if err != nil {
		return Times{}, errors.Errorf("reading metadata for %q: %w", f.Original, err)
	}

	t := Times{
		Size:     info.Size(),
		Modified: info.ModTime(),
	}
	if created, ok := creationTime(info); ok {
		t.Created = created
		t.HasCreated = true
	}
	return t, nil
}
