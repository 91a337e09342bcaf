package rule

import (
	"github.com/walteh/renamerc/pkg/fname"
)

// 📁 FolderMode selects where the folder names land
type FolderMode int

const (
	FolderOff FolderMode = iota
	FolderPrefix
	FolderSuffix
)

// Folder splices ancestor directory names into the stem. Levels selects a
// window over the ancestors: its absolute value is the window length, a
// positive sign anchors the window at the directory nearest the file, a
// negative sign keeps only the farthest component of that window (the
// nearest |Levels|-1 are dropped). Components are joined with Sep, inserted
// in ancestor-to-descendant order for prefixes.
type Folder struct {
	Mode   FolderMode
	Sep    string
	Levels int
}

func (o *Folder) Apply(f *fname.File) {
	if o.Mode == FolderOff || o.Levels == 0 {
		return
	}

	components := ancestors(f.Original)
	end := abs(o.Levels)
	if end > len(components) {
		end = len(components)
	}
	if end == 0 {
		return
	}
	start := 0
	if o.Levels < 0 {
		start = end - 1
	}

	switch o.Mode {
	case FolderPrefix:
		// Nearest-first iteration with insert-at-front yields
		// ancestor-to-descendant order.
		for _, component := range components[start:end] {
			f.Stem = component + o.Sep + f.Stem
		}
	case FolderSuffix:
		for _, component := range components[start:end] {
			f.Stem = f.Stem + component + o.Sep
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
