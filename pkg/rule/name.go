package rule

import "github.com/walteh/renamerc/pkg/fname"

// 📛 NameMode selects what happens to the whole stem
type NameMode int

const (
	NameKeep    NameMode = iota // leave the stem alone (default)
	NameRemove                  // erase the stem so later stages can rebuild it
	NameFixed                   // set the stem to a fixed value for every item
	NameReverse                 // reverse the stem, 12345.txt becomes 54321.txt
)

// Name replaces, erases or reverses the stem.
type Name struct {
	Mode  NameMode
	Fixed string // used by NameFixed
}

func (n *Name) Apply(f *fname.File) {
	switch n.Mode {
	case NameRemove:
		f.Stem = ""
	case NameFixed:
		f.Stem = n.Fixed
	case NameReverse:
		runes := []rune(f.Stem)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		f.Stem = string(runes)
	}
}
