package rule

import (
	"unicode"

	"github.com/walteh/renamerc/pkg/fname"
)

// ➕ Add inserts text around or inside the stem. Prefix goes first, then the
// positional insert, then the suffix, then word-spacing. Insert indexes are
// signed: negative counts from the end, an index past either bound clamps
// to that bound.
type Add struct {
	Prefix    string
	Insert    string
	InsertAt  int
	Suffix    string
	WordSpace bool // insert a space before every uppercase letter except the first character
}

func (a *Add) Apply(f *fname.File) {
	if a.Prefix != "" {
		f.Stem = a.Prefix + f.Stem
	}

	if a.Insert != "" {
		runes := []rune(f.Stem)
		pos := a.InsertAt
		switch {
		case pos >= len(runes):
			pos = len(runes)
		case pos < 0 && -pos >= len(runes):
			pos = 0
		case pos < 0:
			pos = len(runes) + pos
		}
		f.Stem = string(runes[:pos]) + a.Insert + string(runes[pos:])
	}

	if a.Suffix != "" {
		f.Stem += a.Suffix
	}

	if a.WordSpace {
		f.Stem = wordSpace(f.Stem)
	}
}

func wordSpace(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes)*2)
	for i, chr := range runes {
		if i > 0 && unicode.IsUpper(chr) {
			out = append(out, ' ')
		}
		out = append(out, chr)
	}
	return string(out)
}
