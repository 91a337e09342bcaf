package rule

import (
	"strings"
	"unicode"

	"github.com/walteh/renamerc/pkg/fname"
)

// symbolSet is the fixed set stripped by the Symbols option.
const symbolSet = "~`!@#$%^&*()_-+={}[]|\\/?\"':;.,<>"

// 🧹 Remove strips parts of the stem. Sub-operations run in a fixed order,
// each only when configured; the order is load-bearing (trimming whitespace
// before the double-space collapse changes results):
//
//  1. First/Last N character trims
//  2. 1-indexed inclusive range deletion
//  3. character-set deletion
//  4. word-list deletion (single * wildcard spans left..right inclusive)
//  5. crop before/after a marker, keeping the marker
//  6. digits 0-9
//  7. runes above U+007F
//  8. leading/trailing whitespace
//  9. ASCII letters
// 10. the fixed symbol set
// 11. a single leading dot
// 12. iterative double-space collapse
type Remove struct {
	First       int
	Last        int
	RangeStart  int // 1-indexed, inclusive
	RangeEnd    int
	Chars       string
	Words       string // space-separated; a word may contain one * wildcard
	Crop        string
	CropBefore  bool // delete everything before Crop instead of after it
	Digits      bool
	NonASCII    bool
	Trim        bool
	DoubleSpace bool
	Letters     bool
	Symbols     bool
	LeadDots    bool
}

func (r *Remove) Apply(f *fname.File) {
	stem := f.Stem

	if r.First+r.Last > 0 {
		stem = r.firstLast(stem)
	}

	if length := len([]rune(stem)); r.RangeStart > 0 && r.RangeStart < length && r.RangeEnd > 0 {
		stem = r.deleteRange(stem)
	}

	if r.Chars != "" {
		for _, chr := range r.Chars {
			stem = strings.ReplaceAll(stem, string(chr), "")
		}
	}

	if r.Words != "" {
		for _, word := range strings.Split(r.Words, " ") {
			stem = removeWord(stem, word)
		}
	}

	if r.Crop != "" {
		stem = r.crop(stem)
	}

	if r.Digits {
		stem = strings.Map(func(c rune) rune {
			if c >= '0' && c <= '9' {
				return -1
			}
			return c
		}, stem)
	}

	if r.NonASCII {
		stem = strings.Map(func(c rune) rune {
			if c > unicode.MaxASCII {
				return -1
			}
			return c
		}, stem)
	}

	if r.Trim {
		stem = strings.TrimSpace(stem)
	}

	if r.Letters {
		stem = strings.Map(func(c rune) rune {
			if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
				return -1
			}
			return c
		}, stem)
	}

	if r.Symbols {
		for _, chr := range symbolSet {
			stem = strings.ReplaceAll(stem, string(chr), "")
		}
	}

	if r.LeadDots {
		stem = strings.TrimPrefix(stem, ".")
	}

	if r.DoubleSpace {
		for strings.Contains(stem, "  ") {
			stem = strings.ReplaceAll(stem, "  ", " ")
		}
	}

	f.Stem = stem
}

// firstLast trims First characters from the front and Last from the back.
// If the two overlap the end clamps to the start; if their sum exceeds the
// length the whole stem goes.
func (r *Remove) firstLast(stem string) string {
	runes := []rune(stem)
	if r.First+r.Last > len(runes) {
		return ""
	}
	end := len(runes) - r.Last
	if end < r.First {
		end = r.First
	}
	return string(runes[r.First:end])
}

// deleteRange removes the inclusive 1-indexed range, end clamped to length.
func (r *Remove) deleteRange(stem string) string {
	runes := []rune(stem)
	end := r.RangeEnd
	if end > len(runes) {
		end = len(runes)
	}
	return string(append(runes[:r.RangeStart-1], runes[end:]...))
}

// removeWord deletes every occurrence of word. A word containing the *
// wildcard deletes from the first occurrence of its left half through the
// first occurrence of its right half, inclusive; no match if either half is
// absent.
func removeWord(stem, word string) string {
	left, right, wild := strings.Cut(word, "*")
	if !wild {
		return strings.ReplaceAll(stem, word, "")
	}

	start := strings.Index(stem, left)
	end := strings.Index(stem, right)
	if start < 0 || end < 0 || end+len(right) < start {
		return stem
	}
	span := stem[start : end+len(right)]
	return strings.ReplaceAll(stem, span, "")
}

// crop deletes everything before (or from just after) the marker, keeping
// the marker itself. A missing marker is a no-op.
func (r *Remove) crop(stem string) string {
	pos := strings.Index(stem, r.Crop)
	if pos < 0 {
		return stem
	}
	if r.CropBefore {
		return stem[pos:]
	}
	return stem[:pos+len(r.Crop)]
}
