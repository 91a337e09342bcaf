package rule

import (
	"strings"
	"unicode"

	"github.com/walteh/renamerc/pkg/fname"
)

// 🔁 Replace swaps literal occurrences of Find with With. The replacement
// text is always inserted as written, including its case. The insensitive
// branch replaces every match (scanning resumes after the inserted text, so
// a replacement containing the search text cannot loop forever).
type Replace struct {
	Find          string
	With          string
	CaseSensitive bool
}

func (r *Replace) Apply(f *fname.File) {
	if r.Find == "" {
		return
	}

	if r.CaseSensitive {
		f.Stem = strings.ReplaceAll(f.Stem, r.Find, r.With)
		return
	}

	stem := []rune(f.Stem)
	find := []rune(r.Find)
	with := []rune(r.With)
	for i := 0; i+len(find) <= len(stem); {
		if !runesEqualFold(stem[i:i+len(find)], find) {
			i++
			continue
		}
		spliced := make([]rune, 0, len(stem)-len(find)+len(with))
		spliced = append(spliced, stem[:i]...)
		spliced = append(spliced, with...)
		spliced = append(spliced, stem[i+len(find):]...)
		stem = spliced
		i += len(with)
	}
	f.Stem = string(stem)
}

// runesEqualFold is a per-rune case fold, safe for the multi-byte runes a
// byte-index lowercase search would misalign on.
func runesEqualFold(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}
