package rule

import (
	"regexp"
	"strings"

	"github.com/walteh/renamerc/pkg/fname"
)

// 🔄 Regex substitutes every match of Pattern with Replacement. With
// IncludeExt the stem and extension are rejoined with a literal dot for the
// match and re-split on the last dot afterwards; if no dot survives the
// substitution the whole result becomes the stem and the extension is
// cleared.
//
// A pattern that fails to compile is a silent no-op. Configurations loaded
// through pkg/config are validated up front, so this path is only reachable
// with a hand-built value.
type Regex struct {
	Pattern     string
	Replacement string
	IncludeExt  bool
}

func (r *Regex) Apply(f *fname.File) {
	exp, err := regexp.Compile(r.Pattern)
	if err != nil {
		return
	}

	if !r.IncludeExt {
		f.Stem = exp.ReplaceAllString(f.Stem, r.Replacement)
		return
	}

	res := exp.ReplaceAllString(f.Name(), r.Replacement)
	if idx := strings.LastIndex(res, "."); idx >= 0 {
		f.Stem = res[:idx]
		f.SetExt(res[idx+1:])
	} else {
		f.Stem = res
		f.ClearExt()
	}
}
