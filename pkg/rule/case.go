package rule

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/walteh/renamerc/pkg/fname"
)

// 🔠 CaseMode selects the case transform applied to the whole stem
type CaseMode int

const (
	CaseKeep CaseMode = iota
	CaseLower
	CaseUpper
	CaseTitle
	CaseSentence
)

// Case changes the capitalization of the stem. Exceptions is a
// semicolon-separated token list: each token is transformed by the same
// case rule and any occurrence of that transformed form is replaced with
// the token as written, letting specific words escape the general rule.
// Snake always runs last, replacing spaces with underscores.
type Case struct {
	Mode       CaseMode
	Snake      bool
	Exceptions string
}

func (c *Case) Apply(f *fname.File) {
	f.Stem = c.transform(f.Stem)

	if c.Exceptions != "" {
		for _, exception := range strings.Split(c.Exceptions, ";") {
			f.Stem = strings.ReplaceAll(f.Stem, c.transform(exception), exception)
		}
	}

	if c.Snake {
		f.Stem = strings.ReplaceAll(f.Stem, " ", "_")
	}
}

func (c *Case) transform(s string) string {
	switch c.Mode {
	case CaseLower:
		return strings.ToLower(s)
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseTitle:
		return cases.Title(language.Und).String(s)
	case CaseSentence:
		return sentenceCase(s)
	default:
		return s
	}
}

// sentenceCase uppercases the first letter and lowercases the remainder.
func sentenceCase(s string) string {
	runes := []rune(strings.ToLower(s))
	for i, r := range runes {
		if unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			break
		}
	}
	return string(runes)
}
