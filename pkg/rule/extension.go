package rule

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/walteh/renamerc/pkg/fname"
)

// 📎 ExtMode selects the extension edit
type ExtMode int

const (
	ExtKeep  ExtMode = iota
	ExtLower         // case transforms apply only when an extension exists
	ExtUpper
	ExtTitle
	ExtNew    // unconditionally set a new extension
	ExtExtra  // append .Value to the extension, or set it if none existed
	ExtRemove // clear the extension unconditionally
)

// Extension edits the extension independently of the stem.
type Extension struct {
	Mode  ExtMode
	Value string // used by ExtNew and ExtExtra
}

func (e *Extension) Apply(f *fname.File) {
	switch e.Mode {
	case ExtLower:
		if f.HasExt {
			f.Ext = strings.ToLower(f.Ext)
		}
	case ExtUpper:
		if f.HasExt {
			f.Ext = strings.ToUpper(f.Ext)
		}
	case ExtTitle:
		if f.HasExt {
			f.Ext = cases.Title(language.Und).String(f.Ext)
		}
	case ExtNew:
		f.SetExt(e.Value)
	case ExtExtra:
		if f.HasExt {
			f.Ext += "." + e.Value
		} else {
			f.SetExt(e.Value)
		}
	case ExtRemove:
		f.ClearExt()
	}
}
