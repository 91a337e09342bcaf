// Package rule implements the ten renaming-rule variants and their fixed
// composition order. Each rule consumes a fname.File and mutates its stem
// or extension in place; an unconfigured rule is an identity transform.
package rule

import "github.com/walteh/renamerc/pkg/fname"

// 🎯 Rule is a single transformation step in the pipeline
type Rule interface {
	Apply(f *fname.File)
}
