package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/walteh/renamerc/pkg/rule"
)

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		rule     rule.Name
		wantStem string
	}{
		{
			name:     "keep_is_the_default",
			path:     "/tmp/file.txt",
			rule:     rule.Name{},
			wantStem: "file",
		},
		{
			name:     "remove_erases_the_stem",
			path:     "/tmp/file.txt",
			rule:     rule.Name{Mode: rule.NameRemove},
			wantStem: "",
		},
		{
			name:     "fixed_sets_the_same_stem",
			path:     "/tmp/file.txt",
			rule:     rule.Name{Mode: rule.NameFixed, Fixed: "photo"},
			wantStem: "photo",
		},
		{
			name:     "reverse_flips_the_stem",
			path:     "/tmp/12345.txt",
			rule:     rule.Name{Mode: rule.NameReverse},
			wantStem: "54321",
		},
		{
			name:     "reverse_is_rune_safe",
			path:     "/tmp/ab©.txt",
			rule:     rule.Name{Mode: rule.NameReverse},
			wantStem: "©ba",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFile(t, tt.path)
			tt.rule.Apply(f)
			assert.Equal(t, tt.wantStem, f.Stem)
		})
	}
}
