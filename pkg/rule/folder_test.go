package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/walteh/renamerc/pkg/rule"
)

func TestFolder(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		rule     rule.Folder
		wantStem string
	}{
		{
			name:     "off_is_a_no_op",
			path:     "/some/file/path/to/test file.txt",
			rule:     rule.Folder{Sep: "~", Levels: 2},
			wantStem: "test file",
		},
		{
			name:     "zero_levels_is_a_no_op",
			path:     "/some/file/path/to/test file.txt",
			rule:     rule.Folder{Mode: rule.FolderPrefix, Sep: "~"},
			wantStem: "test file",
		},
		{
			name:     "prefix_in_ancestor_order",
			path:     "/some/file/path/to/test file.txt",
			rule:     rule.Folder{Mode: rule.FolderPrefix, Sep: "~", Levels: 2},
			wantStem: "path~to~test file",
		},
		{
			name:     "negative_levels_keeps_only_the_farthest",
			path:     "/some/file/path/to/test file.txt",
			rule:     rule.Folder{Mode: rule.FolderPrefix, Sep: "~", Levels: -2},
			wantStem: "path~test file",
		},
		{
			name:     "levels_clamp_to_the_available_depth",
			path:     "/some/file/path/to/test file.txt",
			rule:     rule.Folder{Mode: rule.FolderPrefix, Sep: "~", Levels: 99},
			wantStem: "some~file~path~to~test file",
		},
		{
			name:     "suffix_appends_nearest_first",
			path:     "/some/file/path/to/test file.txt",
			rule:     rule.Folder{Mode: rule.FolderSuffix, Sep: "~", Levels: 2},
			wantStem: "test fileto~path~",
		},
		{
			name:     "file_at_root_has_no_ancestors",
			path:     "/test file.txt",
			rule:     rule.Folder{Mode: rule.FolderPrefix, Sep: "~", Levels: 2},
			wantStem: "test file",
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
