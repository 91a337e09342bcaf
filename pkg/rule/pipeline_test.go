package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/renamerc/pkg/fname"
	"github.com/walteh/renamerc/pkg/rule"
)

// mustFile builds a filename model for a path that does not need to exist.
func mustFile(t *testing.T, path string) *fname.File {
	t.Helper()
	f, err := fname.New(path)
	require.NoError(t, err)
	return f
}

func TestPipelineApply(t *testing.T) {
	tests := []struct {
		name string
		path string
		opts rule.Options
		want string
	}{
		{
			name: "empty_pipeline_is_identity",
			path: "/path/to/file.txt",
			opts: rule.Options{},
			want: "/path/to/file.txt",
		},
		{
			name: "name_runs_before_replace",
			path: "/path/to/file.txt",
			opts: rule.Options{
				Name:    &rule.Name{Mode: rule.NameFixed, Fixed: "draft copy"},
				Replace: &rule.Replace{Find: "draft", With: "final", CaseSensitive: true},
			},
			want: "/path/to/final copy.txt",
		},
		{
			name: "replace_runs_before_case",
			path: "/path/to/report draft.txt",
			opts: rule.Options{
				Replace: &rule.Replace{Find: "draft", With: "final", CaseSensitive: true},
				Case:    &rule.Case{Mode: rule.CaseUpper},
			},
			want: "/path/to/REPORT FINAL.txt",
		},
		{
			name: "add_sees_post_remove_stem",
			path: "/path/to/xxreport.txt",
			opts: rule.Options{
				Remove: &rule.Remove{First: 2},
				Add:    &rule.Add{Prefix: "final-"},
			},
			want: "/path/to/final-report.txt",
		},
		{
			name: "extension_runs_last",
			path: "/path/to/file.txt",
			opts: rule.Options{
				Case:      &rule.Case{Mode: rule.CaseUpper},
				Extension: &rule.Extension{Mode: rule.ExtNew, Value: "bak"},
			},
			want: "/path/to/FILE.bak",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFile(t, tt.path)
			got := tt.opts.Apply(f)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithNumberValue(t *testing.T) {
	t.Run("copies_the_number_stage", func(t *testing.T) {
		opts := rule.Options{
			Number: &rule.Number{Mode: rule.NumberSuffix, Value: 1, Step: 2, Sep: "-"},
		}

		derived := opts.WithNumberValue(5)
		assert.Equal(t, 5, derived.Number.Value)
		assert.Equal(t, 1, opts.Number.Value, "original options must not be mutated")
	})

	t.Run("no_number_stage_is_a_no_op", func(t *testing.T) {
		opts := rule.Options{}
		derived := opts.WithNumberValue(5)
		assert.Nil(t, derived.Number)
	})
}
