// Package batch applies one shared rule pipeline to a collection of files,
// producing a pure preview mapping and, on commit, performing the actual
// filesystem renames with per-item success/failure reporting.
package batch

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/renamerc/pkg/fname"
	"github.com/walteh/renamerc/pkg/rule"
)

// 🗺️ Mapping is one preview entry: original path to candidate path
type Mapping struct {
	Original  string
	Candidate string
}

// 📋 Result is one commit entry. Err is nil on success; a failure on one
// item never aborts the others.
type Result struct {
	Original  string
	Candidate string
	Err       error
}

// 🔧 Options configures a Renamer
type Options struct {
	// Files is the batch, in presentation order.
	Files []*fname.File
	// Rules is the shared pipeline configuration.
	Rules rule.Options
	// Async commits items concurrently. Result order stays stable.
	Async bool
}

// 🎮 Renamer holds a batch of files plus one pipeline configuration
type Renamer struct {
	files []*fname.File
	rules rule.Options
	async bool
}

// 🏭 New creates a Renamer with the given options
func New(opts Options) (*Renamer, error) {
	if len(opts.Files) == 0 {
		return nil, errors.New("at least one file is required")
	}
	for _, f := range opts.Files {
		if f == nil {
			return nil, errors.New("nil file in batch")
		}
	}
	return &Renamer{
		files: opts.Files,
		rules: opts.Rules,
		async: opts.Async,
	}, nil
}

// itemRules returns the pipeline configuration for the i-th file. When a
// Number stage is configured the i-th file receives Value + i*Step.
func (r *Renamer) itemRules(i int) rule.Options {
	if n := r.rules.Number; n != nil {
		return r.rules.WithNumberValue(n.Value + i*n.Step)
	}
	return r.rules
}

// candidate runs the pipeline against a clone, leaving the model untouched.
func (r *Renamer) candidate(i int) string {
	opts := r.itemRules(i)
	return opts.Apply(r.files[i].Clone())
}

// 👀 Preview maps every original path to its candidate path. It is pure and
// idempotent: safe to call repeatedly on unchanged inputs.
func (r *Renamer) Preview(ctx context.Context) []Mapping {
	logger := zerolog.Ctx(ctx)

	mappings := make([]Mapping, len(r.files))
	for i, f := range r.files {
		mappings[i] = Mapping{
			Original:  f.Original,
			Candidate: r.candidate(i),
		}
	}

	logger.Debug().Int("files", len(mappings)).Msg("built preview mapping")
	return mappings
}

// 💾 Commit performs the filesystem rename for every item, collecting one
// Result per file in batch order. Items whose candidate collides with
// another item's candidate fail with ErrNameCollision; everything else
// proceeds.
func (r *Renamer) Commit(ctx context.Context) []Result {
	logger := zerolog.Ctx(ctx)

	results := make([]Result, len(r.files))
	for i, f := range r.files {
		results[i] = Result{Original: f.Original, Candidate: r.candidate(i)}
	}

	// Pre-scan candidates so two sources never race for the same target.
	seen := make(map[string]int, len(results))
	for i := range results {
		if first, dup := seen[results[i].Candidate]; dup {
			results[i].Err = errors.Errorf("candidate %q already claimed by %q: %w",
				results[i].Candidate, results[first].Original, ErrNameCollision)
			continue
		}
		seen[results[i].Candidate] = i
	}

	if r.async {
		g, _ := errgroup.WithContext(ctx)
		for i := range results {
			if results[i].Err != nil {
				continue
			}
			i := i
			g.Go(func() error {
				results[i].Err = renameOne(results[i].Original, results[i].Candidate)
				return nil
			})
		}
		_ = g.Wait() // per-item errors live in results, never in the group
	} else {
		for i := range results {
			if results[i].Err != nil {
				continue
			}
			results[i].Err = renameOne(results[i].Original, results[i].Candidate)
		}
	}

	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
		}
	}
	logger.Debug().Int("files", len(results)).Int("failed", failed).Msg("commit finished")
	return results
}

// renameOne performs a single rename, mapping a vanished source onto
// ErrNotFound so callers can distinguish it from other IO failures.
func renameOne(original, candidate string) error {
	if original == candidate {
		return nil
	}
	if err := os.Rename(original, candidate); err != nil {
		if os.IsNotExist(err) {
			return errors.Errorf("renaming %q: %w", original, fname.ErrNotFound)
		}
		return errors.Errorf("renaming %q: %w", original, err)
	}
	return nil
}
