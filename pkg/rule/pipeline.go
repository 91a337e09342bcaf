package rule

import "github.com/walteh/renamerc/pkg/fname"

// 🧩 Options is one configuration snapshot for the whole pipeline: one
// optional slot per rule kind. A nil slot is an identity transform, so the
// stage ordering is deterministic regardless of which rules are configured.
type Options struct {
	Regex     *Regex
	Name      *Name
	Replace   *Replace
	Case      *Case
	Remove    *Remove
	Add       *Add
	Date      *Date
	Folder    *Folder
	Number    *Number
	Extension *Extension
}

// rules returns the configured stages in the fixed product order:
// Regex → Name → Replace → Case → Remove → Add → Date → Folder → Number →
// Extension. Each stage operates on the output of the previous one; the
// order is a documented contract, not an implementation detail.
func (o *Options) rules() []Rule {
	var rules []Rule
	if o.Regex != nil {
		rules = append(rules, o.Regex)
	}
	if o.Name != nil {
		rules = append(rules, o.Name)
	}
	if o.Replace != nil {
		rules = append(rules, o.Replace)
	}
	if o.Case != nil {
		rules = append(rules, o.Case)
	}
	if o.Remove != nil {
		rules = append(rules, o.Remove)
	}
	if o.Add != nil {
		rules = append(rules, o.Add)
	}
	if o.Date != nil {
		rules = append(rules, o.Date)
	}
	if o.Folder != nil {
		rules = append(rules, o.Folder)
	}
	if o.Number != nil {
		rules = append(rules, o.Number)
	}
	if o.Extension != nil {
		rules = append(rules, o.Extension)
	}
	return rules
}

// 🎬 Apply runs every configured stage against the model in order and
// returns the resulting candidate path. The model is mutated in place;
// callers wanting a pure preview pass a Clone.
func (o *Options) Apply(f *fname.File) string {
	for _, r := range o.rules() {
		r.Apply(f)
	}
	return f.Candidate()
}

// WithNumberValue returns a copy of the options whose Number stage (if any)
// carries the given sequence value. The batch layer uses this to hand each
// file its own auto-number without sharing mutable state.
func (o Options) WithNumberValue(value int) Options {
	if o.Number != nil {
		n := *o.Number
		n.Value = value
		o.Number = &n
	}
	return o
}
