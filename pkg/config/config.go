// Package config loads and validates rule-set configuration from YAML or
// HCL files. The configuration is a plain data snapshot: the engine never
// sees it directly, only the rule.Options it translates into.
package config

import (
	"context"
	"os"
	"regexp"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// ErrInvalidPattern means the Regex rule's pattern does not compile. The
// engine itself treats a bad pattern as a silent no-op, so the only place
// the user hears about it is here, before any rename is committed.
var ErrInvalidPattern = errors.Base("regex pattern does not compile")

// 📚 Config represents the complete configuration
type Config struct {
	Directory      string      `json:"directory,omitempty" yaml:"directory,omitempty" hcl:"directory,optional"`
	IgnorePatterns []string    `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
	IncludeDirs    bool        `json:"include_dirs,omitempty" yaml:"include_dirs,omitempty" hcl:"include_dirs,optional"`
	Async          bool        `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`
	Rules          RulesConfig `json:"rules" yaml:"rules" hcl:"rules,block"`
}

// 🧩 RulesConfig holds one optional block per rule kind. Absence of a block
// means identity behavior for that pipeline stage.
type RulesConfig struct {
	Regex     *RegexConfig     `json:"regex,omitempty" yaml:"regex,omitempty" hcl:"regex,block"`
	Name      *NameConfig      `json:"name,omitempty" yaml:"name,omitempty" hcl:"name,block"`
	Replace   *ReplaceConfig   `json:"replace,omitempty" yaml:"replace,omitempty" hcl:"replace,block"`
	Case      *CaseConfig      `json:"case,omitempty" yaml:"case,omitempty" hcl:"case,block"`
	Remove    *RemoveConfig    `json:"remove,omitempty" yaml:"remove,omitempty" hcl:"remove,block"`
	Add       *AddConfig       `json:"add,omitempty" yaml:"add,omitempty" hcl:"add,block"`
	Date      *DateConfig      `json:"date,omitempty" yaml:"date,omitempty" hcl:"date,block"`
	Folder    *FolderConfig    `json:"folder,omitempty" yaml:"folder,omitempty" hcl:"folder,block"`
	Number    *NumberConfig    `json:"number,omitempty" yaml:"number,omitempty" hcl:"number,block"`
	Extension *ExtensionConfig `json:"extension,omitempty" yaml:"extension,omitempty" hcl:"extension,block"`
}

type RegexConfig struct {
	Pattern     string `json:"pattern" yaml:"pattern" hcl:"pattern"`
	Replacement string `json:"replacement" yaml:"replacement" hcl:"replacement,optional"`
	IncludeExt  bool   `json:"include_ext,omitempty" yaml:"include_ext,omitempty" hcl:"include_ext,optional"`
}

type NameConfig struct {
	Mode  string `json:"mode" yaml:"mode" hcl:"mode"`
	Fixed string `json:"fixed,omitempty" yaml:"fixed,omitempty" hcl:"fixed,optional"`
}

type ReplaceConfig struct {
	Find          string `json:"find" yaml:"find" hcl:"find"`
	With          string `json:"with" yaml:"with" hcl:"with,optional"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" yaml:"case_sensitive,omitempty" hcl:"case_sensitive,optional"`
}

type CaseConfig struct {
	Mode       string `json:"mode" yaml:"mode" hcl:"mode"`
	Snake      bool   `json:"snake,omitempty" yaml:"snake,omitempty" hcl:"snake,optional"`
	Exceptions string `json:"exceptions,omitempty" yaml:"exceptions,omitempty" hcl:"exceptions,optional"`
}

type RemoveConfig struct {
	First       int    `json:"first,omitempty" yaml:"first,omitempty" hcl:"first,optional"`
	Last        int    `json:"last,omitempty" yaml:"last,omitempty" hcl:"last,optional"`
	RangeStart  int    `json:"range_start,omitempty" yaml:"range_start,omitempty" hcl:"range_start,optional"`
	RangeEnd    int    `json:"range_end,omitempty" yaml:"range_end,omitempty" hcl:"range_end,optional"`
	Chars       string `json:"chars,omitempty" yaml:"chars,omitempty" hcl:"chars,optional"`
	Words       string `json:"words,omitempty" yaml:"words,omitempty" hcl:"words,optional"`
	Crop        string `json:"crop,omitempty" yaml:"crop,omitempty" hcl:"crop,optional"`
	CropBefore  bool   `json:"crop_before,omitempty" yaml:"crop_before,omitempty" hcl:"crop_before,optional"`
	Digits      bool   `json:"digits,omitempty" yaml:"digits,omitempty" hcl:"digits,optional"`
	NonASCII    bool   `json:"non_ascii,omitempty" yaml:"non_ascii,omitempty" hcl:"non_ascii,optional"`
	Trim        bool   `json:"trim,omitempty" yaml:"trim,omitempty" hcl:"trim,optional"`
	DoubleSpace bool   `json:"double_space,omitempty" yaml:"double_space,omitempty" hcl:"double_space,optional"`
	Letters     bool   `json:"letters,omitempty" yaml:"letters,omitempty" hcl:"letters,optional"`
	Symbols     bool   `json:"symbols,omitempty" yaml:"symbols,omitempty" hcl:"symbols,optional"`
	LeadDots    bool   `json:"lead_dots,omitempty" yaml:"lead_dots,omitempty" hcl:"lead_dots,optional"`
}

type AddConfig struct {
	Prefix    string `json:"prefix,omitempty" yaml:"prefix,omitempty" hcl:"prefix,optional"`
	Insert    string `json:"insert,omitempty" yaml:"insert,omitempty" hcl:"insert,optional"`
	InsertAt  int    `json:"insert_at,omitempty" yaml:"insert_at,omitempty" hcl:"insert_at,optional"`
	Suffix    string `json:"suffix,omitempty" yaml:"suffix,omitempty" hcl:"suffix,optional"`
	WordSpace bool   `json:"word_space,omitempty" yaml:"word_space,omitempty" hcl:"word_space,optional"`
}

type DateConfig struct {
	Mode     string `json:"mode" yaml:"mode" hcl:"mode"`
	Source   string `json:"source,omitempty" yaml:"source,omitempty" hcl:"source,optional"`
	Order    string `json:"order,omitempty" yaml:"order,omitempty" hcl:"order,optional"`
	Clock    string `json:"clock,omitempty" yaml:"clock,omitempty" hcl:"clock,optional"`
	Custom   string `json:"custom,omitempty" yaml:"custom,omitempty" hcl:"custom,optional"`
	Sep      string `json:"sep,omitempty" yaml:"sep,omitempty" hcl:"sep,optional"`
	Seg      string `json:"seg,omitempty" yaml:"seg,omitempty" hcl:"seg,optional"`
	FullYear bool   `json:"full_year,omitempty" yaml:"full_year,omitempty" hcl:"full_year,optional"`
}

type FolderConfig struct {
	Mode   string `json:"mode" yaml:"mode" hcl:"mode"`
	Sep    string `json:"sep,omitempty" yaml:"sep,omitempty" hcl:"sep,optional"`
	Levels int    `json:"levels,omitempty" yaml:"levels,omitempty" hcl:"levels,optional"`
}

type NumberConfig struct {
	Mode     string `json:"mode" yaml:"mode" hcl:"mode"`
	InsertAt int    `json:"insert_at,omitempty" yaml:"insert_at,omitempty" hcl:"insert_at,optional"`
	Value    int    `json:"value,omitempty" yaml:"value,omitempty" hcl:"value,optional"`
	Step     int    `json:"step,omitempty" yaml:"step,omitempty" hcl:"step,optional"`
	Pad      int    `json:"pad,omitempty" yaml:"pad,omitempty" hcl:"pad,optional"`
	PadChar  string `json:"pad_char,omitempty" yaml:"pad_char,omitempty" hcl:"pad_char,optional"`
	Sep      string `json:"sep,omitempty" yaml:"sep,omitempty" hcl:"sep,optional"`
	Format   string `json:"format,omitempty" yaml:"format,omitempty" hcl:"format,optional"`
}

type ExtensionConfig struct {
	Mode  string `json:"mode" yaml:"mode" hcl:"mode"`
	Value string `json:"value,omitempty" yaml:"value,omitempty" hcl:"value,optional"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid. Configuration-time
// errors surface here, before any rename is committed.
func (cfg *Config) Validate() error {
	if r := cfg.Rules.Regex; r != nil {
		if r.Pattern == "" {
			return errors.New("regex.pattern is required")
		}
		if _, err := regexp.Compile(r.Pattern); err != nil {
			return errors.Errorf("regex.pattern %q: %w", r.Pattern, ErrInvalidPattern)
		}
	}
	if r := cfg.Rules.Replace; r != nil && r.Find == "" {
		return errors.New("replace.find is required")
	}
	if r := cfg.Rules.Remove; r != nil {
		if r.First < 0 || r.Last < 0 {
			return errors.New("remove.first and remove.last must not be negative")
		}
		if r.RangeStart < 0 || r.RangeEnd < 0 {
			return errors.New("remove.range_start and remove.range_end must not be negative")
		}
	}
	if n := cfg.Rules.Number; n != nil {
		if n.Pad < 0 {
			return errors.New("number.pad must not be negative")
		}
		if len([]rune(n.PadChar)) > 1 {
			return errors.New("number.pad_char must be a single character")
		}
	}

	// Translating to engine options exercises every enum value.
	if _, err := cfg.Rules.ToOptions(); err != nil {
		return err
	}
	return nil
}
