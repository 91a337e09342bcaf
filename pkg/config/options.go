package config

import (
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/rule"
)

// 🔄 ToOptions translates the configuration snapshot into engine options.
// Every enum string is checked here so the engine only ever sees valid
// values.
func (rc *RulesConfig) ToOptions() (rule.Options, error) {
	var opts rule.Options

	if rc.Regex != nil {
		opts.Regex = &rule.Regex{
			Pattern:     rc.Regex.Pattern,
			Replacement: rc.Regex.Replacement,
			IncludeExt:  rc.Regex.IncludeExt,
		}
	}

	if rc.Name != nil {
		mode, err := nameMode(rc.Name.Mode)
		if err != nil {
			return rule.Options{}, err
		}
		opts.Name = &rule.Name{Mode: mode, Fixed: rc.Name.Fixed}
	}

	if rc.Replace != nil {
		opts.Replace = &rule.Replace{
			Find:          rc.Replace.Find,
			With:          rc.Replace.With,
			CaseSensitive: rc.Replace.CaseSensitive,
		}
	}

	if rc.Case != nil {
		mode, err := caseMode(rc.Case.Mode)
		if err != nil {
			return rule.Options{}, err
		}
		opts.Case = &rule.Case{
			Mode:       mode,
			Snake:      rc.Case.Snake,
			Exceptions: rc.Case.Exceptions,
		}
	}

	if rc.Remove != nil {
		opts.Remove = &rule.Remove{
			First:       rc.Remove.First,
			Last:        rc.Remove.Last,
			RangeStart:  rc.Remove.RangeStart,
			RangeEnd:    rc.Remove.RangeEnd,
			Chars:       rc.Remove.Chars,
			Words:       rc.Remove.Words,
			Crop:        rc.Remove.Crop,
			CropBefore:  rc.Remove.CropBefore,
			Digits:      rc.Remove.Digits,
			NonASCII:    rc.Remove.NonASCII,
			Trim:        rc.Remove.Trim,
			DoubleSpace: rc.Remove.DoubleSpace,
			Letters:     rc.Remove.Letters,
			Symbols:     rc.Remove.Symbols,
			LeadDots:    rc.Remove.LeadDots,
		}
	}

	if rc.Add != nil {
		opts.Add = &rule.Add{
			Prefix:    rc.Add.Prefix,
			Insert:    rc.Add.Insert,
			InsertAt:  rc.Add.InsertAt,
			Suffix:    rc.Add.Suffix,
			WordSpace: rc.Add.WordSpace,
		}
	}

	if rc.Date != nil {
		date, err := dateOptions(rc.Date)
		if err != nil {
			return rule.Options{}, err
		}
		opts.Date = date
	}

	if rc.Folder != nil {
		mode, err := folderMode(rc.Folder.Mode)
		if err != nil {
			return rule.Options{}, err
		}
		opts.Folder = &rule.Folder{
			Mode:   mode,
			Sep:    rc.Folder.Sep,
			Levels: rc.Folder.Levels,
		}
	}

	if rc.Number != nil {
		number, err := numberOptions(rc.Number)
		if err != nil {
			return rule.Options{}, err
		}
		opts.Number = number
	}

	if rc.Extension != nil {
		mode, err := extMode(rc.Extension.Mode)
		if err != nil {
			return rule.Options{}, err
		}
		opts.Extension = &rule.Extension{Mode: mode, Value: rc.Extension.Value}
	}

	return opts, nil
}

func nameMode(s string) (rule.NameMode, error) {
	switch s {
	case "", "keep":
		return rule.NameKeep, nil
	case "remove":
		return rule.NameRemove, nil
	case "fixed":
		return rule.NameFixed, nil
	case "reverse":
		return rule.NameReverse, nil
	default:
		return 0, errors.Errorf("unknown name mode: %q", s)
	}
}

func caseMode(s string) (rule.CaseMode, error) {
	switch s {
	case "", "keep":
		return rule.CaseKeep, nil
	case "lower":
		return rule.CaseLower, nil
	case "upper":
		return rule.CaseUpper, nil
	case "title":
		return rule.CaseTitle, nil
	case "sentence":
		return rule.CaseSentence, nil
	default:
		return 0, errors.Errorf("unknown case mode: %q", s)
	}
}

func dateOptions(dc *DateConfig) (*rule.Date, error) {
	date := &rule.Date{
		Custom:   dc.Custom,
		Sep:      dc.Sep,
		Seg:      dc.Seg,
		FullYear: dc.FullYear,
	}

	switch dc.Mode {
	case "", "off":
		date.Mode = rule.DateOff
	case "prefix":
		date.Mode = rule.DatePrefix
	case "suffix":
		date.Mode = rule.DateSuffix
	default:
		return nil, errors.Errorf("unknown date mode: %q", dc.Mode)
	}

	switch dc.Source {
	case "", "created":
		date.Source = rule.SourceCreated
	case "modified":
		date.Source = rule.SourceModified
	case "now", "current":
		date.Source = rule.SourceNow
	default:
		return nil, errors.Errorf("unknown date source: %q", dc.Source)
	}

	switch dc.Order {
	case "", "dmy":
		date.Order = rule.OrderDMY
	case "mdy":
		date.Order = rule.OrderMDY
	case "ymd":
		date.Order = rule.OrderYMD
	default:
		return nil, errors.Errorf("unknown date order: %q", dc.Order)
	}

	switch dc.Clock {
	case "", "none":
		date.Clock = rule.ClockNone
	case "hm":
		date.Clock = rule.ClockHM
	case "hms":
		date.Clock = rule.ClockHMS
	default:
		return nil, errors.Errorf("unknown date clock: %q", dc.Clock)
	}

	return date, nil
}

func folderMode(s string) (rule.FolderMode, error) {
	switch s {
	case "", "off":
		return rule.FolderOff, nil
	case "prefix":
		return rule.FolderPrefix, nil
	case "suffix":
		return rule.FolderSuffix, nil
	default:
		return 0, errors.Errorf("unknown folder mode: %q", s)
	}
}

func numberOptions(nc *NumberConfig) (*rule.Number, error) {
	number := &rule.Number{
		InsertAt: nc.InsertAt,
		Value:    nc.Value,
		Step:     nc.Step,
		Pad:      nc.Pad,
		Sep:      nc.Sep,
	}
	if nc.PadChar != "" {
		number.PadChar = []rune(nc.PadChar)[0]
	}

	switch nc.Mode {
	case "", "prefix":
		number.Mode = rule.NumberPrefix
	case "suffix":
		number.Mode = rule.NumberSuffix
	case "insert":
		number.Mode = rule.NumberInsert
	default:
		return nil, errors.Errorf("unknown number mode: %q", nc.Mode)
	}

	switch nc.Format {
	case "", "decimal":
		number.Format = rule.FormatDecimal
	case "binary":
		number.Format = rule.FormatBinary
	case "octal":
		number.Format = rule.FormatOctal
	case "hex_upper":
		number.Format = rule.FormatHexUpper
	case "hex_lower":
		number.Format = rule.FormatHexLower
	case "alpha_upper":
		number.Format = rule.FormatAlphaUpper
	case "alpha_lower":
		number.Format = rule.FormatAlphaLower
	default:
		return nil, errors.Errorf("unknown number format: %q", nc.Format)
	}

	return number, nil
}

func extMode(s string) (rule.ExtMode, error) {
	switch s {
	case "", "keep":
		return rule.ExtKeep, nil
	case "lower":
		return rule.ExtLower, nil
	case "upper":
		return rule.ExtUpper, nil
	case "title":
		return rule.ExtTitle, nil
	case "new", "replace":
		return rule.ExtNew, nil
	case "extra", "append":
		return rule.ExtExtra, nil
	case "remove":
		return rule.ExtRemove, nil
	default:
		return 0, errors.Errorf("unknown extension mode: %q", s)
	}
}
