package rule

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/walteh/renamerc/pkg/fname"
)

// 📅 DateMode selects where the date text lands
type DateMode int

const (
	DateOff DateMode = iota
	DatePrefix
	DateSuffix
)

// DateSource selects which timestamp feeds the format.
type DateSource int

const (
	SourceCreated DateSource = iota
	SourceModified
	SourceNow
)

// DateOrder is the day/month/year permutation of the structured formats.
type DateOrder int

const (
	OrderDMY DateOrder = iota
	OrderMDY
	OrderYMD
)

// ClockPart optionally appends a time-of-day suffix to the date.
type ClockPart int

const (
	ClockNone ClockPart = iota
	ClockHM
	ClockHMS
)

// Date stamps the stem with a timestamp read from the file's metadata or
// the wall clock. When the OS cannot report the requested timestamp the
// rule silently leaves the stem alone; that soft failure is the documented
// contract, not an error.
//
// Custom, when set, is a strftime pattern that overrides the structured
// Order/Clock builder. Sep separates the date from the stem, Seg separates
// the segments within the date.
type Date struct {
	Mode     DateMode
	Source   DateSource
	Order    DateOrder
	Clock    ClockPart
	Custom   string
	Sep      string
	Seg      string
	FullYear bool
}

func (d *Date) Apply(f *fname.File) {
	if d.Mode == DateOff {
		return
	}

	when, ok := d.timestamp(f)
	if !ok {
		return
	}

	text := strftime.Format(d.layout(), when)
	switch d.Mode {
	case DatePrefix:
		f.Stem = text + d.Sep + f.Stem
	case DateSuffix:
		f.Stem = f.Stem + d.Sep + text
	}
}

func (d *Date) timestamp(f *fname.File) (time.Time, bool) {
	if d.Source == SourceNow {
		return time.Now(), true
	}

	times, err := f.Times()
	if err != nil {
		return time.Time{}, false
	}
	switch d.Source {
	case SourceCreated:
		return times.Created, times.HasCreated
	default:
		return times.Modified, true
	}
}

// layout builds the strftime pattern from the structured selection.
func (d *Date) layout() string {
	if d.Custom != "" {
		return d.Custom
	}

	year := "%y"
	if d.FullYear {
		year = "%Y"
	}

	var parts []string
	switch d.Order {
	case OrderMDY:
		parts = []string{"%m", "%d", year}
	case OrderYMD:
		parts = []string{year, "%m", "%d"}
	default:
		parts = []string{"%d", "%m", year}
	}

	switch d.Clock {
	case ClockHM:
		parts = append(parts, "%H", "%M")
	case ClockHMS:
		parts = append(parts, "%H", "%M", "%S")
	}

	return strings.Join(parts, d.Seg)
}
