package rule

import (
	"strconv"
	"strings"

	"github.com/walteh/renamerc/pkg/fname"
)

// 🔢 NumberMode selects where the rendered number lands
type NumberMode int

const (
	NumberPrefix NumberMode = iota
	NumberSuffix
	NumberInsert
)

// NumberFormat selects the numeral system.
type NumberFormat int

const (
	FormatDecimal NumberFormat = iota
	FormatBinary
	FormatOctal
	FormatHexUpper
	FormatHexLower
	FormatAlphaUpper // bijective base-26, A-Z
	FormatAlphaLower // bijective base-26, a-z
)

// Number stamps a rendered numeral onto the stem. Value is rendered in the
// selected base and left-padded with PadChar up to Pad characters. A ":" in
// Sep is replaced by the decimal value, so a separator of "ABC:DEF:" yields
// ABC1DEF1, ABC2DEF2 and so on. Insert mode places the numeral at a fixed
// character index flanked by the separator on both sides (the index clamps
// to the stem length).
//
// Step is consumed by the batch layer: the i-th file of a batch receives
// Value + i*Step.
type Number struct {
	Mode     NumberMode
	InsertAt int
	Value    int
	Step     int
	Pad      int
	PadChar  rune
	Sep      string
	Format   NumberFormat
}

func (n *Number) Apply(f *fname.File) {
	val := n.render()
	sep := strings.ReplaceAll(n.Sep, ":", strconv.Itoa(n.Value))

	switch n.Mode {
	case NumberPrefix:
		f.Stem = val + sep + f.Stem
	case NumberSuffix:
		f.Stem = f.Stem + sep + val
	case NumberInsert:
		runes := []rune(f.Stem)
		pos := n.InsertAt
		if pos > len(runes) {
			pos = len(runes)
		}
		if pos < 0 {
			pos = 0
		}
		f.Stem = string(runes[:pos]) + sep + val + sep + string(runes[pos:])
	}
}

// render formats Value in the configured numeral system and pads it.
func (n *Number) render() string {
	var val string
	switch n.Format {
	case FormatBinary:
		val = strconv.FormatInt(int64(n.Value), 2)
	case FormatOctal:
		val = strconv.FormatInt(int64(n.Value), 8)
	case FormatHexUpper:
		val = strings.ToUpper(strconv.FormatInt(int64(n.Value), 16))
	case FormatHexLower:
		val = strconv.FormatInt(int64(n.Value), 16)
	case FormatAlphaUpper:
		val = alpha(n.Value, 'A')
	case FormatAlphaLower:
		val = alpha(n.Value, 'a')
	default:
		val = strconv.Itoa(n.Value)
	}

	if pad := n.Pad - len(val); pad > 0 {
		padChar := n.PadChar
		if padChar == 0 {
			padChar = n.defaultPadChar()
		}
		val = strings.Repeat(string(padChar), pad) + val
	}
	return val
}

// alpha is the zero-indexed bijective base-26 rendering: repeatedly take
// value mod 26 as a letter and divide. Note there is no spreadsheet-column
// +1 offset, so zero renders as the empty string.
func alpha(value int, base rune) string {
	var letters []rune
	for value > 0 {
		letters = append(letters, base-1+rune(value%26))
		value /= 26
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}

func (n *Number) defaultPadChar() rune {
	switch n.Format {
	case FormatAlphaUpper:
		return 'A'
	case FormatAlphaLower:
		return 'a'
	default:
		return '0'
	}
}
