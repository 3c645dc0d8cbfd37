// Package fixedwidth encodes and decodes fixed-width text records.
package fixedwidth

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Justify selects which edge of a slot a value is anchored to.
type Justify int

const (
	Left Justify = iota
	Right
)

// Field is one slot of a record layout.
type Field struct {
	Name    string
	Width   int
	Justify Justify
	Pad     byte
}

// Alpha returns a left-justified, space-filled field.
func Alpha(name string, width int) Field {
	return Field{Name: name, Width: width, Justify: Left, Pad: ' '}
}

// Numeric returns a right-justified, zero-filled field.
func Numeric(name string, width int) Field {
	return Field{Name: name, Width: width, Justify: Right, Pad: '0'}
}

// Encode fits value into exactly width characters. See Fit.
func Encode(value string, width int, justify Justify, pad byte) string {
	s, _ := Fit(value, width, justify, pad)
	return s
}

// Fit transliterates value to ASCII and pads it with pad, or truncates it,
// to exactly width characters. Left-justified values keep their leading
// characters on truncation, right-justified values their trailing ones.
// The second result reports whether characters were dropped.
func Fit(value string, width int, justify Justify, pad byte) (string, bool) {
	if width <= 0 {
		return "", value != ""
	}
	s := ASCII(value)
	if len(s) > width {
		if justify == Right {
			return s[len(s)-width:], true
		}
		return s[:width], true
	}
	fill := strings.Repeat(string(pad), width-len(s))
	if justify == Right {
		return fill + s, false
	}
	return s + fill, false
}

// ASCII strips diacritics ("Peñíscola" -> "Peniscola") and replaces any
// remaining non-printable or non-ASCII rune with '?'.
func ASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return '?'
		}
		return r
	}, folded)
}

// Cents renders an amount as integer cents in exactly width characters,
// zero-padded. A negative amount keeps a leading '-'. The second result
// reports an amount too large for width, whose leading digits were
// dropped.
func Cents(d decimal.Decimal, width int) (string, bool) {
	cents := d.Mul(decimal.NewFromInt(100)).Round(0)
	digits := cents.Abs().String()
	if cents.IsNegative() {
		s, truncated := Fit(digits, width-1, Right, '0')
		return "-" + s, truncated
	}
	return Fit(digits, width, Right, '0')
}
