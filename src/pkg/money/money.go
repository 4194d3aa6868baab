/*
Brazilian-locale currency handling for budget values.

Raw values come as "1.234.567,89" (dot groups thousands, comma separates cents)
and are displayed back as "R$ 1.234.567,89".
*/
package money

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CurrencyPrefix     = "R$ "
	ThousandsSeparator = "."
	DecimalSeparator   = ","
)

// ErrMalformedValue is matched by every *MalformedValueError through errors.Is.
var ErrMalformedValue = errors.New("malformed currency value")

// after separator substitution only an optional sign, digits and one period may remain
var canonicalNumberRegexp = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

/*
MalformedValueError is returned when a raw value string cannot be normalized.
*/
type MalformedValueError struct {
	Raw string
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed currency value '%s': expected format like 1.234.567,89", e.Raw)
}

func (e *MalformedValueError) Is(target error) bool {
	return target == ErrMalformedValue
}

/*
Parse converts a locale formatted string into a fixed-point decimal.

Whitespace around the value is dropped, every thousands separator is removed and
the decimal comma becomes a period. Anything else left in the string makes the
value malformed.

Example:

	Parse("26.295.700,00") -> 26295700.00
*/
func Parse(raw string) (value decimal.Decimal, err error) {
	canonical := strings.TrimSpace(raw)
	canonical = strings.ReplaceAll(canonical, ThousandsSeparator, "")
	canonical = strings.Replace(canonical, DecimalSeparator, ".", 1)

	if !canonicalNumberRegexp.MatchString(canonical) {
		return value, &MalformedValueError{Raw: raw}
	}

	value, err = decimal.NewFromString(canonical)
	if err != nil {
		return decimal.Zero, &MalformedValueError{Raw: raw}
	}

	return value, nil
}

/*
Format renders a value as Brazilian Real with exactly two decimal digits.

Example:

	3200000 -> "R$ 3.200.000,00"
*/
func Format(value decimal.Decimal) string {
	return CurrencyPrefix + FormatNumber(value)
}

/*
FormatNumber is Format without the currency prefix ("3.200.000,00").
*/
func FormatNumber(value decimal.Decimal) string {
	sign := ""
	if value.IsNegative() {
		sign = "-"
		value = value.Neg()
	}

	fixed := value.StringFixed(2)
	integerPart, fractionPart, _ := strings.Cut(fixed, ".")

	return sign + groupThousands(integerPart, ThousandsSeparator) + DecimalSeparator + fractionPart
}

/*
groupThousands groups digits in a base-10 string using the provided separator.
*/
func groupThousands(raw string, sep string) string {
	if len(raw) <= 3 {
		return raw
	}

	var builder strings.Builder
	firstGroupLen := len(raw) % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}

	builder.WriteString(raw[:firstGroupLen])

	for index := firstGroupLen; index < len(raw); index += 3 {
		builder.WriteString(sep)
		builder.WriteString(raw[index : index+3])
	}

	return builder.String()
}
