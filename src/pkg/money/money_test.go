package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"3.200.000,00", "3200000", true},
		{"81.813.385,22", "81813385.22", true},
		{" 593.307,69 ", "593307.69", true},
		{"30.000,00", "30000", true},
		{"0,00", "0", true},
		{"7", "7", true},
		{"1.234.567.890,12", "1234567890.12", true},
		{"-1.500,50", "-1500.5", true},
		{"", "", false},
		{"   ", "", false},
		{"R$ 1.000,00", "", false},
		{"1,000,00", "", false},
		{"abc", "", false},
		{"1e5", "", false},
		{",50", "", false},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if !tc.ok {
			require.Error(t, err, "%q expected error", tc.in)
			assert.True(t, errors.Is(err, ErrMalformedValue), "%q error should match ErrMalformedValue", tc.in)

			var malformed *MalformedValueError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tc.in, malformed.Raw)
			continue
		}
		require.NoError(t, err, "%q", tc.in)
		assert.True(t, decimal.RequireFromString(tc.out).Equal(got), "%q expected %s, got %s", tc.in, tc.out, got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"0", "R$ 0,00"},
		{"3200000", "R$ 3.200.000,00"},
		{"26295700", "R$ 26.295.700,00"},
		{"593307.69", "R$ 593.307,69"},
		{"999.999", "R$ 1.000,00"},
		{"12.5", "R$ 12,50"},
		{"100", "R$ 100,00"},
		{"1000", "R$ 1.000,00"},
		{"93500000", "R$ 93.500.000,00"},
		{"-1234.56", "R$ -1.234,56"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.out, Format(decimal.RequireFromString(tc.in)), "format %s", tc.in)
	}
}

func TestFormatNumberHasNoPrefix(t *testing.T) {
	assert.Equal(t, "93.500.000,00", FormatNumber(decimal.NewFromInt(93500000)))
}

func TestParseFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"3.200.000,00", "81.813.385,22", "710.000,00", "593.307,69", "8.486.614,78",
		"1,05", "12,00", "123,45", "1.000,01", "999.999.999,99",
	}
	for _, raw := range inputs {
		first, err := Parse(raw)
		require.NoError(t, err)

		formatted := Format(first)
		require.Equal(t, CurrencyPrefix, formatted[:len(CurrencyPrefix)])

		second, err := Parse(formatted[len(CurrencyPrefix):])
		require.NoError(t, err)
		assert.True(t, first.Equal(second), "round trip of %q drifted: %s != %s", raw, first, second)
		assert.Equal(t, raw, FormatNumber(second))
	}
}
