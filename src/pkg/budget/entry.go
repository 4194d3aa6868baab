// Package budget holds the municipal budget data model and the pure transforms
// applied to it: hierarchy split, categorization, aggregation and top-N ranking.
package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"budget-report/src/pkg/money"
)

/*
Entry is a single budget line as it appears in the source table.

Code has the "NN.NNN" shape; RawValue is the locale formatted amount
("26.295.700,00").
*/
type Entry struct {
	Code     string `json:"code" csv:"code"`
	Name     string `json:"name" csv:"name"`
	RawValue string `json:"value" csv:"value"`
}

/*
NormalizedEntry is an Entry with its parsed value and display string.

Formatted is always money.Format(Value).
*/
type NormalizedEntry struct {
	Entry
	Value     decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
}

/*
NormalizeEntry parses the raw value of a single entry.
*/
func NormalizeEntry(entry Entry) (normalized NormalizedEntry, err error) {
	value, parseErr := money.Parse(entry.RawValue)
	if parseErr != nil {
		return normalized, fmt.Errorf("entry '%s' (%s): %w", entry.Code, entry.Name, parseErr)
	}

	normalized = NormalizedEntry{
		Entry:     entry,
		Value:     value,
		Formatted: money.Format(value),
	}
	return normalized, nil
}

/*
Normalize parses every entry, keeping input order.

It stops at the first malformed value; the returned error wraps
money.ErrMalformedValue.
*/
func Normalize(entries []Entry) (normalized []NormalizedEntry, err error) {
	normalized = make([]NormalizedEntry, 0, len(entries))

	for _, entry := range entries {
		normalizedEntry, normalizeErr := NormalizeEntry(entry)
		if normalizeErr != nil {
			return nil, normalizeErr
		}
		normalized = append(normalized, normalizedEntry)
	}

	return normalized, nil
}

// Sum adds up the values of the given entries.
func Sum(entries []NormalizedEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Value)
	}
	return total
}
