package budget

import (
	"sort"

	"github.com/shopspring/decimal"

	"budget-report/src/pkg/money"
)

// OthersLabel names the synthetic row folding every unit beyond the top N.
const OthersLabel = "DEMAIS UNIDADES MENORES"

/*
TopRow is either a real child entry or the synthetic "others" row.
*/
type TopRow struct {
	Code      string          `json:"code,omitempty"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	Formatted string          `json:"formatted"`
	IsOthers  bool            `json:"is_others"`
}

/*
SelectTop ranks children by value (largest first) and keeps the first n.

Ties keep dataset order. Whatever is left is summed into one row labeled
othersLabel (OthersLabel when empty). With n or fewer children no others row is
produced. n below 1 is treated as 1.
*/
func SelectTop(children []NormalizedEntry, n int, othersLabel string) []TopRow {
	if n < 1 {
		n = 1
	}
	if othersLabel == "" {
		othersLabel = OthersLabel
	}

	sorted := make([]NormalizedEntry, len(children))
	copy(sorted, children)
	sort.SliceStable(sorted, func(firstIndex int, secondIndex int) bool {
		return sorted[firstIndex].Value.GreaterThan(sorted[secondIndex].Value)
	})

	keep := sorted
	rest := []NormalizedEntry{}
	if len(sorted) > n {
		keep = sorted[:n]
		rest = sorted[n:]
	}

	rows := make([]TopRow, 0, len(keep)+1)
	for _, entry := range keep {
		rows = append(rows, TopRow{
			Code:      entry.Code,
			Name:      entry.Name,
			Value:     entry.Value,
			Formatted: entry.Formatted,
		})
	}

	if len(rest) > 0 {
		othersValue := Sum(rest)
		rows = append(rows, TopRow{
			Name:      othersLabel,
			Value:     othersValue,
			Formatted: money.Format(othersValue),
			IsOthers:  true,
		})
	}

	return rows
}
