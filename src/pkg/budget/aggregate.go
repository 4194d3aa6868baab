package budget

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"budget-report/src/pkg/money"
)

const (
	detailLineBreak = "<br>"
	tooltipRule     = "────────────────────────────────"
)

/*
CategorizedEntry is a child entry with the category it was assigned.
*/
type CategorizedEntry struct {
	NormalizedEntry
	Category string `json:"category"`
}

/*
CategoryAggregate is one functional area with the sum of its members.

DetailHTML lists every member on its own line; TooltipHTML wraps it with the
formatted total and a "DETALHAMENTO" header, ready to be shown on hover.
*/
type CategoryAggregate struct {
	Category       string            `json:"category"`
	Total          decimal.Decimal   `json:"total"`
	FormattedTotal string            `json:"formatted_total"`
	Members        []NormalizedEntry `json:"members"`
	DetailHTML     string            `json:"detail_html"`
	TooltipHTML    string            `json:"tooltip_html"`
}

/*
CategorizeAll assigns a category to every child, keeping order.
*/
func CategorizeAll(children []NormalizedEntry) []CategorizedEntry {
	categorized := make([]CategorizedEntry, 0, len(children))
	for _, child := range children {
		categorized = append(categorized, CategorizedEntry{
			NormalizedEntry: child,
			Category:        Categorize(child.Name),
		})
	}
	return categorized
}

/*
Aggregate groups children by category and sums their values.

Members stay in dataset order. Groups are ordered by total, largest first;
groups with equal totals keep the order in which their category first appeared.
*/
func Aggregate(children []NormalizedEntry) []CategoryAggregate {
	aggregates := make([]CategoryAggregate, 0)
	indexByCategory := make(map[string]int)

	for _, child := range CategorizeAll(children) {
		index, exists := indexByCategory[child.Category]
		if !exists {
			index = len(aggregates)
			indexByCategory[child.Category] = index
			aggregates = append(aggregates, CategoryAggregate{
				Category: child.Category,
				Total:    decimal.Zero,
				Members:  make([]NormalizedEntry, 0),
			})
		}

		aggregates[index].Total = aggregates[index].Total.Add(child.Value)
		aggregates[index].Members = append(aggregates[index].Members, child.NormalizedEntry)
	}

	for index := range aggregates {
		aggregate := &aggregates[index]
		aggregate.FormattedTotal = money.Format(aggregate.Total)
		aggregate.DetailHTML = DetailHTML(aggregate.Members)
		aggregate.TooltipHTML = TooltipHTML(aggregate.FormattedTotal, aggregate.DetailHTML)
	}

	sort.SliceStable(aggregates, func(firstIndex int, secondIndex int) bool {
		return aggregates[firstIndex].Total.GreaterThan(aggregates[secondIndex].Total)
	})

	return aggregates
}

/*
DetailLine renders one member as "• NAME (CODE): R$ value" with tooltip styling.
Name and code are escaped since the line ends up as raw markup.
*/
func DetailLine(entry NormalizedEntry) string {
	return fmt.Sprintf(
		"<span style='font-size:12px; color:#ddd;'>• %s (%s):</span> <b style='color:#fff;'>%s</b>",
		html.EscapeString(entry.Name), html.EscapeString(entry.Code), html.EscapeString(entry.Formatted),
	)
}

// DetailHTML joins the detail line of every member with line breaks.
func DetailHTML(members []NormalizedEntry) string {
	lines := make([]string, 0, len(members))
	for _, member := range members {
		lines = append(lines, DetailLine(member))
	}
	return strings.Join(lines, detailLineBreak)
}

/*
TooltipHTML composes the hover block of a category: total, separator,
"DETALHAMENTO:" label and the member lines.
*/
func TooltipHTML(formattedTotal string, detailHTML string) string {
	var builder strings.Builder
	builder.WriteString("Total da Área: <b>" + html.EscapeString(formattedTotal) + "</b>" + detailLineBreak)
	builder.WriteString(detailLineBreak + tooltipRule + detailLineBreak)
	builder.WriteString("<b>DETALHAMENTO:</b>" + detailLineBreak)
	builder.WriteString(detailHTML)
	return builder.String()
}
