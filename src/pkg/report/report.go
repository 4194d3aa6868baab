/*
Budget panel report: turns a budget table into three donut charts embedded in
a single static HTML page.
*/
package report

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"budget-report/src/pkg/budget"
	"budget-report/src/pkg/chart"
	"budget-report/src/pkg/util"
)

const maxTopN = 50

// DOM ids of the three charts, fixed so that renders are reproducible.
const (
	BranchChartID   = "chart-branch"
	CategoryChartID = "chart-category"
	TopUnitsChartID = "chart-top-units"
)

/*
Charts holds the three chart specifications of the panel.
*/
type Charts struct {
	Branch   chart.Pie `json:"branch"`
	Category chart.Pie `json:"category"`
	TopUnits chart.Pie `json:"top_units"`
}

/*
Report is everything derived from one budget table. It is rebuilt from scratch
on every run and never mutated afterwards.
*/
type Report struct {
	Config         Config                     `json:"-"`
	Entries        []budget.NormalizedEntry   `json:"entries"`
	Parents        []budget.NormalizedEntry   `json:"parents"`
	Children       []budget.NormalizedEntry   `json:"children"`
	Aggregates     []budget.CategoryAggregate `json:"aggregates"`
	Top            []budget.TopRow            `json:"top"`
	TopN           int                        `json:"top_n"`
	Reconciliation Reconciliation             `json:"reconciliation"`
	Charts         Charts                     `json:"charts"`
}

/*
Build runs the whole transformation: normalize, split into parents and
children, categorize and aggregate the children, rank the top units and lay
out the three charts.

A malformed value aborts the build before anything is written.
*/
func Build(entries []budget.Entry, cfg Config) (report Report, e *xerr.Error) {
	tl.Log(tl.Notice, palette.BlueBold, "%s budget report from '%d' entries", "Building", len(entries))

	normalized, normalizeErr := budget.Normalize(entries)
	if normalizeErr != nil {
		e = xerr.NewError(normalizeErr, "normalize budget values", "dataset")
		return report, e
	}

	parents, children := budget.Split(normalized)
	tl.Log(tl.Info1, palette.Cyan, "Split dataset into '%d' parents and '%d' children", len(parents), len(children))

	aggregates := budget.Aggregate(children)
	topN := util.Clamp(cfg.TopN, 1, maxTopN)
	top := budget.SelectTop(children, topN, cfg.OthersLabel)

	report = Report{
		Config:         cfg,
		Entries:        normalized,
		Parents:        parents,
		Children:       children,
		Aggregates:     aggregates,
		Top:            top,
		TopN:           topN,
		Reconciliation: Reconcile(cfg.BadgeTotal, parents, children),
		Charts: Charts{
			Branch:   BranchChart(parents, cfg.BranchLabels),
			Category: CategoryChart(aggregates),
			TopUnits: TopUnitsChart(top),
		},
	}

	for _, aggregate := range aggregates {
		tl.Log(tl.Verbose, palette.CyanDim, "Category '%s': '%s' across '%d' units", aggregate.Category, aggregate.FormattedTotal, len(aggregate.Members))
	}
	tl.LogJSON(tl.Debug, palette.CyanDim, "Top units", top)
	tl.Log(tl.Info1, palette.Green, "Built report with '%d' categories and '%d' top rows", len(aggregates), len(top))

	return report, nil
}

/*
BranchLabel renames a parent (branch of government) for display. Names missing
from labels are returned unchanged.
*/
func BranchLabel(name string, labels map[string]string) string {
	label, exists := labels[name]
	if exists {
		return label
	}
	return name
}

// BranchChart is the distribution of the budget by branch of government.
func BranchChart(parents []budget.NormalizedEntry, labels map[string]string) chart.Pie {
	slices := make([]chart.Slice, 0, len(parents))
	for _, parent := range parents {
		slices = append(slices, chart.Slice{
			Label:      BranchLabel(parent.Name, labels),
			Value:      parent.Value.InexactFloat64(),
			Annotation: parent.Formatted,
		})
	}
	return chart.Pie{ID: BranchChartID, Slices: slices, Theme: chart.BranchTheme()}
}

// CategoryChart is the distribution by functional area, hover shows every member.
func CategoryChart(aggregates []budget.CategoryAggregate) chart.Pie {
	slices := make([]chart.Slice, 0, len(aggregates))
	for _, aggregate := range aggregates {
		slices = append(slices, chart.Slice{
			Label:      aggregate.Category,
			Value:      aggregate.Total.InexactFloat64(),
			Annotation: aggregate.TooltipHTML,
		})
	}
	return chart.Pie{ID: CategoryChartID, Slices: slices, Theme: chart.CategoryTheme()}
}

// TopUnitsChart shows the largest spending units plus the folded remainder.
func TopUnitsChart(top []budget.TopRow) chart.Pie {
	slices := make([]chart.Slice, 0, len(top))
	for _, row := range top {
		slices = append(slices, chart.Slice{
			Label:      row.Name,
			Value:      row.Value.InexactFloat64(),
			Annotation: row.Formatted,
		})
	}
	return chart.Pie{ID: TopUnitsChartID, Slices: slices, Theme: chart.TopUnitsTheme()}
}

/*
Generate builds, renders and writes the report for entries, returning the path
written to.
*/
func Generate(entries []budget.Entry, cfg Config) (outputPath string, e *xerr.Error) {
	report, e := Build(entries, cfg)
	if e != nil {
		return "", e
	}

	htmlText, e := Render(report)
	if e != nil {
		return "", e
	}

	e = Write(cfg.OutputPath, htmlText)
	if e != nil {
		return "", e
	}

	tl.Log(tl.Info1, palette.Green, "Saved report to '%s' (%s)", cfg.OutputPath, fmt.Sprintf("%d bytes", len(htmlText)))
	return cfg.OutputPath, nil
}
