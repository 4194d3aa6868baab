package report

import (
	"strings"

	"github.com/shopspring/decimal"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"budget-report/src/pkg/budget"
	"budget-report/src/pkg/money"
)

/*
Reconciliation compares the configured badge total against the dataset.

The badge is displayed verbatim either way; this only reports whether it agrees
with the sum of the parents (branch totals) and with the sum of the children
(spending units).
*/
type Reconciliation struct {
	BadgeText       string          `json:"badge_text"`
	BadgeParsed     bool            `json:"badge_parsed"`
	Badge           decimal.Decimal `json:"badge"`
	ParentsTotal    decimal.Decimal `json:"parents_total"`
	ChildrenTotal   decimal.Decimal `json:"children_total"`
	MatchesParents  bool            `json:"matches_parents"`
	MatchesChildren bool            `json:"matches_children"`
}

// Consistent reports whether the badge, parents and children all agree.
func (r Reconciliation) Consistent() bool {
	return r.BadgeParsed && r.MatchesParents && r.MatchesChildren
}

/*
Reconcile sums parents and children and checks them against badgeText
("R$ 93.500.000,00" or "93.500.000,00"). Disagreement is logged, never fixed.
*/
func Reconcile(badgeText string, parents []budget.NormalizedEntry, children []budget.NormalizedEntry) (reconciliation Reconciliation) {
	reconciliation = Reconciliation{
		BadgeText:     badgeText,
		ParentsTotal:  budget.Sum(parents),
		ChildrenTotal: budget.Sum(children),
	}

	badgeNumber := strings.TrimPrefix(strings.TrimSpace(badgeText), strings.TrimSpace(money.CurrencyPrefix))
	badge, parseErr := money.Parse(badgeNumber)
	if parseErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Badge total '%s' is not a currency value, skipping reconciliation", badgeText)
		return reconciliation
	}

	reconciliation.BadgeParsed = true
	reconciliation.Badge = badge
	reconciliation.MatchesParents = badge.Equal(reconciliation.ParentsTotal)
	reconciliation.MatchesChildren = badge.Equal(reconciliation.ChildrenTotal)

	if !reconciliation.MatchesParents || !reconciliation.MatchesChildren {
		tl.Log(
			tl.Warning, palette.PurpleBright, "Badge total '%s' differs from dataset: parents '%s', children '%s'",
			badgeText, money.Format(reconciliation.ParentsTotal), money.Format(reconciliation.ChildrenTotal),
		)
		return reconciliation
	}

	tl.Log(tl.Info1, palette.Green, "Badge total '%s' matches parents and children", badgeText)
	return reconciliation
}
