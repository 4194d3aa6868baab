package budget

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	CategoryHealth         = "Saúde"
	CategoryEducation      = "Educação"
	CategoryInfrastructure = "Infraestrutura e Obras"
	CategorySanitation     = "Saneamento (SAAE)"
	CategoryLegislative    = "Legislativo"
	CategorySocial         = "Assistência Social"
	CategoryCulture        = "Cultura e Turismo"
	CategoryAdministration = "Administração Geral"
	CategoryOther          = "Outros"
)

/*
Rule assigns Label to any name containing at least one of Keywords.

Keywords are upper-case substrings; they are not whole-word matches.
*/
type Rule struct {
	Label    string
	Keywords []string
}

// Matches reports whether the upper-cased name contains any keyword of the rule.
func (r Rule) Matches(upperName string) bool {
	for _, keyword := range r.Keywords {
		if strings.Contains(upperName, keyword) {
			return true
		}
	}
	return false
}

/*
Rules is evaluated top to bottom and the first match wins, so the order is part
of the classification: "FUNDO MUNICIPAL DE SAÚDE E OBRAS" is Saúde, not Obras.
*/
var Rules = []Rule{
	{Label: CategoryHealth, Keywords: []string{"SAÚDE"}},
	{Label: CategoryEducation, Keywords: []string{"ENSINO", "EDUCAÇÃO"}},
	{Label: CategoryInfrastructure, Keywords: []string{"OBRAS", "INFRAESTRUTURA", "LIMPEZA", "ILUMINAÇÃO", "ESTRADAS"}},
	{Label: CategorySanitation, Keywords: []string{"SAAE"}},
	{Label: CategoryLegislative, Keywords: []string{"LEGISLATIVO", "CÂMARA"}},
	{Label: CategorySocial, Keywords: []string{"SOCIAL", "CRIANÇA", "IDOSO"}},
	{Label: CategoryCulture, Keywords: []string{"CULTURA", "PATRIMONIO", "TURISMO"}},
	{Label: CategoryAdministration, Keywords: []string{"APOIO OPERACIONAL", "ARRECADAÇÃO", "GABINETE", "PROCURADORIA"}},
}

/*
Categories lists every label Categorize can return, in rule order with the
fallback last.
*/
func Categories() []string {
	labels := make([]string, 0, len(Rules)+1)
	for _, rule := range Rules {
		labels = append(labels, rule.Label)
	}
	return append(labels, CategoryOther)
}

/*
Categorize maps a unit name to its functional category.

The name is NFC-normalized and upper-cased with Portuguese casing rules before
matching, so "fundo municipal de saúde" and a decomposed "SAÚDE" both land
in Saúde.
*/
func Categorize(name string) string {
	upperName := upperPortuguese(name)

	for _, rule := range Rules {
		if rule.Matches(upperName) {
			return rule.Label
		}
	}

	return CategoryOther
}

func upperPortuguese(name string) string {
	// cases.Caser is stateful, one per call
	caser := cases.Upper(language.BrazilianPortuguese)
	return caser.String(norm.NFC.String(name))
}
