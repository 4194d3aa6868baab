// Package dataset provides the budget table the report is built from: the
// embedded 2026 table by default, or a CSV/XLSX file with the same columns.
package dataset

import "budget-report/src/pkg/budget"

// defaultEntries is the 2026 expense plan of the municipality of Itaguara - MG.
var defaultEntries = []budget.Entry{
	{Code: "01.000", Name: "PODER LEGISLATIVO", RawValue: "3.200.000,00"},
	{Code: "01.001", Name: "CÂMARA MUNICIPAL", RawValue: "3.200.000,00"},
	{Code: "02.000", Name: "PODER EXECUTIVO", RawValue: "81.813.385,22"},
	{Code: "02.001", Name: "GABINETE DO PREFEITO", RawValue: "710.000,00"},
	{Code: "02.002", Name: "PROCURADORIA GERAL", RawValue: "593.307,69"},
	{Code: "02.012", Name: "FUNDO MUNICIPAL DE SAÚDE", RawValue: "26.295.700,00"},
	{Code: "02.013", Name: "FUNDO MUN. CRIANÇA E ADOLESCENTE", RawValue: "30.000,00"},
	{Code: "02.014", Name: "FUNDO MUN. ASSISTÊNCIA SOCIAL", RawValue: "2.359.608,30"},
	{Code: "02.015", Name: "FUNDO MUNICIPAL DE TURISMO", RawValue: "204.000,00"},
	{Code: "02.017", Name: "FUNDO MUNICIPAL DE CULTURA", RawValue: "2.969.500,00"},
	{Code: "02.018", Name: "FUNDO MUNICIPAL DO IDOSO", RawValue: "35.000,00"},
	{Code: "02.033", Name: "DIVISÃO DE ARRECADAÇÃO", RawValue: "195.000,00"},
	{Code: "02.035", Name: "DIVISÃO DE APOIO OPERACIONAL", RawValue: "8.533.770,37"},
	{Code: "02.041", Name: "DIVISÃO DE OBRAS", RawValue: "10.752.300,30"},
	{Code: "02.042", Name: "DIVISÃO DE LIMPEZA URBANA", RawValue: "732.000,00"},
	{Code: "02.043", Name: "ILUMINAÇÃO PÚBLICA", RawValue: "1.100.500,00"},
	{Code: "02.046", Name: "ESTRADAS DE RODAGEM", RawValue: "1.021.100,00"},
	{Code: "02.048", Name: "DIVISÃO DE AGROPECUÁRIA", RawValue: "265.100,00"},
	{Code: "02.049", Name: "FUNDO MUN. DE MEIO AMBIENTE", RawValue: "220.000,00"},
	{Code: "02.051", Name: "ENSINO FUNDAMENTAL (25%)", RawValue: "14.518.870,38"},
	{Code: "02.053", Name: "ENSINO INFANTIL", RawValue: "8.110.379,62"},
	{Code: "02.054", Name: "ENSINO FUNDAMENTAL (N/ COMP)", RawValue: "1.751.148,56"},
	{Code: "02.072", Name: "FUNDO PATRIMONIO CULTURAL", RawValue: "893.100,00"},
	{Code: "02.091", Name: "DIVISÃO DE ESPORTE", RawValue: "488.000,00"},
	{Code: "02.092", Name: "DIVISÃO DE LAZER E JUVENTUDE", RawValue: "35.000,00"},
	{Code: "03.000", Name: "AUTARQUIA - SAAE", RawValue: "8.486.614,78"},
	{Code: "03.001", Name: "SAAE", RawValue: "8.486.614,78"},
}

/*
Default returns a copy of the embedded table in its original order.
*/
func Default() []budget.Entry {
	entries := make([]budget.Entry, len(defaultEntries))
	copy(entries, defaultEntries)
	return entries
}
