package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget-report/src/pkg/budget"
	"budget-report/src/pkg/dataset"
)

func buildDefault(t *testing.T) Report {
	t.Helper()
	report, e := Build(dataset.Default(), DefaultValueConfig())
	require.Nil(t, e)
	return report
}

func TestBuild(t *testing.T) {
	report := buildDefault(t)

	assert.Len(t, report.Entries, 27)
	assert.Len(t, report.Parents, 3)
	assert.Len(t, report.Children, 24)
	assert.Len(t, report.Aggregates, 9)
	assert.Len(t, report.Top, 11)
	assert.Equal(t, 10, report.TopN)

	branch := report.Charts.Branch
	assert.Equal(t, BranchChartID, branch.ID)
	require.Len(t, branch.Slices, 3)
	assert.Equal(t, "Legislativo", branch.Slices[0].Label)
	assert.Equal(t, "Executivo", branch.Slices[1].Label)
	assert.Equal(t, "SAAE", branch.Slices[2].Label)
	assert.Equal(t, "R$ 81.813.385,22", branch.Slices[1].Annotation)
	assert.Equal(t, 81813385.22, branch.Slices[1].Value)

	category := report.Charts.Category
	require.Len(t, category.Slices, 9)
	assert.Equal(t, budget.CategoryHealth, category.Slices[0].Label)
	assert.True(t, strings.HasPrefix(category.Slices[0].Annotation, "Total da Área: <b>R$ 26.295.700,00</b>"))
	assert.Equal(t, report.Aggregates[0].TooltipHTML, category.Slices[0].Annotation)

	top := report.Charts.TopUnits
	require.Len(t, top.Slices, 11)
	assert.Equal(t, budget.OthersLabel, top.Slices[10].Label)
	assert.Equal(t, "R$ 6.522.107,69", top.Slices[10].Annotation)
}

func TestBuildClampsTopN(t *testing.T) {
	cfg := DefaultValueConfig()
	cfg.TopN = -4
	report, e := Build(dataset.Default(), cfg)
	require.Nil(t, e)
	assert.Equal(t, 1, report.TopN)
	assert.Len(t, report.Top, 2)
}

func TestBuildMalformedValue(t *testing.T) {
	entries := dataset.Default()
	entries[3].RawValue = "710 mil"

	_, e := Build(entries, DefaultValueConfig())
	assert.NotNil(t, e)
}

func TestBranchLabel(t *testing.T) {
	labels := DefaultValueConfig().BranchLabels
	assert.Equal(t, "Executivo", BranchLabel("PODER EXECUTIVO", labels))
	assert.Equal(t, "CONSÓRCIO INTERMUNICIPAL", BranchLabel("CONSÓRCIO INTERMUNICIPAL", labels))
	assert.Equal(t, "PODER EXECUTIVO", BranchLabel("PODER EXECUTIVO", nil))
}

func TestReconcileDefaultBadge(t *testing.T) {
	report := buildDefault(t)
	reconciliation := report.Reconciliation

	assert.True(t, reconciliation.BadgeParsed)
	assert.True(t, decimal.NewFromInt(93500000).Equal(reconciliation.Badge))
	assert.True(t, reconciliation.ParentsTotal.Equal(reconciliation.ChildrenTotal))
	assert.True(t, reconciliation.MatchesParents)
	assert.True(t, reconciliation.MatchesChildren)
	assert.True(t, reconciliation.Consistent())
}

func TestReconcileMismatchAndUnparsedBadge(t *testing.T) {
	report := buildDefault(t)

	mismatch := Reconcile("R$ 90.000.000,00", report.Parents, report.Children)
	assert.True(t, mismatch.BadgeParsed)
	assert.False(t, mismatch.MatchesParents)
	assert.False(t, mismatch.Consistent())

	unparsed := Reconcile("noventa milhões", report.Parents, report.Children)
	assert.False(t, unparsed.BadgeParsed)
	assert.False(t, unparsed.Consistent())

	bare := Reconcile("93.500.000,00", report.Parents, report.Children)
	assert.True(t, bare.Consistent())
}

func TestRender(t *testing.T) {
	htmlText, e := Render(buildDefault(t))
	require.Nil(t, e)

	assert.True(t, strings.HasPrefix(htmlText, "<!DOCTYPE html>"))
	assert.Contains(t, htmlText, `<html lang="pt-BR">`)
	assert.Contains(t, htmlText, "<title>Painel Orçamentário Itaguara 2026</title>")
	assert.Contains(t, htmlText, `<script src="https://cdn.plot.ly/plotly-latest.min.js"></script>`)
	assert.Contains(t, htmlText, `<div class="badge">Total: R$ 93.500.000,00</div>`)
	assert.Contains(t, htmlText, "<h2>1. Distribuição por Poder</h2>")
	assert.Contains(t, htmlText, "<h2>2. Onde o dinheiro será investido?</h2>")
	assert.Contains(t, htmlText, "<h2>3. As 10 Maiores Unidades (Secretarias/Fundos)</h2>")
	assert.Contains(t, htmlText, `href="Planejamento%20das%20despesas.pdf"`)
	assert.Contains(t, htmlText, "Gerado automaticamente a partir dos dados oficiais do Planejamento 2026.")

	for _, id := range []string{BranchChartID, CategoryChartID, TopUnitsChartID} {
		assert.Equal(t, 1, strings.Count(htmlText, `<div id="`+id+`"`), id)
	}
	assert.NotContains(t, htmlText, "{{")
}

func TestRenderEscapesConfiguredText(t *testing.T) {
	report := buildDefault(t)
	report.Config.Subtitle = "<b>Itaguara</b>"

	htmlText, e := Render(report)
	require.Nil(t, e)
	assert.Contains(t, htmlText, "<p>&lt;b&gt;Itaguara&lt;/b&gt;</p>")
}

func TestRenderIsIdempotent(t *testing.T) {
	first, e := Render(buildDefault(t))
	require.Nil(t, e)
	second, e := Render(buildDefault(t))
	require.Nil(t, e)
	assert.Equal(t, first, second)
}

func TestGenerateWritesIdenticalFiles(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultValueConfig()
	cfg.OutputPath = filepath.Join(dir, "first", "painel_orcamento_final.html")
	firstPath, e := Generate(dataset.Default(), cfg)
	require.Nil(t, e)
	assert.Equal(t, cfg.OutputPath, firstPath)

	cfg.OutputPath = filepath.Join(dir, "second.html")
	secondPath, e := Generate(dataset.Default(), cfg)
	require.Nil(t, e)

	firstBytes, err := os.ReadFile(firstPath)
	require.NoError(t, err)
	secondBytes, err := os.ReadFile(secondPath)
	require.NoError(t, err)
	assert.Equal(t, firstBytes, secondBytes)
}

func TestGenerateOverwritesExistingFile(t *testing.T) {
	cfg := DefaultValueConfig()
	cfg.OutputPath = filepath.Join(t.TempDir(), "painel.html")
	require.NoError(t, os.WriteFile(cfg.OutputPath, []byte("old content"), 0o644))

	_, e := Generate(dataset.Default(), cfg)
	require.Nil(t, e)

	written, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.NotContains(t, string(written), "old content")
}

func TestGenerateMalformedValueLeavesPriorFile(t *testing.T) {
	cfg := DefaultValueConfig()
	cfg.OutputPath = filepath.Join(t.TempDir(), "painel.html")
	require.NoError(t, os.WriteFile(cfg.OutputPath, []byte("previous report"), 0o644))

	entries := dataset.Default()
	entries[0].RawValue = "3.200.000,00 reais"

	_, e := Generate(entries, cfg)
	assert.NotNil(t, e)

	written, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "previous report", string(written))
}

func TestWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file, not a directory"), 0o644))
	path := filepath.Join(blocker, "painel.html")

	err := writeFile(path, "<html></html>")
	var writeErr *FileWriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, path, writeErr.Path)
	assert.Error(t, writeErr.Unwrap())

	assert.NotNil(t, Write(path, "<html></html>"))

	emptyErr := writeFile("", "<html></html>")
	assert.True(t, errors.As(emptyErr, &writeErr))
}

func TestInitializeConfigFillsDefaults(t *testing.T) {
	previous := Cfg
	t.Cleanup(func() { Cfg = previous })

	InitializeConfig(&Config{TopN: 5, OutputPath: "./tmp/painel.html"})
	assert.Equal(t, 5, Cfg.TopN)
	assert.Equal(t, "./tmp/painel.html", Cfg.OutputPath)
	assert.Equal(t, DefaultValueConfig().BadgeTotal, Cfg.BadgeTotal)

	Cfg = previous
	InitializeConfig(nil)
	assert.Equal(t, previous, Cfg)
}
