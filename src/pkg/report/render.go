package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"budget-report/src/pkg/chart"
)

// templatesFS embeds the page layout.
//
//go:embed templates/*.html
var templatesFS embed.FS

const pageTemplateName = "painel.html"

/*
cardView is one chart card. Chart is trusted markup produced by chart.RenderDiv;
every other field is escaped by the template.
*/
type cardView struct {
	Kicker  string
	Heading string
	Chart   template.HTML
}

type pageView struct {
	PageTitle       string
	Heading         string
	Subtitle        string
	BadgeTotal      string
	PlotlyScriptURL string
	FontURL         string
	PdfLink         string
	PdfLabel        string
	FooterNote      string
	Cards           []cardView
}

/*
Render produces the full HTML document for report.

The output depends on the report only: no timestamps and no random ids, so
rendering the same report twice yields identical bytes.
*/
func Render(report Report) (htmlText string, e *xerr.Error) {
	page, e := parsePageTemplate()
	if e != nil {
		return "", e
	}

	cards, e := renderCards(report)
	if e != nil {
		return "", e
	}

	cfg := report.Config
	view := pageView{
		PageTitle:       cfg.PageTitle,
		Heading:         cfg.Heading,
		Subtitle:        cfg.Subtitle,
		BadgeTotal:      cfg.BadgeTotal,
		PlotlyScriptURL: cfg.PlotlyScriptURL,
		FontURL:         cfg.FontURL,
		PdfLink:         cfg.PdfLink,
		PdfLabel:        cfg.PdfLabel,
		FooterNote:      cfg.FooterNote,
		Cards:           cards,
	}

	var buffer bytes.Buffer
	executeErr := page.ExecuteTemplate(&buffer, pageTemplateName, view)
	if executeErr != nil {
		e = xerr.NewError(executeErr, "execute page template", pageTemplateName)
		return "", e
	}

	tl.Log(tl.Info1, palette.Green, "Rendered page with '%d' charts", len(cards))
	return buffer.String(), nil
}

func parsePageTemplate() (page *template.Template, e *xerr.Error) {
	page, parseErr := template.ParseFS(templatesFS, "templates/"+pageTemplateName)
	if parseErr != nil {
		e = xerr.NewError(parseErr, "parse page template", pageTemplateName)
		return nil, e
	}
	return page, nil
}

func renderCards(report Report) (cards []cardView, e *xerr.Error) {
	specs := []struct {
		kicker  string
		heading string
		pie     chart.Pie
	}{
		{"Visão Geral", "1. Distribuição por Poder", report.Charts.Branch},
		{"Áreas Funcionais", "2. Onde o dinheiro será investido?", report.Charts.Category},
		{"Detalhamento", fmt.Sprintf("3. As %d Maiores Unidades (Secretarias/Fundos)", report.TopN), report.Charts.TopUnits},
	}

	cards = make([]cardView, 0, len(specs))
	for _, spec := range specs {
		fragment, renderErr := chart.RenderDiv(spec.pie)
		if renderErr != nil {
			return nil, renderErr
		}
		cards = append(cards, cardView{Kicker: spec.kicker, Heading: spec.heading, Chart: fragment})
	}

	return cards, nil
}
