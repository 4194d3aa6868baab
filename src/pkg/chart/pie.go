/*
Donut chart rendering for the budget panel.

The report hands over (label, value, annotation) triples; this package turns
them into a Plotly figure and an embeddable div + script fragment. The Plotly
library itself is loaded by the page.
*/
package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

const chartHeight = 320

/*
Slice is one sector of a pie. Annotation is shown on hover and may carry markup.
*/
type Slice struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Annotation string  `json:"annotation"`
}

/*
Pie is a chart specification. ID becomes the DOM id of the rendered div and must
be unique within a page.
*/
type Pie struct {
	ID     string  `json:"id"`
	Slices []Slice `json:"slices"`
	Theme  Theme   `json:"theme"`
}

// Total sums the slice values.
func (p Pie) Total() float64 {
	total := 0.0
	for _, slice := range p.Slices {
		total += slice.Value
	}
	return total
}

// Share returns the fraction of the total held by slice index, 0 for an empty chart.
func (p Pie) Share(index int) float64 {
	total := p.Total()
	if total == 0 || index < 0 || index >= len(p.Slices) {
		return 0
	}
	return p.Slices[index].Value / total
}

type plotlyMarkerLine struct {
	Color string `json:"color"`
	Width int    `json:"width"`
}

type plotlyMarker struct {
	Colors []string         `json:"colors"`
	Line   plotlyMarkerLine `json:"line"`
}

type plotlyTrace struct {
	Type          string       `json:"type"`
	Labels        []string     `json:"labels"`
	Values        []float64    `json:"values"`
	CustomData    []string     `json:"customdata"`
	Hole          float64      `json:"hole"`
	Marker        plotlyMarker `json:"marker"`
	TextInfo      string       `json:"textinfo"`
	TextPosition  string       `json:"textposition"`
	HoverTemplate string       `json:"hovertemplate"`
	Sort          bool         `json:"sort"`
}

type plotlyMargin struct {
	T int `json:"t"`
	B int `json:"b"`
	L int `json:"l"`
	R int `json:"r"`
}

type plotlyFont struct {
	Family string `json:"family"`
	Size   int    `json:"size"`
	Color  string `json:"color"`
}

type plotlyLegend struct {
	ItemClick       bool    `json:"itemclick"`
	ItemDoubleClick bool    `json:"itemdoubleclick"`
	Orientation     string  `json:"orientation"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	XAnchor         string  `json:"xanchor"`
	YAnchor         string  `json:"yanchor"`
}

type plotlyLayout struct {
	Margin       plotlyMargin `json:"margin"`
	Height       int          `json:"height"`
	Font         plotlyFont   `json:"font"`
	PaperBGColor string       `json:"paper_bgcolor"`
	PlotBGColor  string       `json:"plot_bgcolor"`
	ShowLegend   bool         `json:"showlegend"`
	Legend       plotlyLegend `json:"legend"`
}

type plotlyConfig struct {
	Responsive  bool `json:"responsive"`
	DisplayLogo bool `json:"displaylogo"`
}

/*
Figure is the Plotly payload of a pie: traces, layout and config.
*/
type Figure struct {
	Data   []plotlyTrace `json:"data"`
	Layout plotlyLayout  `json:"layout"`
	Config plotlyConfig  `json:"config"`
}

// baseLayout is shared by every chart on the panel.
func baseLayout() plotlyLayout {
	return plotlyLayout{
		Margin:       plotlyMargin{T: 0, B: 0, L: 0, R: 0},
		Height:       chartHeight,
		Font:         plotlyFont{Family: "Segoe UI, sans-serif", Size: 13, Color: "#444"},
		PaperBGColor: "rgba(0,0,0,0)",
		PlotBGColor:  "rgba(0,0,0,0)",
		ShowLegend:   true,
		Legend: plotlyLegend{
			ItemClick:       false,
			ItemDoubleClick: false,
			Orientation:     "v",
			X:               1.05,
			Y:               0.5,
			XAnchor:         "left",
			YAnchor:         "middle",
		},
	}
}

/*
BuildFigure converts a Pie into its Plotly figure.

Slices are kept in the given order (Plotly's own sorting is disabled).
*/
func BuildFigure(pie Pie) Figure {
	labels := make([]string, 0, len(pie.Slices))
	values := make([]float64, 0, len(pie.Slices))
	customData := make([]string, 0, len(pie.Slices))
	for _, slice := range pie.Slices {
		labels = append(labels, slice.Label)
		values = append(values, slice.Value)
		customData = append(customData, slice.Annotation)
	}

	trace := plotlyTrace{
		Type:       "pie",
		Labels:     labels,
		Values:     values,
		CustomData: customData,
		Hole:       pie.Theme.Hole,
		Marker: plotlyMarker{
			Colors: pie.Theme.Colors,
			Line:   plotlyMarkerLine{Color: pie.Theme.LineColor, Width: pie.Theme.LineWidth},
		},
		TextInfo:      pie.Theme.TextInfo,
		TextPosition:  pie.Theme.TextPosition,
		HoverTemplate: pie.Theme.HoverTemplate,
		Sort:          false,
	}

	return Figure{
		Data:   []plotlyTrace{trace},
		Layout: baseLayout(),
		Config: plotlyConfig{Responsive: true, DisplayLogo: false},
	}
}

/*
RenderDiv returns the markup embedding pie in a page: a sized div and the
script drawing into it.

JSON is encoded with HTML escaping on, so annotations containing markup
cannot close the script element.
*/
func RenderDiv(pie Pie) (fragment template.HTML, e *xerr.Error) {
	if strings.TrimSpace(pie.ID) == "" {
		err := fmt.Errorf("chart id is empty")
		e = xerr.NewError(err, "render chart", "pie.ID")
		return fragment, e
	}

	figure := BuildFigure(pie)

	var payload bytes.Buffer
	encoder := json.NewEncoder(&payload)
	encoder.SetEscapeHTML(true)
	encodeErr := encoder.Encode(figure)
	if encodeErr != nil {
		e = xerr.NewError(encodeErr, "encode chart figure to JSON", pie.ID)
		return fragment, e
	}

	idJSON, _ := json.Marshal(pie.ID)

	var buffer bytes.Buffer
	buffer.WriteString(`<div id="` + template.HTMLEscapeString(pie.ID) + `" class="plotly-graph-div" style="height:` + fmt.Sprintf("%d", chartHeight) + `px; width:100%;"></div>`)
	buffer.WriteString(`<script type="text/javascript">`)
	buffer.WriteString(`(function(){var figure = ` + strings.TrimSpace(payload.String()) + `;`)
	buffer.WriteString(`if (window.Plotly) { Plotly.newPlot(` + string(idJSON) + `, figure.data, figure.layout, figure.config); }})();`)
	buffer.WriteString(`</script>`)

	tl.Log(tl.Verbose, palette.CyanDim, "Rendered chart '%s' with '%d' slices", pie.ID, len(pie.Slices))

	return template.HTML(buffer.String()), nil
}
