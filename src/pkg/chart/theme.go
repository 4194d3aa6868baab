package chart

// Qualitative palettes matching the Plotly "Pastel" and "Set2" color sets.
var (
	PastelColors = []string{
		"rgb(102, 197, 204)", "rgb(246, 207, 113)", "rgb(248, 156, 116)", "rgb(220, 176, 242)",
		"rgb(135, 197, 95)", "rgb(158, 185, 243)", "rgb(254, 136, 177)", "rgb(201, 219, 116)",
		"rgb(139, 224, 164)", "rgb(180, 151, 231)", "rgb(179, 179, 179)",
	}
	Set2Colors = []string{
		"rgb(102,194,165)", "rgb(252,141,98)", "rgb(141,160,203)", "rgb(231,138,195)",
		"rgb(166,216,84)", "rgb(255,217,47)", "rgb(229,196,148)", "rgb(179,179,179)",
	}
)

// hover shown for charts annotated with a formatted value
const valueHoverTemplate = "<b>%{label}</b><br>Valor: %{customdata}<br>Percentual: %{percent:.1%}<extra></extra>"

/*
Theme is the visual style of a donut chart.
*/
type Theme struct {
	Colors        []string `json:"colors"`
	LineColor     string   `json:"line_color"`
	LineWidth     int      `json:"line_width"`
	Hole          float64  `json:"hole"`
	TextInfo      string   `json:"text_info"`
	TextPosition  string   `json:"text_position"`
	HoverTemplate string   `json:"hover_template"`
}

// BranchTheme styles the distribution by branch of government.
func BranchTheme() Theme {
	return Theme{
		Colors:        []string{"#3498db", "#e74c3c", "#2ecc71"},
		LineColor:     "#fff",
		LineWidth:     3,
		Hole:          0.6,
		TextInfo:      "percent",
		TextPosition:  "inside",
		HoverTemplate: valueHoverTemplate,
	}
}

// CategoryTheme styles the functional areas chart; the annotation is a full HTML tooltip.
func CategoryTheme() Theme {
	return Theme{
		Colors:        PastelColors,
		LineColor:     "#fff",
		LineWidth:     2,
		Hole:          0.6,
		TextInfo:      "percent+label",
		TextPosition:  "outside",
		HoverTemplate: "<span style='font-size:16px;'><b>%{label}</b></span><br>%{customdata}<extra></extra>",
	}
}

// TopUnitsTheme styles the largest spending units chart.
func TopUnitsTheme() Theme {
	return Theme{
		Colors:        Set2Colors,
		LineColor:     "#fff",
		LineWidth:     2,
		Hole:          0.6,
		TextInfo:      "percent",
		TextPosition:  "inside",
		HoverTemplate: valueHoverTemplate,
	}
}
