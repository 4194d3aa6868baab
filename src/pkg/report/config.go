package report

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"budget-report/src/pkg/budget"
	"budget-report/src/pkg/config"
)

type Config struct {
	OutputPath      string            `json:"output_path,omitempty"`
	DatasetPath     string            `json:"dataset_path,omitempty"` // empty: embedded dataset
	PageTitle       string            `json:"page_title,omitempty"`
	Heading         string            `json:"heading,omitempty"`
	Subtitle        string            `json:"subtitle,omitempty"`
	BadgeTotal      string            `json:"badge_total,omitempty"` // displayed as is, never computed
	PdfLink         string            `json:"pdf_link,omitempty"`
	PdfLabel        string            `json:"pdf_label,omitempty"`
	FooterNote      string            `json:"footer_note,omitempty"`
	PlotlyScriptURL string            `json:"plotly_script_url,omitempty"`
	FontURL         string            `json:"font_url,omitempty"`
	TopN            int               `json:"top_n,omitempty"`
	OthersLabel     string            `json:"others_label,omitempty"`
	BranchLabels    map[string]string `json:"branch_labels,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		OutputPath:      "painel_orcamento_final.html",
		DatasetPath:     "",
		PageTitle:       "Painel Orçamentário Itaguara 2026",
		Heading:         "Painel Orçamentário 2026",
		Subtitle:        "Município de Itaguara - MG",
		BadgeTotal:      "R$ 93.500.000,00",
		PdfLink:         "Planejamento das despesas.pdf",
		PdfLabel:        "📄 Baixar Documento Oficial (PDF)",
		FooterNote:      "Gerado automaticamente a partir dos dados oficiais do Planejamento 2026.",
		PlotlyScriptURL: "https://cdn.plot.ly/plotly-latest.min.js",
		FontURL:         "https://fonts.googleapis.com/css2?family=Roboto:wght@300;400;700&display=swap",
		TopN:            10,
		OthersLabel:     budget.OthersLabel,
		BranchLabels: map[string]string{
			"PODER LEGISLATIVO": "Legislativo",
			"PODER EXECUTIVO":   "Executivo",
			"AUTARQUIA - SAAE":  "SAAE",
		},
	}
}

// create config with default values before config gets initialized
var Cfg Config = DefaultValueConfig()

/*
If local Config is provided - use it. Replace all missing values with default ones.

If not provided - just use defaultConfig.
*/
func InitializeConfig(localConfig *Config) {
	if localConfig == nil {
		tl.Log(tl.Info, palette.Purple, "%s config is %s, keeping %s", "report", "not provided", "default report config")
		return
	}

	defaultConfig := DefaultValueConfig()

	Cfg = *localConfig

	tl.ApplyDefaults(&Cfg, defaultConfig, func(field string, defVal any) {
		tl.Log(
			tl.Info, palette.Purple,
			"%s field is %s in %s configuration. Using default value: %v",
			field, "missing", config.GetPackageName(), tl.PrettyForStderr(defVal),
		)
	})

	tl.Log(tl.Info, palette.Green, "%s config was %s, using %s", "report", "provided", "local report config")
	tl.LogJSON(tl.Verbose, palette.CyanDim, fmt.Sprintf("%s configuration", config.GetPackageName()), Cfg)
}
