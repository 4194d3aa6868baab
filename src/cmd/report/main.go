package main

import (
	"flag"
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"budget-report/src/pkg/config"
	"budget-report/src/pkg/dataset"
	"budget-report/src/pkg/report"
)

/*
main is the CLI entry point.

Example:

	go run ./src/cmd/report -o ./tmp/painel_orcamento_final.html
	go run ./src/cmd/report -data ./despesas.xlsx
*/
func main() {
	config.CheckIfEnvVarsPresent()
	// common flags
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")
	// program's custom flags
	dataPath := flag.String("data", "", "CSV or XLSX budget table (default: embedded 2026 dataset)")
	outputPath := flag.String("o", "", "Output HTML path (default: ./painel_orcamento_final.html)")
	// parse and init config
	flag.Parse()
	config.InitializeConfig(*configPath)

	var localConfig *report.Config
	_, sectionErr := config.Section("report", &localConfig)
	sectionErr.QuitIf(xerr.ErrorTypeError)
	report.InitializeConfig(localConfig)

	cfg := report.Cfg
	if *dataPath != "" {
		cfg.DatasetPath = *dataPath
	}
	if *outputPath != "" {
		cfg.OutputPath = *outputPath
	}

	tl.Log(tl.Notice, palette.BlueBold, "%s budget panel. Config path: '%s'", "Generating", *configPath)

	entries, loadErr := dataset.Load(cfg.DatasetPath)
	loadErr.QuitIf(xerr.ErrorTypeError)

	writtenPath, generateErr := report.Generate(entries, cfg)
	generateErr.QuitIf(xerr.ErrorTypeError)

	fmt.Printf("Arquivo gerado: %s\n", writtenPath)
}
