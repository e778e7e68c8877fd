// Package cmd: combine command.
// Orchestrates the core pipeline: per-source parse → normalize → merge →
// render → write. Every input is optional; a missing or broken source
// degrades its contribution to zero records and never aborts the run.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/config"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/merge"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/normalize"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/output"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/render"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/sources/dulac"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/sources/pccclub"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/sources/ugc"
)

var (
	flagUGCFile      string
	flagDulacFile    string
	flagPCCChristine string
	flagPCCEcoles    string
	flagRunDate      string
	flagJSON         bool
	flagCSV          bool
	flagPDF          bool
	flagMarkdown     bool
	flagOutputDir    string
	flagOutName      string
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine raw source documents into the normalized schedule",
	Long: `Combine reads previously fetched source documents, normalizes each into
canonical records, merges them into one deduplicated schedule, and renders
it to the selected output format.

Examples:
  showtimes combine --ugc ugc_film_dates.json --dulac dulac_showtimes.json --json
  showtimes combine --pcc-christine christine.txt --pcc-ecoles ecoles.txt --run-date 2025-07-30 --csv
  showtimes combine --dulac dulac_showtimes.json --pdf --output_dir ./out`,
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.Flags().StringVar(&flagUGCFile, "ugc", "", "UGC film-dates JSON document")
	combineCmd.Flags().StringVar(&flagDulacFile, "dulac", "", "Dulac showtimes JSON export")
	combineCmd.Flags().StringVar(&flagPCCChristine, "pcc-christine", "", "Paris Cinema Club Christine program text")
	combineCmd.Flags().StringVar(&flagPCCEcoles, "pcc-ecoles", "", "Paris Cinema Club Écoles program text")
	combineCmd.Flags().StringVar(&flagRunDate, "run-date", "", "Run date (YYYY-MM-DD) anchoring program day markers (default: today)")

	combineCmd.Flags().BoolVar(&flagJSON, "json", false, "Output JSON")
	combineCmd.Flags().BoolVar(&flagCSV, "csv", false, "Output CSV")
	combineCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a printable PDF program")
	combineCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown tables")

	combineCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	combineCmd.Flags().StringVar(&flagOutName, "name", "combined_showtimes", "Output artifact name")
}

func runCombine(cmd *cobra.Command, args []string) error {
	if flagUGCFile == "" && flagDulacFile == "" && flagPCCChristine == "" && flagPCCEcoles == "" {
		return fmt.Errorf("at least one source input is required: --ugc, --dulac, --pcc-christine, --pcc-ecoles")
	}

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	clock, err := runClock()
	if err != nil {
		return err
	}

	cfg := config.FromEnv()
	if flagOutputDir == "" {
		flagOutputDir = cfg.OutputDir
	}

	var records []core.CanonicalRecord
	var sources []string

	if flagUGCFile != "" {
		recs := loadUGC(flagUGCFile)
		records = append(records, recs...)
		sources = append(sources, ugc.SourceName)
		log.Info().Int("records", len(recs)).Str("file", flagUGCFile).Msg("parsed UGC source")
	}

	if flagDulacFile != "" {
		recs := loadDulac(flagDulacFile)
		records = append(records, recs...)
		sources = append(sources, dulac.SourceName)
		log.Info().Int("records", len(recs)).Str("file", flagDulacFile).Msg("parsed Dulac source")
	}

	if flagPCCChristine != "" || flagPCCEcoles != "" {
		recs := loadParisCinemaClub(clock)
		records = append(records, recs...)
		sources = append(sources, pccclub.SourceName)
		log.Info().Int("records", len(recs)).Msg("parsed Paris Cinema Club source")
	}

	merged := merge.Merge(records)
	ds := core.NewDataset(merged, sources, clock())
	if ds.Empty() {
		log.Warn().Msg("empty dataset: no source contributed any record")
	}

	data, err := renderer.Render(ds)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(flagOutName, data, renderer.Extension())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "✓ Written: %s (%d records)\n", path, len(merged))
	return nil
}

// loadUGC reads and normalizes the UGC export; any failure degrades this
// source's contribution to zero records.
func loadUGC(path string) []core.CanonicalRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("reading UGC input")
		return nil
	}
	export, err := ugc.DecodeExport(data)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("parsing UGC input")
		return nil
	}
	return normalize.FromUGC(export)
}

func loadDulac(path string) []core.CanonicalRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("reading Dulac input")
		return nil
	}
	export, err := dulac.DecodeExport(data)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("parsing Dulac input")
		return nil
	}
	return normalize.FromDulac(export)
}

// loadParisCinemaClub parses one program text per hall and folds both into
// canonical records.
func loadParisCinemaClub(clock core.Clock) []core.CanonicalRecord {
	parser := pccclub.NewParser(clock)

	var blocks []core.DateBlock
	programs := []struct {
		hall string
		path string
	}{
		{pccclub.Halls[0], flagPCCChristine},
		{pccclub.Halls[1], flagPCCEcoles},
	}
	for _, p := range programs {
		if p.path == "" {
			continue
		}
		text, err := os.ReadFile(p.path)
		if err != nil {
			log.Error().Err(err).Str("file", p.path).Msg("reading program text")
			continue
		}
		blocks = append(blocks, parser.ParseFor(p.hall, string(text))...)
	}

	return normalize.FromDateBlocks(blocks)
}

// runClock returns the clock anchoring program day markers: the --run-date
// flag pinned to a fixed date, or the wall clock.
func runClock() (core.Clock, error) {
	if flagRunDate == "" {
		return time.Now, nil
	}
	t, err := time.Parse("2006-01-02", flagRunDate)
	if err != nil {
		return nil, fmt.Errorf("invalid --run-date %q (want YYYY-MM-DD)", flagRunDate)
	}
	return func() time.Time { return t }, nil
}

// selectRenderer checks that exactly one output format is chosen and
// returns its renderer.
func selectRenderer() (core.Renderer, error) {
	count := 0
	for _, f := range []bool{flagJSON, flagCSV, flagPDF, flagMarkdown} {
		if f {
			count++
		}
	}
	if count == 0 {
		return nil, fmt.Errorf("exactly one output format is required: --json, --csv, --pdf, or --markdown")
	}
	if count > 1 {
		return nil, fmt.Errorf("only one output format allowed per run (got %d)", count)
	}

	switch {
	case flagJSON:
		return render.NewJSONRenderer(), nil
	case flagCSV:
		return render.NewCSVRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return render.NewMarkdownRenderer(), nil
	}
}
