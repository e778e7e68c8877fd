// Package cmd: fetch command.
// Downloads the raw provider documents the combine step consumes. Parsing
// here is limited to what the providers force on us at fetch time: UGC and
// Dulac answer with HTML that must be reduced to their export shapes
// before anything can be persisted; Paris Cinema Club PDFs are stored as
// raw bytes (text extraction is a separate concern).
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/config"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/fetch"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/output"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/sources/dulac"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/sources/ugc"
)

var (
	flagFetchUGC   bool
	flagFetchDulac bool
	flagFetchPCC   bool
	flagFetchDir   string
	flagDays       int
	flagMaxFilms   int
	flagRegionID   int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download raw source documents for a later combine run",
	Long: `Fetch downloads the raw listings from the selected providers into a
directory. With no provider flag, every provider is fetched.

Examples:
  showtimes fetch --output_dir ./raw
  showtimes fetch --dulac --days 7
  showtimes fetch --ugc --max-films 10`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().BoolVar(&flagFetchUGC, "ugc", false, "Fetch UGC listings")
	fetchCmd.Flags().BoolVar(&flagFetchDulac, "dulac", false, "Fetch Dulac showtimes")
	fetchCmd.Flags().BoolVar(&flagFetchPCC, "pcc", false, "Fetch Paris Cinema Club weekly PDFs")
	fetchCmd.Flags().StringVar(&flagFetchDir, "output_dir", "", "Directory for raw documents (default: current directory)")
	fetchCmd.Flags().IntVar(&flagDays, "days", 7, "Number of days of Dulac showtimes to fetch")
	fetchCmd.Flags().IntVar(&flagMaxFilms, "max-films", 5, "Maximum UGC films to resolve dates for")
	fetchCmd.Flags().IntVar(&flagRegionID, "region", 1, "UGC region id (1 = Paris)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	// No provider flag means all of them.
	if !flagFetchUGC && !flagFetchDulac && !flagFetchPCC {
		flagFetchUGC, flagFetchDulac, flagFetchPCC = true, true, true
	}

	cfg := config.FromEnv()
	if flagFetchDir == "" {
		flagFetchDir = cfg.OutputDir
	}
	writer, err := output.New(flagFetchDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	fetcher := fetch.New(cfg.UserAgent)
	ctx := cmd.Context()

	if flagFetchUGC {
		if err := fetchUGC(ctx, cfg, fetcher, writer); err != nil {
			log.Error().Err(err).Msg("UGC fetch failed")
		}
	}
	if flagFetchDulac {
		if err := fetchDulac(ctx, cfg, fetcher, writer); err != nil {
			log.Error().Err(err).Msg("Dulac fetch failed")
		}
	}
	if flagFetchPCC {
		if err := fetchPCC(ctx, cfg, fetcher, writer); err != nil {
			log.Error().Err(err).Msg("Paris Cinema Club fetch failed")
		}
	}
	return nil
}

// fetchUGC downloads the films listing, then resolves available dates and
// per-cinema counts for the first films. Cinema counts are taken from the
// first available date only, to keep the request volume polite.
func fetchUGC(ctx context.Context, cfg config.Config, fetcher *fetch.HTTPFetcher, writer *output.Writer) error {
	res, err := fetcher.Fetch(ctx, fetch.UGCFilmsURL(cfg.UGCFilmsEndpoint, 30010, ""))
	if err != nil {
		return fmt.Errorf("films listing: %w", err)
	}

	page, err := ugc.ParseFilmsPage(string(res.Body))
	if err != nil {
		return fmt.Errorf("parsing films listing: %w", err)
	}
	log.Info().Int("films", page.TotalFilms).Msg("UGC films listing parsed")

	if data, err := json.MarshalIndent(page, "", "  "); err == nil {
		if path, err := writer.Write("ugc_films_parsed", data, ".json"); err == nil {
			log.Info().Str("path", path).Msg("wrote UGC films")
		}
	}

	export := ugc.Export{Films: make(map[string]ugc.FilmDates)}
	films := page.AllFilms()
	if flagMaxFilms > 0 && len(films) > flagMaxFilms {
		films = films[:flagMaxFilms]
	}

	today := time.Now().Format("2006-01-02")
	for _, film := range films {
		if film.FilmID == "" {
			log.Debug().Str("title", film.Title).Msg("skipping film without id")
			continue
		}
		time.Sleep(cfg.FetchDelay)

		daysRes, err := fetcher.Fetch(ctx, fetch.UGCDaysURL(cfg.UGCDaysEndpoint, film.FilmID, today, flagRegionID))
		if err != nil {
			log.Warn().Err(err).Str("film", film.Title).Msg("fetching days")
			continue
		}
		dates, err := ugc.ParseDaysPage(string(daysRes.Body))
		if err != nil || len(dates) == 0 {
			log.Debug().Str("film", film.Title).Msg("no available dates")
			continue
		}

		fd := ugc.FilmDates{FilmID: film.FilmID, Title: film.Title, AvailableDates: dates}

		time.Sleep(cfg.FetchDelay)
		showRes, err := fetcher.Fetch(ctx, fetch.UGCShowingsURL(cfg.UGCShowingsEndpoint, film.FilmID, dates[0], flagRegionID))
		if err == nil {
			if counts, _, err := ugc.ParseShowingsPage(string(showRes.Body)); err == nil {
				fd.Cinemas = counts
			}
		}

		export.Films[film.FilmID] = fd
		log.Info().Str("film", film.Title).Int("dates", len(dates)).Int("cinemas", len(fd.Cinemas)).Msg("resolved film dates")
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding UGC export: %w", err)
	}
	path, err := writer.Write("ugc_film_dates", data, ".json")
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("wrote UGC film dates")
	return nil
}

// fetchDulac fetches the per-day pages for the coming days and persists
// the assembled export.
func fetchDulac(ctx context.Context, cfg config.Config, fetcher *fetch.HTTPFetcher, writer *output.Writer) error {
	export := dulac.Export{Dates: make(map[string]dulac.Day)}

	today := time.Now()
	for i := 0; i < flagDays; i++ {
		date := today.AddDate(0, 0, i).Format("2006-01-02")

		res, err := fetcher.Fetch(ctx, fetch.DulacDayURL(cfg.DulacBaseURL, date))
		if err != nil {
			log.Warn().Err(err).Str("date", date).Msg("fetching Dulac day")
			continue
		}
		day, err := dulac.ParseDayPage(string(res.Body), date)
		if err != nil {
			log.Warn().Err(err).Str("date", date).Msg("parsing Dulac day")
			continue
		}
		export.Dates[date] = day
		log.Info().Str("date", date).Int("cinemas", len(day.Cinemas)).Msg("fetched Dulac day")

		time.Sleep(cfg.FetchDelay)
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding Dulac export: %w", err)
	}
	path, err := writer.Write("dulac_showtimes", data, ".json")
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("wrote Dulac showtimes")
	return nil
}

// fetchPCC downloads the two weekly program PDFs as raw bytes.
func fetchPCC(ctx context.Context, cfg config.Config, fetcher *fetch.HTTPFetcher, writer *output.Writer) error {
	programs := []struct {
		name string
		url  string
	}{
		{"semainier_christine", cfg.PCCChristineURL},
		{"semainier_ecoles", cfg.PCCEcolesURL},
	}
	for _, p := range programs {
		res, err := fetcher.Fetch(ctx, p.url)
		if err != nil {
			log.Warn().Err(err).Str("program", p.name).Msg("fetching weekly PDF")
			continue
		}
		path, err := writer.Write(p.name, res.Body, ".pdf")
		if err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("wrote weekly PDF")

		time.Sleep(cfg.FetchDelay)
	}
	return nil
}
