// Package config holds runtime configuration loaded from env.
package config

import (
	"os"
	"time"
)

// Config carries provider endpoints and fetch behavior. Every field has a
// working default; env vars override.
type Config struct {
	UGCFilmsEndpoint    string
	UGCDaysEndpoint     string
	UGCShowingsEndpoint string
	DulacBaseURL        string
	PCCChristineURL     string
	PCCEcolesURL        string
	UserAgent           string
	OutputDir           string
	FetchDelay          time.Duration
}

func FromEnv() Config {
	return Config{
		UGCFilmsEndpoint:    getEnv("UGC_FILMS_ENDPOINT", "https://www.ugc.fr/filmsAjaxAction!getFilmsAndFilters.action"),
		UGCDaysEndpoint:     getEnv("UGC_DAYS_ENDPOINT", "https://www.ugc.fr/showingsFilmAjaxAction!getDaysByFilm.action"),
		UGCShowingsEndpoint: getEnv("UGC_SHOWINGS_ENDPOINT", "https://www.ugc.fr/showingsFilmAjaxAction!getShowingsByFilm.action"),
		DulacBaseURL:        getEnv("DULAC_BASE_URL", "https://dulaccinemas.com"),
		PCCChristineURL:     getEnv("PCC_CHRISTINE_PDF_URL", "https://pariscinemaclub.com/semainier_christine.pdf"),
		PCCEcolesURL:        getEnv("PCC_ECOLES_PDF_URL", "https://pariscinemaclub.com/semainier_ecoles.pdf"),
		UserAgent:           getEnv("FETCH_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
		OutputDir:           getEnv("OUTPUT_DIR", ""),
		FetchDelay:          getDuration("FETCH_DELAY", time.Second),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
