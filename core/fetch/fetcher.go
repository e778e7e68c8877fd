// Package fetch implements the Fetcher interface for the three providers.
// It performs HTTP GET requests with browser-like headers; everything
// beyond retrieving raw bytes belongs to the parsers.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/core"
)

const defaultTimeout = 30 * time.Second

// HTTPFetcher fetches provider documents via HTTP.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// New creates an HTTPFetcher with a sensible timeout.
func New(userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: userAgent,
	}
}

// Fetch retrieves the raw body of the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9,en;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// UGCFilmsURL builds the films listing endpoint URL.
func UGCFilmsURL(endpoint string, page int, cinemaID string) string {
	q := url.Values{}
	q.Set("filter", "")
	q.Set("page", strconv.Itoa(page))
	q.Set("cinemaId", cinemaID)
	q.Set("reset", "true")
	return endpoint + "?" + q.Encode()
}

// UGCDaysURL builds the day-navigation endpoint URL for one film.
func UGCDaysURL(endpoint, filmID, day string, regionID int) string {
	q := url.Values{}
	q.Set("reloadShowingsTopic", "reloadShowings")
	q.Set("dayForm", "dayFormDesktop")
	q.Set("filmId", filmID)
	q.Set("day", day)
	q.Set("regionId", strconv.Itoa(regionID))
	q.Set("defaultRegionId", strconv.Itoa(regionID))
	return endpoint + "?" + q.Encode()
}

// UGCShowingsURL builds the showings endpoint URL for one film and date.
func UGCShowingsURL(endpoint, filmID, day string, regionID int) string {
	q := url.Values{}
	q.Set("filmId", filmID)
	q.Set("day", day)
	q.Set("regionId", strconv.Itoa(regionID))
	q.Set("defaultRegionId", strconv.Itoa(regionID))
	return endpoint + "?" + q.Encode()
}

// DulacDayURL builds the per-date showtimes page URL.
func DulacDayURL(base, date string) string {
	return base + "/portail/seances/" + date
}
