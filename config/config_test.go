package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	assert.Contains(t, cfg.UGCFilmsEndpoint, "ugc.fr")
	assert.Contains(t, cfg.DulacBaseURL, "dulaccinemas.com")
	assert.NotEmpty(t, cfg.UserAgent)
	assert.Equal(t, time.Second, cfg.FetchDelay)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DULAC_BASE_URL", "http://localhost:8080")
	t.Setenv("FETCH_DELAY", "250ms")
	t.Setenv("OUTPUT_DIR", "/tmp/out")

	cfg := FromEnv()
	assert.Equal(t, "http://localhost:8080", cfg.DulacBaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.FetchDelay)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
}

func TestFromEnvBadDurationFallsBack(t *testing.T) {
	t.Setenv("FETCH_DELAY", "not-a-duration")
	cfg := FromEnv()
	assert.Equal(t, time.Second, cfg.FetchDelay)
}
