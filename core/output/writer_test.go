package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := New(filepath.Join(dir, "out"))
	require.NoError(t, err)

	path, err := w.Write("combined showtimes", []byte("data"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "combined_showtimes.json"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "semainier_christine", sanitize("semainier_christine"))
	assert.Equal(t, "caf__du_cin_ma", sanitize("café du cinéma"))
}
