// Package render provides output renderers for the canonical dataset.
// This file implements the JSON renderer: the metadata envelope plus the
// record list, indented for inspection.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/core"
)

// JSONRenderer produces the list-of-records document format.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render serializes the dataset. An empty showtime list serializes as [],
// never as a missing field.
func (r *JSONRenderer) Render(ds *core.Dataset) ([]byte, error) {
	for i := range ds.Records {
		if ds.Records[i].Showtimes == nil {
			ds.Records[i].Showtimes = []string{}
		}
	}
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling dataset: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
