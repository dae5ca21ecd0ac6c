package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Batch is a pre-fetched catalog export: the artist the recordings belong to
// plus the ordered recording list.
type Batch struct {
	ArtistName string      `json:"artist_name"`
	ArtistID   string      `json:"artist_id,omitempty"`
	Recordings []Recording `json:"recordings"`
}

// LoadFile reads a catalog export from a JSON file. Both the Batch envelope
// and a bare recording array are accepted; the shape is decided by the
// leading token, so an envelope with zero recordings is a valid empty batch.
func LoadFile(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var recordings []Recording
		if err := json.Unmarshal(trimmed, &recordings); err != nil {
			return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
		}
		return &Batch{Recordings: recordings}, nil
	}

	var batch Batch
	if err := json.Unmarshal(trimmed, &batch); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	return &batch, nil
}
