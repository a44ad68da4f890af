package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads the JSON configuration file at path and unmarshals it
// into a [StructuredConfig]. The JSON document mirrors the config struct
// layout; json tags on the nested structs are derived from the field names
// automatically (encoding/json matches field names case-insensitively).
func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading JSON config file: %w", err)
	}

	cfg := &StructuredConfig{}
	if err = json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("error parsing JSON config file: %w", err)
	}

	return cfg, nil
}
