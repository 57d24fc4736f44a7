package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// It is kept separate so the JSON field names can evolve independently of
// the env/flag mapping.
type StructuredJSONConfig struct {
	Crypto struct {
		Secret string `json:"secret"`
	} `json:"crypto,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Crypto: Crypto{
			Secret: jsonCfg.Crypto.Secret,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
