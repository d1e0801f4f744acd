// Package config loads dealer and game master data from JSON
// documents. Stores are read once per run; the loaded values are
// passed explicitly through the processing pipeline.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

// LoadDealerConfig reads the dealer master document. A missing alias
// map is normalized to an empty one.
func LoadDealerConfig(path string) (*models.DealerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dealer config %s: %w", path, err)
	}
	var cfg models.DealerConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse dealer config %s: %w", path, err)
	}
	if cfg.Aliases == nil {
		cfg.Aliases = make(map[string]string)
	}
	return &cfg, nil
}

// SaveDealerConfig writes the dealer master document.
func SaveDealerConfig(path string, cfg *models.DealerConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadGames reads the game master list.
func LoadGames(path string) ([]models.GameDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read games %s: %w", path, err)
	}
	var games []models.GameDef
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("failed to parse games %s: %w", path, err)
	}
	return games, nil
}

// LoadV1Rows reads a previously-reported range list used for
// exclusion.
func LoadV1Rows(path string) ([]models.V1Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read v1 rows %s: %w", path, err)
	}
	var rows []models.V1Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse v1 rows %s: %w", path, err)
	}
	return rows, nil
}
