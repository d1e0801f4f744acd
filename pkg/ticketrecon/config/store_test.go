package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

func TestDealerConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dealers.json")
	cfg := &models.DealerConfig{
		MasterDealerCode: "999999",
		Aliases:          map[string]string{"030520": "111111"},
	}

	require.NoError(t, SaveDealerConfig(path, cfg))

	loaded, err := LoadDealerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadDealerConfigNormalizesNilAliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dealers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"master_dealer_code":"999999"}`), 0644))

	cfg, err := LoadDealerConfig(path)
	require.NoError(t, err)
	assert.NotNil(t, cfg.Aliases)
}

func TestLoadDealerConfigErrors(t *testing.T) {
	_, err := LoadDealerConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
	_, err = LoadDealerConfig(path)
	assert.Error(t, err)
}

func TestLoadGames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	doc := `[{"id":"g1","name":"Super Fortune A","short_code":"SFA","weekday":"Tuesday"}]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	games, err := LoadGames(path)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "SFA", games[0].ShortCode)
}

func TestLoadV1Rows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v1.json")
	doc := `[{"dealer_code":"030520","from":1000050,"to":1000059}]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	rows, err := LoadV1Rows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1000059), rows[0].To)
}
