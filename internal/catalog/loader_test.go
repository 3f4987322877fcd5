package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/pitchside/internal/domain"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeed_Valid(t *testing.T) {
	path := writeSeed(t, `{
		"entries": [
			{"id": "rabona", "kind": "skill", "name": "Rabona", "description": "Wrap-around strike.", "cost": 400, "currency": "gp"},
			{"id": "lucky-boots", "kind": "item", "name": "Lucky Boots", "cost": 30, "currency": "fc"},
			{"id": "gegenpress", "kind": "style", "name": "Gegenpress", "cost": 1200, "currency": "gp"}
		]
	}`)

	entries, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "rabona", entries[0].ID)
	assert.Equal(t, domain.KindSkill, entries[0].Kind)
	assert.Equal(t, 400, entries[0].Cost)
	assert.Equal(t, domain.CurrencyGP, entries[0].Currency)
	assert.Equal(t, domain.KindItem, entries[1].Kind)
	assert.Equal(t, domain.CurrencyFC, entries[1].Currency)
	assert.Equal(t, domain.KindStyle, entries[2].Kind)
}

func TestLoadSeed_RejectsNonGPSkill(t *testing.T) {
	path := writeSeed(t, `{
		"entries": [
			{"id": "x", "kind": "skill", "name": "X", "cost": 10, "currency": "fc"}
		]
	}`)

	_, err := LoadSeed(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priced in gp")
}

func TestLoadSeed_RejectsUnknownKind(t *testing.T) {
	path := writeSeed(t, `{
		"entries": [
			{"id": "x", "kind": "potion", "name": "X", "cost": 10, "currency": "gp"}
		]
	}`)

	_, err := LoadSeed(path)
	require.Error(t, err)
}

func TestLoadSeed_RejectsNegativeCost(t *testing.T) {
	path := writeSeed(t, `{
		"entries": [
			{"id": "x", "kind": "skill", "name": "X", "cost": -5, "currency": "gp"}
		]
	}`)

	_, err := LoadSeed(path)
	require.Error(t, err)
}

func TestLoadSeed_RejectsDuplicateIDs(t *testing.T) {
	path := writeSeed(t, `{
		"entries": [
			{"id": "rabona", "kind": "skill", "name": "Rabona", "cost": 400, "currency": "gp"},
			{"id": "rabona", "kind": "skill", "name": "Rabona Again", "cost": 300, "currency": "gp"}
		]
	}`)

	_, err := LoadSeed(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadSeed_RejectsMissingFields(t *testing.T) {
	path := writeSeed(t, `{
		"entries": [
			{"id": "x", "kind": "skill", "cost": 10, "currency": "gp"}
		]
	}`)

	_, err := LoadSeed(path)
	require.Error(t, err)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadSeed_ShippedSeedIsValid(t *testing.T) {
	entries, err := LoadSeed(filepath.Join("..", "..", "configs", "catalog", "catalog.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}
