package config_test

import (
	"testing"

	"tcg-catalog/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "mysql", cfg.Database.Driver)
		assert.Equal(t, "catalog-media", cfg.Storage.Bucket)
		assert.Equal(t, "https://api.tcgdex.net/v2", cfg.TCGdex.BaseURL)
		assert.Equal(t, "en", cfg.TCGdex.Language)
		assert.Equal(t, "pokemon-tcg", cfg.Catalog.RootTaxonCode)
		assert.Equal(t, 50, cfg.Catalog.CommitBatchSize)
	})

	t.Run("EnvironmentOverride", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9999")
		t.Setenv("TCGDEX_LANGUAGE", "fr")
		t.Setenv("CATALOG_CARD_LANGUAGES", "en,fr,ja")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "9999", cfg.Server.Port)
		assert.Equal(t, "fr", cfg.TCGdex.Language)
		assert.Equal(t, []string{"en", "fr", "ja"}, cfg.Catalog.Languages())
	})
}
