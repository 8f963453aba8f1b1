package catalog_test

import (
	"context"
	"testing"

	"tcg-catalog/feature/catalog/models"
	"tcg-catalog/feature/tcgdex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportAll(t *testing.T) {
	source := baseFixture()
	svc, db := newTestService(t, source)

	report, err := svc.Taxonomy.ImportAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Series)
	assert.Equal(t, 1, report.Sets)

	// Root taxon
	var root models.Taxon
	require.NoError(t, db.Where("code = ?", "pokemon-tcg").First(&root).Error)
	assert.Nil(t, root.ParentCode)
	assert.Equal(t, "Pokemon TCG", root.Name)

	// Series taxon under root
	var series models.Taxon
	require.NoError(t, db.Where("code = ?", "ptcg-serie-base").First(&series).Error)
	require.NotNil(t, series.ParentCode)
	assert.Equal(t, "pokemon-tcg", *series.ParentCode)

	// Set taxon under series, with card counts in the description
	var set models.Taxon
	require.NoError(t, db.Where("code = ?", "ptcg-set-base1").First(&set).Error)
	require.NotNil(t, set.ParentCode)
	assert.Equal(t, "ptcg-serie-base", *set.ParentCode)
	assert.Equal(t, "Total cards: 102 | Official: 102", set.Description)
}

func TestImportAllIdempotent(t *testing.T) {
	source := baseFixture()
	svc, db := newTestService(t, source)

	_, err := svc.Taxonomy.ImportAll(context.Background())
	require.NoError(t, err)
	_, err = svc.Taxonomy.ImportAll(context.Background())
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Taxon{}).Count(&count).Error)
	assert.Equal(t, int64(3), count) // root + series + set, no duplicates
}

func TestImportAllSkipsUnresolvableSeries(t *testing.T) {
	source := baseFixture()
	// Listed, but the detail endpoint answers 404.
	source.series = append(source.series, tcgdex.SeriesSummary{ID: "ghost", Name: "Ghost"})
	svc, _ := newTestService(t, source)

	report, err := svc.Taxonomy.ImportAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Series)
	assert.Equal(t, 1, report.Sets)
}

func TestImportSeries(t *testing.T) {
	t.Run("Known", func(t *testing.T) {
		svc, _ := newTestService(t, baseFixture())

		report, err := svc.Taxonomy.ImportSeries(context.Background(), "base")
		require.NoError(t, err)
		assert.Equal(t, "Base", report.Name)
		assert.Equal(t, 1, report.Sets)
	})

	t.Run("Unknown", func(t *testing.T) {
		svc, _ := newTestService(t, baseFixture())

		_, err := svc.Taxonomy.ImportSeries(context.Background(), "nonexistent")
		require.Error(t, err)
		assert.ErrorIs(t, err, tcgdex.ErrNotFound)
		assert.Contains(t, err.Error(), "nonexistent")
	})

	t.Run("SourceDown", func(t *testing.T) {
		source := baseFixture()
		source.down = true
		svc, _ := newTestService(t, source)

		_, err := svc.Taxonomy.ImportSeries(context.Background(), "base")
		assert.ErrorIs(t, err, tcgdex.ErrSourceUnavailable)
	})
}

func TestImportSet(t *testing.T) {
	t.Run("CreatesSeriesChain", func(t *testing.T) {
		svc, db := newTestService(t, baseFixture())

		taxon, err := svc.Taxonomy.ImportSet(context.Background(), "base1")
		require.NoError(t, err)
		assert.Equal(t, "ptcg-set-base1", taxon.Code)

		// The series taxon was created even though only the set was asked for.
		var series models.Taxon
		require.NoError(t, db.Where("code = ?", "ptcg-serie-base").First(&series).Error)
	})

	t.Run("SetWithoutSeriesFallsBackToRoot", func(t *testing.T) {
		source := baseFixture()
		source.setsByID["promo"] = &tcgdex.Set{ID: "promo", Name: "Promos"}
		svc, _ := newTestService(t, source)

		taxon, err := svc.Taxonomy.ImportSet(context.Background(), "promo")
		require.NoError(t, err)
		require.NotNil(t, taxon.ParentCode)
		assert.Equal(t, "pokemon-tcg", *taxon.ParentCode)
	})

	t.Run("Unknown", func(t *testing.T) {
		svc, _ := newTestService(t, baseFixture())

		_, err := svc.Taxonomy.ImportSet(context.Background(), "nope")
		assert.ErrorIs(t, err, tcgdex.ErrNotFound)
	})
}
