package catalog_test

import (
	"context"
	"testing"

	"tcg-catalog/feature/catalog"
	"tcg-catalog/feature/catalog/models"
	"tcg-catalog/feature/tcgdex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFromCard(t *testing.T) {
	t.Run("CreatesProduct", func(t *testing.T) {
		svc, db := newTestService(t, baseFixture())

		price := int64(49900)
		product, err := svc.Cards.CreateFromCard(context.Background(), "base1-4", &price)
		require.NoError(t, err)

		assert.Equal(t, "ptcg-card-base1-4", product.Code)
		assert.Equal(t, "Charizard (Base Set 4)", product.Name)
		require.NotNil(t, product.MainTaxonCode)
		assert.Equal(t, "ptcg-set-base1", *product.MainTaxonCode)

		// One variant per configured language (en only here).
		require.Len(t, product.Variants, 1)
		variant := product.Variants[0]
		assert.Equal(t, "ptcg-card-base1-4-en", variant.Code)
		assert.Equal(t, "Charizard (Base Set 4) (EN)", variant.Name)
		require.Len(t, variant.Prices, 1)
		assert.Equal(t, int64(49900), variant.Prices[0].PriceCents)
		assert.Equal(t, "default", variant.Prices[0].ChannelCode)
		require.Len(t, variant.OptionValues, 1)
		assert.Equal(t, "ptcg_lang_en", variant.OptionValues[0].OptionValueCode)

		// Everything was committed, including the taxon chain built on demand.
		var persisted models.Product
		require.NoError(t, db.Where("code = ?", "ptcg-card-base1-4").First(&persisted).Error)
		var setTaxon models.Taxon
		require.NoError(t, db.Where("code = ?", "ptcg-set-base1").First(&setTaxon).Error)
	})

	t.Run("NoPriceMeansNoPricing", func(t *testing.T) {
		svc, _ := newTestService(t, baseFixture())

		product, err := svc.Cards.CreateFromCard(context.Background(), "base1-4", nil)
		require.NoError(t, err)
		require.Len(t, product.Variants, 1)
		assert.Empty(t, product.Variants[0].Prices)
	})

	t.Run("ExistingProductReturnedUnchanged", func(t *testing.T) {
		source := baseFixture()
		svc, db := newTestService(t, source)

		first, err := svc.Cards.CreateFromCard(context.Background(), "base1-4", nil)
		require.NoError(t, err)

		fetchesAfterFirst := source.cardFetches
		second, err := svc.Cards.CreateFromCard(context.Background(), "base1-4", nil)
		require.NoError(t, err)

		assert.Equal(t, first.Code, second.Code)
		// The second call never hit the reference API.
		assert.Equal(t, fetchesAfterFirst, source.cardFetches)

		var count int64
		require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("UnknownCard", func(t *testing.T) {
		svc, _ := newTestService(t, baseFixture())

		_, err := svc.Cards.CreateFromCard(context.Background(), "base1-999", nil)
		assert.ErrorIs(t, err, tcgdex.ErrNotFound)
	})

	t.Run("SharedLanguageOption", func(t *testing.T) {
		source := baseFixture()
		source.cardsByID["base1-5"] = &tcgdex.Card{
			ID: "base1-5", LocalID: "5", Name: "Venusaur",
			Set: &tcgdex.SetSummary{ID: "base1", Name: "Base Set"},
		}
		svc, db := newTestService(t, source)

		_, err := svc.Cards.CreateFromCard(context.Background(), "base1-4", nil)
		require.NoError(t, err)
		_, err = svc.Cards.CreateFromCard(context.Background(), "base1-5", nil)
		require.NoError(t, err)

		// The card language option exists exactly once.
		var count int64
		require.NoError(t, db.Model(&models.Option{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestCreateFromSet(t *testing.T) {
	t.Run("CreatesAndSkips", func(t *testing.T) {
		source := baseFixture()
		svc, _ := newTestService(t, source)

		// Pre-create Charizard, then extend the set with a second card.
		_, err := svc.Cards.CreateFromCard(context.Background(), "base1-4", nil)
		require.NoError(t, err)

		source.setsByID["base1"].Cards = append(source.setsByID["base1"].Cards,
			tcgdex.CardSummary{ID: "base1-58", LocalID: "58", Name: "Pikachu"})
		source.cardsByID["base1-58"] = &tcgdex.Card{
			ID: "base1-58", LocalID: "58", Name: "Pikachu",
			Set: &tcgdex.SetSummary{ID: "base1", Name: "Base Set"},
		}

		report, err := svc.Cards.CreateFromSet(context.Background(), "base1", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Created)
		assert.Equal(t, 1, report.Skipped)
	})

	t.Run("SynthesizesMissingCardID", func(t *testing.T) {
		source := baseFixture()
		// Older datasets list cards without a global ID.
		source.setsByID["base1"].Cards = []tcgdex.CardSummary{{LocalID: "4", Name: "Charizard"}}
		svc, db := newTestService(t, source)

		report, err := svc.Cards.CreateFromSet(context.Background(), "base1", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Created)

		var product models.Product
		require.NoError(t, db.Where("code = ?", "ptcg-card-base1-4").First(&product).Error)
	})

	t.Run("UnresolvableCardSkipped", func(t *testing.T) {
		source := baseFixture()
		source.setsByID["base1"].Cards = append(source.setsByID["base1"].Cards,
			tcgdex.CardSummary{ID: "base1-103", LocalID: "103", Name: "Phantom"})
		// base1-103 has no full card entry: listed but 404 on fetch.
		svc, _ := newTestService(t, source)

		report, err := svc.Cards.CreateFromSet(context.Background(), "base1", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Created)
		assert.Equal(t, 1, report.Skipped)
	})

	t.Run("BatchCommitsPreserveWorkOnLateFailure", func(t *testing.T) {
		source := baseFixture()
		source.setsByID["base1"].Cards = append(source.setsByID["base1"].Cards,
			tcgdex.CardSummary{ID: "base1-58", LocalID: "58", Name: "Pikachu"},
			tcgdex.CardSummary{ID: "base1-102", LocalID: "102", Name: "Water Energy"})
		source.cardsByID["base1-58"] = &tcgdex.Card{
			ID: "base1-58", LocalID: "58", Name: "Pikachu",
			Set: &tcgdex.SetSummary{ID: "base1", Name: "Base Set"},
		}
		source.failCards["base1-102"] = true

		// Batch size 1 commits after every processed card, so the products
		// built before the transport failure must survive the abort.
		svc, db := newTestServiceWithConfig(t, source, catalog.Config{
			RootTaxonCode:   "pokemon-tcg",
			CardLanguages:   "en",
			DefaultChannel:  "default",
			CommitBatchSize: 1,
		})

		report, err := svc.Cards.CreateFromSet(context.Background(), "base1", nil)
		require.ErrorIs(t, err, tcgdex.ErrSourceUnavailable)
		assert.Equal(t, 2, report.Created)

		var count int64
		require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)

		var charizard, pikachu models.Product
		require.NoError(t, db.Where("code = ?", "ptcg-card-base1-4").First(&charizard).Error)
		require.NoError(t, db.Where("code = ?", "ptcg-card-base1-58").First(&pikachu).Error)
	})

	t.Run("TransportErrorAborts", func(t *testing.T) {
		source := baseFixture()
		source.setsByID["base1"].Cards = append(source.setsByID["base1"].Cards,
			tcgdex.CardSummary{ID: "base1-58", LocalID: "58", Name: "Pikachu"})
		source.failCards["base1-58"] = true
		svc, _ := newTestService(t, source)

		_, err := svc.Cards.CreateFromSet(context.Background(), "base1", nil)
		assert.ErrorIs(t, err, tcgdex.ErrSourceUnavailable)
	})

	t.Run("UnknownSet", func(t *testing.T) {
		svc, _ := newTestService(t, baseFixture())

		_, err := svc.Cards.CreateFromSet(context.Background(), "nope", nil)
		assert.ErrorIs(t, err, tcgdex.ErrNotFound)
	})
}
