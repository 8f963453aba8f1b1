package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"tcg-catalog/core/database"
	"tcg-catalog/feature/catalog"
	"tcg-catalog/feature/tcgdex"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeSource is an in-memory Source. Entities missing from the maps behave
// like a remote 404 (nil, nil); IDs in failCards and the down flag simulate
// an unreachable reference API.
type fakeSource struct {
	series     []tcgdex.SeriesSummary
	seriesByID map[string]*tcgdex.Series
	setsByID   map[string]*tcgdex.Set
	cardsByID  map[string]*tcgdex.Card
	failCards  map[string]bool
	down       bool

	cardFetches int
}

func (f *fakeSource) ListSeries(ctx context.Context) ([]tcgdex.SeriesSummary, error) {
	if f.down {
		return nil, fmt.Errorf("%w: GET /series", tcgdex.ErrSourceUnavailable)
	}
	return f.series, nil
}

func (f *fakeSource) GetSeries(ctx context.Context, seriesID string) (*tcgdex.Series, error) {
	if f.down {
		return nil, fmt.Errorf("%w: GET /series/%s", tcgdex.ErrSourceUnavailable, seriesID)
	}
	return f.seriesByID[seriesID], nil
}

func (f *fakeSource) GetSet(ctx context.Context, setID string) (*tcgdex.Set, error) {
	if f.down {
		return nil, fmt.Errorf("%w: GET /sets/%s", tcgdex.ErrSourceUnavailable, setID)
	}
	return f.setsByID[setID], nil
}

func (f *fakeSource) GetCard(ctx context.Context, cardID string) (*tcgdex.Card, error) {
	f.cardFetches++
	if f.down || f.failCards[cardID] {
		return nil, fmt.Errorf("%w: GET /cards/%s", tcgdex.ErrSourceUnavailable, cardID)
	}
	return f.cardsByID[cardID], nil
}

// baseFixture returns a source with one series ("base"), one set ("base1",
// "Base Set") and one card (Charizard, base1-4).
func baseFixture() *fakeSource {
	charizard := &tcgdex.Card{
		ID:          "base1-4",
		LocalID:     "4",
		Name:        "Charizard",
		Rarity:      "Rare Holo",
		Illustrator: "Mitsuhiro Arita",
		Category:    "Pokemon",
		HP:          120,
		Types:       []string{"Fire"},
		Stage:       "Stage2",
		Set: &tcgdex.SetSummary{
			ID:                "base1",
			Name:              "Base Set",
			CardCountTotal:    102,
			CardCountOfficial: 102,
		},
	}

	baseSet := &tcgdex.Set{
		ID:                "base1",
		Name:              "Base Set",
		CardCountTotal:    102,
		CardCountOfficial: 102,
		Series:            &tcgdex.SeriesSummary{ID: "base", Name: "Base"},
		Cards: []tcgdex.CardSummary{
			{ID: "base1-4", LocalID: "4", Name: "Charizard"},
		},
	}

	return &fakeSource{
		series: []tcgdex.SeriesSummary{{ID: "base", Name: "Base"}},
		seriesByID: map[string]*tcgdex.Series{
			"base": {
				ID:   "base",
				Name: "Base",
				Sets: []tcgdex.Set{{ID: "base1", Name: "Base Set", CardCountTotal: 102, CardCountOfficial: 102}},
			},
		},
		setsByID:  map[string]*tcgdex.Set{"base1": baseSet},
		cardsByID: map[string]*tcgdex.Card{"base1-4": charizard},
		failCards: map[string]bool{},
	}
}

// newTestService wires a Service against an in-memory database.
func newTestService(t *testing.T, source catalog.Source) (*catalog.Service, *gorm.DB) {
	t.Helper()

	return newTestServiceWithConfig(t, source, catalog.Config{
		RootTaxonCode:   "pokemon-tcg",
		CardLanguages:   "en",
		DefaultChannel:  "default",
		CommitBatchSize: 50,
	})
}

func newTestServiceWithConfig(t *testing.T, source catalog.Source, cfg catalog.Config) (*catalog.Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, catalog.Migrate(db))
	require.NoError(t, catalog.EnsureChannel(context.Background(), db, "default", "Web Store"))

	return catalog.NewService(source, catalog.NewStore(db), nil, zap.NewNop(), cfg), db
}
