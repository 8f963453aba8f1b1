package catalog

import (
	"context"

	"tcg-catalog/feature/tcgdex"

	"go.uber.org/zap"
)

// Source is the slice of the reference API the synchronizers need. The
// tcgdex.Client satisfies it; tests substitute an in-memory fake.
type Source interface {
	// ListSeries returns all series summaries (without sets).
	ListSeries(ctx context.Context) ([]tcgdex.SeriesSummary, error)
	// GetSeries returns a series with its sets, or nil when absent.
	GetSeries(ctx context.Context, seriesID string) (*tcgdex.Series, error)
	// GetSet returns a set with its card list, or nil when absent.
	GetSet(ctx context.Context, setID string) (*tcgdex.Set, error)
	// GetCard returns a full card, or nil when absent.
	GetCard(ctx context.Context, cardID string) (*tcgdex.Card, error)
}

// Service bundles the catalog synchronizers behind a single entry point for
// the HTTP handler and the CLI commands.
type Service struct {
	Taxonomy *Taxonomy
	Cards    *Cards
	Sealed   *Sealed

	logger *zap.Logger
}

// NewService wires the synchronizers. images may be nil when illustration
// mirroring is disabled.
func NewService(source Source, store Store, images *ImageMirror, logger *zap.Logger, cfg Config) *Service {
	taxonomy := NewTaxonomy(source, store, logger, cfg.RootTaxonCode)
	cards := NewCards(source, taxonomy, store, images, logger, cfg)
	sealed := NewSealed(taxonomy, store, logger, cfg.RootTaxonCode)

	return &Service{
		Taxonomy: taxonomy,
		Cards:    cards,
		Sealed:   sealed,
		logger:   logger,
	}
}
