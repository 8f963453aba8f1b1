package catalog

import (
	"context"
	"fmt"

	"tcg-catalog/core/utils"
	"tcg-catalog/feature/catalog/models"
	"tcg-catalog/feature/tcgdex"

	"go.uber.org/zap"
)

// TaxonomyReport counts the taxons touched by a full taxonomy import.
type TaxonomyReport struct {
	Series int `json:"series"`
	Sets   int `json:"sets"`
}

// SeriesReport describes a single-series import.
type SeriesReport struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
}

// Taxonomy reconciles the series/set hierarchy of the reference dataset into
// the local taxonomy tree. Taxons are created once and found thereafter by
// deterministic code; re-running any import is a no-op for existing codes.
type Taxonomy struct {
	source   Source
	store    Store
	logger   *zap.Logger
	rootCode string
}

// NewTaxonomy creates a taxonomy synchronizer.
func NewTaxonomy(source Source, store Store, logger *zap.Logger, rootTaxonCode string) *Taxonomy {
	return &Taxonomy{
		source:   source,
		store:    store,
		logger:   logger,
		rootCode: rootTaxonCode,
	}
}

// EnsureRoot looks up or creates the single root taxon.
func (t *Taxonomy) EnsureRoot(ctx context.Context) (*models.Taxon, error) {
	existing, err := t.store.FindTaxonByCode(ctx, t.rootCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	root := &models.Taxon{
		Code:        t.rootCode,
		Name:        "Pokemon TCG",
		Slug:        utils.Slugify("Pokemon TCG"),
		Description: "Pokemon Trading Card Game products",
	}
	t.store.StageTaxon(root)

	return root, nil
}

// EnsureSeries looks up or creates the taxon for a series under the root.
func (t *Taxonomy) EnsureSeries(ctx context.Context, root *models.Taxon, seriesID, seriesName string) (*models.Taxon, error) {
	code := SeriesTaxonCode(seriesID)

	existing, err := t.store.FindTaxonByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	parent := root.Code
	taxon := &models.Taxon{
		Code:       code,
		Name:       seriesName,
		Slug:       utils.Slugify(seriesName),
		ParentCode: &parent,
	}
	t.store.StageTaxon(taxon)

	return taxon, nil
}

// EnsureSet looks up or creates the taxon for a set under its series taxon.
func (t *Taxonomy) EnsureSet(ctx context.Context, series *models.Taxon, set tcgdex.Set) (*models.Taxon, error) {
	code := SetTaxonCode(set.ID)

	existing, err := t.store.FindTaxonByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	parent := series.Code
	taxon := &models.Taxon{
		Code:       code,
		Name:       set.Name,
		Slug:       utils.Slugify(set.Name),
		ParentCode: &parent,
	}
	if set.CardCountTotal > 0 || set.CardCountOfficial > 0 {
		taxon.Description = fmt.Sprintf("Total cards: %d | Official: %d", set.CardCountTotal, set.CardCountOfficial)
	}
	t.store.StageTaxon(taxon)

	return taxon, nil
}

// FindSetTaxon returns the taxon for a set ID without creating anything.
func (t *Taxonomy) FindSetTaxon(ctx context.Context, setID string) (*models.Taxon, error) {
	return t.store.FindTaxonByCode(ctx, SetTaxonCode(setID))
}

// ImportAll ensures a taxon for every series and every set of the reference
// dataset. Series are processed in listing order; a series' sets are handled
// before the next series. Commits once at the end.
func (t *Taxonomy) ImportAll(ctx context.Context) (*TaxonomyReport, error) {
	root, err := t.EnsureRoot(ctx)
	if err != nil {
		return nil, err
	}

	allSeries, err := t.source.ListSeries(ctx)
	if err != nil {
		return nil, err
	}

	report := &TaxonomyReport{}
	for _, summary := range allSeries {
		seriesTaxon, err := t.EnsureSeries(ctx, root, summary.ID, summary.Name)
		if err != nil {
			return nil, err
		}
		report.Series++

		full, err := t.source.GetSeries(ctx, summary.ID)
		if err != nil {
			return nil, err
		}
		if full == nil {
			// Listed but no longer resolvable; skip its sets.
			continue
		}

		for _, set := range full.Sets {
			if _, err := t.EnsureSet(ctx, seriesTaxon, set); err != nil {
				return nil, err
			}
			report.Sets++
		}
	}

	if err := t.store.Commit(ctx); err != nil {
		return nil, err
	}

	t.logger.Info("Taxonomy import completed",
		zap.Int("series", report.Series),
		zap.Int("sets", report.Sets))

	return report, nil
}

// ImportSeries ensures the taxon for one series and all of its sets.
func (t *Taxonomy) ImportSeries(ctx context.Context, seriesID string) (*SeriesReport, error) {
	root, err := t.EnsureRoot(ctx)
	if err != nil {
		return nil, err
	}

	full, err := t.source.GetSeries(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	if full == nil {
		return nil, fmt.Errorf("series %q: %w", seriesID, tcgdex.ErrNotFound)
	}

	seriesTaxon, err := t.EnsureSeries(ctx, root, full.ID, full.Name)
	if err != nil {
		return nil, err
	}

	report := &SeriesReport{Name: full.Name}
	for _, set := range full.Sets {
		if _, err := t.EnsureSet(ctx, seriesTaxon, set); err != nil {
			return nil, err
		}
		report.Sets++
	}

	if err := t.store.Commit(ctx); err != nil {
		return nil, err
	}

	t.logger.Info("Series import completed",
		zap.String("series", full.Name),
		zap.Int("sets", report.Sets))

	return report, nil
}

// ImportSet ensures the taxon for one set, resolving its series taxon first
// so the parent always exists before the child.
func (t *Taxonomy) ImportSet(ctx context.Context, setID string) (*models.Taxon, error) {
	root, err := t.EnsureRoot(ctx)
	if err != nil {
		return nil, err
	}

	full, err := t.source.GetSet(ctx, setID)
	if err != nil {
		return nil, err
	}
	if full == nil {
		return nil, fmt.Errorf("set %q: %w", setID, tcgdex.ErrNotFound)
	}

	parent := root
	if full.Series != nil {
		parent, err = t.EnsureSeries(ctx, root, full.Series.ID, full.Series.Name)
		if err != nil {
			return nil, err
		}
	}

	taxon, err := t.EnsureSet(ctx, parent, *full)
	if err != nil {
		return nil, err
	}

	if err := t.store.Commit(ctx); err != nil {
		return nil, err
	}

	return taxon, nil
}
