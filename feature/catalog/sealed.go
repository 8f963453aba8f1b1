package catalog

import (
	"context"
	"errors"

	"tcg-catalog/core/utils"
	"tcg-catalog/feature/catalog/models"
	"tcg-catalog/feature/tcgdex"

	"go.uber.org/zap"
)

// Sealed product types. Sealed items (packs, boxes, tins) are not part of the
// reference card database, so they are described manually by the shop owner.
const (
	TypeBoosterPack     = "booster_pack"
	TypeBoosterBox      = "booster_box"
	TypeEliteTrainerBox = "elite_trainer_box"
	TypeCollectionBox   = "collection_box"
	TypeTin             = "tin"
	TypeBlister         = "blister"
	TypeBundle          = "bundle"
	TypeOther           = "other"
)

// SealedTypeLabels maps sealed product types to display labels.
var SealedTypeLabels = map[string]string{
	TypeBoosterPack:     "Booster Pack",
	TypeBoosterBox:      "Booster Box",
	TypeEliteTrainerBox: "Elite Trainer Box",
	TypeCollectionBox:   "Collection Box",
	TypeTin:             "Tin",
	TypeBlister:         "Blister Pack",
	TypeBundle:          "Bundle",
	TypeOther:           "Other",
}

// Sealed creates manually described catalog products and links them into a
// derived "sealed products" taxonomy branch.
type Sealed struct {
	taxonomy *Taxonomy
	store    Store
	logger   *zap.Logger
	rootCode string
}

// NewSealed creates a sealed product factory.
func NewSealed(taxonomy *Taxonomy, store Store, logger *zap.Logger, rootTaxonCode string) *Sealed {
	return &Sealed{
		taxonomy: taxonomy,
		store:    store,
		logger:   logger,
		rootCode: rootTaxonCode,
	}
}

// Create builds a sealed product. setID may be empty; when given, the product
// is linked to that set's taxon on a best-effort basis (a set unknown to the
// reference API skips the link instead of failing the creation). priceCents
// and description may be nil/empty. The creation is committed immediately.
func (s *Sealed) Create(ctx context.Context, name, typ, setID string, priceCents *int64, description string) (*models.Product, error) {
	code := SealedProductCode(name, typ, setID)

	existing, err := s.store.FindProductByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	label, ok := SealedTypeLabels[typ]
	if !ok {
		label = "Sealed Product"
	}
	if description == "" {
		description = name + " - " + label
	}

	product := &models.Product{
		Code:             code,
		Name:             name,
		Slug:             utils.Slugify(code),
		Description:      description,
		ShortDescription: label,
	}

	if setID != "" {
		if err := s.linkToSetTaxon(ctx, product, setID); err != nil {
			return nil, err
		}
	}

	if err := s.linkToSealedTaxon(ctx, product); err != nil {
		return nil, err
	}

	channels, err := s.store.Channels(ctx)
	if err != nil {
		return nil, err
	}

	variant := models.Variant{
		Code:    code + "-default",
		Name:    name,
		OnHand:  0,
		Tracked: true,
	}
	if priceCents != nil {
		for _, channel := range channels {
			variant.Prices = append(variant.Prices, models.ChannelPricing{
				ChannelCode: channel.Code,
				PriceCents:  *priceCents,
			})
		}
	}
	product.Variants = append(product.Variants, variant)

	for _, channel := range channels {
		product.Channels = append(product.Channels, models.ProductChannel{ChannelCode: channel.Code})
	}

	s.store.StageProduct(product)

	if err := s.store.Commit(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Sealed product created",
		zap.String("code", product.Code),
		zap.String("type", typ))

	return product, nil
}

// linkToSetTaxon links the product to a set taxon, importing the taxon when
// missing. An absent remote set only skips the link; an unreachable source
// still aborts the creation.
func (s *Sealed) linkToSetTaxon(ctx context.Context, product *models.Product, setID string) error {
	taxon, err := s.taxonomy.FindSetTaxon(ctx, setID)
	if err != nil {
		return err
	}
	if taxon == nil {
		taxon, err = s.taxonomy.ImportSet(ctx, setID)
		if errors.Is(err, tcgdex.ErrNotFound) {
			s.logger.Warn("Set unknown to reference API, skipping category link",
				zap.String("set", setID),
				zap.String("product", product.Code))
			return nil
		}
		if err != nil {
			return err
		}
	}

	taxonCode := taxon.Code
	product.MainTaxonCode = &taxonCode
	product.Taxons = append(product.Taxons, models.ProductTaxon{TaxonCode: taxon.Code})

	return nil
}

// linkToSealedTaxon links the product into the "Sealed Products" taxon,
// creating it under the root on first use.
func (s *Sealed) linkToSealedTaxon(ctx context.Context, product *models.Product) error {
	sealedCode := s.rootCode + "-sealed"

	taxon, err := s.store.FindTaxonByCode(ctx, sealedCode)
	if err != nil {
		return err
	}
	if taxon == nil {
		root, err := s.taxonomy.EnsureRoot(ctx)
		if err != nil {
			return err
		}

		parent := root.Code
		taxon = &models.Taxon{
			Code:        sealedCode,
			Name:        "Sealed Products",
			Slug:        "pokemon-tcg-sealed",
			ParentCode:  &parent,
			Description: "Sealed Pokemon TCG products (booster boxes, packs, tins, etc.)",
		}
		s.store.StageTaxon(taxon)
	}

	product.Taxons = append(product.Taxons, models.ProductTaxon{TaxonCode: taxon.Code})

	return nil
}
