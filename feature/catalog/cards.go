package catalog

import (
	"context"
	"fmt"
	"strings"

	"tcg-catalog/core/utils"
	"tcg-catalog/feature/catalog/models"
	"tcg-catalog/feature/tcgdex"

	"go.uber.org/zap"
)

// ImportReport counts the outcome of a bulk card import.
type ImportReport struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Cards maps reference cards to catalog products, one variant per configured
// card language. Products are identified by deterministic code; an existing
// code short-circuits to the existing product, never to an error.
type Cards struct {
	source    Source
	taxonomy  *Taxonomy
	store     Store
	images    *ImageMirror
	logger    *zap.Logger
	languages []string
	batchSize int
}

// NewCards creates a card product synchronizer. images may be nil to disable
// illustration mirroring.
func NewCards(source Source, taxonomy *Taxonomy, store Store, images *ImageMirror, logger *zap.Logger, cfg Config) *Cards {
	batch := cfg.CommitBatchSize
	if batch <= 0 {
		batch = 50
	}
	return &Cards{
		source:    source,
		taxonomy:  taxonomy,
		store:     store,
		images:    images,
		logger:    logger,
		languages: cfg.Languages(),
		batchSize: batch,
	}
}

// CreateFromCard creates a product from a card's global ID. If the product
// already exists it is returned unchanged. The creation is committed before
// returning.
func (s *Cards) CreateFromCard(ctx context.Context, cardID string, priceCents *int64) (*models.Product, error) {
	code := CardProductCode(cardID)

	existing, err := s.store.FindProductByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	card, err := s.source.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("card %q: %w", cardID, tcgdex.ErrNotFound)
	}

	product, err := s.buildProduct(ctx, card, priceCents)
	if err != nil {
		return nil, err
	}

	if err := s.store.Commit(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Card product created",
		zap.String("code", product.Code),
		zap.String("name", product.Name))

	return product, nil
}

// CreateFromSet creates products for every card of a set. Cards whose product
// already exists and cards whose full data cannot be resolved are counted as
// skipped; the import continues past them. Persistence is committed every
// batchSize processed items and once more at the end.
func (s *Cards) CreateFromSet(ctx context.Context, setID string, priceCents *int64) (*ImportReport, error) {
	set, err := s.source.GetSet(ctx, setID)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, fmt.Errorf("set %q: %w", setID, tcgdex.ErrNotFound)
	}

	report := &ImportReport{}
	for _, summary := range set.Cards {
		cardID := summary.ID
		if cardID == "" {
			cardID = fmt.Sprintf("%s-%s", setID, summary.LocalID)
		}

		existing, err := s.store.FindProductByCode(ctx, CardProductCode(cardID))
		if err != nil {
			return report, err
		}
		if existing != nil {
			report.Skipped++
		} else {
			card, err := s.source.GetCard(ctx, cardID)
			if err != nil {
				return report, err
			}
			if card == nil {
				s.logger.Warn("Card listed in set but not resolvable, skipping",
					zap.String("set", setID),
					zap.String("card_id", cardID))
				report.Skipped++
			} else {
				if _, err := s.buildProduct(ctx, card, priceCents); err != nil {
					return report, err
				}
				report.Created++
			}
		}

		// Bound memory growth on large sets without losing committed work.
		if (report.Created+report.Skipped)%s.batchSize == 0 {
			if err := s.store.Commit(ctx); err != nil {
				return report, err
			}
		}
	}

	if err := s.store.Commit(ctx); err != nil {
		return report, err
	}

	s.logger.Info("Set import completed",
		zap.String("set", setID),
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped))

	return report, nil
}

// buildProduct assembles and stages a product for a resolved card. It does
// not commit; callers own the commit discipline.
func (s *Cards) buildProduct(ctx context.Context, card *tcgdex.Card, priceCents *int64) (*models.Product, error) {
	code := CardProductCode(card.ID)

	setName := "Unknown Set"
	if card.Set != nil {
		setName = card.Set.Name
	}

	product := &models.Product{
		Code:             code,
		Name:             fmt.Sprintf("%s (%s %s)", card.Name, setName, card.LocalID),
		Slug:             utils.Slugify(code),
		Description:      buildCardDescription(card),
		ShortDescription: buildCardShortDescription(card),
	}

	if err := s.linkToSetTaxon(ctx, product, card); err != nil {
		return nil, err
	}

	option, err := s.ensureLanguageOption(ctx)
	if err != nil {
		return nil, err
	}
	product.Options = append(product.Options, models.ProductOption{OptionCode: option.Code})

	channels, err := s.store.Channels(ctx)
	if err != nil {
		return nil, err
	}

	for _, lang := range s.languages {
		valueCode := LanguageValueCode(lang)
		if !optionHasValue(option, valueCode) {
			continue
		}

		variant := models.Variant{
			Code:    code + "-" + lang,
			Name:    fmt.Sprintf("%s (%s)", product.Name, strings.ToUpper(lang)),
			OnHand:  0,
			Tracked: true,
			OptionValues: []models.VariantOptionValue{
				{OptionValueCode: valueCode},
			},
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
	}

	for _, channel := range channels {
		product.Channels = append(product.Channels, models.ProductChannel{ChannelCode: channel.Code})
	}

	s.store.StageProduct(product)

	if s.images != nil {
		s.images.Mirror(ctx, card)
	}

	return product, nil
}

// linkToSetTaxon resolves (or imports) the card's set taxon and makes it the
// product's main category. Cards without a set reference stay uncategorized.
func (s *Cards) linkToSetTaxon(ctx context.Context, product *models.Product, card *tcgdex.Card) error {
	if card.Set == nil || card.Set.ID == "" {
		return nil
	}

	taxon, err := s.taxonomy.FindSetTaxon(ctx, card.Set.ID)
	if err != nil {
		return err
	}
	if taxon == nil {
		taxon, err = s.taxonomy.ImportSet(ctx, card.Set.ID)
		if err != nil {
			return err
		}
	}

	taxonCode := taxon.Code
	product.MainTaxonCode = &taxonCode
	product.Taxons = append(product.Taxons, models.ProductTaxon{TaxonCode: taxon.Code})

	return nil
}

// ensureLanguageOption looks up or creates the single shared card language
// option, with one value per configured language.
func (s *Cards) ensureLanguageOption(ctx context.Context) (*models.Option, error) {
	existing, err := s.store.FindOptionByCode(ctx, languageOptionCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	option := &models.Option{
		Code: languageOptionCode,
		Name: "Card Language",
	}
	for _, lang := range s.languages {
		option.Values = append(option.Values, models.OptionValue{
			Code:  LanguageValueCode(lang),
			Value: LanguageLabel(lang),
		})
	}
	s.store.StageOption(option)

	return option, nil
}

func optionHasValue(option *models.Option, valueCode string) bool {
	for _, v := range option.Values {
		if v.Code == valueCode {
			return true
		}
	}
	return false
}

// buildCardDescription assembles the long description: the card's free text
// first, then a metadata block with one attribute per line.
func buildCardDescription(card *tcgdex.Card) string {
	var parts []string

	if card.Description != "" {
		parts = append(parts, card.Description)
	}

	var meta []string
	if card.Rarity != "" {
		meta = append(meta, "Rarity: "+card.Rarity)
	}
	if card.Illustrator != "" {
		meta = append(meta, "Illustrator: "+card.Illustrator)
	}
	if card.Category != "" {
		meta = append(meta, "Category: "+card.Category)
	}
	if card.HP > 0 {
		meta = append(meta, fmt.Sprintf("HP: %d", card.HP))
	}
	if len(card.Types) > 0 {
		meta = append(meta, "Type(s): "+strings.Join(card.Types, ", "))
	}
	if card.Stage != "" {
		meta = append(meta, "Stage: "+card.Stage)
	}
	if card.Set != nil {
		meta = append(meta, "Set: "+card.Set.Name)
	}
	if card.LocalID != "" {
		meta = append(meta, "Card Number: "+card.LocalID)
	}
	if len(meta) > 0 {
		parts = append(parts, strings.Join(meta, "\n"))
	}

	return strings.Join(parts, "\n\n")
}

// buildCardShortDescription joins rarity, set name and card number with " | ",
// skipping absent parts.
func buildCardShortDescription(card *tcgdex.Card) string {
	var parts []string
	if card.Rarity != "" {
		parts = append(parts, card.Rarity)
	}
	if card.Set != nil {
		parts = append(parts, card.Set.Name)
	}
	if card.LocalID != "" {
		parts = append(parts, "#"+card.LocalID)
	}
	return strings.Join(parts, " | ")
}
