package catalog

import (
	"context"
	"errors"
	"fmt"

	"tcg-catalog/feature/catalog/models"

	"gorm.io/gorm"
)

// Store is the persistence boundary of the synchronizers: code-based lookup,
// staging of new records, and transactional commit. The synchronizers never
// issue queries beyond what this interface offers.
//
// Staged records are visible to the Find methods before Commit, so the
// lookup-or-create pattern stays idempotent inside a single uncommitted batch.
type Store interface {
	// FindTaxonByCode returns the taxon with the given code, or nil when absent.
	FindTaxonByCode(ctx context.Context, code string) (*models.Taxon, error)
	// FindProductByCode returns the product with the given code, or nil when absent.
	FindProductByCode(ctx context.Context, code string) (*models.Product, error)
	// FindOptionByCode returns the option with the given code, or nil when absent.
	FindOptionByCode(ctx context.Context, code string) (*models.Option, error)
	// Channels returns all enabled sales channels.
	Channels(ctx context.Context) ([]models.Channel, error)
	// StageTaxon stages a new taxon for the next Commit.
	StageTaxon(taxon *models.Taxon)
	// StageProduct stages a new product (with its variants) for the next Commit.
	StageProduct(product *models.Product)
	// StageOption stages a new option (with its values) for the next Commit.
	StageOption(option *models.Option)
	// Commit flushes all staged records durably in a single transaction and
	// clears the staging buffer. Staged taxons are written in staging order,
	// which preserves the parent-before-child invariant of the taxonomy.
	Commit(ctx context.Context) error
}

// gormStore implements Store on a gorm connection. The unique index on every
// code column turns a concurrent-run race into a constraint violation instead
// of a silent duplicate; concurrent imports against the same database are
// otherwise unsupported.
type gormStore struct {
	db *gorm.DB

	taxons   []*models.Taxon
	products []*models.Product
	options  []*models.Option

	taxonByCode   map[string]*models.Taxon
	productByCode map[string]*models.Product
	optionByCode  map[string]*models.Option
}

// NewStore creates a Store backed by the given database connection.
func NewStore(db *gorm.DB) Store {
	return &gormStore{
		db:            db,
		taxonByCode:   make(map[string]*models.Taxon),
		productByCode: make(map[string]*models.Product),
		optionByCode:  make(map[string]*models.Option),
	}
}

func (s *gormStore) FindTaxonByCode(ctx context.Context, code string) (*models.Taxon, error) {
	if taxon, ok := s.taxonByCode[code]; ok {
		return taxon, nil
	}

	var taxon models.Taxon
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&taxon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up taxon %q: %w", code, err)
	}
	return &taxon, nil
}

func (s *gormStore) FindProductByCode(ctx context.Context, code string) (*models.Product, error) {
	if product, ok := s.productByCode[code]; ok {
		return product, nil
	}

	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Variants").
		Preload("Variants.Prices").
		Preload("Variants.OptionValues").
		Preload("Taxons").
		Preload("Channels").
		Preload("Options").
		Where("code = ?", code).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up product %q: %w", code, err)
	}
	return &product, nil
}

func (s *gormStore) FindOptionByCode(ctx context.Context, code string) (*models.Option, error) {
	if option, ok := s.optionByCode[code]; ok {
		return option, nil
	}

	var option models.Option
	err := s.db.WithContext(ctx).
		Preload("Values").
		Where("code = ?", code).
		First(&option).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up option %q: %w", code, err)
	}
	return &option, nil
}

func (s *gormStore) Channels(ctx context.Context) ([]models.Channel, error) {
	var channels []models.Channel
	if err := s.db.WithContext(ctx).Where("enabled = ?", true).Find(&channels).Error; err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return channels, nil
}

func (s *gormStore) StageTaxon(taxon *models.Taxon) {
	s.taxons = append(s.taxons, taxon)
	s.taxonByCode[taxon.Code] = taxon
}

func (s *gormStore) StageProduct(product *models.Product) {
	s.products = append(s.products, product)
	s.productByCode[product.Code] = product
}

func (s *gormStore) StageOption(option *models.Option) {
	s.options = append(s.options, option)
	s.optionByCode[option.Code] = option
}

func (s *gormStore) Commit(ctx context.Context) error {
	if len(s.taxons) == 0 && len(s.products) == 0 && len(s.options) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, option := range s.options {
			if err := tx.Create(option).Error; err != nil {
				return fmt.Errorf("failed to create option %q: %w", option.Code, err)
			}
		}
		for _, taxon := range s.taxons {
			if err := tx.Create(taxon).Error; err != nil {
				return fmt.Errorf("failed to create taxon %q: %w", taxon.Code, err)
			}
		}
		for _, product := range s.products {
			if err := tx.Create(product).Error; err != nil {
				return fmt.Errorf("failed to create product %q: %w", product.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.taxons = nil
	s.products = nil
	s.options = nil
	clear(s.taxonByCode)
	clear(s.productByCode)
	clear(s.optionByCode)

	return nil
}

// Migrate creates or updates the catalog schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}

// EnsureChannel creates the sales channel with the given code if it does not
// exist yet. Idempotent by code.
func EnsureChannel(ctx context.Context, db *gorm.DB, code, name string) error {
	var channel models.Channel
	err := db.WithContext(ctx).Where("code = ?", code).First(&channel).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up channel %q: %w", code, err)
	}

	channel = models.Channel{Code: code, Name: name, Enabled: true}
	if err := db.WithContext(ctx).Create(&channel).Error; err != nil {
		return fmt.Errorf("failed to create channel %q: %w", code, err)
	}
	return nil
}
