package models

import "time"

// Catalog entities. Every entity carries a unique, deterministic code computed
// from stable external identifiers; codes are both the uniqueness constraint
// and the idempotence check of the synchronizers. Cross-entity references use
// codes rather than numeric IDs so records can be linked before they are
// flushed to the database.

// Taxon is a node of the category tree. The root taxon has no parent; a
// series taxon's parent is the root; a set taxon's parent is its series.
type Taxon struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Code        string  `json:"code" gorm:"uniqueIndex;size:120;not null"`
	Name        string  `json:"name" gorm:"size:255;not null"`
	Slug        string  `json:"slug" gorm:"size:255"`
	Description string  `json:"description" gorm:"type:text"`
	ParentCode  *string `json:"parent_code" gorm:"index;size:120"`

	CreatedAt time.Time `json:"created_at"`
}

// Product is a sellable catalog entry, created from a reference card or
// entered manually as a sealed item.
type Product struct {
	ID               uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Code             string  `json:"code" gorm:"uniqueIndex;size:120;not null"`
	Name             string  `json:"name" gorm:"size:255;not null"`
	Slug             string  `json:"slug" gorm:"size:255"`
	Description      string  `json:"description" gorm:"type:text"`
	ShortDescription string  `json:"short_description" gorm:"size:255"`
	MainTaxonCode    *string `json:"main_taxon_code" gorm:"index;size:120"`

	Variants []Variant        `json:"variants"`
	Taxons   []ProductTaxon   `json:"taxons"`
	Channels []ProductChannel `json:"channels"`
	Options  []ProductOption  `json:"options"`

	CreatedAt time.Time `json:"created_at"`
}

// Variant is a purchasable variation of a product (one per card language,
// or a single default variant for sealed products).
type Variant struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID uint   `json:"product_id" gorm:"index;not null"`
	Code      string `json:"code" gorm:"uniqueIndex;size:140;not null"`
	Name      string `json:"name" gorm:"size:255;not null"`
	OnHand    int    `json:"on_hand" gorm:"default:0"`
	Tracked   bool   `json:"tracked" gorm:"default:true"`

	Prices       []ChannelPricing     `json:"prices"`
	OptionValues []VariantOptionValue `json:"option_values"`
}

// ChannelPricing attaches a price (in cents) to a variant for one channel.
type ChannelPricing struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	VariantID   uint   `json:"variant_id" gorm:"index;not null"`
	ChannelCode string `json:"channel_code" gorm:"index;size:120;not null"`
	PriceCents  int64  `json:"price_cents" gorm:"not null"`
}

// VariantOptionValue links a variant to an option value by code.
type VariantOptionValue struct {
	ID              uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	VariantID       uint   `json:"variant_id" gorm:"index;not null"`
	OptionValueCode string `json:"option_value_code" gorm:"index;size:120;not null"`
}

// ProductTaxon links a product to a taxon by code.
type ProductTaxon struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID uint   `json:"product_id" gorm:"index;not null"`
	TaxonCode string `json:"taxon_code" gorm:"index;size:120;not null"`
}

// ProductChannel enables a product on a sales channel.
type ProductChannel struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID   uint   `json:"product_id" gorm:"index;not null"`
	ChannelCode string `json:"channel_code" gorm:"index;size:120;not null"`
}

// ProductOption attaches an option (e.g. card language) to a product.
type ProductOption struct {
	ID         uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID  uint   `json:"product_id" gorm:"index;not null"`
	OptionCode string `json:"option_code" gorm:"index;size:120;not null"`
}

// Option is a shared product option with its values (created once, reused
// across all card products).
type Option struct {
	ID     uint          `json:"id" gorm:"primaryKey;autoIncrement"`
	Code   string        `json:"code" gorm:"uniqueIndex;size:120;not null"`
	Name   string        `json:"name" gorm:"size:255;not null"`
	Values []OptionValue `json:"values"`
}

// OptionValue is one selectable value of an option.
type OptionValue struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	OptionID uint   `json:"option_id" gorm:"index;not null"`
	Code     string `json:"code" gorm:"uniqueIndex;size:120;not null"`
	Value    string `json:"value" gorm:"size:255;not null"`
}

// Channel is a sales channel products can be enabled on.
type Channel struct {
	ID      uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Code    string `json:"code" gorm:"uniqueIndex;size:120;not null"`
	Name    string `json:"name" gorm:"size:255;not null"`
	Enabled bool   `json:"enabled" gorm:"default:true"`
}

// All returns every catalog entity for schema migration.
func All() []any {
	return []any{
		&Taxon{},
		&Product{},
		&Variant{},
		&ChannelPricing{},
		&VariantOptionValue{},
		&ProductTaxon{},
		&ProductChannel{},
		&ProductOption{},
		&Option{},
		&OptionValue{},
		&Channel{},
	}
}
