package catalog_test

import (
	"testing"

	"tcg-catalog/feature/catalog"

	"github.com/stretchr/testify/assert"
)

func TestTaxonCodes(t *testing.T) {
	assert.Equal(t, "ptcg-serie-base", catalog.SeriesTaxonCode("base"))
	assert.Equal(t, "ptcg-set-base1", catalog.SetTaxonCode("base1"))
	assert.Equal(t, "ptcg-card-base1-4", catalog.CardProductCode("base1-4"))
}

func TestSealedProductCode(t *testing.T) {
	t.Run("WithSet", func(t *testing.T) {
		code := catalog.SealedProductCode("Obsidian Flames Booster Box", "booster_box", "sv3")
		assert.Equal(t, "ptcg-sealed-booster_box-sv3-obsidian-flames-booster-box", code)
	})

	t.Run("WithoutSet", func(t *testing.T) {
		code := catalog.SealedProductCode("Mystery Tin", "tin", "")
		assert.Equal(t, "ptcg-sealed-tin-mystery-tin", code)
	})

	t.Run("LongNameTruncated", func(t *testing.T) {
		name := "An Extremely Long Sealed Product Name That Goes On Forever And Ever"
		code := catalog.SealedProductCode(name, "bundle", "")
		assert.Equal(t, "ptcg-sealed-bundle-an-extremely-long-sealed-product-name-th", code)
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := catalog.SealedProductCode("Paldea Box", "collection_box", "sv1")
		b := catalog.SealedProductCode("Paldea Box", "collection_box", "sv1")
		assert.Equal(t, a, b)
	})
}

func TestLanguageCodes(t *testing.T) {
	assert.Equal(t, "ptcg_lang_en", catalog.LanguageValueCode("en"))
	assert.Equal(t, "English", catalog.LanguageLabel("en"))
	assert.Equal(t, "Japanese", catalog.LanguageLabel("ja"))
	assert.Equal(t, "Chinese (Traditional)", catalog.LanguageLabel("zh-tw"))
	// Unknown codes fall back to the upper-cased code.
	assert.Equal(t, "XX", catalog.LanguageLabel("xx"))
}
