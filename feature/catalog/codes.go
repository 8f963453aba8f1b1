package catalog

import (
	"fmt"
	"strings"

	"tcg-catalog/core/utils"
)

// Deterministic code generation. Codes are pure functions of stable external
// identifiers: the same input always yields the same code, which makes every
// lookup-or-create in this package idempotent and re-running an import safe.

// SeriesTaxonCode returns the taxon code for a series, e.g. "ptcg-serie-base".
func SeriesTaxonCode(seriesID string) string {
	return "ptcg-serie-" + seriesID
}

// SetTaxonCode returns the taxon code for a set, e.g. "ptcg-set-base1".
func SetTaxonCode(setID string) string {
	return "ptcg-set-" + setID
}

// CardProductCode returns the product code for a card, e.g. "ptcg-card-base1-4".
func CardProductCode(cardID string) string {
	return "ptcg-card-" + cardID
}

// SealedProductCode returns the product code for a manually described sealed
// item. The name contributes at most 40 characters of its slug.
func SealedProductCode(name, typ, setID string) string {
	setPart := ""
	if setID != "" {
		setPart = setID + "-"
	}
	return fmt.Sprintf("ptcg-sealed-%s-%s%s", typ, setPart, utils.Truncate(utils.Slugify(name), 40))
}

// languageOptionCode is the code of the single shared card language option.
const languageOptionCode = "ptcg_card_language"

// LanguageValueCode returns the option value code for a card language.
func LanguageValueCode(lang string) string {
	return "ptcg_lang_" + lang
}

// languageLabels maps language codes to display names for the card language
// option. Unknown codes fall back to the upper-cased code.
var languageLabels = map[string]string{
	"en":    "English",
	"fr":    "French",
	"de":    "German",
	"es":    "Spanish",
	"it":    "Italian",
	"pt":    "Portuguese",
	"ja":    "Japanese",
	"ko":    "Korean",
	"zh-tw": "Chinese (Traditional)",
	"zh-cn": "Chinese (Simplified)",
}

// LanguageLabel returns the display name for a language code.
func LanguageLabel(lang string) string {
	if label, ok := languageLabels[lang]; ok {
		return label
	}
	return strings.ToUpper(lang)
}
