package catalog

import "strings"

// Config holds configuration for the catalog synchronizers.
type Config struct {
	// RootTaxonCode is the code of the single root taxon of the taxonomy tree.
	RootTaxonCode string `mapstructure:"root_taxon_code" default:"pokemon-tcg"`
	// CardLanguages is the comma-separated list of card print languages
	// offered as variants on card products.
	CardLanguages string `mapstructure:"card_languages" default:"en"`
	// DefaultChannel is the code of the sales channel seeded at startup.
	DefaultChannel string `mapstructure:"default_channel" default:"default"`
	// DefaultChannelName is the display name of the seeded channel.
	DefaultChannelName string `mapstructure:"default_channel_name" default:"Web Store"`
	// MirrorImages enables best-effort mirroring of card illustrations into
	// object storage. Requires a configured storage client.
	MirrorImages bool `mapstructure:"mirror_images" default:"false"`
	// CommitBatchSize is the number of processed items between persistence
	// commits during bulk imports.
	CommitBatchSize int `mapstructure:"commit_batch_size" default:"50"`
}

// Languages returns the configured card languages as a slice.
func (c Config) Languages() []string {
	var langs []string
	for _, l := range strings.Split(c.CardLanguages, ",") {
		if l = strings.TrimSpace(l); l != "" {
			langs = append(langs, l)
		}
	}
	if len(langs) == 0 {
		langs = []string{"en"}
	}
	return langs
}
