package cmd

import (
	"context"
	"fmt"

	"tcg-catalog/core/config"
	"tcg-catalog/core/database"
	"tcg-catalog/core/logger"
	"tcg-catalog/feature/catalog"
	"tcg-catalog/feature/tcgdex"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// taxonomyCmd is the parent command for taxonomy synchronization.
var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Synchronize the series/set taxonomy from the card reference",
	Long: `Build or refresh the catalog taxonomy tree from TCGdex.

The tree is rooted at the configured root taxon, with one child taxon per
series and one grandchild per set. Re-running is safe: existing taxons are
matched by code and left untouched.`,
}

// taxonomyImportCmd imports every series and set.
var taxonomyImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import all series and their sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := buildService()
		if err != nil {
			return err
		}

		report, err := svc.Taxonomy.ImportAll(context.Background())
		if err != nil {
			return fmt.Errorf("taxonomy import failed: %w", err)
		}

		l.Info("Taxonomy import complete",
			zap.Int("series", report.Series),
			zap.Int("sets", report.Sets),
		)
		return nil
	},
}

// taxonomySeriesCmd imports one series and its sets.
var taxonomySeriesCmd = &cobra.Command{
	Use:   "series <seriesId>",
	Short: "Import a single series and its sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := buildService()
		if err != nil {
			return err
		}

		report, err := svc.Taxonomy.ImportSeries(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("series import failed: %w", err)
		}

		l.Info("Series import complete",
			zap.String("series", report.Name),
			zap.Int("sets", report.Sets),
		)
		return nil
	},
}

// taxonomySetCmd imports one set (and its series chain if needed).
var taxonomySetCmd = &cobra.Command{
	Use:   "set <setId>",
	Short: "Import a single set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := buildService()
		if err != nil {
			return err
		}

		taxon, err := svc.Taxonomy.ImportSet(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("set import failed: %w", err)
		}

		l.Info("Set import complete", zap.String("taxon", taxon.Code))
		return nil
	},
}

func init() {
	taxonomyCmd.AddCommand(taxonomyImportCmd)
	taxonomyCmd.AddCommand(taxonomySeriesCmd)
	taxonomyCmd.AddCommand(taxonomySetCmd)

	RootCmd.AddCommand(taxonomyCmd)
}

// buildService wires the synchronization service for CLI commands. Image
// mirroring is left off here; it only runs behind the HTTP server.
func buildService() (*catalog.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := catalog.Migrate(db); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	if err := catalog.EnsureChannel(context.Background(), db, cfg.Catalog.DefaultChannel, cfg.Catalog.DefaultChannelName); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure default channel: %w", err)
	}

	source := tcgdex.NewClient(cfg.TCGdex, l)
	svc := catalog.NewService(source, catalog.NewStore(db), nil, l, cfg.Catalog)
	return svc, l, nil
}
