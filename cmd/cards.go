package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cardPriceCents    int64
	setCardPriceCents int64
)

// cardsCmd is the parent command for card product synchronization.
var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Create card products from the card reference",
	Long: `Create catalog products for cards, one variant per configured language.

Products are matched by deterministic code, so re-running an import only
creates the cards that are still missing.`,
}

// cardsImportSetCmd creates one product per card of a set.
var cardsImportSetCmd = &cobra.Command{
	Use:   "import-set <setId>",
	Short: "Create products for every card of a set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := buildService()
		if err != nil {
			return err
		}

		price := priceFlag(cmd, "price", setCardPriceCents)
		report, err := svc.Cards.CreateFromSet(context.Background(), args[0], price)
		if err != nil {
			return fmt.Errorf("set import failed: %w", err)
		}

		l.Info("Card import complete",
			zap.String("set", args[0]),
			zap.Int("created", report.Created),
			zap.Int("skipped", report.Skipped),
		)
		return nil
	},
}

// cardsCreateCmd creates a single card product.
var cardsCreateCmd = &cobra.Command{
	Use:   "create <cardId>",
	Short: "Create a product for a single card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := buildService()
		if err != nil {
			return err
		}

		price := priceFlag(cmd, "price", cardPriceCents)
		product, err := svc.Cards.CreateFromCard(context.Background(), args[0], price)
		if err != nil {
			return fmt.Errorf("card creation failed: %w", err)
		}

		l.Info("Card product ready",
			zap.String("code", product.Code),
			zap.String("name", product.Name),
		)
		return nil
	},
}

func init() {
	cardsImportSetCmd.Flags().Int64Var(&setCardPriceCents, "price", 0, "Default price in cents for every created variant")
	cardsCreateCmd.Flags().Int64Var(&cardPriceCents, "price", 0, "Default price in cents for every created variant")

	cardsCmd.AddCommand(cardsImportSetCmd)
	cardsCmd.AddCommand(cardsCreateCmd)

	RootCmd.AddCommand(cardsCmd)
}

// priceFlag returns the price flag value, or nil when the flag was not set.
func priceFlag(cmd *cobra.Command, name string, value int64) *int64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
