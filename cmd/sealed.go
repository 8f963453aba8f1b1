package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"tcg-catalog/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sealedName        string
	sealedType        string
	sealedSet         string
	sealedPriceCents  int64
	sealedDescription string
)

// sealedCmd is the parent command for sealed product management.
var sealedCmd = &cobra.Command{
	Use:   "sealed",
	Short: "Manage sealed products (booster packs, boxes, decks)",
}

// sealedCreateCmd creates a sealed product.
var sealedCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a sealed product",
	Long: `Create a sealed product such as a booster box or an elite trainer box.

The product lands under the sealed-products taxon; when --set names a known
set the product is additionally linked to that set's taxon.

Known types: ` + strings.Join(sealedTypeNames(), ", "),
	RunE: func(cmd *cobra.Command, args []string) error {
		if sealedName == "" {
			return fmt.Errorf("--name is required")
		}
		if sealedType == "" {
			return fmt.Errorf("--type is required")
		}

		svc, l, err := buildService()
		if err != nil {
			return err
		}

		price := priceFlag(cmd, "price", sealedPriceCents)
		product, err := svc.Sealed.Create(context.Background(), sealedName, sealedType, sealedSet, price, sealedDescription)
		if err != nil {
			return fmt.Errorf("sealed product creation failed: %w", err)
		}

		l.Info("Sealed product ready",
			zap.String("code", product.Code),
			zap.String("name", product.Name),
		)
		return nil
	},
}

func init() {
	sealedCreateCmd.Flags().StringVar(&sealedName, "name", "", "Display name of the product (required)")
	sealedCreateCmd.Flags().StringVar(&sealedType, "type", "", "Sealed product type, e.g. booster-box (required)")
	sealedCreateCmd.Flags().StringVar(&sealedSet, "set", "", "Set identifier to link the product to (optional)")
	sealedCreateCmd.Flags().Int64Var(&sealedPriceCents, "price", 0, "Price in cents for the default variant")
	sealedCreateCmd.Flags().StringVar(&sealedDescription, "description", "", "Product description (optional)")

	sealedCmd.AddCommand(sealedCreateCmd)
	RootCmd.AddCommand(sealedCmd)
}

func sealedTypeNames() []string {
	names := make([]string, 0, len(catalog.SealedTypeLabels))
	for typ := range catalog.SealedTypeLabels {
		names = append(names, typ)
	}
	sort.Strings(names)
	return names
}
