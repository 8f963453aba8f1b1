package catalog

import (
	"errors"

	"tcg-catalog/core/logger"
	"tcg-catalog/feature/tcgdex"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the synchronization operations as admin HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Post("/taxonomy/import", h.HandleImportTaxonomy)
	group.Post("/taxonomy/series/:seriesId", h.HandleImportSeries)
	group.Post("/taxonomy/sets/:setId", h.HandleImportSet)
	group.Post("/sets/:setId/products", h.HandleImportSetCards)
	group.Post("/cards/:cardId/product", h.HandleCreateCardProduct)
	group.Post("/sealed", h.HandleCreateSealed)
}

type priceRequest struct {
	DefaultPriceCents *int64 `json:"default_price_cents"`
}

type sealedRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	SetID       string `json:"set_id"`
	PriceCents  *int64 `json:"price_cents"`
	Description string `json:"description"`
}

// HandleImportTaxonomy imports every series and set as taxons.
// @Summary Import Full Taxonomy
// @Description Reconciles all series and sets of the reference dataset into the local taxonomy tree. Re-running is a no-op for existing taxons.
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.TaxonomyReport "Import counts"
// @Failure 502 {object} map[string]string "Reference API unavailable"
// @Router /catalog/taxonomy/import [post]
func (h *Handler) HandleImportTaxonomy(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting full taxonomy import")

	report, err := h.service.Taxonomy.ImportAll(c.Context())
	if err != nil {
		l.Error("Taxonomy import failed", zap.Error(err))
		return syncError(c, err)
	}

	return c.JSON(report)
}

// HandleImportSeries imports one series and its sets as taxons.
// @Summary Import Series Taxonomy
// @Description Reconciles a single series and its sets into the local taxonomy tree.
// @Tags catalog
// @Produce json
// @Param seriesId path string true "Series ID (e.g. 'swsh')"
// @Success 200 {object} catalog.SeriesReport "Import counts"
// @Failure 404 {object} map[string]string "Series not found"
// @Failure 502 {object} map[string]string "Reference API unavailable"
// @Router /catalog/taxonomy/series/{seriesId} [post]
func (h *Handler) HandleImportSeries(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	seriesID := c.Params("seriesId")

	report, err := h.service.Taxonomy.ImportSeries(c.Context(), seriesID)
	if err != nil {
		l.Error("Series import failed", zap.String("series", seriesID), zap.Error(err))
		return syncError(c, err)
	}

	return c.JSON(report)
}

// HandleImportSet imports one set (and its series) as taxons.
// @Summary Import Set Taxonomy
// @Description Reconciles a single set into the local taxonomy tree, creating its series taxon first when needed.
// @Tags catalog
// @Produce json
// @Param setId path string true "Set ID (e.g. 'swsh3')"
// @Success 200 {object} models.Taxon "Set taxon"
// @Failure 404 {object} map[string]string "Set not found"
// @Failure 502 {object} map[string]string "Reference API unavailable"
// @Router /catalog/taxonomy/sets/{setId} [post]
func (h *Handler) HandleImportSet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	setID := c.Params("setId")

	taxon, err := h.service.Taxonomy.ImportSet(c.Context(), setID)
	if err != nil {
		l.Error("Set import failed", zap.String("set", setID), zap.Error(err))
		return syncError(c, err)
	}

	return c.JSON(taxon)
}

// HandleImportSetCards creates products for every card of a set.
// @Summary Import Set Cards
// @Description Creates a catalog product for every card of the set. Existing and unresolvable cards are counted as skipped.
// @Tags catalog
// @Accept json
// @Produce json
// @Param setId path string true "Set ID (e.g. 'swsh3')"
// @Param request body catalog.priceRequest false "Default price"
// @Success 200 {object} catalog.ImportReport "Created/skipped counts"
// @Failure 404 {object} map[string]string "Set not found"
// @Failure 502 {object} map[string]string "Reference API unavailable"
// @Router /catalog/sets/{setId}/products [post]
func (h *Handler) HandleImportSetCards(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	setID := c.Params("setId")

	var req priceRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	report, err := h.service.Cards.CreateFromSet(c.Context(), setID, req.DefaultPriceCents)
	if err != nil {
		l.Error("Set card import failed", zap.String("set", setID), zap.Error(err))
		return syncError(c, err)
	}

	return c.JSON(report)
}

// HandleCreateCardProduct creates a product from a single card.
// @Summary Create Card Product
// @Description Creates a catalog product (with language variants) from a card's global ID. Returns the existing product when the code is already taken.
// @Tags catalog
// @Accept json
// @Produce json
// @Param cardId path string true "Global card ID (e.g. 'swsh3-136')"
// @Param request body catalog.priceRequest false "Default price"
// @Success 200 {object} models.Product "Product"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 502 {object} map[string]string "Reference API unavailable"
// @Router /catalog/cards/{cardId}/product [post]
func (h *Handler) HandleCreateCardProduct(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	cardID := c.Params("cardId")

	var req priceRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	product, err := h.service.Cards.CreateFromCard(c.Context(), cardID, req.DefaultPriceCents)
	if err != nil {
		l.Error("Card product creation failed", zap.String("card_id", cardID), zap.Error(err))
		return syncError(c, err)
	}

	return c.JSON(product)
}

// HandleCreateSealed creates a manually described sealed product.
// @Summary Create Sealed Product
// @Description Creates a sealed product (booster box, tin, ...) and links it into the sealed products taxon. The set link is best-effort.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body catalog.sealedRequest true "Sealed product"
// @Success 200 {object} models.Product "Product"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 502 {object} map[string]string "Reference API unavailable"
// @Router /catalog/sealed [post]
func (h *Handler) HandleCreateSealed(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req sealedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	if req.Type == "" {
		req.Type = TypeOther
	}

	product, err := h.service.Sealed.Create(c.Context(), req.Name, req.Type, req.SetID, req.PriceCents, req.Description)
	if err != nil {
		l.Error("Sealed product creation failed", zap.String("name", req.Name), zap.Error(err))
		return syncError(c, err)
	}

	return c.JSON(product)
}

// syncError maps the domain error kinds onto HTTP statuses: absent remote
// entities are 404, an unreachable reference API is 502, anything else 500.
func syncError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, tcgdex.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, tcgdex.ErrSourceUnavailable):
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
