package tcgdex

import (
	"errors"

	"tcg-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes read-through HTTP endpoints over the reference API.
type Handler struct {
	client *Client
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(client *Client, log *zap.Logger) *Handler {
	return &Handler{client: client, logger: log}
}

// RegisterRoutes registers the tcgdex routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tcgdex")
	group.Get("/series", h.HandleListSeries)
	group.Get("/sets", h.HandleListSets)
	group.Get("/cards/search", h.HandleSearchCards)
	group.Get("/cards/:cardId", h.HandleGetCard)
}

// HandleListSeries lists all series of the reference dataset.
// @Summary List Series
// @Description Lists all series known to the TCGdex reference API.
// @Tags tcgdex
// @Produce json
// @Success 200 {array} tcgdex.SeriesSummary "Series"
// @Failure 502 {object} map[string]string "Reference API unavailable"
// @Router /tcgdex/series [get]
func (h *Handler) HandleListSeries(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	series, err := h.client.ListSeries(c.Context())
	if err != nil {
		l.Error("Series listing failed", zap.Error(err))
		return sourceError(c, err)
	}

	return c.JSON(series)
}

// HandleListSets lists all sets of the reference dataset.
// @Summary List Sets
// @Description Lists all sets known to the TCGdex reference API.
// @Tags tcgdex
// @Produce json
// @Success 200 {array} tcgdex.Set "Sets"
// @Failure 502 {object} map[string]string "Reference API unavailable"
// @Router /tcgdex/sets [get]
func (h *Handler) HandleListSets(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	sets, err := h.client.ListSets(c.Context())
	if err != nil {
		l.Error("Set listing failed", zap.Error(err))
		return sourceError(c, err)
	}

	return c.JSON(sets)
}

// HandleSearchCards searches cards by name.
// @Summary Search Cards
// @Description Searches the reference dataset for cards matching a name query.
// @Tags tcgdex
// @Produce json
// @Param q query string true "Name query"
// @Success 200 {array} tcgdex.CardSummary "Matching cards"
// @Failure 400 {object} map[string]string "Missing query"
// @Failure 502 {object} map[string]string "Reference API unavailable"
// @Router /tcgdex/cards/search [get]
func (h *Handler) HandleSearchCards(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query parameter 'q' is required",
		})
	}

	cards, err := h.client.SearchCardsByName(c.Context(), query)
	if err != nil {
		l.Error("Card search failed", zap.String("query", query), zap.Error(err))
		return sourceError(c, err)
	}

	return c.JSON(cards)
}

// HandleGetCard fetches a single card by its global ID.
// @Summary Get Card
// @Description Fetches one card from the reference dataset by its global ID (e.g. "swsh3-136").
// @Tags tcgdex
// @Produce json
// @Param cardId path string true "Global card ID"
// @Success 200 {object} tcgdex.Card "Card"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 502 {object} map[string]string "Reference API unavailable"
// @Router /tcgdex/cards/{cardId} [get]
func (h *Handler) HandleGetCard(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	cardID := c.Params("cardId")

	card, err := h.client.GetCard(c.Context(), cardID)
	if err != nil {
		l.Error("Card fetch failed", zap.String("card_id", cardID), zap.Error(err))
		return sourceError(c, err)
	}
	if card == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "card not found: " + cardID,
		})
	}

	return c.JSON(card)
}

func sourceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, ErrSourceUnavailable) {
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
