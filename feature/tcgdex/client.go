package tcgdex

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client is a typed, read-only client for the TCGdex REST API.
//
// Absence and unavailability are kept distinct: all Get* methods return
// (nil, nil) when the remote entity does not exist, and an error wrapping
// ErrSourceUnavailable when the API cannot be reached or answers with an
// unexpected status. The caller decides whether absence is an error.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a client for the configured dataset language.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 20
	}

	base := strings.TrimRight(cfg.BaseURL, "/") + "/" + cfg.Language

	rc := resty.New().
		SetBaseURL(base).
		SetTimeout(time.Duration(timeout) * time.Second).
		SetHeader("User-Agent", cfg.UserAgent)

	return &Client{http: rc, logger: logger}
}

// get performs a GET against the API and decodes the body into out.
// It reports found=false (without error) on a 404 response.
func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) (bool, error) {
	req := c.http.R().SetContext(ctx).SetResult(out)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		c.logger.Warn("TCGdex request failed", zap.String("path", path), zap.Error(err))
		return false, fmt.Errorf("%w: GET %s: %v", ErrSourceUnavailable, path, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if !resp.IsSuccess() {
		return false, fmt.Errorf("%w: GET %s: unexpected status %d", ErrSourceUnavailable, path, resp.StatusCode())
	}

	return true, nil
}

// ListSeries returns all series summaries. The listing does not include sets.
func (c *Client) ListSeries(ctx context.Context) ([]SeriesSummary, error) {
	var dtos []seriesResumeDTO
	if _, err := c.get(ctx, "/series", nil, &dtos); err != nil {
		return nil, err
	}

	series := make([]SeriesSummary, 0, len(dtos))
	for _, d := range dtos {
		series = append(series, SeriesSummary(d))
	}
	return series, nil
}

// GetSeries returns a single series with its sets, or nil when it does not exist.
func (c *Client) GetSeries(ctx context.Context, seriesID string) (*Series, error) {
	var dto seriesDTO
	found, err := c.get(ctx, "/series/"+seriesID, nil, &dto)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	series := &Series{ID: dto.ID, Name: dto.Name}
	for _, s := range dto.Sets {
		series.Sets = append(series.Sets, s.normalizeSummary())
	}
	return series, nil
}

// ListSets returns all set summaries across every series.
func (c *Client) ListSets(ctx context.Context) ([]Set, error) {
	var dtos []setResumeDTO
	if _, err := c.get(ctx, "/sets", nil, &dtos); err != nil {
		return nil, err
	}

	sets := make([]Set, 0, len(dtos))
	for _, d := range dtos {
		sets = append(sets, d.normalizeSummary())
	}
	return sets, nil
}

// GetSet returns a single set including its card list, or nil when it does not exist.
func (c *Client) GetSet(ctx context.Context, setID string) (*Set, error) {
	var dto setDTO
	found, err := c.get(ctx, "/sets/"+setID, nil, &dto)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return dto.normalize(), nil
}

// GetCard returns a card by its global ID (e.g. "swsh3-136"), or nil when absent.
func (c *Client) GetCard(ctx context.Context, cardID string) (*Card, error) {
	var dto cardDTO
	found, err := c.get(ctx, "/cards/"+cardID, nil, &dto)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return dto.normalize(), nil
}

// GetCardInSet returns a card by set ID and set-local ID, or nil when absent.
func (c *Client) GetCardInSet(ctx context.Context, setID, localID string) (*Card, error) {
	var dto cardDTO
	found, err := c.get(ctx, "/sets/"+setID+"/"+localID, nil, &dto)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return dto.normalize(), nil
}

// SearchCardsByName returns card summaries whose name matches the query.
func (c *Client) SearchCardsByName(ctx context.Context, query string) ([]CardSummary, error) {
	var dtos []cardResumeDTO
	if _, err := c.get(ctx, "/cards", map[string]string{"name": query}, &dtos); err != nil {
		return nil, err
	}

	cards := make([]CardSummary, 0, len(dtos))
	for _, d := range dtos {
		cards = append(cards, CardSummary(d))
	}
	return cards, nil
}

// ListRarities returns the rarity enumeration of the dataset.
func (c *Client) ListRarities(ctx context.Context) ([]string, error) {
	return c.listStrings(ctx, "/rarities")
}

// ListCategories returns the card category enumeration of the dataset.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	return c.listStrings(ctx, "/categories")
}

// ListTypes returns the energy type enumeration of the dataset.
func (c *Client) ListTypes(ctx context.Context) ([]string, error) {
	return c.listStrings(ctx, "/types")
}

func (c *Client) listStrings(ctx context.Context, path string) ([]string, error) {
	var values []string
	if _, err := c.get(ctx, path, nil, &values); err != nil {
		return nil, err
	}
	return values, nil
}
