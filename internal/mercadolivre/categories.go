package mercadolivre

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/setebit/vendasml/internal/metrics"
	domain "github.com/setebit/vendasml/pkg/types"
)

// CategoriesClient implements CategoryClient against the public Mercado
// Livre category endpoints. No authentication is required.
type CategoriesClient struct {
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
}

// CategoriesOption configures the CategoriesClient.
type CategoriesOption func(*CategoriesClient)

// WithCategoriesHTTPClient overrides the default HTTP client.
func WithCategoriesHTTPClient(hc *http.Client) CategoriesOption {
	return func(c *CategoriesClient) {
		c.client = hc
	}
}

// WithCategoriesRateLimiter injects a rate limiter shared with the other
// marketplace clients.
func WithCategoriesRateLimiter(r *RateLimiter) CategoriesOption {
	return func(c *CategoriesClient) {
		c.rateLimiter = r
	}
}

// NewCategoriesClient creates a Mercado Livre categories client rooted at baseURL.
func NewCategoriesClient(baseURL string, opts ...CategoriesOption) *CategoriesClient {
	c := &CategoriesClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListCategories returns the top-level categories of a site (MLB, MLA, ...).
func (c *CategoriesClient) ListCategories(
	ctx context.Context,
	siteID string,
) ([]domain.Category, error) {
	var categories []domain.Category
	url := fmt.Sprintf("%s/sites/%s/categories", c.baseURL, siteID)
	if err := c.get(ctx, url, &categories); err != nil {
		return nil, fmt.Errorf("listing categories for site %s: %w", siteID, err)
	}
	return categories, nil
}

// GetCategory returns one category with its children_categories populated.
func (c *CategoriesClient) GetCategory(
	ctx context.Context,
	categoryID string,
) (*domain.Category, error) {
	var category domain.Category
	url := c.baseURL + "/categories/" + categoryID
	if err := c.get(ctx, url, &category); err != nil {
		return nil, fmt.Errorf("getting category %s: %w", categoryID, err)
	}
	return &category, nil
}

func (c *CategoriesClient) get(ctx context.Context, url string, dst any) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return err
		}
		metrics.MLAPICallsTotal.Inc()
		metrics.MLDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	return nil
}
