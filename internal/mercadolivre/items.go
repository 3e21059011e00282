package mercadolivre

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/setebit/vendasml/internal/metrics"
	"github.com/setebit/vendasml/internal/mlerrors"
	domain "github.com/setebit/vendasml/pkg/types"
)

// ItemsClient implements ItemClient against the Mercado Livre items API.
// Every call carries the caller-supplied bearer token; the client holds no
// credential state of its own.
type ItemsClient struct {
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
}

// ItemsOption configures the ItemsClient.
type ItemsOption func(*ItemsClient)

// WithItemsHTTPClient overrides the default HTTP client.
func WithItemsHTTPClient(hc *http.Client) ItemsOption {
	return func(c *ItemsClient) {
		c.client = hc
	}
}

// WithItemsRateLimiter injects a rate limiter that controls per-second and
// daily API call limits. When set, every item call goes through Wait() first.
func WithItemsRateLimiter(r *RateLimiter) ItemsOption {
	return func(c *ItemsClient) {
		c.rateLimiter = r
	}
}

// NewItemsClient creates a Mercado Livre items client rooted at baseURL.
func NewItemsClient(baseURL string, opts ...ItemsOption) *ItemsClient {
	c := &ItemsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateItem publishes a new item on the marketplace.
func (c *ItemsClient) CreateItem(
	ctx context.Context,
	token string,
	req *domain.ItemRequest,
) (*domain.ItemResponse, error) {
	var item domain.ItemResponse
	err := c.do(ctx, http.MethodPost, c.baseURL+"/items", token, req, &item)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	return &item, nil
}

// GetItem fetches an item by its marketplace ID.
func (c *ItemsClient) GetItem(
	ctx context.Context,
	token, itemID string,
) (*domain.ItemResponse, error) {
	var item domain.ItemResponse
	err := c.do(ctx, http.MethodGet, c.baseURL+"/items/"+itemID, token, nil, &item)
	if err != nil {
		return nil, fmt.Errorf("getting item %s: %w", itemID, err)
	}
	return &item, nil
}

// UpdateItem replaces an item's mutable fields.
func (c *ItemsClient) UpdateItem(
	ctx context.Context,
	token, itemID string,
	req *domain.ItemRequest,
) (*domain.ItemResponse, error) {
	var item domain.ItemResponse
	err := c.do(ctx, http.MethodPut, c.baseURL+"/items/"+itemID, token, req, &item)
	if err != nil {
		return nil, fmt.Errorf("updating item %s: %w", itemID, err)
	}
	return &item, nil
}

// DeleteItem removes an item from the marketplace.
func (c *ItemsClient) DeleteItem(ctx context.Context, token, itemID string) error {
	if err := c.do(ctx, http.MethodDelete, c.baseURL+"/items/"+itemID, token, nil, nil); err != nil {
		return fmt.Errorf("deleting item %s: %w", itemID, err)
	}
	return nil
}

func (c *ItemsClient) do(
	ctx context.Context,
	method, url, token string,
	reqBody, dst any,
) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return err
		}
		metrics.MLAPICallsTotal.Inc()
		metrics.MLDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	var bodyReader io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, body)
	}

	if dst != nil && len(body) > 0 {
		if err := json.Unmarshal(body, dst); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
	}

	return nil
}

type apiErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// decodeAPIError maps marketplace rejections onto the domain taxonomy:
// 404 becomes ErrNotFound, everything else a ServiceError carrying the
// upstream status and stated reason.
func decodeAPIError(status int, body []byte) error {
	if status == http.StatusNotFound {
		return mlerrors.ErrNotFound
	}

	var errResp apiErrorResponse
	_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing

	reason := errResp.Message
	if reason == "" {
		reason = errResp.Error
	}
	if reason == "" {
		reason = string(body)
	}

	return &mlerrors.ServiceError{Status: status, Reason: reason}
}
