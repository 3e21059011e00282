package client

import (
	"context"

	domain "github.com/setebit/vendasml/pkg/types"
)

type authURLResponse struct {
	URL string `json:"url"`
}

// GetAuthURL returns the Mercado Livre consent page URL.
func (c *Client) GetAuthURL(ctx context.Context) (string, error) {
	var resp authURLResponse
	if err := c.get(ctx, "/api/v1/auth/url", &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// ExchangeCode trades an authorization code for stored credentials.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*domain.TokenRecord, error) {
	var rec domain.TokenRecord
	body := map[string]string{"code": code}
	if err := c.post(ctx, "/api/v1/token", body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// RefreshToken forces a refresh of the stored credentials for a user.
func (c *Client) RefreshToken(ctx context.Context, userID string) (*domain.TokenRecord, error) {
	var rec domain.TokenRecord
	if err := c.post(ctx, "/api/v1/refresh/"+userID, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
