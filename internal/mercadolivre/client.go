// Package mercadolivre provides Mercado Livre API clients abstracted behind
// interfaces for testability.
package mercadolivre

import (
	"context"
	"net/url"

	domain "github.com/setebit/vendasml/pkg/types"
)

// AuthClient defines the interface for OAuth grant exchanges with the
// Mercado Livre authorization server.
type AuthClient interface {
	ExchangeCode(ctx context.Context, code string) (*domain.TokenGrant, error)
	RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenGrant, error)
}

// ItemClient defines the interface for bearer-authenticated item operations.
type ItemClient interface {
	CreateItem(ctx context.Context, token string, req *domain.ItemRequest) (*domain.ItemResponse, error)
	GetItem(ctx context.Context, token, itemID string) (*domain.ItemResponse, error)
	UpdateItem(ctx context.Context, token, itemID string, req *domain.ItemRequest) (*domain.ItemResponse, error)
	DeleteItem(ctx context.Context, token, itemID string) error
}

// CategoryClient defines the interface for category reads. Category
// endpoints are public and require no token.
type CategoryClient interface {
	ListCategories(ctx context.Context, siteID string) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*domain.Category, error)
}

// AuthorizationURL builds the URL the end user must visit to authorize the
// application.
func AuthorizationURL(authURL, clientID, redirectURI string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", clientID)
	params.Set("redirect_uri", redirectURI)
	return authURL + "/authorization?" + params.Encode()
}
