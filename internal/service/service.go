// Package service is the integration facade: it stitches the token
// lifecycle and the Mercado Livre clients into the operations the HTTP
// handlers and CLI expose. Handlers never touch tokens directly.
package service

import (
	"context"
	"log/slog"

	"github.com/setebit/vendasml/internal/mercadolivre"
	domain "github.com/setebit/vendasml/pkg/types"
)

// TokenManager is the slice of the token lifecycle the facade needs.
type TokenManager interface {
	ExchangeCode(ctx context.Context, code string) (*domain.TokenRecord, error)
	Refresh(ctx context.Context, userID string) (*domain.TokenRecord, error)
	ValidToken(ctx context.Context, userID string) (string, error)
}

// Service exposes the marketplace operations backed by stored credentials.
type Service struct {
	tokens     TokenManager
	items      mercadolivre.ItemClient
	categories mercadolivre.CategoryClient

	authURL     string
	clientID    string
	redirectURI string

	log *slog.Logger
}

// New creates the integration facade.
func New(
	tokens TokenManager,
	items mercadolivre.ItemClient,
	categories mercadolivre.CategoryClient,
	authURL, clientID, redirectURI string,
	log *slog.Logger,
) *Service {
	return &Service{
		tokens:      tokens,
		items:       items,
		categories:  categories,
		authURL:     authURL,
		clientID:    clientID,
		redirectURI: redirectURI,
		log:         log,
	}
}

// AuthorizationURL returns the Mercado Livre consent page URL the seller
// must visit to authorize this application.
func (s *Service) AuthorizationURL() string {
	return mercadolivre.AuthorizationURL(s.authURL, s.clientID, s.redirectURI)
}

// ExchangeCode trades an authorization code for stored credentials.
func (s *Service) ExchangeCode(ctx context.Context, code string) (*domain.TokenRecord, error) {
	return s.tokens.ExchangeCode(ctx, code)
}

// RefreshToken forces a refresh of the stored credentials for a user.
func (s *Service) RefreshToken(ctx context.Context, userID string) (*domain.TokenRecord, error) {
	return s.tokens.Refresh(ctx, userID)
}

// CreateProduct publishes a new listing on behalf of the user.
func (s *Service) CreateProduct(
	ctx context.Context,
	userID string,
	item *domain.ItemRequest,
) (*domain.ItemResponse, error) {
	accessToken, err := s.tokens.ValidToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.items.CreateItem(ctx, accessToken, item)
}

// GetProduct fetches a listing on behalf of the user.
func (s *Service) GetProduct(
	ctx context.Context,
	userID, itemID string,
) (*domain.ItemResponse, error) {
	accessToken, err := s.tokens.ValidToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.items.GetItem(ctx, accessToken, itemID)
}

// UpdateProduct replaces a listing on behalf of the user.
func (s *Service) UpdateProduct(
	ctx context.Context,
	userID, itemID string,
	item *domain.ItemRequest,
) (*domain.ItemResponse, error) {
	accessToken, err := s.tokens.ValidToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.items.UpdateItem(ctx, accessToken, itemID, item)
}

// DeleteProduct removes a listing on behalf of the user.
func (s *Service) DeleteProduct(ctx context.Context, userID, itemID string) error {
	accessToken, err := s.tokens.ValidToken(ctx, userID)
	if err != nil {
		return err
	}
	return s.items.DeleteItem(ctx, accessToken, itemID)
}

// ListCategories returns the root category tree for a site. No
// credentials are involved; the endpoint is public.
func (s *Service) ListCategories(ctx context.Context, siteID string) ([]domain.Category, error) {
	return s.categories.ListCategories(ctx, siteID)
}

// GetCategory returns a single category with its children.
func (s *Service) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categories.GetCategory(ctx, categoryID)
}
