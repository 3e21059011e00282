package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/setebit/vendasml/internal/service"
	domain "github.com/setebit/vendasml/pkg/types"
)

// AuthHandler handles OAuth authorization and token lifecycle endpoints.
type AuthHandler struct {
	service *service.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s *service.Service) *AuthHandler {
	return &AuthHandler{service: s}
}

// --- Input/Output types ---

// GetAuthURLOutput carries the consent page URL.
type GetAuthURLOutput struct {
	Body struct {
		URL string `json:"url" doc:"Mercado Livre consent page URL"`
	}
}

// ExchangeCodeInput is the body for trading an authorization code.
type ExchangeCodeInput struct {
	Body struct {
		Code string `json:"code" minLength:"1" doc:"Authorization code from the OAuth callback"`
	}
}

// TokenOutput is the stored credential record returned by token endpoints.
type TokenOutput struct {
	Body domain.TokenRecord
}

// RefreshTokenInput identifies the account whose token is refreshed.
type RefreshTokenInput struct {
	UserID string `path:"userId" doc:"Mercado Livre user ID"`
}

// --- Handlers ---

// GetAuthURL returns the URL the seller must visit to authorize the app.
func (h *AuthHandler) GetAuthURL(
	_ context.Context,
	_ *struct{},
) (*GetAuthURLOutput, error) {
	out := &GetAuthURLOutput{}
	out.Body.URL = h.service.AuthorizationURL()
	return out, nil
}

// ExchangeCode trades an authorization code for stored credentials.
func (h *AuthHandler) ExchangeCode(
	ctx context.Context,
	input *ExchangeCodeInput,
) (*TokenOutput, error) {
	rec, err := h.service.ExchangeCode(ctx, input.Body.Code)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return &TokenOutput{Body: *rec}, nil
}

// RefreshToken forces a refresh of the stored credentials for a user.
func (h *AuthHandler) RefreshToken(
	ctx context.Context,
	input *RefreshTokenInput,
) (*TokenOutput, error) {
	rec, err := h.service.RefreshToken(ctx, input.UserID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return &TokenOutput{Body: *rec}, nil
}

// RegisterAuthRoutes registers OAuth endpoints with the Huma API.
func RegisterAuthRoutes(api huma.API, h *AuthHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-auth-url",
		Method:      http.MethodGet,
		Path:        "/api/v1/auth/url",
		Summary:     "Get the authorization URL",
		Description: "Returns the Mercado Livre consent page URL for connecting a seller account.",
		Tags:        []string{"auth"},
	}, h.GetAuthURL)

	huma.Register(api, huma.Operation{
		OperationID: "exchange-code",
		Method:      http.MethodPost,
		Path:        "/api/v1/token",
		Summary:     "Exchange an authorization code",
		Description: "Trades an OAuth authorization code for tokens and stores them.",
		Tags:        []string{"auth"},
		Errors:      []int{http.StatusBadRequest, http.StatusUnprocessableEntity},
	}, h.ExchangeCode)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-token",
		Method:      http.MethodPost,
		Path:        "/api/v1/refresh/{userId}",
		Summary:     "Refresh stored credentials",
		Description: "Renews the stored token for a user via the refresh grant.",
		Tags:        []string{"auth"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.RefreshToken)
}
