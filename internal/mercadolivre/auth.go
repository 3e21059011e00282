package mercadolivre

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/setebit/vendasml/internal/mlerrors"
	domain "github.com/setebit/vendasml/pkg/types"
)

const defaultTokenPath = "/oauth/token" //nolint:gosec // not a credential

// OAuthClient implements AuthClient against the Mercado Livre OAuth token
// endpoint. Both grant types post form-encoded bodies to the same URL.
// Stateless; token persistence is the caller's concern.
type OAuthClient struct {
	clientID     string
	clientSecret string
	redirectURI  string
	tokenURL     string
	client       *http.Client
}

// OAuthOption configures the OAuthClient.
type OAuthOption func(*OAuthClient)

// WithTokenURL overrides the default token endpoint.
func WithTokenURL(u string) OAuthOption {
	return func(c *OAuthClient) {
		c.tokenURL = u
	}
}

// WithAuthHTTPClient overrides the default HTTP client.
func WithAuthHTTPClient(hc *http.Client) OAuthOption {
	return func(c *OAuthClient) {
		c.client = hc
	}
}

// NewOAuthClient creates a Mercado Livre OAuth client for the given
// application credentials. baseURL is the marketplace API root.
func NewOAuthClient(baseURL, clientID, clientSecret, redirectURI string, opts ...OAuthOption) *OAuthClient {
	c := &OAuthClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		tokenURL:     strings.TrimRight(baseURL, "/") + defaultTokenPath,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type grantErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
}

// ExchangeCode sends an authorization_code grant and returns the issued
// token pair. Any transport or protocol failure surfaces as an AuthError.
func (c *OAuthClient) ExchangeCode(ctx context.Context, code string) (*domain.TokenGrant, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"code":          {code},
		"redirect_uri":  {c.redirectURI},
	}
	return c.postGrant(ctx, "exchange_code", form)
}

// RefreshToken sends a refresh_token grant using the stored refresh token.
func (c *OAuthClient) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenGrant, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"refresh_token": {refreshToken},
	}
	return c.postGrant(ctx, "refresh_token", form)
}

func (c *OAuthClient) postGrant(
	ctx context.Context,
	op string,
	form url.Values,
) (*domain.TokenGrant, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, &mlerrors.AuthError{Op: op, Cause: fmt.Errorf("creating grant request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &mlerrors.AuthError{Op: op, Cause: fmt.Errorf("executing grant request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &mlerrors.AuthError{Op: op, Cause: fmt.Errorf("reading grant response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp grantErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		reason := errResp.ErrorDescription
		if reason == "" {
			reason = errResp.Message
		}
		return nil, &mlerrors.AuthError{
			Op: op,
			Cause: fmt.Errorf(
				"grant request failed (status %d): %s - %s",
				resp.StatusCode,
				errResp.Error,
				reason,
			),
		}
	}

	var grant domain.TokenGrant
	if err := json.Unmarshal(body, &grant); err != nil {
		return nil, &mlerrors.AuthError{Op: op, Cause: fmt.Errorf("parsing grant response: %w", err)}
	}

	return &grant, nil
}
