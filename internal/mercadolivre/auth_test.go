package mercadolivre_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setebit/vendasml/internal/mercadolivre"
	"github.com/setebit/vendasml/internal/mlerrors"
)

// grantJSON returns a valid Mercado Livre OAuth token response as JSON bytes.
func grantJSON(token, refresh string) []byte {
	return []byte(fmt.Sprintf(
		`{"access_token":%q,"token_type":"Bearer","expires_in":21600,"scope":"offline_access read write","user_id":123456789,"refresh_token":%q}`,
		token, refresh,
	))
}

func TestOAuthClient_ExchangeCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    bool
		errContain string
	}{
		{
			name: "successful exchange",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(grantJSON("APP_USR-token", "TG-refresh"))
			},
		},
		{
			name: "server returns 400 with oauth error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write(
					[]byte(`{"error":"invalid_grant","error_description":"the authorization code is invalid or expired"}`),
				)
			},
			wantErr:    true,
			errContain: "invalid or expired",
		},
		{
			name: "server returns 500",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr:    true,
			errContain: "status 500",
		},
		{
			name: "server returns invalid JSON",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte("not json"))
			},
			wantErr:    true,
			errContain: "parsing grant response",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := mercadolivre.NewOAuthClient(
				"https://api.example",
				"app-id",
				"app-secret",
				"https://example.com/callback",
				mercadolivre.WithTokenURL(srv.URL),
			)

			grant, err := client.ExchangeCode(context.Background(), "TG-code")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, mlerrors.IsAuthError(err))
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "APP_USR-token", grant.AccessToken)
			assert.Equal(t, "TG-refresh", grant.RefreshToken)
			assert.Equal(t, int64(21600), grant.ExpiresIn)
			assert.Equal(t, int64(123456789), grant.UserID)
		})
	}
}

func TestOAuthClient_ExchangeCode_RequestFormat(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(
				t,
				"application/x-www-form-urlencoded",
				r.Header.Get("Content-Type"),
			)

			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.FormValue("grant_type"))
			assert.Equal(t, "app-id", r.FormValue("client_id"))
			assert.Equal(t, "app-secret", r.FormValue("client_secret"))
			assert.Equal(t, "TG-code", r.FormValue("code"))
			assert.Equal(t, "https://example.com/callback", r.FormValue("redirect_uri"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(grantJSON("tok", "ref"))
		}),
	)
	defer srv.Close()

	client := mercadolivre.NewOAuthClient(
		"https://api.example",
		"app-id",
		"app-secret",
		"https://example.com/callback",
		mercadolivre.WithTokenURL(srv.URL),
	)

	_, err := client.ExchangeCode(context.Background(), "TG-code")
	require.NoError(t, err)
}

func TestOAuthClient_RefreshToken_RequestFormat(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.FormValue("grant_type"))
			assert.Equal(t, "TG-old-refresh", r.FormValue("refresh_token"))
			assert.Empty(t, r.FormValue("redirect_uri"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(grantJSON("new-tok", "TG-new-refresh"))
		}),
	)
	defer srv.Close()

	client := mercadolivre.NewOAuthClient(
		"https://api.example",
		"app-id",
		"app-secret",
		"https://example.com/callback",
		mercadolivre.WithTokenURL(srv.URL),
	)

	grant, err := client.RefreshToken(context.Background(), "TG-old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-tok", grant.AccessToken)
	assert.Equal(t, "TG-new-refresh", grant.RefreshToken)
}

func TestOAuthClient_RefreshToken_GrantFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_client","message":"client not authorized"}`))
		}),
	)
	defer srv.Close()

	client := mercadolivre.NewOAuthClient(
		"https://api.example",
		"app-id",
		"app-secret",
		"https://example.com/callback",
		mercadolivre.WithTokenURL(srv.URL),
	)

	_, err := client.RefreshToken(context.Background(), "TG-refresh")
	require.Error(t, err)
	assert.True(t, mlerrors.IsAuthError(err))
	assert.Contains(t, err.Error(), "refresh_token")
	assert.Contains(t, err.Error(), "client not authorized")
}

func TestAuthorizationURL(t *testing.T) {
	t.Parallel()

	u := mercadolivre.AuthorizationURL(
		"https://auth.mercadolivre.com.br",
		"app-id",
		"https://example.com/callback",
	)

	assert.Contains(t, u, "https://auth.mercadolivre.com.br/authorization?")
	assert.Contains(t, u, "response_type=code")
	assert.Contains(t, u, "client_id=app-id")
	assert.Contains(t, u, "redirect_uri=https%3A%2F%2Fexample.com%2Fcallback")
}
