package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/setebit/vendasml/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListCategories(context.Background(), "MLB")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListCategories(context.Background(), "MLB")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_GetAuthURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/url", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"url": "https://auth.mercadolivre.com.br/authorization?client_id=x",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	u, err := c.GetAuthURL(context.Background())
	require.NoError(t, err)
	assert.Contains(t, u, "authorization")
}

func TestClient_ExchangeCode(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/token", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "AUTH-CODE", body["code"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.TokenRecord{
			UserID:      "123456",
			AccessToken: "APP_USR-token",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	rec, err := c.ExchangeCode(context.Background(), "AUTH-CODE")
	require.NoError(t, err)
	assert.Equal(t, "123456", rec.UserID)
}

func TestClient_RefreshToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/refresh/123456", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.TokenRecord{
			UserID:      "123456",
			AccessToken: "APP_USR-rotated",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	rec, err := c.RefreshToken(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, "APP_USR-rotated", rec.AccessToken)
}

func TestClient_CreateProduct(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/produtos", r.URL.Path)
		assert.Equal(t, "123456", r.URL.Query().Get("userId"))

		var item domain.ItemRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&item))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.ItemResponse{
			ID:    "MLB123",
			Title: item.Title,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	item, err := c.CreateProduct(context.Background(), "123456", &domain.ItemRequest{
		Title: "Notebook Gamer 16GB",
	})
	require.NoError(t, err)
	assert.Equal(t, "MLB123", item.ID)
}

func TestClient_DeleteProduct(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/produtos/MLB123", r.URL.Path)
		assert.Equal(t, "123456", r.URL.Query().Get("userId"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteProduct(context.Background(), "123456", "MLB123"))
}

func TestClient_GetCategory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/categorias/MLB1648", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Category{ID: "MLB1648", Name: "Informática"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	category, err := c.GetCategory(context.Background(), "MLB1648")
	require.NoError(t, err)
	assert.Equal(t, "Informática", category.Name)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
