package mercadolivre_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setebit/vendasml/internal/mercadolivre"
	"github.com/setebit/vendasml/internal/mlerrors"
)

func TestCategoriesClient_ListCategories(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sites/MLB/categories", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))

			_, _ = w.Write([]byte(
				`[{"id":"MLB5672","name":"Acessórios para Veículos"},{"id":"MLB1648","name":"Informática"}]`,
			))
		}),
	)
	defer srv.Close()

	client := mercadolivre.NewCategoriesClient(srv.URL)

	categories, err := client.ListCategories(context.Background(), "MLB")
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "MLB5672", categories[0].ID)
	assert.Equal(t, "Informática", categories[1].Name)
	assert.Empty(t, categories[0].ChildrenCategories)
}

func TestCategoriesClient_GetCategory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/categories/MLB1648", r.URL.Path)

			_, _ = w.Write([]byte(`{
				"id": "MLB1648",
				"name": "Informática",
				"children_categories": [
					{"id": "MLB1649", "name": "Notebooks"},
					{"id": "MLB1700", "name": "Monitores"}
				],
				"settings": {"listing_allowed": false, "max_title_length": 60}
			}`))
		}),
	)
	defer srv.Close()

	client := mercadolivre.NewCategoriesClient(srv.URL)

	category, err := client.GetCategory(context.Background(), "MLB1648")
	require.NoError(t, err)
	assert.Equal(t, "MLB1648", category.ID)
	require.Len(t, category.ChildrenCategories, 2)
	assert.Equal(t, "Notebooks", category.ChildrenCategories[0].Name)
	require.NotNil(t, category.Settings)
	require.NotNil(t, category.Settings.MaxTitleLength)
	assert.Equal(t, 60, *category.Settings.MaxTitleLength)
}

func TestCategoriesClient_GetCategory_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Category not found","error":"not_found"}`))
		}),
	)
	defer srv.Close()

	client := mercadolivre.NewCategoriesClient(srv.URL)

	_, err := client.GetCategory(context.Background(), "MLB0")
	require.Error(t, err)
	assert.ErrorIs(t, err, mlerrors.ErrNotFound)
}
