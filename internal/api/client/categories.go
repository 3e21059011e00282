package client

import (
	"context"
	"net/url"

	domain "github.com/setebit/vendasml/pkg/types"
)

// ListCategories returns the root category tree for a site.
func (c *Client) ListCategories(ctx context.Context, siteID string) ([]domain.Category, error) {
	var categories []domain.Category
	path := "/api/v1/categorias?siteId=" + url.QueryEscape(siteID)
	if err := c.get(ctx, path, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory returns a single category with its children.
func (c *Client) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	var category domain.Category
	if err := c.get(ctx, "/api/v1/categorias/"+categoryID, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
