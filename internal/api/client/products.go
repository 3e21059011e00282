package client

import (
	"context"
	"net/url"

	domain "github.com/setebit/vendasml/pkg/types"
)

func productPath(itemID, userID string) string {
	p := "/api/v1/produtos"
	if itemID != "" {
		p += "/" + itemID
	}
	return p + "?userId=" + url.QueryEscape(userID)
}

// CreateProduct publishes a new listing for the user.
func (c *Client) CreateProduct(
	ctx context.Context,
	userID string,
	item *domain.ItemRequest,
) (*domain.ItemResponse, error) {
	var created domain.ItemResponse
	if err := c.post(ctx, productPath("", userID), item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetProduct fetches a listing for the user.
func (c *Client) GetProduct(
	ctx context.Context,
	userID, itemID string,
) (*domain.ItemResponse, error) {
	var item domain.ItemResponse
	if err := c.get(ctx, productPath(itemID, userID), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateProduct replaces a listing for the user.
func (c *Client) UpdateProduct(
	ctx context.Context,
	userID, itemID string,
	item *domain.ItemRequest,
) (*domain.ItemResponse, error) {
	var updated domain.ItemResponse
	if err := c.put(ctx, productPath(itemID, userID), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct removes a listing for the user.
func (c *Client) DeleteProduct(ctx context.Context, userID, itemID string) error {
	return c.del(ctx, productPath(itemID, userID), nil)
}
