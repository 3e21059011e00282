package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/setebit/vendasml/internal/service"
	domain "github.com/setebit/vendasml/pkg/types"
)

// ProductsHandler handles listing CRUD on behalf of connected sellers.
type ProductsHandler struct {
	service *service.Service
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(s *service.Service) *ProductsHandler {
	return &ProductsHandler{service: s}
}

// --- Input/Output types ---

// CreateProductInput creates a listing for a user.
type CreateProductInput struct {
	UserID string `query:"userId" required:"true" doc:"Mercado Livre user ID"`
	Body   domain.ItemRequest
}

// GetProductInput fetches a listing for a user.
type GetProductInput struct {
	ID     string `path:"id" doc:"Mercado Livre item ID"`
	UserID string `query:"userId" required:"true" doc:"Mercado Livre user ID"`
}

// UpdateProductInput replaces a listing for a user.
type UpdateProductInput struct {
	ID     string `path:"id" doc:"Mercado Livre item ID"`
	UserID string `query:"userId" required:"true" doc:"Mercado Livre user ID"`
	Body   domain.ItemRequest
}

// DeleteProductInput removes a listing for a user.
type DeleteProductInput struct {
	ID     string `path:"id" doc:"Mercado Livre item ID"`
	UserID string `query:"userId" required:"true" doc:"Mercado Livre user ID"`
}

// ProductOutput is the marketplace's view of a listing.
type ProductOutput struct {
	Body domain.ItemResponse
}

// CreateProductOutput is the response for a newly published listing.
type CreateProductOutput struct {
	Status int
	Body   domain.ItemResponse
}

// --- Handlers ---

// CreateProduct publishes a new listing.
func (h *ProductsHandler) CreateProduct(
	ctx context.Context,
	input *CreateProductInput,
) (*CreateProductOutput, error) {
	item, err := h.service.CreateProduct(ctx, input.UserID, &input.Body)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return &CreateProductOutput{Status: http.StatusCreated, Body: *item}, nil
}

// GetProduct fetches a listing.
func (h *ProductsHandler) GetProduct(
	ctx context.Context,
	input *GetProductInput,
) (*ProductOutput, error) {
	item, err := h.service.GetProduct(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return &ProductOutput{Body: *item}, nil
}

// UpdateProduct replaces a listing.
func (h *ProductsHandler) UpdateProduct(
	ctx context.Context,
	input *UpdateProductInput,
) (*ProductOutput, error) {
	item, err := h.service.UpdateProduct(ctx, input.UserID, input.ID, &input.Body)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return &ProductOutput{Body: *item}, nil
}

// DeleteProduct removes a listing.
func (h *ProductsHandler) DeleteProduct(
	ctx context.Context,
	input *DeleteProductInput,
) (*struct{}, error) {
	if err := h.service.DeleteProduct(ctx, input.UserID, input.ID); err != nil {
		return nil, mapServiceError(err)
	}
	return &struct{}{}, nil
}

// RegisterProductRoutes registers product endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-product",
		Method:        http.MethodPost,
		Path:          "/api/v1/produtos",
		Summary:       "Publish a listing",
		Description:   "Creates a new Mercado Livre listing on behalf of the user.",
		Tags:          []string{"produtos"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.CreateProduct)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/produtos/{id}",
		Summary:     "Get a listing",
		Description: "Fetches a Mercado Livre listing on behalf of the user.",
		Tags:        []string{"produtos"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.GetProduct)

	huma.Register(api, huma.Operation{
		OperationID: "update-product",
		Method:      http.MethodPut,
		Path:        "/api/v1/produtos/{id}",
		Summary:     "Update a listing",
		Description: "Replaces a Mercado Livre listing on behalf of the user.",
		Tags:        []string{"produtos"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.UpdateProduct)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-product",
		Method:        http.MethodDelete,
		Path:          "/api/v1/produtos/{id}",
		Summary:       "Delete a listing",
		Description:   "Removes a Mercado Livre listing on behalf of the user.",
		Tags:          []string{"produtos"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.DeleteProduct)
}
