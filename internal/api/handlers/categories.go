package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/setebit/vendasml/internal/service"
	domain "github.com/setebit/vendasml/pkg/types"
)

// CategoriesHandler handles public category reads.
type CategoriesHandler struct {
	service *service.Service
}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler(s *service.Service) *CategoriesHandler {
	return &CategoriesHandler{service: s}
}

// --- Input/Output types ---

// ListCategoriesInput selects the marketplace site to read from.
type ListCategoriesInput struct {
	SiteID string `query:"siteId" default:"MLB" doc:"Marketplace site ID, e.g. MLB for Brazil"`
}

// ListCategoriesOutput is the root category list for a site.
type ListCategoriesOutput struct {
	Body []domain.Category
}

// GetCategoryInput identifies a single category.
type GetCategoryInput struct {
	CategoryID string `path:"categoryId" doc:"Category ID, e.g. MLB1648"`
}

// GetCategoryOutput is a single category with its children.
type GetCategoryOutput struct {
	Body domain.Category
}

// --- Handlers ---

// ListCategories returns the root categories for a site.
func (h *CategoriesHandler) ListCategories(
	ctx context.Context,
	input *ListCategoriesInput,
) (*ListCategoriesOutput, error) {
	categories, err := h.service.ListCategories(ctx, input.SiteID)
	if err != nil {
		return nil, mapServiceError(err)
	}

	if categories == nil {
		categories = []domain.Category{}
	}

	return &ListCategoriesOutput{Body: categories}, nil
}

// GetCategory returns a single category by ID.
func (h *CategoriesHandler) GetCategory(
	ctx context.Context,
	input *GetCategoryInput,
) (*GetCategoryOutput, error) {
	category, err := h.service.GetCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return &GetCategoryOutput{Body: *category}, nil
}

// RegisterCategoryRoutes registers category endpoints with the Huma API.
func RegisterCategoryRoutes(api huma.API, h *CategoriesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categorias",
		Summary:     "List site categories",
		Description: "Returns the root category tree for a marketplace site. No credentials required.",
		Tags:        []string{"categorias"},
	}, h.ListCategories)

	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/api/v1/categorias/{categoryId}",
		Summary:     "Get a category",
		Description: "Returns a single category with its children and settings.",
		Tags:        []string{"categorias"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetCategory)
}
