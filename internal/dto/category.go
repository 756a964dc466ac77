package dto

import (
	"github.com/parishledger/parishledger/internal/core/domain"
)

// --- Category DTOs ---

// CreateCategoryRequest defines data for creating a new category.
type CreateCategoryRequest struct {
	Name string              `json:"name" binding:"required,min=2,max=80"`
	Kind domain.CategoryKind `json:"kind" binding:"required,oneof=income expense"`
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	Kind string `form:"kind" binding:"omitempty,oneof=income expense"`
}

// CategoryResponse defines data returned for a category.
type CategoryResponse struct {
	CategoryID string              `json:"categoryID"`
	ChurchID   string              `json:"churchID"`
	Name       string              `json:"name"`
	Kind       domain.CategoryKind `json:"kind"`
	IsDefault  bool                `json:"isDefault"`
}

// ToCategoryResponse converts domain.Category to DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		ChurchID:   c.ChurchID,
		Name:       c.Name,
		Kind:       c.Kind,
		IsDefault:  c.IsDefault,
	}
}

// ListCategoriesResponse wraps a list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToListCategoriesResponse converts a slice of domain.Category to DTO.
func ToListCategoriesResponse(cs []domain.Category) ListCategoriesResponse {
	list := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		list[i] = ToCategoryResponse(&c)
	}
	return ListCategoriesResponse{Categories: list}
}
