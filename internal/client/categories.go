package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spellcms/spellcms/types"
)

// CategoryService is a typed pass-through over the /categories endpoints.
type CategoryService struct {
	client *Client
}

func NewCategoryService(client *Client) *CategoryService {
	return &CategoryService{client: client}
}

func (s *CategoryService) List(ctx context.Context) ([]types.Category, error) {
	var categories []types.Category
	if err := s.client.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (types.Category, error) {
	var category types.Category
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, &category); err != nil {
		return types.Category{}, err
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, category types.Category) (types.Category, error) {
	var created types.Category
	if err := s.client.do(ctx, http.MethodPost, "/categories", category, &created); err != nil {
		return types.Category{}, err
	}
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, category types.Category) (types.Category, error) {
	var updated types.Category
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), category, &updated); err != nil {
		return types.Category{}, err
	}
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}
