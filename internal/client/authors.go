package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spellcms/spellcms/types"
)

// AuthorService is a typed pass-through over the /authors endpoints.
type AuthorService struct {
	client *Client
}

func NewAuthorService(client *Client) *AuthorService {
	return &AuthorService{client: client}
}

func (s *AuthorService) List(ctx context.Context) ([]types.Author, error) {
	var authors []types.Author
	if err := s.client.do(ctx, http.MethodGet, "/authors", nil, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (s *AuthorService) Get(ctx context.Context, id int64) (types.Author, error) {
	var author types.Author
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/authors/%d", id), nil, &author); err != nil {
		return types.Author{}, err
	}
	return author, nil
}

func (s *AuthorService) Create(ctx context.Context, author types.Author) (types.Author, error) {
	var created types.Author
	if err := s.client.do(ctx, http.MethodPost, "/authors", author, &created); err != nil {
		return types.Author{}, err
	}
	return created, nil
}

func (s *AuthorService) Update(ctx context.Context, id int64, author types.Author) (types.Author, error) {
	var updated types.Author
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/authors/%d", id), author, &updated); err != nil {
		return types.Author{}, err
	}
	return updated, nil
}

func (s *AuthorService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/authors/%d", id), nil, nil)
}
