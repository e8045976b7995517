package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spellcms/spellcms/types"
)

// PostService is a typed pass-through over the /posts endpoints.
type PostService struct {
	client *Client
}

func NewPostService(client *Client) *PostService {
	return &PostService{client: client}
}

func (s *PostService) List(ctx context.Context) ([]types.Post, error) {
	var posts []types.Post
	if err := s.client.do(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id int64) (types.Post, error) {
	var post types.Post
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, &post); err != nil {
		return types.Post{}, err
	}
	return post, nil
}

func (s *PostService) Create(ctx context.Context, post types.Post) (types.Post, error) {
	var created types.Post
	if err := s.client.do(ctx, http.MethodPost, "/posts", post, &created); err != nil {
		return types.Post{}, err
	}
	return created, nil
}

func (s *PostService) Update(ctx context.Context, id int64, post types.Post) (types.Post, error) {
	var updated types.Post
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/posts/%d", id), post, &updated); err != nil {
		return types.Post{}, err
	}
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil, nil)
}
