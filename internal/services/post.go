package services

import (
	"context"
	"errors"
	"strings"

	"github.com/spellcms/spellcms/internal/events"
	"github.com/spellcms/spellcms/internal/store"
	"github.com/spellcms/spellcms/types"
)

// Validation failures surfaced to handlers as 400s.
var (
	ErrUnknownAuthor   = errors.New("author does not exist")
	ErrUnknownCategory = errors.New("category does not exist")
	ErrInvalidStatus   = errors.New("status must be draft or published")
	ErrMissingFields   = errors.New("title and body are required")
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	List(ctx context.Context) ([]types.Post, error)
	Get(ctx context.Context, id int64) (types.Post, error)
	Create(ctx context.Context, post types.Post) (types.Post, error)
	Update(ctx context.Context, post types.Post) (types.Post, error)
	Delete(ctx context.Context, id int64) error
}

// AuthorLookup is the slice of the author store the post service needs to
// verify references.
type AuthorLookup interface {
	Get(ctx context.Context, id int64) (types.Author, error)
}

// CategoryLookup verifies category references.
type CategoryLookup interface {
	Get(ctx context.Context, id int64) (types.Category, error)
}

// PostService encapsulates post use-cases. Author and category references
// are checked on create and update; deleting an author or category does
// not cascade, so posts referencing a removed record stay readable.
type PostService struct {
	repo       PostRepository
	authors    AuthorLookup
	categories CategoryLookup
	events     *events.Publisher
}

func NewPostService(repo PostRepository, authors AuthorLookup, categories CategoryLookup, publisher *events.Publisher) *PostService {
	return &PostService{
		repo:       repo,
		authors:    authors,
		categories: categories,
		events:     publisher,
	}
}

func (s *PostService) List(ctx context.Context) ([]types.Post, error) {
	return s.repo.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id int64) (types.Post, error) {
	return s.repo.Get(ctx, id)
}

func (s *PostService) Create(ctx context.Context, post types.Post) (types.Post, error) {
	if err := s.validate(ctx, &post); err != nil {
		return types.Post{}, err
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return types.Post{}, err
	}
	s.events.Publish(ctx, "post", events.ActionCreated, created.ID)
	return created, nil
}

func (s *PostService) Update(ctx context.Context, post types.Post) (types.Post, error) {
	if err := s.validate(ctx, &post); err != nil {
		return types.Post{}, err
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return types.Post{}, err
	}
	s.events.Publish(ctx, "post", events.ActionUpdated, updated.ID)
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(ctx, "post", events.ActionDeleted, id)
	return nil
}

func (s *PostService) validate(ctx context.Context, post *types.Post) error {
	post.Title = strings.TrimSpace(post.Title)
	post.Body = strings.TrimSpace(post.Body)
	if post.Title == "" || post.Body == "" {
		return ErrMissingFields
	}

	if post.Status == "" {
		post.Status = types.StatusDraft
	}
	if post.Status != types.StatusDraft && post.Status != types.StatusPublished {
		return ErrInvalidStatus
	}

	if _, err := s.authors.Get(ctx, post.AuthorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnknownAuthor
		}
		return err
	}
	if _, err := s.categories.Get(ctx, post.CategoryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnknownCategory
		}
		return err
	}
	return nil
}
