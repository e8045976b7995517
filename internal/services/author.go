package services

import (
	"context"
	"errors"
	"strings"

	"github.com/spellcms/spellcms/internal/events"
	"github.com/spellcms/spellcms/types"
)

// ErrMissingName is returned when an author has no name.
var ErrMissingName = errors.New("name is required")

// AuthorRepository defines persistence operations for authors.
type AuthorRepository interface {
	List(ctx context.Context) ([]types.Author, error)
	Get(ctx context.Context, id int64) (types.Author, error)
	Create(ctx context.Context, author types.Author) (types.Author, error)
	Update(ctx context.Context, author types.Author) (types.Author, error)
	Delete(ctx context.Context, id int64) error
}

// AuthorService encapsulates author use-cases.
type AuthorService struct {
	repo   AuthorRepository
	events *events.Publisher
}

func NewAuthorService(repo AuthorRepository, publisher *events.Publisher) *AuthorService {
	return &AuthorService{repo: repo, events: publisher}
}

func (s *AuthorService) List(ctx context.Context) ([]types.Author, error) {
	return s.repo.List(ctx)
}

func (s *AuthorService) Get(ctx context.Context, id int64) (types.Author, error) {
	return s.repo.Get(ctx, id)
}

func (s *AuthorService) Create(ctx context.Context, author types.Author) (types.Author, error) {
	author.Name = strings.TrimSpace(author.Name)
	if author.Name == "" {
		return types.Author{}, ErrMissingName
	}

	created, err := s.repo.Create(ctx, author)
	if err != nil {
		return types.Author{}, err
	}
	s.events.Publish(ctx, "author", events.ActionCreated, created.ID)
	return created, nil
}

func (s *AuthorService) Update(ctx context.Context, author types.Author) (types.Author, error) {
	author.Name = strings.TrimSpace(author.Name)
	if author.Name == "" {
		return types.Author{}, ErrMissingName
	}

	updated, err := s.repo.Update(ctx, author)
	if err != nil {
		return types.Author{}, err
	}
	s.events.Publish(ctx, "author", events.ActionUpdated, updated.ID)
	return updated, nil
}

func (s *AuthorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(ctx, "author", events.ActionDeleted, id)
	return nil
}
