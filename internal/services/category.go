package services

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/spellcms/spellcms/internal/events"
	"github.com/spellcms/spellcms/types"
)

// ErrSlugTaken is returned when a category slug is already in use.
var ErrSlugTaken = errors.New("slug already taken")

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]types.Category, error)
	Get(ctx context.Context, id int64) (types.Category, error)
	Create(ctx context.Context, category types.Category) (types.Category, error)
	Update(ctx context.Context, category types.Category) (types.Category, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryService encapsulates category use-cases. Slugs are unique: an
// empty slug is derived from the name, and a create or rename that would
// collide with another category fails with ErrSlugTaken.
type CategoryService struct {
	repo   CategoryRepository
	events *events.Publisher
}

func NewCategoryService(repo CategoryRepository, publisher *events.Publisher) *CategoryService {
	return &CategoryService{repo: repo, events: publisher}
}

func (s *CategoryService) List(ctx context.Context) ([]types.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (types.Category, error) {
	return s.repo.Get(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, category types.Category) (types.Category, error) {
	if err := s.normalize(ctx, &category); err != nil {
		return types.Category{}, err
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return types.Category{}, err
	}
	s.events.Publish(ctx, "category", events.ActionCreated, created.ID)
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, category types.Category) (types.Category, error) {
	if err := s.normalize(ctx, &category); err != nil {
		return types.Category{}, err
	}

	updated, err := s.repo.Update(ctx, category)
	if err != nil {
		return types.Category{}, err
	}
	s.events.Publish(ctx, "category", events.ActionUpdated, updated.ID)
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(ctx, "category", events.ActionDeleted, id)
	return nil
}

func (s *CategoryService) normalize(ctx context.Context, category *types.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return ErrMissingName
	}

	category.Slug = strings.TrimSpace(category.Slug)
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.Slug == category.Slug && other.ID != category.ID {
			return ErrSlugTaken
		}
	}
	return nil
}

// Slugify lowercases the name and collapses runs of non-alphanumeric
// characters into single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
