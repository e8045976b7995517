package services

import (
	"context"
	"errors"
	"testing"

	"github.com/spellcms/spellcms/internal/events"
	"github.com/spellcms/spellcms/internal/store"
	"github.com/spellcms/spellcms/types"
)

type mockPostRepo struct {
	CreateFn func(ctx context.Context, post types.Post) (types.Post, error)
}

func (m *mockPostRepo) List(ctx context.Context) ([]types.Post, error) { return nil, nil }

func (m *mockPostRepo) Get(ctx context.Context, id int64) (types.Post, error) {
	return types.Post{}, store.ErrNotFound
}

func (m *mockPostRepo) Create(ctx context.Context, post types.Post) (types.Post, error) {
	return m.CreateFn(ctx, post)
}

func (m *mockPostRepo) Update(ctx context.Context, post types.Post) (types.Post, error) {
	return post, nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error { return nil }

type mockAuthorLookup struct {
	GetFn func(ctx context.Context, id int64) (types.Author, error)
}

func (m *mockAuthorLookup) Get(ctx context.Context, id int64) (types.Author, error) {
	return m.GetFn(ctx, id)
}

type mockCategoryLookup struct {
	GetFn func(ctx context.Context, id int64) (types.Category, error)
}

func (m *mockCategoryLookup) Get(ctx context.Context, id int64) (types.Category, error) {
	return m.GetFn(ctx, id)
}

func knownAuthor(ctx context.Context, id int64) (types.Author, error) {
	return types.Author{ID: id, Name: "Ada"}, nil
}

func knownCategory(ctx context.Context, id int64) (types.Category, error) {
	return types.Category{ID: id, Name: "Go", Slug: "go"}, nil
}

func TestPostCreateDefaultsStatus(t *testing.T) {
	repo := &mockPostRepo{
		CreateFn: func(ctx context.Context, post types.Post) (types.Post, error) {
			post.ID = 1
			return post, nil
		},
	}
	svc := NewPostService(repo,
		&mockAuthorLookup{GetFn: knownAuthor},
		&mockCategoryLookup{GetFn: knownCategory},
		events.NewPublisher(nil))

	created, err := svc.Create(context.Background(), types.Post{
		Title: " Hello ", Body: " body ", AuthorID: 1, CategoryID: 1,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != types.StatusDraft {
		t.Fatalf("Status = %q, want %q", created.Status, types.StatusDraft)
	}
	if created.Title != "Hello" || created.Body != "body" {
		t.Fatalf("fields not trimmed: %+v", created)
	}
}

func TestPostCreateRejectsMissingFields(t *testing.T) {
	svc := NewPostService(&mockPostRepo{},
		&mockAuthorLookup{GetFn: knownAuthor},
		&mockCategoryLookup{GetFn: knownCategory},
		events.NewPublisher(nil))

	_, err := svc.Create(context.Background(), types.Post{Title: "  ", Body: "body"})
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("Create error = %v, want ErrMissingFields", err)
	}
}

func TestPostCreateRejectsBadStatus(t *testing.T) {
	svc := NewPostService(&mockPostRepo{},
		&mockAuthorLookup{GetFn: knownAuthor},
		&mockCategoryLookup{GetFn: knownCategory},
		events.NewPublisher(nil))

	_, err := svc.Create(context.Background(), types.Post{
		Title: "T", Body: "B", Status: "archived", AuthorID: 1, CategoryID: 1,
	})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("Create error = %v, want ErrInvalidStatus", err)
	}
}

func TestPostCreateChecksReferences(t *testing.T) {
	svc := NewPostService(&mockPostRepo{},
		&mockAuthorLookup{GetFn: func(ctx context.Context, id int64) (types.Author, error) {
			return types.Author{}, store.ErrNotFound
		}},
		&mockCategoryLookup{GetFn: knownCategory},
		events.NewPublisher(nil))

	_, err := svc.Create(context.Background(), types.Post{
		Title: "T", Body: "B", AuthorID: 99, CategoryID: 1,
	})
	if !errors.Is(err, ErrUnknownAuthor) {
		t.Fatalf("Create error = %v, want ErrUnknownAuthor", err)
	}

	svc = NewPostService(&mockPostRepo{},
		&mockAuthorLookup{GetFn: knownAuthor},
		&mockCategoryLookup{GetFn: func(ctx context.Context, id int64) (types.Category, error) {
			return types.Category{}, store.ErrNotFound
		}},
		events.NewPublisher(nil))

	_, err = svc.Create(context.Background(), types.Post{
		Title: "T", Body: "B", AuthorID: 1, CategoryID: 99,
	})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("Create error = %v, want ErrUnknownCategory", err)
	}
}
