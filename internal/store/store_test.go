package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spellcms/spellcms/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	return New(NewFileBackend(path))
}

func TestUserStoreCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestStore(t))

	created, err := users.Create(ctx, types.User{
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a non-zero id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be stamped")
	}

	byEmail, err := users.GetByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Fatalf("GetByEmail id = %d, want %d", byEmail.ID, created.ID)
	}

	byID, err := users.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Email != "admin@example.com" {
		t.Fatalf("GetByID email = %q", byID.Email)
	}
}

func TestUserStorePersistsPasswordHash(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db.json")

	users := NewUserStore(New(NewFileBackend(path)))
	created, err := users.Create(ctx, types.User{
		Email:        "a@b.c",
		Name:         "Ada",
		PasswordHash: "bcrypt-hash",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	reopened := NewUserStore(New(NewFileBackend(path)))
	got, err := reopened.GetByEmail(ctx, "a@b.c")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("id = %d, want %d", got.ID, created.ID)
	}
	if got.PasswordHash != "bcrypt-hash" {
		t.Fatalf("PasswordHash = %q, login would be impossible", got.PasswordHash)
	}
}

func TestUserStoreEmailConflict(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestStore(t))

	if _, err := users.Create(ctx, types.User{Email: "a@b.c", Name: "One"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := users.Create(ctx, types.User{Email: "a@b.c", Name: "Two"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email error = %v, want ErrEmailTaken", err)
	}
}

func TestUserStoreIDsUnique(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestStore(t))

	seen := map[int64]bool{}
	for i, email := range []string{"a@x.io", "b@x.io", "c@x.io"} {
		user, err := users.Create(ctx, types.User{Email: email, Name: "User"})
		if err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
		if seen[user.ID] {
			t.Fatalf("duplicate id %d", user.ID)
		}
		seen[user.ID] = true
	}
}

func TestPostStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	posts := NewPostStore(newTestStore(t))

	created, err := posts.Create(ctx, types.Post{
		Title:      "Hello",
		Body:       "First post body",
		AuthorID:   1,
		CategoryID: 1,
		Status:     types.StatusDraft,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("first id = %d, want 1", created.ID)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be stamped")
	}
	if created.Tags == nil {
		t.Fatal("expected Tags to default to an empty slice")
	}

	second, err := posts.Create(ctx, types.Post{Title: "Second", Body: "b", Status: types.StatusDraft})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if second.ID != created.ID+1 {
		t.Fatalf("second id = %d, want %d", second.ID, created.ID+1)
	}

	created.Title = "Hello again"
	created.Status = types.StatusPublished
	updated, err := posts.Update(ctx, created)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Hello again" || updated.Status != types.StatusPublished {
		t.Fatalf("update not reflected: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("Update must preserve CreatedAt")
	}

	got, err := posts.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Hello again" {
		t.Fatalf("Get title = %q", got.Title)
	}

	if err := posts.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := posts.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete = %v, want ErrNotFound", err)
	}

	list, err := posts.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != second.ID {
		t.Fatalf("List after delete = %+v", list)
	}
}

func TestPostStoreDeleteMissing(t *testing.T) {
	ctx := context.Background()
	posts := NewPostStore(newTestStore(t))

	if _, err := posts.Create(ctx, types.Post{Title: "Keep", Body: "b"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := posts.Delete(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete missing = %v, want ErrNotFound", err)
	}
	list, err := posts.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("Delete of a missing id must not mutate, have %d posts", len(list))
	}
}

func TestIDReuseAfterDelete(t *testing.T) {
	ctx := context.Background()
	authors := NewAuthorStore(newTestStore(t))

	first, err := authors.Create(ctx, types.Author{Name: "One"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := authors.Create(ctx, types.Author{Name: "Two"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := authors.Delete(ctx, second.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Ids come from max+1, so deleting the tail frees its id for reuse.
	third, err := authors.Create(ctx, types.Author{Name: "Three"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if third.ID != second.ID {
		t.Fatalf("third id = %d, want %d", third.ID, second.ID)
	}
	if first.ID == third.ID {
		t.Fatal("live ids collided")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	authors := NewAuthorStore(s)

	created, err := authors.Create(ctx, types.Author{Name: "Ada", Bio: "writes"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	doc, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(doc.Authors) != 1 || doc.Authors[0].Name != "Ada" {
		t.Fatalf("Snapshot authors = %+v", doc.Authors)
	}

	doc.Authors[0].Name = "mutated"
	got, err := authors.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Ada" {
		t.Fatal("snapshot mutation leaked into the store")
	}
}

func TestFileBackendPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db.json")

	categories := NewCategoryStore(New(NewFileBackend(path)))
	created, err := categories.Create(ctx, types.Category{Name: "Go", Slug: "go"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	reopened := NewCategoryStore(New(NewFileBackend(path)))
	got, err := reopened.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.Name != "Go" || got.Slug != "go" {
		t.Fatalf("reopened category = %+v", got)
	}
}

func TestFileBackendMissingFileIsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := NewFileBackend(filepath.Join(t.TempDir(), "missing.json"))

	doc, err := backend.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Users) != 0 || len(doc.Posts) != 0 || len(doc.Authors) != 0 || len(doc.Categories) != 0 {
		t.Fatalf("missing file must load empty, got %+v", doc)
	}
}
