package state

import (
	"context"
	"errors"
	"testing"

	"github.com/spellcms/spellcms/types"
)

func newAuthorContainer() *Container[types.Author] {
	return NewContainer(func(a types.Author) int64 { return a.ID })
}

func fetchAuthors(t *testing.T, c *Container[types.Author], items []types.Author) {
	t.Helper()
	err := c.Fetch(context.Background(), func(ctx context.Context) ([]types.Author, error) {
		return items, nil
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
}

func TestFetchReplacesCache(t *testing.T) {
	c := newAuthorContainer()

	if !c.Stale() {
		t.Fatal("a fresh container must report stale")
	}

	fetchAuthors(t, c, []types.Author{{ID: 1, Name: "Ada"}})
	fetchAuthors(t, c, []types.Author{{ID: 2, Name: "Brian"}, {ID: 3, Name: "Rob"}})

	items := c.Items()
	if len(items) != 2 || items[0].ID != 2 {
		t.Fatalf("Items = %+v", items)
	}
	if c.Stale() {
		t.Fatal("container must not be stale after a fetch")
	}
	if c.Err() != "" {
		t.Fatalf("Err = %q, want empty", c.Err())
	}
}

func TestFetchErrorKeepsCache(t *testing.T) {
	c := newAuthorContainer()
	fetchAuthors(t, c, []types.Author{{ID: 1, Name: "Ada"}})

	failure := errors.New("server unreachable")
	err := c.Fetch(context.Background(), func(ctx context.Context) ([]types.Author, error) {
		return nil, failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("Fetch error = %v, want %v", err, failure)
	}

	if items := c.Items(); len(items) != 1 || items[0].Name != "Ada" {
		t.Fatalf("cache lost on fetch failure: %+v", items)
	}
	if c.Err() != "server unreachable" {
		t.Fatalf("Err = %q", c.Err())
	}
}

func TestStaleFetchResponseDiscarded(t *testing.T) {
	c := newAuthorContainer()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = c.Fetch(context.Background(), func(ctx context.Context) ([]types.Author, error) {
			close(started)
			<-release
			return []types.Author{{ID: 99, Name: "Late"}}, nil
		})
	}()

	<-started
	// A second fetch lands while the first is still in flight.
	fetchAuthors(t, c, []types.Author{{ID: 1, Name: "Current"}})
	close(release)
	<-done

	items := c.Items()
	if len(items) != 1 || items[0].ID != 1 {
		t.Fatalf("late response clobbered newer state: %+v", items)
	}
}

func TestLoadingClearsAfterSupersededFetch(t *testing.T) {
	c := newAuthorContainer()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = c.Fetch(context.Background(), func(ctx context.Context) ([]types.Author, error) {
			close(started)
			<-release
			return nil, nil
		})
	}()

	<-started
	if !c.Loading() {
		t.Fatal("a fetch is in flight, Loading() must be true")
	}

	// A mutation supersedes the in-flight fetch.
	_, err := c.Create(context.Background(), func(ctx context.Context) (types.Author, error) {
		return types.Author{ID: 1, Name: "Ada"}, nil
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	close(release)
	<-done

	if c.Loading() {
		t.Fatal("no fetch is in flight, Loading() must be false")
	}
	if items := c.Items(); len(items) != 1 || items[0].ID != 1 {
		t.Fatalf("Items = %+v", items)
	}
}

func TestCreateAppends(t *testing.T) {
	c := newAuthorContainer()
	fetchAuthors(t, c, []types.Author{{ID: 1, Name: "Ada"}})

	created, err := c.Create(context.Background(), func(ctx context.Context) (types.Author, error) {
		return types.Author{ID: 2, Name: "Brian"}, nil
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 2 {
		t.Fatalf("created = %+v", created)
	}

	items := c.Items()
	if len(items) != 2 || items[1].Name != "Brian" {
		t.Fatalf("Items = %+v", items)
	}
}

func TestCreateErrorRecorded(t *testing.T) {
	c := newAuthorContainer()

	_, err := c.Create(context.Background(), func(ctx context.Context) (types.Author, error) {
		return types.Author{}, errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if c.Err() != "boom" {
		t.Fatalf("Err = %q", c.Err())
	}
	if len(c.Items()) != 0 {
		t.Fatal("failed create must not touch the cache")
	}
}

func TestUpdateReplacesInPlace(t *testing.T) {
	c := newAuthorContainer()
	fetchAuthors(t, c, []types.Author{{ID: 1, Name: "Ada"}, {ID: 2, Name: "Brian"}})

	_, err := c.Update(context.Background(), 2, func(ctx context.Context) (types.Author, error) {
		return types.Author{ID: 2, Name: "Brian K."}, nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	items := c.Items()
	if items[1].Name != "Brian K." {
		t.Fatalf("Items = %+v", items)
	}
	if c.Stale() {
		t.Fatal("in-place update must not mark the cache stale")
	}
}

func TestUpdateUnknownIDMarksStale(t *testing.T) {
	c := newAuthorContainer()
	fetchAuthors(t, c, []types.Author{{ID: 1, Name: "Ada"}})

	_, err := c.Update(context.Background(), 42, func(ctx context.Context) (types.Author, error) {
		return types.Author{ID: 42, Name: "Ghost"}, nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !c.Stale() {
		t.Fatal("updating a record the cache never saw must mark it stale")
	}
}

func TestDeleteRemoves(t *testing.T) {
	c := newAuthorContainer()
	fetchAuthors(t, c, []types.Author{{ID: 1, Name: "Ada"}, {ID: 2, Name: "Brian"}})

	err := c.Delete(context.Background(), 1, func(ctx context.Context) error { return nil })
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}

	items := c.Items()
	if len(items) != 1 || items[0].ID != 2 {
		t.Fatalf("Items = %+v", items)
	}
}

func TestInvalidate(t *testing.T) {
	c := newAuthorContainer()
	fetchAuthors(t, c, []types.Author{{ID: 1, Name: "Ada"}})

	c.Invalidate()
	if !c.Stale() {
		t.Fatal("Invalidate must mark the cache stale")
	}

	fetchAuthors(t, c, []types.Author{{ID: 1, Name: "Ada"}})
	if c.Stale() {
		t.Fatal("a fetch must clear the stale flag")
	}
}
