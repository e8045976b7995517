package store

import (
	"context"

	"github.com/spellcms/spellcms/types"
)

// AuthorStore handles persistence for authors.
type AuthorStore struct {
	store *Store
}

func NewAuthorStore(store *Store) *AuthorStore {
	return &AuthorStore{store: store}
}

func (a *AuthorStore) List(ctx context.Context) ([]types.Author, error) {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	doc, err := a.store.read(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.Author, len(doc.Authors))
	copy(out, doc.Authors)
	return out, nil
}

func (a *AuthorStore) Get(ctx context.Context, id int64) (types.Author, error) {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	doc, err := a.store.read(ctx)
	if err != nil {
		return types.Author{}, err
	}
	for _, author := range doc.Authors {
		if author.ID == id {
			return author, nil
		}
	}
	return types.Author{}, ErrNotFound
}

func (a *AuthorStore) Create(ctx context.Context, author types.Author) (types.Author, error) {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	doc, err := a.store.read(ctx)
	if err != nil {
		return types.Author{}, err
	}

	author.ID = nextID(doc.Authors, func(a types.Author) int64 { return a.ID })
	doc.Authors = append(doc.Authors, author)
	if err := a.store.write(ctx, doc); err != nil {
		return types.Author{}, err
	}
	return author, nil
}

func (a *AuthorStore) Update(ctx context.Context, author types.Author) (types.Author, error) {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	doc, err := a.store.read(ctx)
	if err != nil {
		return types.Author{}, err
	}

	for i, existing := range doc.Authors {
		if existing.ID == author.ID {
			doc.Authors[i] = author
			if err := a.store.write(ctx, doc); err != nil {
				return types.Author{}, err
			}
			return author, nil
		}
	}
	return types.Author{}, ErrNotFound
}

func (a *AuthorStore) Delete(ctx context.Context, id int64) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	doc, err := a.store.read(ctx)
	if err != nil {
		return err
	}

	for i, existing := range doc.Authors {
		if existing.ID == id {
			doc.Authors = append(doc.Authors[:i], doc.Authors[i+1:]...)
			return a.store.write(ctx, doc)
		}
	}
	return ErrNotFound
}
