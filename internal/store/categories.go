package store

import (
	"context"

	"github.com/spellcms/spellcms/types"
)

// CategoryStore handles persistence for categories.
type CategoryStore struct {
	store *Store
}

func NewCategoryStore(store *Store) *CategoryStore {
	return &CategoryStore{store: store}
}

func (c *CategoryStore) List(ctx context.Context) ([]types.Category, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	doc, err := c.store.read(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.Category, len(doc.Categories))
	copy(out, doc.Categories)
	return out, nil
}

func (c *CategoryStore) Get(ctx context.Context, id int64) (types.Category, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	doc, err := c.store.read(ctx)
	if err != nil {
		return types.Category{}, err
	}
	for _, category := range doc.Categories {
		if category.ID == id {
			return category, nil
		}
	}
	return types.Category{}, ErrNotFound
}

func (c *CategoryStore) Create(ctx context.Context, category types.Category) (types.Category, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	doc, err := c.store.read(ctx)
	if err != nil {
		return types.Category{}, err
	}

	category.ID = nextID(doc.Categories, func(c types.Category) int64 { return c.ID })
	doc.Categories = append(doc.Categories, category)
	if err := c.store.write(ctx, doc); err != nil {
		return types.Category{}, err
	}
	return category, nil
}

func (c *CategoryStore) Update(ctx context.Context, category types.Category) (types.Category, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	doc, err := c.store.read(ctx)
	if err != nil {
		return types.Category{}, err
	}

	for i, existing := range doc.Categories {
		if existing.ID == category.ID {
			doc.Categories[i] = category
			if err := c.store.write(ctx, doc); err != nil {
				return types.Category{}, err
			}
			return category, nil
		}
	}
	return types.Category{}, ErrNotFound
}

func (c *CategoryStore) Delete(ctx context.Context, id int64) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	doc, err := c.store.read(ctx)
	if err != nil {
		return err
	}

	for i, existing := range doc.Categories {
		if existing.ID == id {
			doc.Categories = append(doc.Categories[:i], doc.Categories[i+1:]...)
			return c.store.write(ctx, doc)
		}
	}
	return ErrNotFound
}
