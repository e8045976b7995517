package store

import (
	"context"
	"time"

	"github.com/spellcms/spellcms/types"
)

// PostStore handles persistence for posts.
type PostStore struct {
	store *Store
}

func NewPostStore(store *Store) *PostStore {
	return &PostStore{store: store}
}

// List returns all posts in insertion order.
func (p *PostStore) List(ctx context.Context) ([]types.Post, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	doc, err := p.store.read(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.Post, len(doc.Posts))
	copy(out, doc.Posts)
	return out, nil
}

func (p *PostStore) Get(ctx context.Context, id int64) (types.Post, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	doc, err := p.store.read(ctx)
	if err != nil {
		return types.Post{}, err
	}
	for _, post := range doc.Posts {
		if post.ID == id {
			return post, nil
		}
	}
	return types.Post{}, ErrNotFound
}

// Create assigns a fresh id, stamps CreatedAt, appends, and persists.
func (p *PostStore) Create(ctx context.Context, post types.Post) (types.Post, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	doc, err := p.store.read(ctx)
	if err != nil {
		return types.Post{}, err
	}

	post.ID = nextID(doc.Posts, func(p types.Post) int64 { return p.ID })
	post.CreatedAt = time.Now()
	if post.Tags == nil {
		post.Tags = []string{}
	}

	doc.Posts = append(doc.Posts, post)
	if err := p.store.write(ctx, doc); err != nil {
		return types.Post{}, err
	}
	return post, nil
}

// Update replaces the post with the given id in full. The original
// CreatedAt is preserved.
func (p *PostStore) Update(ctx context.Context, post types.Post) (types.Post, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	doc, err := p.store.read(ctx)
	if err != nil {
		return types.Post{}, err
	}

	for i, existing := range doc.Posts {
		if existing.ID == post.ID {
			post.CreatedAt = existing.CreatedAt
			if post.Tags == nil {
				post.Tags = []string{}
			}
			doc.Posts[i] = post
			if err := p.store.write(ctx, doc); err != nil {
				return types.Post{}, err
			}
			return post, nil
		}
	}
	return types.Post{}, ErrNotFound
}

func (p *PostStore) Delete(ctx context.Context, id int64) error {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	doc, err := p.store.read(ctx)
	if err != nil {
		return err
	}

	for i, existing := range doc.Posts {
		if existing.ID == id {
			doc.Posts = append(doc.Posts[:i], doc.Posts[i+1:]...)
			return p.store.write(ctx, doc)
		}
	}
	return ErrNotFound
}
