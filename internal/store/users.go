package store

import (
	"context"
	"time"

	"github.com/spellcms/spellcms/types"
)

// UserStore handles persistence for users. Users are exempt from the
// generic collection CRUD; they are only created on register and read on
// login.
type UserStore struct {
	store *Store
}

func NewUserStore(store *Store) *UserStore {
	return &UserStore{store: store}
}

func (u *UserStore) GetByID(ctx context.Context, id int64) (types.User, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	doc, err := u.store.read(ctx)
	if err != nil {
		return types.User{}, err
	}
	for _, user := range doc.Users {
		if user.ID == id {
			return user.toUser(), nil
		}
	}
	return types.User{}, ErrNotFound
}

func (u *UserStore) GetByEmail(ctx context.Context, email string) (types.User, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	doc, err := u.store.read(ctx)
	if err != nil {
		return types.User{}, err
	}
	for _, user := range doc.Users {
		if user.Email == email {
			return user.toUser(), nil
		}
	}
	return types.User{}, ErrNotFound
}

// Create appends a new user. The id is the registration time in Unix
// milliseconds, bumped past the current maximum when two registrations
// land in the same millisecond.
func (u *UserStore) Create(ctx context.Context, user types.User) (types.User, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	doc, err := u.store.read(ctx)
	if err != nil {
		return types.User{}, err
	}

	for _, existing := range doc.Users {
		if existing.Email == user.Email {
			return types.User{}, ErrEmailTaken
		}
	}

	now := time.Now()
	user.ID = now.UnixMilli()
	for _, existing := range doc.Users {
		if existing.ID >= user.ID {
			user.ID = existing.ID + 1
		}
	}
	user.CreatedAt = now

	doc.Users = append(doc.Users, newStoredUser(user))
	if err := u.store.write(ctx, doc); err != nil {
		return types.User{}, err
	}
	return user, nil
}
