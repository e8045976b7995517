package store

import (
	"context"

	"github.com/spellcms/spellcms/types"
)

// Document is the entire record store content. Every mutation loads the
// document in full, rewrites one collection, and saves it back in full.
// There are no partial writes.
type Document struct {
	Users      []storedUser     `json:"users"`
	Posts      []types.Post     `json:"posts"`
	Authors    []types.Author   `json:"authors"`
	Categories []types.Category `json:"categories"`
}

// storedUser is the persisted form of a user. The API type never
// serializes the password hash, so the store carries it in its own field.
type storedUser struct {
	types.User
	PasswordHash string `json:"passwordHash"`
}

func (u storedUser) toUser() types.User {
	user := u.User
	user.PasswordHash = u.PasswordHash
	return user
}

func newStoredUser(user types.User) storedUser {
	return storedUser{User: user, PasswordHash: user.PasswordHash}
}

// Backend persists the whole document.
type Backend interface {
	Load(ctx context.Context) (Document, error)
	Save(ctx context.Context, doc Document) error
}

func (d Document) clone() Document {
	out := Document{
		Users:      make([]storedUser, len(d.Users)),
		Posts:      make([]types.Post, len(d.Posts)),
		Authors:    make([]types.Author, len(d.Authors)),
		Categories: make([]types.Category, len(d.Categories)),
	}
	copy(out.Users, d.Users)
	copy(out.Posts, d.Posts)
	copy(out.Authors, d.Authors)
	copy(out.Categories, d.Categories)
	return out
}
