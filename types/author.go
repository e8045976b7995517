package types

// Author represents a writer whose posts the panel manages.
// Authors have a lifecycle independent of users and posts.
type Author struct {
	// ID is the unique identifier of the author.
	ID int64 `json:"id"`

	// Name is the author's public name.
	Name string `json:"name"`

	// Avatar is an optional URL to the author's picture.
	Avatar string `json:"avatar"`

	// Bio is a short description shown on author pages.
	Bio string `json:"bio"`
}
