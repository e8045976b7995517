package types

// Category represents a content category posts are filed under.
type Category struct {
	// ID is the unique identifier of the category.
	ID int64 `json:"id"`

	// Name is the human-readable category name.
	Name string `json:"name"`

	// Slug is the URL-safe form of the name. Unique across categories.
	Slug string `json:"slug"`
}
