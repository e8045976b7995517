package types

import "time"

// Post status values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Post represents a blog post managed through the admin panel.
type Post struct {
	// ID is the unique identifier of the post.
	ID int64 `json:"id"`

	// Title is the headline shown in lists and on the published page.
	Title string `json:"title"`

	// Body is the full post content.
	Body string `json:"body"`

	// AuthorID references the author the post is attributed to.
	AuthorID int64 `json:"authorId"`

	// CategoryID references the category the post is filed under.
	CategoryID int64 `json:"categoryId"`

	// Tags are free-form labels in the order the editor entered them.
	Tags []string `json:"tags"`

	// Status is either "draft" or "published".
	Status string `json:"status"`

	// CoverImage is an optional URL to the post's cover image.
	CoverImage string `json:"coverImage"`

	// CreatedAt is stamped by the record store when the post is created.
	CreatedAt time.Time `json:"createdAt"`
}
