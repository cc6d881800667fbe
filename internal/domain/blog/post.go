package blog

import "time"

type Post struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"publishedAt"`
	Featured    bool      `json:"featured"`
}

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Slug     string `json:"slug" binding:"required,min=1,max=200"`
	Excerpt  string `json:"excerpt" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required,max=80"`
	Featured bool   `json:"featured"`
}

// Partial update payload. Only non-nil fields are applied; publishedAt is
// set once at creation and never patched.
type UpdatePostRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=200"`
	Slug     *string `json:"slug" binding:"omitempty,min=1,max=200"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	Category *string `json:"category" binding:"omitempty,max=80"`
	Featured *bool   `json:"featured"`
}
