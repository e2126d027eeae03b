package model

import "time"

// Post is a piece of content published by a user.
//
// AuthorUsername and LikeCount are read-side annotations populated by
// repository queries (JOIN / aggregate); they are ignored on writes.
type Post struct {
	ID             string    `json:"id"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Content        string    `json:"content"`
	LikeCount      int       `json:"like_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
