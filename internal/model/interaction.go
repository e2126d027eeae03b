package model

import "time"

// Follow tracks a "following" relationship between two users.
// The (FollowerID, FollowingID) pair is unique and self-follows are rejected.
type Follow struct {
	ID                string    `json:"id"`
	FollowerID        string    `json:"follower_id"`
	FollowingID       string    `json:"following_id"`
	FollowerUsername  string    `json:"follower_username"`
	FollowingUsername string    `json:"following_username"`
	CreatedAt         time.Time `json:"created_at"`
}

// Like marks a post as liked by a user. One like per (user, post) pair.
type Like struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserUsername string    `json:"user_username"`
	PostID       string    `json:"post_id"`
	PostContent  string    `json:"post_content"`
	CreatedAt    time.Time `json:"created_at"`
}

// Comment is a user's comment on a post. One comment per (user, post) pair.
type Comment struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserUsername string    `json:"user_username"`
	PostID       string    `json:"post_id"`
	PostContent  string    `json:"post_content"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
