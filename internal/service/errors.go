package service

import "errors"

// Sentinel errors the HTTP layer maps onto status codes. Validation errors
// become 400, ErrNotFound 404, ErrForbidden 403, ErrInvalidCredentials and
// ErrInvalidToken 401.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("operation not allowed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or revoked token")

	ErrEmailTaken       = errors.New("email is already in use")
	ErrUsernameTaken    = errors.New("username is already taken")
	ErrPasswordTooShort = errors.New("password must be at least 5 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")

	ErrContentRequired  = errors.New("content is required")
	ErrSelfFollow       = errors.New("users cannot follow themselves")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("you are not following this user")
	ErrAlreadyLiked     = errors.New("you have already liked this post")
	ErrAlreadyCommented = errors.New("you have already commented on this post")
)

// Viewer identifies the authenticated caller for permission checks.
type Viewer struct {
	UserID    string
	Staff     bool
	Superuser bool
}

// Admin reports whether the viewer holds both staff and superuser flags.
func (v Viewer) Admin() bool {
	return v.Staff && v.Superuser
}
