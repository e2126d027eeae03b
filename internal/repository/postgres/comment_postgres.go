package postgres

import (
	"context"
	"database/sql"

	"pulse/internal/model"
	"pulse/internal/repository"
)

// CommentPostgres is a PostgreSQL implementation of repository.CommentRepository.
type CommentPostgres struct {
	db *sql.DB
}

// NewCommentPostgres creates a new CommentPostgres repository.
func NewCommentPostgres(db *sql.DB) *CommentPostgres {
	return &CommentPostgres{db: db}
}

var _ repository.CommentRepository = (*CommentPostgres)(nil)

const commentSelect = `
	SELECT c.id, c.user_id, u.username, c.post_id, p.content, c.content, c.created_at, c.updated_at
	FROM comments c
	JOIN users u ON u.id = c.user_id
	JOIN posts p ON p.id = c.post_id`

func scanComment(row interface{ Scan(...any) error }) (*model.Comment, error) {
	var c model.Comment
	if err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.UserUsername,
		&c.PostID,
		&c.PostContent,
		&c.Content,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new comment row and returns the stored record.
func (r *CommentPostgres) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	const q = `
		INSERT INTO comments (id, user_id, post_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, post_id, content, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q, c.ID, c.UserID, c.PostID, c.Content, c.CreatedAt, c.UpdatedAt)
	var out model.Comment
	if err := row.Scan(&out.ID, &out.UserID, &out.PostID, &out.Content, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	out.UserUsername = c.UserUsername
	out.PostContent = c.PostContent
	return &out, nil
}

// FindByID fetches a comment by its ID.
func (r *CommentPostgres) FindByID(ctx context.Context, id string) (*model.Comment, error) {
	const q = commentSelect + ` WHERE c.id = $1`
	return scanComment(r.db.QueryRowContext(ctx, q, id))
}

// List returns comments matching the filter, newest first.
func (r *CommentPostgres) List(ctx context.Context, f repository.CommentFilter) ([]model.Comment, error) {
	const q = commentSelect + `
	WHERE ($1 = '' OR c.post_id = $1::uuid)
	  AND ($2 = '' OR c.user_id = $2::uuid)
	ORDER BY c.created_at DESC, c.id DESC`
	rows, err := r.db.QueryContext(ctx, q, f.PostID, f.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update rewrites the comment body and returns the refreshed record.
func (r *CommentPostgres) Update(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	const q = `
		UPDATE comments
		SET content = $2, updated_at = $3
		WHERE id = $1
		RETURNING id
	`
	var id string
	if err := r.db.QueryRowContext(ctx, q, c.ID, c.Content, c.UpdatedAt).Scan(&id); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes a comment by ID.
func (r *CommentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM comments WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// Exists reports whether the user already commented on the post.
func (r *CommentPostgres) Exists(ctx context.Context, userID, postID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM comments WHERE user_id = $1 AND post_id = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, userID, postID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
