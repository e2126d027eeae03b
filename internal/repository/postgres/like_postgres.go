package postgres

import (
	"context"
	"database/sql"

	"pulse/internal/model"
	"pulse/internal/repository"
)

// LikePostgres is a PostgreSQL implementation of repository.LikeRepository.
type LikePostgres struct {
	db *sql.DB
}

// NewLikePostgres creates a new LikePostgres repository.
func NewLikePostgres(db *sql.DB) *LikePostgres {
	return &LikePostgres{db: db}
}

var _ repository.LikeRepository = (*LikePostgres)(nil)

const likeSelect = `
	SELECT l.id, l.user_id, u.username, l.post_id, p.content, l.created_at
	FROM likes l
	JOIN users u ON u.id = l.user_id
	JOIN posts p ON p.id = l.post_id`

func scanLike(row interface{ Scan(...any) error }) (*model.Like, error) {
	var l model.Like
	if err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.UserUsername,
		&l.PostID,
		&l.PostContent,
		&l.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a new like row and returns the stored record.
func (r *LikePostgres) Create(ctx context.Context, l *model.Like) (*model.Like, error) {
	const q = `
		INSERT INTO likes (id, user_id, post_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, post_id, created_at
	`
	row := r.db.QueryRowContext(ctx, q, l.ID, l.UserID, l.PostID, l.CreatedAt)
	var out model.Like
	if err := row.Scan(&out.ID, &out.UserID, &out.PostID, &out.CreatedAt); err != nil {
		return nil, err
	}
	out.UserUsername = l.UserUsername
	out.PostContent = l.PostContent
	return &out, nil
}

// FindByID fetches a like by its ID.
func (r *LikePostgres) FindByID(ctx context.Context, id string) (*model.Like, error) {
	const q = likeSelect + ` WHERE l.id = $1`
	return scanLike(r.db.QueryRowContext(ctx, q, id))
}

// List returns likes matching the filter, newest first.
func (r *LikePostgres) List(ctx context.Context, f repository.LikeFilter) ([]model.Like, error) {
	const q = likeSelect + `
	WHERE ($1 = '' OR l.post_id = $1::uuid)
	  AND ($2 = '' OR l.user_id = $2::uuid)
	ORDER BY l.created_at DESC, l.id DESC`
	rows, err := r.db.QueryContext(ctx, q, f.PostID, f.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Like, 0)
	for rows.Next() {
		l, err := scanLike(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a like by ID.
func (r *LikePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM likes WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// Exists reports whether the user already liked the post.
func (r *LikePostgres) Exists(ctx context.Context, userID, postID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND post_id = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, userID, postID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
