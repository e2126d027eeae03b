package postgres

import (
	"context"
	"database/sql"

	"pulse/internal/model"
	"pulse/internal/repository"
)

// FollowPostgres is a PostgreSQL implementation of repository.FollowRepository.
type FollowPostgres struct {
	db *sql.DB
}

// NewFollowPostgres creates a new FollowPostgres repository.
func NewFollowPostgres(db *sql.DB) *FollowPostgres {
	return &FollowPostgres{db: db}
}

var _ repository.FollowRepository = (*FollowPostgres)(nil)

const followSelect = `
	SELECT f.id, f.follower_id, f.following_id, fu.username, gu.username, f.created_at
	FROM follows f
	JOIN users fu ON fu.id = f.follower_id
	JOIN users gu ON gu.id = f.following_id`

func scanFollow(row interface{ Scan(...any) error }) (*model.Follow, error) {
	var f model.Follow
	if err := row.Scan(
		&f.ID,
		&f.FollowerID,
		&f.FollowingID,
		&f.FollowerUsername,
		&f.FollowingUsername,
		&f.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a new follow row and returns the stored record.
func (r *FollowPostgres) Create(ctx context.Context, f *model.Follow) (*model.Follow, error) {
	const q = `
		INSERT INTO follows (id, follower_id, following_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, follower_id, following_id, created_at
	`
	row := r.db.QueryRowContext(ctx, q, f.ID, f.FollowerID, f.FollowingID, f.CreatedAt)
	var out model.Follow
	if err := row.Scan(&out.ID, &out.FollowerID, &out.FollowingID, &out.CreatedAt); err != nil {
		return nil, err
	}
	out.FollowerUsername = f.FollowerUsername
	out.FollowingUsername = f.FollowingUsername
	return &out, nil
}

// FindByID fetches a follow relationship by its ID.
func (r *FollowPostgres) FindByID(ctx context.Context, id string) (*model.Follow, error) {
	const q = followSelect + ` WHERE f.id = $1`
	return scanFollow(r.db.QueryRowContext(ctx, q, id))
}

// List returns every follow relationship, newest first.
func (r *FollowPostgres) List(ctx context.Context) ([]model.Follow, error) {
	const q = followSelect + ` ORDER BY f.created_at DESC, f.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Follow, 0)
	for rows.Next() {
		f, err := scanFollow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a follow row by ID.
func (r *FollowPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM follows WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// DeletePair removes the follower -> following relationship and reports
// whether a row was deleted.
func (r *FollowPostgres) DeletePair(ctx context.Context, followerID, followingID string) (bool, error) {
	const q = `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`
	res, err := r.db.ExecContext(ctx, q, followerID, followingID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Exists reports whether follower already follows following.
func (r *FollowPostgres) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, followerID, followingID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Following returns the users the given user follows.
func (r *FollowPostgres) Following(ctx context.Context, userID string) ([]model.UserRef, error) {
	const q = `
		SELECT u.id, u.username
		FROM follows f
		JOIN users u ON u.id = f.following_id
		WHERE f.follower_id = $1
		ORDER BY u.username ASC
	`
	return r.queryUserRefs(ctx, q, userID)
}

// Followers returns the users following the given user.
func (r *FollowPostgres) Followers(ctx context.Context, userID string) ([]model.UserRef, error) {
	const q = `
		SELECT u.id, u.username
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.following_id = $1
		ORDER BY u.username ASC
	`
	return r.queryUserRefs(ctx, q, userID)
}

func (r *FollowPostgres) queryUserRefs(ctx context.Context, q, userID string) ([]model.UserRef, error) {
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := make([]model.UserRef, 0)
	for rows.Next() {
		var u model.UserRef
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, err
		}
		refs = append(refs, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}
