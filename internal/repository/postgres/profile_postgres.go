package postgres

import (
	"context"
	"database/sql"

	"pulse/internal/model"
	"pulse/internal/repository"
)

// ProfilePostgres is a PostgreSQL implementation of repository.ProfileRepository.
// Read queries join users to fill the denormalized username/email fields.
type ProfilePostgres struct {
	db *sql.DB
}

// NewProfilePostgres creates a new ProfilePostgres repository.
func NewProfilePostgres(db *sql.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

var _ repository.ProfileRepository = (*ProfilePostgres)(nil)

const profileSelect = `
	SELECT p.id, p.user_id, u.username, u.email, p.bio, p.created_at, p.updated_at
	FROM user_profiles p
	JOIN users u ON u.id = p.user_id`

func scanProfile(row interface{ Scan(...any) error }) (*model.Profile, error) {
	var p model.Profile
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Username,
		&p.Email,
		&p.Bio,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a profile row for a user.
func (r *ProfilePostgres) Create(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	const q = `
		INSERT INTO user_profiles (id, user_id, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, bio, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q, p.ID, p.UserID, p.Bio, p.CreatedAt, p.UpdatedAt)
	var out model.Profile
	if err := row.Scan(&out.ID, &out.UserID, &out.Bio, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	out.Username = p.Username
	out.Email = p.Email
	return &out, nil
}

// FindByID fetches a profile by its own ID.
func (r *ProfilePostgres) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	const q = profileSelect + ` WHERE p.id = $1`
	return scanProfile(r.db.QueryRowContext(ctx, q, id))
}

// FindByUserID fetches the profile owned by the given user.
func (r *ProfilePostgres) FindByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	const q = profileSelect + ` WHERE p.user_id = $1`
	return scanProfile(r.db.QueryRowContext(ctx, q, userID))
}

// FindByUsername fetches the profile whose owner has the given username.
func (r *ProfilePostgres) FindByUsername(ctx context.Context, username string) (*model.Profile, error) {
	const q = profileSelect + ` WHERE u.username = $1`
	return scanProfile(r.db.QueryRowContext(ctx, q, username))
}

// List returns all profiles ordered by creation time.
func (r *ProfilePostgres) List(ctx context.Context) ([]model.Profile, error) {
	const q = profileSelect + ` ORDER BY p.created_at ASC, p.id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateBio persists a new bio and returns the stored record.
func (r *ProfilePostgres) UpdateBio(ctx context.Context, id, bio string) (*model.Profile, error) {
	const q = `
		UPDATE user_profiles SET bio = $2, updated_at = now()
		WHERE id = $1
		RETURNING id
	`
	var updatedID string
	if err := r.db.QueryRowContext(ctx, q, id, bio).Scan(&updatedID); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, updatedID)
}
