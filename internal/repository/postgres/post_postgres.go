package postgres

import (
	"context"
	"database/sql"

	"pulse/internal/model"
	"pulse/internal/repository"
)

// PostPostgres is a PostgreSQL implementation of repository.PostRepository.
// Reads join users for the author username and aggregate likes for the count.
type PostPostgres struct {
	db *sql.DB
}

// NewPostPostgres creates a new PostPostgres repository.
func NewPostPostgres(db *sql.DB) *PostPostgres {
	return &PostPostgres{db: db}
}

var _ repository.PostRepository = (*PostPostgres)(nil)

const postSelect = `
	SELECT p.id, p.author_id, u.username, p.content,
	       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count,
	       p.created_at, p.updated_at
	FROM posts p
	JOIN users u ON u.id = p.author_id`

func scanPost(row interface{ Scan(...any) error }) (*model.Post, error) {
	var p model.Post
	if err := row.Scan(
		&p.ID,
		&p.AuthorID,
		&p.AuthorUsername,
		&p.Content,
		&p.LikeCount,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new post row and returns the stored record.
func (r *PostPostgres) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	const q = `
		INSERT INTO posts (id, author_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, author_id, content, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q, p.ID, p.AuthorID, p.Content, p.CreatedAt, p.UpdatedAt)
	var out model.Post
	if err := row.Scan(&out.ID, &out.AuthorID, &out.Content, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	out.AuthorUsername = p.AuthorUsername
	return &out, nil
}

// FindByID fetches a single post by its ID.
func (r *PostPostgres) FindByID(ctx context.Context, id string) (*model.Post, error) {
	const q = postSelect + ` WHERE p.id = $1`
	return scanPost(r.db.QueryRowContext(ctx, q, id))
}

// List returns posts matching the filter using LIMIT/OFFSET pagination and a total count.
// Filters compose: author, followed-authors and hashtag conditions are ANDed.
func (r *PostPostgres) List(ctx context.Context, f repository.PostFilter, pq repository.PageQuery) (*repository.PageResult[model.Post], error) {
	const where = `
	WHERE ($1 = '' OR p.author_id = $1::uuid)
	  AND ($2 = '' OR p.author_id IN (SELECT following_id FROM follows WHERE follower_id = $2::uuid))
	  AND ($3 = '' OR p.content ILIKE '%#' || $3 || '%')`

	const qCount = `SELECT COUNT(*) FROM posts p` + where
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, f.AuthorID, f.FollowedBy, f.Hashtag).Scan(&total); err != nil {
		return nil, err
	}

	const qList = postSelect + where + `
	ORDER BY p.created_at DESC, p.id DESC
	LIMIT $4 OFFSET $5`
	rows, err := r.db.QueryContext(ctx, qList, f.AuthorID, f.FollowedBy, f.Hashtag, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Post]{
		Items: items,
		Total: total,
	}, nil
}

// Update persists new content for an existing post.
func (r *PostPostgres) Update(ctx context.Context, p *model.Post) (*model.Post, error) {
	const q = `
		UPDATE posts SET content = $2, updated_at = now()
		WHERE id = $1
		RETURNING id
	`
	var id string
	if err := r.db.QueryRowContext(ctx, q, p.ID, p.Content).Scan(&id); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes a post by ID. It does not return an error if the row does not exist.
func (r *PostPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM posts WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
