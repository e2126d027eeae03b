package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"pulse/internal/model"
	"pulse/internal/repository"
)

func TestLikePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewLikePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	l := &model.Like{
		ID:           "like-uuid",
		UserID:       "user-uuid",
		UserUsername: "alice",
		PostID:       "post-uuid",
		PostContent:  "hello world",
		CreatedAt:    now,
	}

	rows := sqlmock.NewRows([]string{"id", "user_id", "post_id", "created_at"}).
		AddRow(l.ID, l.UserID, l.PostID, now)

	mock.ExpectQuery("INSERT INTO likes").
		WithArgs(l.ID, l.UserID, l.PostID, now).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, l)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "hello world", result.PostContent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikePostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewLikePostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "user_id", "username", "post_id", "content", "created_at"}).
		AddRow("like-uuid", "user-uuid", "alice", "post-uuid", "hello world", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM likes l").
		WithArgs("post-uuid", "").
		WillReturnRows(rows)

	items, err := repo.List(ctx, repository.LikeFilter{PostID: "post-uuid"})

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "alice", items[0].UserUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikePostgres_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewLikePostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("user-uuid", "post-uuid").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(ctx, "user-uuid", "post-uuid")

	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestCommentPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCommentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()

	mock.ExpectQuery("UPDATE comments").
		WithArgs("comment-uuid", "edited", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("comment-uuid"))

	rows := sqlmock.NewRows([]string{"id", "user_id", "username", "post_id", "post_content", "content", "created_at", "updated_at"}).
		AddRow("comment-uuid", "user-uuid", "alice", "post-uuid", "hello world", "edited", now, now)

	mock.ExpectQuery("SELECT (.+) FROM comments c").
		WithArgs("comment-uuid").
		WillReturnRows(rows)

	c, err := repo.Update(ctx, &model.Comment{ID: "comment-uuid", Content: "edited", UpdatedAt: now})

	assert.NoError(t, err)
	assert.Equal(t, "edited", c.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}
