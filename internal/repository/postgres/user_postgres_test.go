package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"pulse/internal/model"
)

var userCols = []string{"id", "email", "username", "first_name", "last_name", "password_hash", "is_staff", "is_superuser", "created_at", "updated_at"}

func TestUserPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	u := &model.User{
		ID:           "user-uuid",
		Email:        "alice@example.com",
		Username:     "alice",
		FirstName:    "Alice",
		LastName:     "Doe",
		PasswordHash: "hashed",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	rows := sqlmock.NewRows(userCols).
		AddRow(u.ID, u.Email, u.Username, u.FirstName, u.LastName, u.PasswordHash, false, false, now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(u.ID, u.Email, u.Username, u.FirstName, u.LastName, u.PasswordHash, now, now).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, u)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, u.Email, result.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(userCols).
			AddRow("user-uuid", "alice@example.com", "alice", "Alice", "Doe", "hashed", true, true, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("alice@example.com").
			WillReturnRows(rows)

		u, err := repo.FindByEmail(ctx, "alice@example.com")

		assert.NoError(t, err)
		assert.NotNil(t, u)
		assert.Equal(t, "alice", u.Username)
		assert.True(t, u.IsStaff)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("missing@example.com").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.FindByEmail(ctx, "missing@example.com")

		assert.Error(t, err)
		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, u)
	})
}

func TestUserPostgres_ExistsByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("alice@example.com", "user-uuid").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(ctx, "alice@example.com", "user-uuid")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userCols).
		AddRow("user-uuid", "new@example.com", "alice", "Alice", "Smith", "hashed", false, false, now, now)

	mock.ExpectQuery("UPDATE users").
		WithArgs("user-uuid", "new@example.com", "Alice", "Smith", "hashed").
		WillReturnRows(rows)

	u, err := repo.Update(ctx, &model.User{
		ID:           "user-uuid",
		Email:        "new@example.com",
		FirstName:    "Alice",
		LastName:     "Smith",
		PasswordHash: "hashed",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", u.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func IsNoRowsError(err error) bool {
	return err == sql.ErrNoRows
}
