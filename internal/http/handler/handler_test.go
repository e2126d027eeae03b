package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pulse/internal/http/middleware"
	"pulse/internal/model"
	"pulse/internal/service"
	serviceMocks "pulse/internal/service/mocks"
	"pulse/internal/token"
)

// asUser injects verified claims the way middleware.RequireAuth would.
func asUser(userID string, staff, superuser bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.ClaimsLocalKey, &token.Claims{
			UserID:    userID,
			Staff:     staff,
			Superuser: superuser,
		})
		return c.Next()
	}
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestRegister(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/auth/register", Register(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := service.RegisterInput{
			Email:           "alice@example.com",
			Username:        "alice",
			Password:        "secret",
			PasswordConfirm: "secret",
		}
		mockSvc.On("Register", mock.Anything, in).Return(&service.AuthResult{
			User:   &model.User{ID: "user-uuid", Username: "alice"},
			Tokens: &token.Pair{Access: "a", Refresh: "r"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/register", jsonBody(t, in))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, mock.Anything).Return(nil, service.ErrEmailTaken).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/register", jsonBody(t, service.RegisterInput{}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Contains(t, body.Error.Fields, "email")
	})
}

func TestLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/auth/login", Login(mockSvc))

	t.Run("wrong credentials", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "alice@example.com", "wrong").
			Return(nil, service.ErrInvalidCredentials).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			jsonBody(t, fiber.Map{"email": "alice@example.com", "password": "wrong"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	})
}

func TestLogout(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/auth/logout", Logout(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Logout", mock.Anything, "valid-refresh").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/logout",
			jsonBody(t, fiber.Map{"refresh": "valid-refresh"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/logout",
			jsonBody(t, fiber.Map{}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unparseable token", func(t *testing.T) {
		mockSvc.On("Logout", mock.Anything, "garbage").Return(service.ErrInvalidToken).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/logout",
			jsonBody(t, fiber.Map{"refresh": "garbage"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_TOKEN", body.Error.Code)
	})
}

func TestCreatePost(t *testing.T) {
	mockSvc := new(serviceMocks.MockPostService)
	app := fiber.New()
	app.Post("/posts", asUser("user-uuid", false, false), CreatePost(mockSvc, time.UTC))

	t.Run("immediate creation returns 201", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, service.Viewer{UserID: "user-uuid"}, "hello", (*time.Time)(nil)).
			Return(&service.CreateResult{Post: &model.Post{ID: "post-uuid", Content: "hello"}}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/posts", jsonBody(t, fiber.Map{"content": "hello"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var post model.Post
		json.NewDecoder(resp.Body).Decode(&post)
		assert.Equal(t, "post-uuid", post.ID)
	})

	t.Run("scheduled creation returns 202 receipt", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, service.Viewer{UserID: "user-uuid"}, "later", mock.AnythingOfType("*time.Time")).
			Return(&service.CreateResult{Receipt: &service.ScheduleReceipt{Status: "scheduled", JobID: "job-uuid"}}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/posts",
			jsonBody(t, fiber.Map{"content": "later", "scheduled_at": "2099-01-01 10:00:00"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusAccepted, resp.StatusCode)

		var receipt service.ScheduleReceipt
		json.NewDecoder(resp.Body).Decode(&receipt)
		assert.Equal(t, "scheduled", receipt.Status)
		assert.Equal(t, "job-uuid", receipt.JobID)
	})

	t.Run("bad scheduled_at format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/posts",
			jsonBody(t, fiber.Map{"content": "later", "scheduled_at": "tomorrowish"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Contains(t, body.Error.Fields, "scheduled_at")
	})
}

func TestParseScheduledAt(t *testing.T) {
	kyiv, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)

	t.Run("zone-less timestamp uses the configured zone", func(t *testing.T) {
		at, err := parseScheduledAt("2026-03-01 15:00:00", kyiv)
		require.NoError(t, err)
		assert.True(t, at.Equal(time.Date(2026, 3, 1, 15, 0, 0, 0, kyiv)))
	})

	t.Run("explicit UTC timestamp is not shifted", func(t *testing.T) {
		at, err := parseScheduledAt("2026-03-01T13:00:00Z", kyiv)
		require.NoError(t, err)
		assert.True(t, at.Equal(time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)))
	})

	t.Run("explicit offset is honored", func(t *testing.T) {
		at, err := parseScheduledAt("2026-03-01T13:00:00+03:00", kyiv)
		require.NoError(t, err)
		assert.True(t, at.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("unrecognized format", func(t *testing.T) {
		_, err := parseScheduledAt("tomorrowish", kyiv)
		assert.Error(t, err)
	})
}

func TestListPosts(t *testing.T) {
	mockSvc := new(serviceMocks.MockPostService)
	app := fiber.New()
	app.Get("/posts", asUser("user-uuid", false, false), ListPosts(mockSvc))

	t.Run("filters forwarded", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.Viewer{UserID: "user-uuid"}, service.PostListFilter{
			MyPosts: true,
			Hashtag: "go",
			Limit:   5,
			Offset:  0,
		}).Return(&service.PostListResult{Items: []model.Post{{ID: "post-uuid"}}, Total: 1}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/posts?my_posts=true&hashtag=go&limit=5", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var res service.PostListResult
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, 1, res.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteProfile(t *testing.T) {
	app := fiber.New()
	app.Delete("/profiles/:key", asUser("user-uuid", false, false), DeleteProfile())

	req := httptest.NewRequest(http.MethodDelete, "/profiles/alice", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	var body errorPayload
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "METHOD_NOT_ALLOWED", body.Error.Code)
}

func TestCreateFollow(t *testing.T) {
	mockSvc := new(serviceMocks.MockFollowService)
	app := fiber.New()
	app.Post("/follows", asUser("user-a", false, false), CreateFollow(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Follow", mock.Anything, service.Viewer{UserID: "user-a"}, "user-b").
			Return(&model.Follow{ID: "follow-uuid"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/follows", jsonBody(t, fiber.Map{"following_id": "user-b"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("self follow", func(t *testing.T) {
		mockSvc.On("Follow", mock.Anything, service.Viewer{UserID: "user-a"}, "user-a").
			Return(nil, service.ErrSelfFollow).Once()

		req := httptest.NewRequest(http.MethodPost, "/follows", jsonBody(t, fiber.Map{"following_id": "user-a"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockSvc.On("Follow", mock.Anything, service.Viewer{UserID: "user-a"}, "ghost").
			Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/follows", jsonBody(t, fiber.Map{"following_id": "ghost"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUnfollow(t *testing.T) {
	mockSvc := new(serviceMocks.MockFollowService)
	app := fiber.New()
	app.Post("/follows/:user_id/unfollow", asUser("user-a", false, false), Unfollow(mockSvc))

	targetID := "6f1e1c1a-9c1e-4d2a-8a3b-111111111111"

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Unfollow", mock.Anything, service.Viewer{UserID: "user-a"}, targetID).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/follows/"+targetID+"/unfollow", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("not following", func(t *testing.T) {
		mockSvc.On("Unfollow", mock.Anything, service.Viewer{UserID: "user-a"}, targetID).
			Return(service.ErrNotFollowing).Once()

		req := httptest.NewRequest(http.MethodPost, "/follows/"+targetID+"/unfollow", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/follows/not-a-uuid/unfollow", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateLike(t *testing.T) {
	mockSvc := new(serviceMocks.MockLikeService)
	app := fiber.New()
	app.Post("/likes", asUser("user-uuid", false, false), CreateLike(mockSvc))

	t.Run("duplicate like", func(t *testing.T) {
		mockSvc.On("Like", mock.Anything, service.Viewer{UserID: "user-uuid"}, "post-uuid").
			Return(nil, service.ErrAlreadyLiked).Once()

		req := httptest.NewRequest(http.MethodPost, "/likes", jsonBody(t, fiber.Map{"post_id": "post-uuid"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing post_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/likes", jsonBody(t, fiber.Map{}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListLikes(t *testing.T) {
	mockSvc := new(serviceMocks.MockLikeService)
	app := fiber.New()
	app.Get("/likes", asUser("user-uuid", false, false), ListLikes(mockSvc))

	t.Run("invalid post_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/likes?post_id=nope", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("my likes", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.Viewer{UserID: "user-uuid"}, service.LikeListFilter{MyLikes: true}).
			Return([]model.Like{{ID: "like-uuid"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/likes?my_like=true", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestUpdateComment(t *testing.T) {
	mockSvc := new(serviceMocks.MockCommentService)
	app := fiber.New()
	app.Patch("/comments/:id", asUser("user-uuid", false, false), UpdateComment(mockSvc))

	commentID := "6f1e1c1a-9c1e-4d2a-8a3b-222222222222"

	t.Run("stranger gets 403", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, service.Viewer{UserID: "user-uuid"}, commentID, "edited").
			Return(nil, service.ErrForbidden).Once()

		req := httptest.NewRequest(http.MethodPatch, "/comments/"+commentID, jsonBody(t, fiber.Map{"content": "edited"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "FORBIDDEN", body.Error.Code)
	})
}
