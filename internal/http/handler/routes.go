package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pulse/internal/http/middleware"
	"pulse/internal/service"
	"pulse/internal/token"
)

// Services bundles everything the HTTP surface depends on.
type Services struct {
	Auth     service.AuthService
	Users    service.UserService
	Profiles service.ProfileService
	Posts    service.PostService
	Follows  service.FollowService
	Likes    service.LikeService
	Comments service.CommentService
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// Handlers stay thin: parsing, permission context, response shaping.
// loc is the zone applied to zone-less scheduled_at values.
func RegisterRoutes(app *fiber.App, db *sql.DB, tm *token.Manager, svcs Services, gatherer prometheus.Gatherer, loc *time.Location) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	auth := app.Group("/auth")
	auth.Post("/register", Register(svcs.Auth))
	auth.Post("/login", Login(svcs.Auth))
	auth.Post("/logout", Logout(svcs.Auth))

	api := app.Group("/", middleware.RequireAuth(tm))

	api.Get("/users/me", GetMe(svcs.Users))
	api.Put("/users/me", UpdateMe(svcs.Users))
	api.Patch("/users/me", UpdateMe(svcs.Users))

	api.Get("/profiles", ListProfiles(svcs.Profiles))
	api.Get("/profiles/:key", GetProfile(svcs.Profiles))
	api.Put("/profiles/:key", UpdateProfile(svcs.Profiles))
	api.Patch("/profiles/:key", UpdateProfile(svcs.Profiles))
	api.Delete("/profiles/:key", DeleteProfile())

	api.Get("/posts", ListPosts(svcs.Posts))
	api.Post("/posts", CreatePost(svcs.Posts, loc))
	api.Get("/posts/:id", GetPost(svcs.Posts))
	api.Put("/posts/:id", UpdatePost(svcs.Posts))
	api.Patch("/posts/:id", UpdatePost(svcs.Posts))
	api.Delete("/posts/:id", DeletePost(svcs.Posts))

	api.Get("/follows", ListFollows(svcs.Follows))
	api.Post("/follows", CreateFollow(svcs.Follows))
	api.Get("/follows/following", Following(svcs.Follows))
	api.Get("/follows/followers", Followers(svcs.Follows))
	api.Post("/follows/:user_id/unfollow", Unfollow(svcs.Follows))
	api.Get("/follows/:id", GetFollow(svcs.Follows))
	api.Delete("/follows/:id", DeleteFollow(svcs.Follows))

	api.Get("/likes", ListLikes(svcs.Likes))
	api.Post("/likes", CreateLike(svcs.Likes))
	api.Get("/likes/:id", GetLike(svcs.Likes))
	api.Delete("/likes/:id", DeleteLike(svcs.Likes))

	api.Get("/comments", ListComments(svcs.Comments))
	api.Post("/comments", CreateComment(svcs.Comments))
	api.Get("/comments/:id", GetComment(svcs.Comments))
	api.Put("/comments/:id", UpdateComment(svcs.Comments))
	api.Patch("/comments/:id", UpdateComment(svcs.Comments))
	api.Delete("/comments/:id", DeleteComment(svcs.Comments))
}
