package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pulse/internal/service"
)

// scheduledAtLayouts are the accepted formats for the scheduled_at field.
// The zone-less layouts are interpreted in the server's configured time
// zone; RFC3339 timestamps carry their own offset and are used as given.
var scheduledAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseScheduledAt(raw string, loc *time.Location) (*time.Time, error) {
	for _, layout := range scheduledAtLayouts {
		if at, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return &at, nil
		}
	}
	return nil, fiber.ErrBadRequest
}

// ListPosts returns posts, filterable by my_posts, following and hashtag.
func ListPosts(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		filter := service.PostListFilter{
			MyPosts:   c.QueryBool("my_posts"),
			Following: c.QueryBool("following"),
			Hashtag:   c.Query("hashtag"),
			Limit:     limit,
			Offset:    offset,
		}

		res, err := svc.List(c.UserContext(), viewerFromCtx(c), filter)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreatePost stores a post immediately, or returns a 202 schedule receipt
// when scheduled_at is far enough in the future. loc is the zone applied
// to zone-less scheduled_at values.
func CreatePost(svc service.PostService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			Content     string `json:"content"`
			ScheduledAt string `json:"scheduled_at"`
		}
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		var scheduledAt *time.Time
		if in.ScheduledAt != "" {
			at, err := parseScheduledAt(in.ScheduledAt, loc)
			if err != nil {
				return writeFieldErrors(c, "VALIDATION_ERROR", "validation failed", map[string]string{
					"scheduled_at": "unrecognized timestamp format",
				})
			}
			scheduledAt = at
		}

		res, err := svc.Create(c.UserContext(), viewerFromCtx(c), in.Content, scheduledAt)
		if err != nil {
			return writeServiceError(c, err)
		}
		if res.Receipt != nil {
			return c.Status(fiber.StatusAccepted).JSON(res.Receipt)
		}
		return c.Status(fiber.StatusCreated).JSON(res.Post)
	}
}

// GetPost returns a single post by ID.
func GetPost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		post, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(post)
	}
}

// UpdatePost replaces the content of the caller's own post.
func UpdatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in struct {
			Content string `json:"content"`
		}
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		post, err := svc.Update(c.UserContext(), viewerFromCtx(c), id, in.Content)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(post)
	}
}

// DeletePost removes the caller's own post.
func DeletePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), viewerFromCtx(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
