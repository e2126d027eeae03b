package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pulse/internal/service"
)

// CreateComment records the caller's comment on the post named in the body.
func CreateComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			PostID  string `json:"post_id"`
			Content string `json:"content"`
		}
		if err := c.BodyParser(&in); err != nil || in.PostID == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "post_id is required")
		}

		comment, err := svc.Comment(c.UserContext(), viewerFromCtx(c), in.PostID, in.Content)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(comment)
	}
}

// ListComments returns comments, filterable by post_id and my_comments.
func ListComments(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID := c.Query("post_id")
		if postID != "" {
			if _, err := uuid.Parse(postID); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid post_id format")
			}
		}

		items, err := svc.List(c.UserContext(), viewerFromCtx(c), service.CommentListFilter{
			PostID:     postID,
			MyComments: c.QueryBool("my_comments"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetComment returns a single comment by ID.
func GetComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		comment, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(comment)
	}
}

// UpdateComment replaces the body of the caller's own comment.
func UpdateComment(svc service.CommentService) fiber.Handler {
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

		comment, err := svc.Update(c.UserContext(), viewerFromCtx(c), id, in.Content)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(comment)
	}
}

// DeleteComment removes the caller's own comment.
func DeleteComment(svc service.CommentService) fiber.Handler {
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
