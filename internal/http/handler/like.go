package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pulse/internal/service"
)

// CreateLike records that the caller liked the post named in the body.
func CreateLike(svc service.LikeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			PostID string `json:"post_id"`
		}
		if err := c.BodyParser(&in); err != nil || in.PostID == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "post_id is required")
		}

		like, err := svc.Like(c.UserContext(), viewerFromCtx(c), in.PostID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(like)
	}
}

// ListLikes returns likes, filterable by post_id and my_like.
func ListLikes(svc service.LikeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID := c.Query("post_id")
		if postID != "" {
			if _, err := uuid.Parse(postID); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid post_id format")
			}
		}

		items, err := svc.List(c.UserContext(), viewerFromCtx(c), service.LikeListFilter{
			PostID:  postID,
			MyLikes: c.QueryBool("my_like"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetLike returns a single like by ID.
func GetLike(svc service.LikeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		like, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(like)
	}
}

// DeleteLike removes the caller's own like.
func DeleteLike(svc service.LikeService) fiber.Handler {
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
