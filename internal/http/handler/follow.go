package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pulse/internal/service"
)

// CreateFollow makes the caller follow the user named in the body.
func CreateFollow(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			FollowingID string `json:"following_id"`
		}
		if err := c.BodyParser(&in); err != nil || in.FollowingID == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "following_id is required")
		}

		follow, err := svc.Follow(c.UserContext(), viewerFromCtx(c), in.FollowingID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(follow)
	}
}

// ListFollows returns relationships: every one for admins, none for others.
func ListFollows(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext(), viewerFromCtx(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetFollow returns a single relationship by ID.
func GetFollow(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		follow, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(follow)
	}
}

// DeleteFollow removes a relationship the caller owns as follower.
func DeleteFollow(svc service.FollowService) fiber.Handler {
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

// Following lists the users the caller follows.
func Following(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer := viewerFromCtx(c)
		refs, err := svc.Following(c.UserContext(), viewer.UserID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(refs)
	}
}

// Followers lists the users following the caller.
func Followers(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer := viewerFromCtx(c)
		refs, err := svc.Followers(c.UserContext(), viewer.UserID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(refs)
	}
}

// Unfollow removes the caller's relationship to the user in the path.
func Unfollow(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("user_id")
		if _, err := uuid.Parse(userID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Unfollow(c.UserContext(), viewerFromCtx(c), userID); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
