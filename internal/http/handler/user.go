package handler

import (
	"github.com/gofiber/fiber/v2"

	"pulse/internal/service"
)

// GetMe returns the authenticated account.
func GetMe(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer := viewerFromCtx(c)
		user, err := svc.Get(c.UserContext(), viewer.UserID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(user)
	}
}

// UpdateMe applies partial updates to the authenticated account.
func UpdateMe(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UserUpdateInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		viewer := viewerFromCtx(c)
		user, err := svc.Update(c.UserContext(), viewer.UserID, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(user)
	}
}
