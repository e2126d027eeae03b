package handler

import (
	"github.com/gofiber/fiber/v2"

	"pulse/internal/service"
)

// ListProfiles returns the profiles visible to the caller.
func ListProfiles(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext(), viewerFromCtx(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetProfile resolves a profile by ID or username.
func GetProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := svc.Get(c.UserContext(), c.Params("key"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(profile)
	}
}

// UpdateProfile replaces the bio of the caller's own profile.
func UpdateProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			Bio string `json:"bio"`
		}
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		profile, err := svc.UpdateBio(c.UserContext(), viewerFromCtx(c), c.Params("key"), in.Bio)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(profile)
	}
}

// DeleteProfile always refuses: profiles live and die with their account.
func DeleteProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return writeError(c, fiber.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "profiles cannot be deleted")
	}
}
