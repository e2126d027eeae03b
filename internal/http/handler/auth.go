package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pulse/internal/http/middleware"
	"pulse/internal/service"
	"pulse/internal/token"
)

// viewerFromCtx builds the service-level viewer from claims stored by
// middleware.RequireAuth. Handlers behind that middleware can rely on it.
func viewerFromCtx(c *fiber.Ctx) service.Viewer {
	claims, _ := c.Locals(middleware.ClaimsLocalKey).(*token.Claims)
	if claims == nil {
		return service.Viewer{}
	}
	return service.Viewer{
		UserID:    claims.UserID,
		Staff:     claims.Staff,
		Superuser: claims.Superuser,
	}
}

// Register creates an account and returns the user with a fresh token pair.
func Register(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RegisterInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := svc.Register(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// Login verifies credentials and returns the user with a fresh token pair.
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := svc.Login(c.UserContext(), in.Email, in.Password)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// Logout revokes the submitted refresh token.
func Logout(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			Refresh string `json:"refresh"`
		}
		if err := c.BodyParser(&in); err != nil || in.Refresh == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "refresh token is required")
		}

		if err := svc.Logout(c.UserContext(), in.Refresh); err != nil {
			// A token that cannot be parsed is a malformed request, not an
			// authentication failure.
			if errors.Is(err, service.ErrInvalidToken) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_TOKEN", "invalid refresh token")
			}
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
