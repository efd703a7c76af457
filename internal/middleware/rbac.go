package middleware

import (
	"context"

	"go-reporthub/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// PermissionChecker is satisfied by the role service; declared here to
// avoid importing the role feature from middleware.
type PermissionChecker interface {
	CanAccess(ctx context.Context, userID string, token string) (bool, error)
}

// RequirePage checks that the authenticated user's resolved permission
// set contains the given page token.
func RequirePage(checker PermissionChecker, skipAuth bool, token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skipAuth {
			return c.Next()
		}

		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		allowed, err := checker.CanAccess(c.UserContext(), claims.UserID, token)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		}

		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}

		return c.Next()
	}
}
