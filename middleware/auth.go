package middleware

import (
	"learnhub/config"
	"learnhub/models"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthMiddleware resolves the Authorization token to a user id and stores it
// in the request locals under "userID".
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals("userID", userID)
		return c.Next()
	}
}

// AdminMiddleware requires the authenticated user to hold the admin role.
// Must run after AuthMiddleware.
func AdminMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uint)
		if !ok {
			return utils.Unauthorized(c, "Unauthorized")
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		if user.Role != "admin" {
			return utils.Forbidden(c, "Admin access required")
		}

		return c.Next()
	}
}
