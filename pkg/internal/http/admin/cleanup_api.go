package admin

import (
	"git.solsynth.dev/hypernet/meetup/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/meetup/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (v *Controllers) adminTriggerDatabaseCleanup(c *fiber.Ctx) error {
	if err := exts.EnsureGrantedAdmin(c, v.Admins); err != nil {
		return err
	}

	affected := services.DoAutoDatabaseCleanup(v.DB.WithContext(c.UserContext()))

	return c.JSON(fiber.Map{"affected": affected})
}
