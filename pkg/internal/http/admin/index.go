package admin

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controllers struct {
	DB     *gorm.DB
	Admins []uint
}

func (v *Controllers) MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL)
	{
		admin.Post("/cleanup", v.adminTriggerDatabaseCleanup)
	}
}
