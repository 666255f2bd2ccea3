package api

import (
	"errors"

	"git.solsynth.dev/hypernet/meetup/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/meetup/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (v *Controllers) listCategories(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)
	if take > 100 {
		take = 100
	}

	categories, err := v.Categories.ListCategory(c.UserContext(), take, offset)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(categories)
}

func (v *Controllers) getCategory(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{IDParam: "categoryId"})
	if err != nil {
		return err
	}

	category, err := v.Categories.GetCategoryWithID(c.UserContext(), req.ID)
	if errors.Is(err, services.ErrCategoryNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if err != nil {
		return translateError(err)
	}
	return c.JSON(category)
}

func (v *Controllers) newCategory(c *fiber.Ctx) error {
	if _, err := resolveRequest(c, requestSpec{Auth: true}); err != nil {
		return err
	}

	var data struct {
		Alias       string `json:"alias" validate:"required,lowercase,alphanum"`
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := v.Categories.NewCategory(c.UserContext(), data.Alias, data.Name, data.Description)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(category)
}
