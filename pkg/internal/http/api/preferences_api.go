package api

import (
	"git.solsynth.dev/hypernet/meetup/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func (v *Controllers) listPreference(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Auth: true})
	if err != nil {
		return err
	}

	preferences, err := v.Preferences.ListPreference(c.UserContext(), req.UserID)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(preferences)
}

func (v *Controllers) addPreference(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Auth: true})
	if err != nil {
		return err
	}

	var data struct {
		PrefID uint `json:"pref_id" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	preference, err := v.Preferences.AddPreference(c.UserContext(), req.UserID, data.PrefID)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(preference)
}

func (v *Controllers) removePreference(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Auth: true, IDParam: "categoryId"})
	if err != nil {
		return err
	}

	if err := v.Preferences.RemovePreference(c.UserContext(), req.UserID, req.ID); err != nil {
		return translateError(err)
	}
	return c.SendStatus(fiber.StatusOK)
}
