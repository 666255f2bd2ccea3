package api

import (
	"git.solsynth.dev/hypernet/meetup/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/meetup/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (v *Controllers) listMeetUp(c *fiber.Ctx) error {
	items, err := v.MeetUps.ListAll(c.UserContext())
	if err != nil {
		return translateError(err)
	}
	return c.JSON(items)
}

func (v *Controllers) listUnsubscribedMeetUp(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Auth: true})
	if err != nil {
		return err
	}

	items, err := v.MeetUps.ListUnsubscribed(c.UserContext(), req.UserID)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(items)
}

func (v *Controllers) listSubscribedMeetUp(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Auth: true})
	if err != nil {
		return err
	}

	items, err := v.MeetUps.ListSubscribed(c.UserContext(), req.UserID)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(items)
}

func (v *Controllers) listRecommendedMeetUp(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Auth: true})
	if err != nil {
		return err
	}

	items, err := v.MeetUps.ListRecommended(c.UserContext(), req.UserID)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(items)
}

func (v *Controllers) getMeetUp(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{IDParam: "meetupId"})
	if err != nil {
		return err
	}

	items, err := v.MeetUps.GetByID(c.UserContext(), req.ID)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(items)
}

func (v *Controllers) getMeetUpByTitle(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Title: true})
	if err != nil {
		return err
	}

	items, err := v.MeetUps.GetByTitle(c.UserContext(), req.Title)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(items)
}

func (v *Controllers) getSubscribedMeetUpByTitle(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Auth: true, Title: true})
	if err != nil {
		return err
	}

	items, err := v.MeetUps.GetSubscribedByTitle(c.UserContext(), req.Title, req.UserID)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(items)
}

func (v *Controllers) getRecommendedMeetUpByTitle(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Auth: true, Title: true})
	if err != nil {
		return err
	}

	items, err := v.MeetUps.GetRecommendedByTitle(c.UserContext(), req.Title, req.UserID)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(items)
}

func (v *Controllers) createMeetUp(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Auth: true})
	if err != nil {
		return err
	}

	var data services.MeetUpPayload
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := v.MeetUps.Create(c.UserContext(), req.UserID, data)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(item)
}

func (v *Controllers) editMeetUp(c *fiber.Ctx) error {
	if _, err := resolveRequest(c, requestSpec{Auth: true, IDParam: "meetupId"}); err != nil {
		return err
	}
	return fiber.NewError(fiber.StatusNotImplemented, "editing meetups is not implemented")
}

func (v *Controllers) deleteMeetUp(c *fiber.Ctx) error {
	if _, err := resolveRequest(c, requestSpec{Auth: true, IDParam: "meetupId"}); err != nil {
		return err
	}
	return fiber.NewError(fiber.StatusNotImplemented, "deleting meetups is not implemented")
}
