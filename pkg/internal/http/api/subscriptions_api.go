package api

import "github.com/gofiber/fiber/v2"

func (v *Controllers) listSubscribedID(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Auth: true})
	if err != nil {
		return err
	}

	ids, err := v.Subscriptions.ListSubscribedIDs(c.UserContext(), req.UserID)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(ids)
}

func (v *Controllers) getMeetUpSubscription(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Auth: true, IDParam: "meetupId"})
	if err != nil {
		return err
	}

	subscription, err := v.Subscriptions.GetSubscriptionOnMeetUp(c.UserContext(), req.UserID, req.ID)
	if err != nil {
		return translateError(err)
	} else if subscription == nil {
		return fiber.NewError(fiber.StatusNotFound, "subscription does not exist")
	}
	return c.JSON(subscription)
}

func (v *Controllers) subscribeMeetUp(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Auth: true, IDParam: "meetupId"})
	if err != nil {
		return err
	}

	subscription, err := v.Subscriptions.SubscribeToMeetUp(c.UserContext(), req.UserID, req.ID)
	if err != nil {
		return translateError(err)
	}
	return c.JSON(subscription)
}

func (v *Controllers) unsubscribeMeetUp(c *fiber.Ctx) error {
	req, err := resolveRequest(c, requestSpec{Auth: true, IDParam: "meetupId"})
	if err != nil {
		return err
	}

	if err := v.Subscriptions.UnsubscribeFromMeetUp(c.UserContext(), req.UserID, req.ID); err != nil {
		return translateError(err)
	}
	return c.SendStatus(fiber.StatusOK)
}
