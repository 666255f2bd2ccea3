package api

import (
	"git.solsynth.dev/hypernet/meetup/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

type Controllers struct {
	MeetUps       *services.MeetUpService
	Subscriptions *services.SubscriptionService
	Preferences   *services.PreferenceService
	Categories    *services.CategoryService
}

func (v *Controllers) MapControllers(app *fiber.App, baseURL string) {
	api := app.Group(baseURL)
	{
		meetups := api.Group("/meetups")
		{
			meetups.Get("/", v.listMeetUp)
			meetups.Post("/", v.createMeetUp)
			meetups.Get("/unsubscribed", v.listUnsubscribedMeetUp)
			meetups.Get("/subscribed", v.listSubscribedMeetUp)
			meetups.Get("/recommended", v.listRecommendedMeetUp)
			meetups.Get("/title/:title", v.getMeetUpByTitle)
			meetups.Get("/subscribed/title/:title", v.getSubscribedMeetUpByTitle)
			meetups.Get("/recommended/title/:title", v.getRecommendedMeetUpByTitle)
			meetups.Get("/:meetupId", v.getMeetUp)
			meetups.Put("/:meetupId", v.editMeetUp)
			meetups.Delete("/:meetupId", v.deleteMeetUp)

			meetups.Get("/:meetupId/subscription", v.getMeetUpSubscription)
			meetups.Post("/:meetupId/subscription", v.subscribeMeetUp)
			meetups.Delete("/:meetupId/subscription", v.unsubscribeMeetUp)
		}

		api.Get("/subscriptions", v.listSubscribedID)

		preferences := api.Group("/preferences")
		{
			preferences.Get("/", v.listPreference)
			preferences.Post("/", v.addPreference)
			preferences.Delete("/:categoryId", v.removePreference)
		}

		categories := api.Group("/categories")
		{
			categories.Get("/", v.listCategories)
			categories.Get("/:categoryId", v.getCategory)
			categories.Post("/", v.newCategory)
		}
	}
}
