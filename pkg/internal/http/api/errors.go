package api

import (
	"errors"

	"git.solsynth.dev/hypernet/meetup/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

// translateError maps service failures onto http statuses, anything
// unknown is a store failure.
func translateError(err error) error {
	switch {
	case errors.Is(err, services.ErrMeetUpNotFound),
		errors.Is(err, services.ErrNotSubscribed),
		errors.Is(err, services.ErrPreferenceNotExists):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrFileNotFound):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAlreadySubscribed),
		errors.Is(err, services.ErrPreferenceExists),
		errors.Is(err, services.ErrCategoryExists):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
