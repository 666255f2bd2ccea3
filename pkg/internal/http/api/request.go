package api

import (
	"git.solsynth.dev/hypernet/meetup/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

// requestSpec declares what a handler needs resolved before it may query.
type requestSpec struct {
	Auth    bool
	IDParam string
	Title   bool
}

// requestContext is the validated input of a handler.
type requestContext struct {
	UserID        uint
	Authenticated bool
	ID            uint
	Title         string
}

func resolveRequest(c *fiber.Ctx, spec requestSpec) (requestContext, error) {
	var ctx requestContext

	if user, ok := exts.CurrentUser(c); ok {
		ctx.UserID = user
		ctx.Authenticated = true
	} else if spec.Auth {
		return ctx, exts.EnsureAuthenticated(c)
	}

	if len(spec.IDParam) > 0 {
		id, err := c.ParamsInt(spec.IDParam, 0)
		if err != nil || id <= 0 {
			return ctx, fiber.NewError(fiber.StatusBadRequest, "invalid "+spec.IDParam)
		}
		ctx.ID = uint(id)
	}

	if spec.Title {
		title, err := exts.DecodeParam(c, "title")
		if err != nil {
			return ctx, err
		}
		ctx.Title = title
	}

	return ctx, nil
}
