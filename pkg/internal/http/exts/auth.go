package exts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const userLocalsKey = "user_id"

// AuthMiddleware resolves the bearer token into the current user id.
// Requests without a valid token continue anonymously, the handlers
// decide whether authentication is required.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if len(secret) == 0 || !strings.HasPrefix(header, "Bearer ") {
			return c.Next()
		}

		user, err := ParseUserToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Debug().Err(err).Msg("Rejected bearer token, continue as anonymous...")
			return c.Next()
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

func ParseUserToken(secret, raw string) (uint, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid claims")
	}

	var id uint64
	switch sub := claims["sub"].(type) {
	case float64:
		if sub <= 0 {
			return 0, fmt.Errorf("invalid subject: %v", sub)
		}
		id = uint64(sub)
	case string:
		if id, err = strconv.ParseUint(sub, 10, 64); err != nil || id == 0 {
			return 0, fmt.Errorf("invalid subject: %q", sub)
		}
	default:
		return 0, fmt.Errorf("missing subject")
	}

	return uint(id), nil
}

func CurrentUser(c *fiber.Ctx) (uint, bool) {
	user, ok := c.Locals(userLocalsKey).(uint)
	return user, ok
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := CurrentUser(c); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	return nil
}

func EnsureGrantedAdmin(c *fiber.Ctx, admins []uint) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := CurrentUser(c)
	if !lo.Contains(admins, user) {
		return fiber.NewError(fiber.StatusForbidden, "admin permission required")
	}
	return nil
}
