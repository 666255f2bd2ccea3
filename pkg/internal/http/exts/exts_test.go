package exts

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/valyala/fasthttp"
)

const testSecret = "testing-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestParseUserToken(t *testing.T) {
	secret := []byte(testSecret)

	tests := []struct {
		name    string
		token   string
		want    uint
		wantErr bool
	}{
		{"numeric subject", sign(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"sub": 42}), 42, false},
		{"string subject", sign(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"sub": "7"}), 7, false},
		{"missing subject", sign(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"name": "x"}), 0, true},
		{"zero subject", sign(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"sub": "0"}), 0, true},
		{"wrong secret", sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": 1}), 0, true},
		{"wrong method", sign(t, jwt.SigningMethodHS512, secret, jwt.MapClaims{"sub": 1}), 0, true},
		{"garbage", "not-a-token", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUserToken(testSecret, tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUserToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseUserToken() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(AuthMiddleware(testSecret))
	app.Get("/me", func(c *fiber.Ctx) error {
		if err := EnsureAuthenticated(c); err != nil {
			return err
		}
		user, _ := CurrentUser(c)
		return c.JSON(fiber.Map{"user": user})
	})
	app.Get("/admin", func(c *fiber.Ctx) error {
		if err := EnsureGrantedAdmin(c, []uint{1}); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	request := func(path, token string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if len(token) > 0 {
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		}
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		defer resp.Body.Close()
		return resp.StatusCode
	}

	admin := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": 1})
	member := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": 2})

	if status := request("/me", ""); status != fiber.StatusUnauthorized {
		t.Errorf("anonymous: expected 401, got %d", status)
	}
	if status := request("/me", "broken"); status != fiber.StatusUnauthorized {
		t.Errorf("broken token: expected 401, got %d", status)
	}
	if status := request("/me", member); status != fiber.StatusOK {
		t.Errorf("member: expected 200, got %d", status)
	}
	if status := request("/admin", member); status != fiber.StatusForbidden {
		t.Errorf("member on admin: expected 403, got %d", status)
	}
	if status := request("/admin", admin); status != fiber.StatusOK {
		t.Errorf("admin: expected 200, got %d", status)
	}
}

func TestDecodeParam(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/title/:title", func(c *fiber.Ctx) error {
		title, err := DecodeParam(c, "title")
		if err != nil {
			return err
		}
		return c.SendString(title)
	})

	req := httptest.NewRequest(http.MethodGet, "/title/Caf%C3%A9%20Meetup", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK || string(body) != "Café Meetup" {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, body)
	}

	handler := app.Handler()
	for _, uri := range []string{"/title/%ZZ", "/title/%E0%A4%A", "/title/100%"} {
		var ctx fasthttp.RequestCtx
		ctx.Request.Header.SetMethod(http.MethodGet)
		ctx.Request.SetRequestURI(uri)
		handler(&ctx)

		if status := ctx.Response.StatusCode(); status != fiber.StatusBadRequest {
			t.Errorf("GET %s: expected 400, got %d", uri, status)
		}
		if body := string(ctx.Response.Body()); body != `{"error":"invalid encoding of title"}` {
			t.Errorf("GET %s: unexpected body %s", uri, body)
		}
	}
}

func TestErrorHandlerHidesServerErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "pq: connection refused")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusInternalServerError || string(body) != `{"error":"internal server error"}` {
		t.Fatalf("unexpected response %d %s", resp.StatusCode, body)
	}
}
