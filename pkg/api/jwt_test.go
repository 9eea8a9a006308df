package api

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func testProtectedApp(t *testing.T) *fiber.App {
	t.Helper()

	t.Setenv("AUTH0_DOMAIN", "127.0.0.1:1")
	t.Setenv("AUTH0_AUDIENCE", "https://moduro.test")

	app := fiber.New()
	app.Use(EnsureValidToken())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

func TestEnsureValidTokenRejectsBadAuthorizationHeaders(t *testing.T) {
	app := testProtectedApp(t)

	headers := map[string]string{
		"missing":      "",
		"scheme only":  "Bearer",
		"wrong scheme": "Basic dXNlcjpwYXNz",
		"truncated":    "Bear",
		"empty token":  "Bearer ",
	}

	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/", nil)
			if header != "" {
				request.Header.Set("Authorization", header)
			}

			response, err := app.Test(request)
			if err != nil {
				t.Fatalf("handling request: %v", err)
			}

			if response.StatusCode != fiber.StatusUnauthorized {
				t.Errorf("status = %d, expected %d", response.StatusCode, fiber.StatusUnauthorized)
			}
		})
	}
}

func TestEnsureValidTokenRejectsGarbageToken(t *testing.T) {
	app := testProtectedApp(t)

	request := httptest.NewRequest("GET", "/", nil)
	request.Header.Set("Authorization", "Bearer not-a-jwt")

	response, err := app.Test(request)
	if err != nil {
		t.Fatalf("handling request: %v", err)
	}

	if response.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, expected %d", response.StatusCode, fiber.StatusUnauthorized)
	}
}
