package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sniperlink/models"
)

type staticResolver struct {
	provider *models.Provider
	err      error
	got      string
}

func (s *staticResolver) Resolve(_ context.Context, recipient string) (*models.Provider, error) {
	s.got = recipient
	return s.provider, s.err
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		_ = c.JSON(fiber.Map{"partial": "body"})
		return errors.New("secret connection string")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fiber", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "short and stout", body["detail"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/internal", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestRenderUsesPublicHostAndDisplayName(t *testing.T) {
	link := func(p models.LinkParams) string { return "https://mail.example/" + p.Sender }
	resolver := &staticResolver{provider: &models.Provider{
		ID:          "example",
		DisplayName: "Example Mail",
		Desktop:     link,
		Android:     link,
	}}
	rc := NewRenderController(resolver, "https://cdn.example/", logrus.WithField("test", true))

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/render", rc.Render)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/render?recipient=A%40Example.com&sender=b%40c.com", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body RenderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, RenderResponse{
		URL:            "https://mail.example/b@c.com",
		Image:          "https://cdn.example/logos/example.png",
		ProviderPretty: "Example Mail",
	}, body)
	assert.Equal(t, "a@example.com", resolver.got)
}

func TestRenderLookupErrorIsNotFound(t *testing.T) {
	rc := NewRenderController(&staticResolver{err: errors.New("servfail")}, "", logrus.WithField("test", true))

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/render", rc.Render)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/render?recipient=a%40corp.example&sender=b%40c.com", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "unknown_email_provider", body["code"])
	assert.Equal(t, map[string]interface{}{"recipient": "a@corp.example"}, body["metadata"])
}
