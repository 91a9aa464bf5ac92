package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"github.com/nickmackenzie/folder-hero/package/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type config struct{}

func (r *config) GetAppName() *string {
	return gut.Ptr("folderhero")
}

func (r *config) GetAppVersion() *string {
	return nil
}

func (r *config) GetTelemetryUrl() *string {
	return nil
}

func (r *config) GetTelemetryOrganization() *string {
	return nil
}

func TestNewWithoutUrl(t *testing.T) {
	telemetry, err := New(&config{})
	require.NoError(t, err)
	require.NotNil(t, telemetry.Instrument)
	assert.NoError(t, telemetry.Shutdown(context.Background()))
}

func TestMiddlewareCarriesSpan(t *testing.T) {
	telemetry, err := New(&config{})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(telemetry.Middleware())

	var found *span.Span
	app.Get("/", func(c fiber.Ctx) error {
		found = span.FromContext(c.Context())
		return c.SendStatus(fiber.StatusNoContent)
	})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, res.StatusCode)
	require.NotNil(t, found)
	assert.Equal(t, "telemetry", found.Layer.Name)
}
