package telemetry

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/attribute"
)

func (r *Telemetry) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// * start span
		s, ctx := r.Layer.With(c.Context())
		defer s.End()

		// * set context
		c.SetContext(ctx)

		// * set attributes
		s.Trace().SetAttributes(
			attribute.String("http.method", c.Method()),
			attribute.String("http.url", c.OriginalURL()),
			attribute.String("http.user_agent", c.Get("User-Agent")),
		)

		// * count metric
		route := c.Path()
		r.Instrument.HttpActiveRequest(ctx, 1, route)
		defer r.Instrument.HttpActiveRequest(ctx, -1, route)

		// * proceed to next
		err := c.Next()

		// * record metric
		r.Instrument.HttpDurationRecord(ctx, time.Since(*s.Started).Milliseconds(), route, c.Response().StatusCode())
		s.Trace().SetAttributes(attribute.Int("http.status_code", c.Response().StatusCode()))
		return err
	}
}
