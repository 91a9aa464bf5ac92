package common

import (
	"context"
	"errors"
	"strings"

	"github.com/bsthun/gut"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/nickmackenzie/folder-hero/compat/response"
	"github.com/nickmackenzie/folder-hero/package/span"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type FiberConfig interface {
	GetWebListen() []*string
}

// FiberStatus maps sentinel errors to http status codes ahead of the
// generic error handling.
type FiberStatus map[error]int

type StructValidator struct {
	validate *validator.Validate
}

func (r *StructValidator) Validate(out any) error {
	return r.validate.Struct(out)
}

func NewFiber(status FiberStatus) *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler:    FiberError(status),
		StrictRouting:   true,
		BodyLimit:       16 * 1024 * 1024,
		StructValidator: &StructValidator{validate: validator.New()},
	})
}

func Fiber(lc fx.Lifecycle, config FiberConfig, status FiberStatus, logger *zap.Logger) *fiber.App {
	app := NewFiber(status)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				logger.Info("listening", zap.String("address", *config.GetWebListen()[1]))
				err := app.Listen(*config.GetWebListen()[1], fiber.ListenConfig{
					ListenerNetwork:       *config.GetWebListen()[0],
					DisableStartupMessage: true,
				})
				if err != nil {
					gut.Fatal("unable to listen", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			_ = app.Shutdown()
			return nil
		},
	})

	return app
}

func FiberError(status FiberStatus) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		// * case of mapped sentinel
		for sentinel, code := range status {
			if errors.Is(err, sentinel) {
				return c.Status(code).JSON(&response.ErrorResponse{
					Success: gut.Ptr(false),
					Message: gut.Ptr(sentinel.Error()),
					Error:   gut.Ptr(err.Error()),
				})
			}
		}

		// * case of `*fiber.Error`
		var fiberError *fiber.Error
		if errors.As(err, &fiberError) {
			return c.Status(fiberError.Code).JSON(&response.ErrorResponse{
				Success: gut.Ptr(false),
				Message: &fiberError.Message,
			})
		}

		// * case of `validator.ValidationErrors`
		var validatorErr validator.ValidationErrors
		if errors.As(err, &validatorErr) {
			var lists []string
			for _, err := range validatorErr {
				lists = append(lists, err.Field()+" ("+err.Tag()+")")
			}

			message := strings.Join(lists, ", ")

			return c.Status(fiber.StatusBadRequest).JSON(&response.ErrorResponse{
				Success: gut.Ptr(false),
				Message: gut.Ptr("validation failed on " + message),
				Error:   gut.Ptr(validatorErr.Error()),
			})
		}

		// * case of `*span.Error`
		var spanError *span.Error
		if errors.As(err, &spanError) {
			if spanError.Items[0].Error != nil {
				return c.Status(fiber.StatusBadRequest).JSON(&response.ErrorResponse{
					Success: gut.Ptr(false),
					Message: spanError.Items[0].Message,
					Error:   gut.Ptr(spanError.Items[0].Error.Error()),
				})
			}
			return c.Status(fiber.StatusBadRequest).JSON(&response.ErrorResponse{
				Success: gut.Ptr(false),
				Message: spanError.Items[0].Message,
				Error:   nil,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(&response.ErrorResponse{
			Success: gut.Ptr(false),
			Message: gut.Ptr("unknown server error"),
			Error:   gut.Ptr(err.Error()),
		})
	}
}
