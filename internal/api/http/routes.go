package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/bot"
	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/forecast"
	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/session"
)

var validate = validator.New()

// RegisterRoutes wires the inbound triggers into the Fiber app. These are
// the endpoints the external chat shell calls: the weather query and the
// per-session navigation steps.
func RegisterRoutes(app *fiber.App, service *bot.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/report", func(c *fiber.Ctx) error {
		rep, sessionID, err := service.HandleQuery(c.Context())
		if err != nil {
			if errors.Is(err, forecast.ErrFetch) {
				return fiber.NewError(fiber.StatusBadGateway, bot.NoticeFetchFailed)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build weather report")
		}

		return c.JSON(fiber.Map{
			"session_id": sessionID,
			"report":     rep,
		})
	})

	v1.Post("/weather/sessions/:id/navigate", func(c *fiber.Ctx) error {
		var req navigateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rep, err := service.HandleNavigate(c.Context(), c.Params("id"), session.Action(req.Action))
		if err != nil {
			var nav *bot.NavigateError
			if errors.As(err, &nav) {
				switch {
				case errors.Is(err, session.ErrExpired):
					return fiber.NewError(fiber.StatusGone, nav.Notice)
				case errors.Is(err, session.ErrOutOfRange):
					return fiber.NewError(fiber.StatusConflict, nav.Notice)
				default:
					return fiber.NewError(fiber.StatusBadGateway, nav.Notice)
				}
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to navigate forecast")
		}

		return c.JSON(fiber.Map{
			"session_id": c.Params("id"),
			"report":     rep,
		})
	})
}

// navigateRequest is the body of one navigation step.
type navigateRequest struct {
	Action string `json:"action" validate:"required,oneof=previous reset next"`
}
