package activity

import (
	"errors"

	"backend-peaktrack/internal/summit"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req IngestRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		act, summits, err := svc.Ingest(c.Context(), req)
		switch {
		case errors.Is(err, ErrNoTrackPoints), errors.Is(err, ErrStreamMismatch):
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		if summits == nil {
			summits = []summit.Summit{}
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"activity": act,
			"summits":  summits,
		})
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		act, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "activity not found")
		}
		return c.JSON(act)
	})
}
