package peak

import (
	"strconv"

	"backend-peaktrack/internal/geo"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req Peak
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name required")
		}
		p, err := svc.CreatePeak(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	})

	r.Get("/", func(c *fiber.Ctx) error {
		peaks, err := svc.ListPeaks(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(peaks)
	})

	r.Get("/box", func(c *fiber.Ctx) error {
		box := geo.BoundingBox{
			MinLat: queryFloat(c, "min_lat"),
			MaxLat: queryFloat(c, "max_lat"),
			MinLng: queryFloat(c, "min_lng"),
			MaxLng: queryFloat(c, "max_lng"),
		}
		peaks, err := svc.PeaksInBox(c.Context(), box)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(peaks)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		p, err := svc.GetPeak(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "peak not found")
		}
		return c.JSON(p)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var req PeakPatch
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		p, err := svc.UpdatePeak(c.Context(), c.Params("id"), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(p)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		if err := svc.DeletePeak(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func queryFloat(c *fiber.Ctx, name string) float64 {
	v, _ := strconv.ParseFloat(c.Query(name), 64)
	return v
}
