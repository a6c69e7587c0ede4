package summit

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, store *Store) {
	r.Get("/activity/:id", func(c *fiber.Ctx) error {
		summits, err := store.ByActivity(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(summits)
	})

	r.Get("/peak/:id", func(c *fiber.Ctx) error {
		summits, err := store.ByPeak(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(summits)
	})
}
