package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// MenuToday returns today's menu, lazily persisting the starter menu the
// first time the date is read.
func (handler *Handler) MenuToday(c *fiber.Ctx) error {
	menu, err := handler.menus.GetOrCreateDefault(time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err, "failed to load menu")
	}
	return c.JSON(fiber.Map{"menu": menu})
}

func (handler *Handler) MenuByDate(c *fiber.Ctx) error {
	day, err := handler.parseDateParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	menu, err := handler.menus.GetByDate(day)
	if err != nil {
		return respondServiceError(c, err, "failed to load menu")
	}
	return c.JSON(fiber.Map{"menu": menu})
}

// PublishMenu is the upsert entry point: publishing a date that already has
// a menu overwrites its meals. The strict admin create lives under
// /api/admin/menus.
func (handler *Handler) PublishMenu(c *fiber.Ctx) error {
	admin, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := menuPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := handler.parseDateParam(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	menu, created, err := handler.menus.Publish(admin.ID, day, payload.Meals.toInput())
	if err != nil {
		return respondServiceError(c, err, "failed to save menu")
	}

	status := fiber.StatusOK
	message := "menu updated"
	if created {
		status = fiber.StatusCreated
		message = "menu created"
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"menu":    menu,
	})
}

// UpdateMenuSlot replaces one meal slot's items and optional timing/active
// flag, leaving the other slots alone.
func (handler *Handler) UpdateMenuSlot(c *fiber.Ctx) error {
	menuID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid menu id")
	}
	meal := c.Params("mealType")

	payload := slotUpdatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	menu, err := handler.menus.UpdateSlot(menuID, meal, payload.Items, payload.Timing, payload.IsActive)
	if err != nil {
		return respondServiceError(c, err, "failed to update meal")
	}
	return c.JSON(fiber.Map{
		"message": meal + " updated",
		"menu":    menu,
	})
}
