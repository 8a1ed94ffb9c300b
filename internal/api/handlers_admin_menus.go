package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListMenus(c *fiber.Ctx) error {
	page := parsePageParams(c, 20, 100)

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := handler.parseDateParam(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid from date")
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := handler.parseDateParam(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid to date")
		}
		to = &parsed
	}

	menus, total, err := handler.menus.List(from, to, page.Offset, page.Limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load menus")
	}
	return c.JSON(fiber.Map{
		"menus": menus,
		"pagination": fiber.Map{
			"page":       page.Page,
			"limit":      page.Limit,
			"total":      total,
			"totalPages": totalPages(total, page.Limit),
		},
	})
}

// CreateMenu is the strict variant of publishing: a second create for the
// same date is a conflict instead of an overwrite.
func (handler *Handler) CreateMenu(c *fiber.Ctx) error {
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

	menu, err := handler.menus.CreateStrict(admin.ID, day, payload.Meals.toInput())
	if err != nil {
		return respondServiceError(c, err, "failed to create menu")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "menu created",
		"menu":    menu,
	})
}

// ReplaceMenu swaps out all four meal slots of an existing menu at once.
func (handler *Handler) ReplaceMenu(c *fiber.Ctx) error {
	menuID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid menu id")
	}

	payload := menuPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	menu, err := handler.menus.ReplaceMeals(menuID, payload.Meals.toInput())
	if err != nil {
		return respondServiceError(c, err, "failed to update menu")
	}
	return c.JSON(fiber.Map{
		"message": "menu updated",
		"menu":    menu,
	})
}

// DeleteMenu removes the menu and every preference submitted against its
// date, so stale counts cannot survive the menu they were for.
func (handler *Handler) DeleteMenu(c *fiber.Ctx) error {
	menuID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid menu id")
	}

	menu, err := handler.menus.Delete(menuID)
	if err != nil {
		return respondServiceError(c, err, "failed to delete menu")
	}
	return c.JSON(fiber.Map{
		"message": "menu deleted",
		"menu":    menu,
	})
}
