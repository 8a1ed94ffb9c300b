package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	page := parsePageParams(c, 20, 100)

	users, total, err := handler.userAdmin.List(c.Query("role"), c.Query("search"), page.Offset, page.Limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load users")
	}
	return c.JSON(fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"page":       page.Page,
			"limit":      page.Limit,
			"total":      total,
			"totalPages": totalPages(total, page.Limit),
		},
	})
}

func (handler *Handler) UpdateUserStatus(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	payload := userStatusPayload{}
	if err := c.BodyParser(&payload); err != nil || payload.IsActive == nil {
		return apiError(c, fiber.StatusBadRequest, "isActive is required")
	}

	user, err := handler.userAdmin.SetActive(userID, *payload.IsActive)
	if err != nil {
		return respondServiceError(c, err, "failed to update user")
	}

	message := "user activated"
	if !user.IsActive {
		message = "user deactivated"
	}
	return c.JSON(fiber.Map{
		"message": message,
		"user":    user,
	})
}

func (handler *Handler) UpdateUserRole(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	payload := userRolePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.userAdmin.SetRole(userID, payload.Role)
	if err != nil {
		return respondServiceError(c, err, "failed to update user")
	}
	return c.JSON(fiber.Map{
		"message": "role updated",
		"user":    user,
	})
}

// DeleteUser removes the account together with its meal preferences. Menus
// and notifications the user authored stay behind.
func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	actor, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	user, err := handler.userAdmin.Delete(actor.ID, userID)
	if err != nil {
		return respondServiceError(c, err, "failed to delete user")
	}
	return c.JSON(fiber.Map{
		"message": "user deleted",
		"user":    user,
	})
}
