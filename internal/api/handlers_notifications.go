package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/messmate/internal/services"
)

func (handler *Handler) SendNotification(c *fiber.Ctx) error {
	sender, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := notificationPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	notification, err := handler.notifications.Send(sender.ID, services.NotificationInput{
		Title:     payload.Title,
		Message:   payload.Message,
		Category:  payload.Category,
		Priority:  payload.Priority,
		Audience:  payload.Audience,
		ExpiresAt: payload.ExpiresAt,
	})
	if err != nil {
		return respondServiceError(c, err, "failed to send notification")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "notification sent",
		"notification": notification,
	})
}

// ListNotifications pages through what the caller may see, newest first.
// ?unreadOnly=true narrows to notifications without the caller's receipt.
func (handler *Handler) ListNotifications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	page := parsePageParams(c, 20, 100)
	unreadOnly := c.Query("unreadOnly") == "true"

	views, total, unreadCount, err := handler.notifications.ListVisibleForUser(*user, unreadOnly, page.Offset, page.Limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notifications")
	}
	return c.JSON(fiber.Map{
		"notifications": views,
		"unreadCount":   unreadCount,
		"pagination": fiber.Map{
			"page":       page.Page,
			"limit":      page.Limit,
			"total":      total,
			"totalPages": totalPages(total, page.Limit),
		},
	})
}

func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	if err := handler.notifications.MarkRead(user.ID, notificationID); err != nil {
		return respondServiceError(c, err, "failed to mark as read")
	}
	return c.JSON(fiber.Map{"message": "notification marked as read"})
}

func (handler *Handler) DeleteNotification(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	if err := handler.notifications.Delete(*user, notificationID); err != nil {
		return respondServiceError(c, err, "failed to delete notification")
	}
	return c.JSON(fiber.Map{"message": "notification deleted"})
}

func (handler *Handler) SentNotifications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	page := parsePageParams(c, 20, 100)
	notifications, total, err := handler.notifications.ListSent(user.ID, page.Offset, page.Limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notifications")
	}
	return c.JSON(fiber.Map{
		"notifications": notifications,
		"pagination": fiber.Map{
			"page":       page.Page,
			"limit":      page.Limit,
			"total":      total,
			"totalPages": totalPages(total, page.Limit),
		},
	})
}
