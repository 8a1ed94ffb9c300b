package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/messmate/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps service sentinels onto the HTTP taxonomy:
// invalid input 400, missing resource 404, conflict 409, refused access 403.
// Anything unclassified is a store failure reported generically.
func respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrInvalidMeal),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidItem),
		errors.Is(err, services.ErrInvalidTiming),
		errors.Is(err, services.ErrInvalidNotification),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrSelfDeletion):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrMenuNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNotificationNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrMenuExists),
		errors.Is(err, services.ErrEmailExists):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return apiError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrAccountDisabled):
		return apiError(c, fiber.StatusForbidden, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, fallback)
	}
}

const dateParamLayout = "2006-01-02"

func (handler *Handler) parseDateParam(raw string) (time.Time, error) {
	value, err := time.ParseInLocation(dateParamLayout, strings.TrimSpace(raw), handler.location)
	if err != nil {
		return time.Time{}, err
	}
	return value, nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}

type pageParams struct {
	Page   int
	Limit  int
	Offset int
}

func parsePageParams(c *fiber.Ctx, defaultLimit int, maxLimit int) pageParams {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return pageParams{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
