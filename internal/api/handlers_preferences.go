package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SubmitPreference upserts the caller's choice for one (date, meal) pair.
// Resubmitting overwrites the earlier record rather than adding a second one.
func (handler *Handler) SubmitPreference(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := preferencePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := handler.parseDateParam(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	isAttending := true
	if payload.IsAttending != nil {
		isAttending = *payload.IsAttending
	}

	preference, err := handler.preferences.Submit(user.ID, day, payload.Meal, payload.Items, isAttending, payload.SpecialRequests)
	if err != nil {
		return respondServiceError(c, err, "failed to save preference")
	}
	return c.JSON(fiber.Map{
		"message":    "preference saved",
		"preference": preference,
	})
}

// MyPreferences lists the caller's submissions for one date, defaulting to
// today.
func (handler *Handler) MyPreferences(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day := time.Now().In(handler.location)
	if raw := c.Query("date"); raw != "" {
		parsed, err := handler.parseDateParam(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		day = parsed
	}

	preferences, err := handler.preferences.ListForUserDate(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load preferences")
	}
	return c.JSON(fiber.Map{"preferences": preferences})
}

// PreferenceSummary gives kitchen staff the per-item demand totals for a
// date, grouped by meal and restricted to attending submissions.
func (handler *Handler) PreferenceSummary(c *fiber.Ctx) error {
	day, err := handler.parseDateParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	summary, err := handler.reports.ItemDemandSummary(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build summary")
	}
	return c.JSON(fiber.Map{
		"date":    day.Format(dateParamLayout),
		"summary": summary,
	})
}

// PreferenceStats reports, per meal, the submission total alongside the
// attending/not-attending split for a date.
func (handler *Handler) PreferenceStats(c *fiber.Ctx) error {
	day, err := handler.parseDateParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	summary, err := handler.reports.AttendanceSummary(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build stats")
	}
	return c.JSON(fiber.Map{
		"date":  day.Format(dateParamLayout),
		"meals": summary,
	})
}
