package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Dashboard(c *fiber.Ctx) error {
	snapshot, err := handler.reports.Dashboard(time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build dashboard")
	}
	return c.JSON(fiber.Map{"stats": snapshot})
}

func (handler *Handler) WeeklyReport(c *fiber.Ctx) error {
	report, err := handler.reports.WeeklyTrend(time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build report")
	}
	return c.JSON(fiber.Map{"report": report})
}

// PreferencesReport combines the raw submissions for a date with the
// attendance split and item demand totals the kitchen plans against.
func (handler *Handler) PreferencesReport(c *fiber.Ctx) error {
	day, err := handler.parseDateParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	preferences, err := handler.preferences.ListForDate(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load preferences")
	}
	attendance, err := handler.reports.AttendanceSummary(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build report")
	}
	demand, err := handler.reports.ItemDemandSummary(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build report")
	}

	return c.JSON(fiber.Map{
		"date":        day.Format(dateParamLayout),
		"preferences": preferences,
		"attendance":  attendance,
		"itemDemand":  demand,
	})
}
