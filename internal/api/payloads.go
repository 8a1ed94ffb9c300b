package api

import (
	"time"

	"github.com/terraincognita07/messmate/internal/models"
	"github.com/terraincognita07/messmate/internal/services"
)

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// mealSlotPayload keeps timing and the active flag as pointers so omitted
// fields fall back to slot defaults instead of zero values.
type mealSlotPayload struct {
	Items    []models.MenuItem  `json:"items"`
	Timing   *models.MealTiming `json:"timing"`
	IsActive *bool              `json:"isActive"`
}

type mealSetPayload struct {
	Breakfast mealSlotPayload `json:"breakfast"`
	Lunch     mealSlotPayload `json:"lunch"`
	Snacks    mealSlotPayload `json:"snacks"`
	Dinner    mealSlotPayload `json:"dinner"`
}

func (payload mealSetPayload) toInput() services.MealSetInput {
	return services.MealSetInput{
		Breakfast: payload.Breakfast.toInput(),
		Lunch:     payload.Lunch.toInput(),
		Snacks:    payload.Snacks.toInput(),
		Dinner:    payload.Dinner.toInput(),
	}
}

func (payload mealSlotPayload) toInput() services.MealSlotInput {
	return services.MealSlotInput{
		Items:    payload.Items,
		Timing:   payload.Timing,
		IsActive: payload.IsActive,
	}
}

type menuPayload struct {
	Date  string         `json:"date"`
	Meals mealSetPayload `json:"meals"`
}

type slotUpdatePayload struct {
	Items    []models.MenuItem  `json:"items"`
	Timing   *models.MealTiming `json:"timing"`
	IsActive *bool              `json:"isActive"`
}

type preferencePayload struct {
	Date            string                  `json:"date"`
	Meal            string                  `json:"meal"`
	Items           []models.PreferenceItem `json:"items"`
	IsAttending     *bool                   `json:"isAttending"`
	SpecialRequests string                  `json:"specialRequests"`
}

type notificationPayload struct {
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Category  string     `json:"type"`
	Priority  string     `json:"priority"`
	Audience  string     `json:"targetAudience"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

type userStatusPayload struct {
	IsActive *bool `json:"isActive"`
}

type userRolePayload struct {
	Role string `json:"role"`
}
