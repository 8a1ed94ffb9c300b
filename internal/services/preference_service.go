package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/messmate/internal/models"
)

type PreferenceStore interface {
	FindByUserDayMeal(userID uint, dayStart time.Time, dayEnd time.Time, meal string) (models.MealPreference, bool, error)
	Create(preference *models.MealPreference) error
	Save(preference *models.MealPreference) error
	ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.MealPreference, error)
	ListByRange(fromStart time.Time, toEnd time.Time) ([]models.MealPreference, error)
}

type PreferenceService struct {
	preferences PreferenceStore
	location    *time.Location
}

func NewPreferenceService(preferences PreferenceStore, location *time.Location) *PreferenceService {
	if location == nil {
		location = time.UTC
	}
	return &PreferenceService{preferences: preferences, location: location}
}

func validatePreferenceItems(items []models.PreferenceItem) ([]models.PreferenceItem, error) {
	validated := make([]models.PreferenceItem, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.ItemID) == "" || strings.TrimSpace(item.ItemName) == "" {
			return nil, ErrInvalidItem
		}
		if item.Quantity < models.MinItemQuantity || item.Quantity > models.MaxItemQuantity {
			return nil, ErrInvalidQuantity
		}
		validated = append(validated, item)
	}
	return validated, nil
}

// Submit upserts the caller's preference for (date, meal): a second
// submission for the same key overwrites items, attendance and note in place
// and refreshes the submission stamp. Validation failures leave the store
// untouched.
func (service *PreferenceService) Submit(userID uint, day time.Time, meal string, items []models.PreferenceItem, isAttending bool, specialRequests string) (models.MealPreference, error) {
	if !models.IsValidMeal(meal) {
		return models.MealPreference{}, ErrInvalidMeal
	}
	validatedItems, err := validatePreferenceItems(items)
	if err != nil {
		return models.MealPreference{}, err
	}

	dayStart, dayEnd := DayRange(day, service.location)
	now := time.Now().In(service.location)

	preference, found, err := service.preferences.FindByUserDayMeal(userID, dayStart, dayEnd, meal)
	if err != nil {
		return models.MealPreference{}, fmt.Errorf("load preference: %w", err)
	}
	if found {
		preference.Items = validatedItems
		preference.IsAttending = isAttending
		preference.SpecialRequests = strings.TrimSpace(specialRequests)
		preference.SubmittedAt = now
		if err := service.preferences.Save(&preference); err != nil {
			return models.MealPreference{}, fmt.Errorf("update preference: %w", err)
		}
		return preference, nil
	}

	preference = models.MealPreference{
		UserID:          userID,
		Date:            dayStart,
		Meal:            meal,
		Items:           validatedItems,
		IsAttending:     isAttending,
		SpecialRequests: strings.TrimSpace(specialRequests),
		SubmittedAt:     now,
	}
	if err := service.preferences.Create(&preference); err != nil {
		return models.MealPreference{}, fmt.Errorf("create preference: %w", err)
	}
	return preference, nil
}

func (service *PreferenceService) ListForUserDate(userID uint, day time.Time) ([]models.MealPreference, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.preferences.ListByUserDayRange(userID, dayStart, dayEnd)
}

func (service *PreferenceService) ListForDate(day time.Time) ([]models.MealPreference, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.preferences.ListByRange(dayStart, dayEnd)
}
