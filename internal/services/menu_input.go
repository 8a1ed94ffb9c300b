package services

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/terraincognita07/messmate/internal/models"
)

var timeOfDayPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// MealSlotInput distinguishes omitted timing/active fields from explicit
// zero values so slot defaults only apply where the caller stayed silent.
type MealSlotInput struct {
	Items    []models.MenuItem
	Timing   *models.MealTiming
	IsActive *bool
}

type MealSetInput struct {
	Breakfast MealSlotInput
	Lunch     MealSlotInput
	Snacks    MealSlotInput
	Dinner    MealSlotInput
}

func (input *MealSetInput) slot(meal string) *MealSlotInput {
	switch meal {
	case models.MealBreakfast:
		return &input.Breakfast
	case models.MealLunch:
		return &input.Lunch
	case models.MealSnacks:
		return &input.Snacks
	case models.MealDinner:
		return &input.Dinner
	default:
		return nil
	}
}

func ValidateTiming(timing models.MealTiming) error {
	if !timeOfDayPattern.MatchString(timing.Start) || !timeOfDayPattern.MatchString(timing.End) {
		return ErrInvalidTiming
	}
	return nil
}

func normalizeMenuItems(items []models.MenuItem) ([]models.MenuItem, error) {
	normalized := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			return nil, ErrInvalidItem
		}
		if !models.IsValidItemType(item.Type) {
			return nil, ErrInvalidItem
		}
		if item.Category == "" {
			item.Category = models.CategoryMain
		}
		if !models.IsValidCategory(item.Category) {
			return nil, ErrInvalidItem
		}
		if item.Calories < 0 {
			return nil, ErrInvalidItem
		}
		item.Unit = strings.TrimSpace(item.Unit)
		if item.Unit == "" {
			return nil, ErrInvalidItem
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		normalized = append(normalized, item)
	}
	return normalized, nil
}

// BuildMealSet validates a submitted meal set and fills in slot defaults:
// per-meal serving windows where timing was omitted, active where the flag
// was omitted, and a fresh id for every item that arrived without one.
func BuildMealSet(input MealSetInput) (models.MealSet, error) {
	defaults := models.DefaultMealTimings()
	var set models.MealSet

	for _, meal := range models.MealNames() {
		slotInput := input.slot(meal)
		slot := set.Slot(meal)

		items, err := normalizeMenuItems(slotInput.Items)
		if err != nil {
			return models.MealSet{}, err
		}
		slot.Items = items

		if slotInput.Timing != nil {
			if err := ValidateTiming(*slotInput.Timing); err != nil {
				return models.MealSet{}, err
			}
			slot.Timing = *slotInput.Timing
		} else {
			slot.Timing = defaults[meal]
		}

		if slotInput.IsActive != nil {
			slot.IsActive = *slotInput.IsActive
		} else {
			slot.IsActive = true
		}
	}

	return set, nil
}

// seededMealSet assigns item ids to the packaged starter menu before it is
// persisted for a date nobody has published yet.
func seededMealSet() models.MealSet {
	set := models.DefaultMealSet()
	for _, meal := range models.MealNames() {
		slot := set.Slot(meal)
		for index := range slot.Items {
			slot.Items[index].ID = uuid.NewString()
		}
	}
	return set
}
