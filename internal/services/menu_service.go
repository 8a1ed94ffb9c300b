package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/messmate/internal/models"
)

type MenuStore interface {
	FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.DailyMenu, bool, error)
	FindByID(menuID uint) (models.DailyMenu, bool, error)
	Create(menu *models.DailyMenu) error
	Save(menu *models.DailyMenu) error
	List(fromStart *time.Time, toEnd *time.Time, offset int, limit int) ([]models.DailyMenu, int64, error)
	DeleteMenuAndPreferences(menu models.DailyMenu) error
}

type MenuService struct {
	menus    MenuStore
	location *time.Location
}

func NewMenuService(menus MenuStore, location *time.Location) *MenuService {
	if location == nil {
		location = time.UTC
	}
	return &MenuService{menus: menus, location: location}
}

func (service *MenuService) GetByDate(day time.Time) (models.DailyMenu, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	menu, found, err := service.menus.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.DailyMenu{}, fmt.Errorf("load menu: %w", err)
	}
	if !found {
		return models.DailyMenu{}, ErrMenuNotFound
	}
	return menu, nil
}

// GetOrCreateDefault returns the stored menu for the day, persisting the
// starter menu on first read so later reads see the same document.
func (service *MenuService) GetOrCreateDefault(day time.Time) (models.DailyMenu, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	menu, found, err := service.menus.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.DailyMenu{}, fmt.Errorf("load menu: %w", err)
	}
	if found {
		return menu, nil
	}

	menu = models.DailyMenu{
		Date:         dayStart,
		Meals:        seededMealSet(),
		CreatedByID:  nil,
		LastModified: time.Now().In(service.location),
	}
	if err := service.menus.Create(&menu); err != nil {
		// A concurrent first read may have won the unique date index.
		existing, foundNow, findErr := service.menus.FindByDayRange(dayStart, dayEnd)
		if findErr == nil && foundNow {
			return existing, nil
		}
		return models.DailyMenu{}, fmt.Errorf("create default menu: %w", err)
	}
	return menu, nil
}

// Publish upserts the menu for a date: overwrite meals and bump the modified
// stamp when the date already has one, insert otherwise. The strict-create
// admin path lives in CreateStrict; callers depend on the differing conflict
// behavior, so the two stay separate operations.
func (service *MenuService) Publish(adminID uint, day time.Time, input MealSetInput) (models.DailyMenu, bool, error) {
	meals, err := BuildMealSet(input)
	if err != nil {
		return models.DailyMenu{}, false, err
	}

	dayStart, dayEnd := DayRange(day, service.location)
	now := time.Now().In(service.location)

	menu, found, err := service.menus.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.DailyMenu{}, false, fmt.Errorf("load menu: %w", err)
	}
	if found {
		menu.Meals = meals
		menu.LastModified = now
		if err := service.menus.Save(&menu); err != nil {
			return models.DailyMenu{}, false, fmt.Errorf("update menu: %w", err)
		}
		return menu, false, nil
	}

	menu = models.DailyMenu{
		Date:         dayStart,
		Meals:        meals,
		CreatedByID:  &adminID,
		LastModified: now,
	}
	if err := service.menus.Create(&menu); err != nil {
		return models.DailyMenu{}, false, fmt.Errorf("create menu: %w", err)
	}
	return menu, true, nil
}

// CreateStrict rejects dates that already carry a menu and leaves the
// existing document untouched.
func (service *MenuService) CreateStrict(adminID uint, day time.Time, input MealSetInput) (models.DailyMenu, error) {
	meals, err := BuildMealSet(input)
	if err != nil {
		return models.DailyMenu{}, err
	}

	dayStart, dayEnd := DayRange(day, service.location)
	_, found, err := service.menus.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.DailyMenu{}, fmt.Errorf("load menu: %w", err)
	}
	if found {
		return models.DailyMenu{}, ErrMenuExists
	}

	menu := models.DailyMenu{
		Date:         dayStart,
		Meals:        meals,
		CreatedByID:  &adminID,
		LastModified: time.Now().In(service.location),
	}
	if err := service.menus.Create(&menu); err != nil {
		// A concurrent create may have taken the unique date index between
		// the existence check and the insert. Anything else is a store
		// failure, not a conflict.
		if _, foundNow, findErr := service.menus.FindByDayRange(dayStart, dayEnd); findErr == nil && foundNow {
			return models.DailyMenu{}, ErrMenuExists
		}
		return models.DailyMenu{}, fmt.Errorf("create menu: %w", err)
	}
	return menu, nil
}

// UpdateSlot replaces the addressed slot's item list and, when provided, its
// timing and active flag. Other slots are untouched.
func (service *MenuService) UpdateSlot(menuID uint, meal string, items []models.MenuItem, timing *models.MealTiming, isActive *bool) (models.DailyMenu, error) {
	if !models.IsValidMeal(meal) {
		return models.DailyMenu{}, ErrInvalidMeal
	}
	normalizedItems, err := normalizeMenuItems(items)
	if err != nil {
		return models.DailyMenu{}, err
	}
	if timing != nil {
		if err := ValidateTiming(*timing); err != nil {
			return models.DailyMenu{}, err
		}
	}

	menu, found, err := service.menus.FindByID(menuID)
	if err != nil {
		return models.DailyMenu{}, fmt.Errorf("load menu: %w", err)
	}
	if !found {
		return models.DailyMenu{}, ErrMenuNotFound
	}

	slot := menu.Meals.Slot(meal)
	slot.Items = normalizedItems
	if timing != nil {
		slot.Timing = *timing
	}
	if isActive != nil {
		slot.IsActive = *isActive
	}
	menu.LastModified = time.Now().In(service.location)

	if err := service.menus.Save(&menu); err != nil {
		return models.DailyMenu{}, fmt.Errorf("update menu: %w", err)
	}
	return menu, nil
}

// ReplaceMeals overwrites the whole meal set of an existing menu by id.
func (service *MenuService) ReplaceMeals(menuID uint, input MealSetInput) (models.DailyMenu, error) {
	meals, err := BuildMealSet(input)
	if err != nil {
		return models.DailyMenu{}, err
	}

	menu, found, err := service.menus.FindByID(menuID)
	if err != nil {
		return models.DailyMenu{}, fmt.Errorf("load menu: %w", err)
	}
	if !found {
		return models.DailyMenu{}, ErrMenuNotFound
	}

	menu.Meals = meals
	menu.LastModified = time.Now().In(service.location)
	if err := service.menus.Save(&menu); err != nil {
		return models.DailyMenu{}, fmt.Errorf("update menu: %w", err)
	}
	return menu, nil
}

func (service *MenuService) List(from *time.Time, to *time.Time, offset int, limit int) ([]models.DailyMenu, int64, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from, service.location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, service.location)
		toEnd = &end
	}
	return service.menus.List(fromStart, toEnd, offset, limit)
}

// Delete removes the menu and cascades to every preference dated that day.
func (service *MenuService) Delete(menuID uint) (models.DailyMenu, error) {
	menu, found, err := service.menus.FindByID(menuID)
	if err != nil {
		return models.DailyMenu{}, fmt.Errorf("load menu: %w", err)
	}
	if !found {
		return models.DailyMenu{}, ErrMenuNotFound
	}
	if err := service.menus.DeleteMenuAndPreferences(menu); err != nil {
		return models.DailyMenu{}, fmt.Errorf("delete menu: %w", err)
	}
	return menu, nil
}
