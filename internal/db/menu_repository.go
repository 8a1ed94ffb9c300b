package db

import (
	"time"

	"github.com/terraincognita07/messmate/internal/models"
	"gorm.io/gorm"
)

type MenuRepository struct {
	database *gorm.DB
}

func NewMenuRepository(database *gorm.DB) *MenuRepository {
	return &MenuRepository{database: database}
}

func (repo *MenuRepository) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.DailyMenu, bool, error) {
	var menu models.DailyMenu
	result := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&menu)
	if result.Error != nil {
		return models.DailyMenu{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyMenu{}, false, nil
	}
	return menu, true, nil
}

func (repo *MenuRepository) FindByID(menuID uint) (models.DailyMenu, bool, error) {
	var menu models.DailyMenu
	result := repo.database.Limit(1).Find(&menu, menuID)
	if result.Error != nil {
		return models.DailyMenu{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyMenu{}, false, nil
	}
	return menu, true, nil
}

func (repo *MenuRepository) Create(menu *models.DailyMenu) error {
	return repo.database.Create(menu).Error
}

func (repo *MenuRepository) Save(menu *models.DailyMenu) error {
	return repo.database.Save(menu).Error
}

// List returns menus newest-date first, optionally bounded to [fromStart, toEnd).
func (repo *MenuRepository) List(fromStart *time.Time, toEnd *time.Time, offset int, limit int) ([]models.DailyMenu, int64, error) {
	query := repo.database.Model(&models.DailyMenu{})
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	menus := make([]models.DailyMenu, 0)
	if err := query.Order("date DESC, id DESC").Offset(offset).Limit(limit).Find(&menus).Error; err != nil {
		return nil, 0, err
	}
	return menus, total, nil
}

// DeleteMenuAndPreferences removes the menu and every preference submitted
// for its calendar date.
func (repo *MenuRepository) DeleteMenuAndPreferences(menu models.DailyMenu) error {
	dayStart := menu.Date
	dayEnd := dayStart.AddDate(0, 0, 1)
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date >= ? AND date < ?", dayStart, dayEnd).Delete(&models.MealPreference{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.DailyMenu{}, menu.ID).Error
	})
}
