package db

import (
	"time"

	"github.com/terraincognita07/messmate/internal/models"
	"gorm.io/gorm"
)

type PreferenceRepository struct {
	database *gorm.DB
}

func NewPreferenceRepository(database *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{database: database}
}

func (repo *PreferenceRepository) FindByUserDayMeal(userID uint, dayStart time.Time, dayEnd time.Time, meal string) (models.MealPreference, bool, error) {
	var preference models.MealPreference
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ? AND meal = ?", userID, dayStart, dayEnd, meal).
		Order("id DESC").
		Limit(1).
		Find(&preference)
	if result.Error != nil {
		return models.MealPreference{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MealPreference{}, false, nil
	}
	return preference, true, nil
}

func (repo *PreferenceRepository) Create(preference *models.MealPreference) error {
	return repo.database.Create(preference).Error
}

func (repo *PreferenceRepository) Save(preference *models.MealPreference) error {
	return repo.database.Save(preference).Error
}

func (repo *PreferenceRepository) ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.MealPreference, error) {
	preferences := make([]models.MealPreference, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("meal ASC, id ASC").
		Find(&preferences).Error; err != nil {
		return nil, err
	}
	return preferences, nil
}

// ListByRange returns every preference dated inside [fromStart, toEnd),
// oldest submission first within a meal.
func (repo *PreferenceRepository) ListByRange(fromStart time.Time, toEnd time.Time) ([]models.MealPreference, error) {
	preferences := make([]models.MealPreference, 0)
	if err := repo.database.
		Where("date >= ? AND date < ?", fromStart, toEnd).
		Order("date ASC, meal ASC, submitted_at ASC, id ASC").
		Find(&preferences).Error; err != nil {
		return nil, err
	}
	return preferences, nil
}

func (repo *PreferenceRepository) ListAttendingByRange(fromStart time.Time, toEnd time.Time) ([]models.MealPreference, error) {
	preferences := make([]models.MealPreference, 0)
	if err := repo.database.
		Where("date >= ? AND date < ? AND is_attending = ?", fromStart, toEnd, true).
		Order("date ASC, meal ASC, id ASC").
		Find(&preferences).Error; err != nil {
		return nil, err
	}
	return preferences, nil
}
