package db

import (
	"time"

	"github.com/terraincognita07/messmate/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) Create(notification *models.Notification) error {
	return repo.database.Create(notification).Error
}

func (repo *NotificationRepository) Save(notification *models.Notification) error {
	return repo.database.Save(notification).Error
}

func (repo *NotificationRepository) FindByID(notificationID uint) (models.Notification, bool, error) {
	var notification models.Notification
	result := repo.database.Limit(1).Find(&notification, notificationID)
	if result.Error != nil {
		return models.Notification{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Notification{}, false, nil
	}
	return notification, true, nil
}

// ListVisible returns active, unexpired notifications for the given audience
// buckets, newest first. Read-receipt filtering happens above the store since
// receipts live inside the row's JSON document.
func (repo *NotificationRepository) ListVisible(audiences []string, now time.Time) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	if err := repo.database.
		Where("is_active = ? AND expires_at > ? AND audience IN ?", true, now, audiences).
		Order("sent_at DESC, id DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) ListBySender(senderID uint, offset int, limit int) ([]models.Notification, int64, error) {
	query := repo.database.Model(&models.Notification{}).Where("sent_by_id = ?", senderID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	notifications := make([]models.Notification, 0)
	if err := query.Order("sent_at DESC, id DESC").Offset(offset).Limit(limit).Find(&notifications).Error; err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (repo *NotificationRepository) DeleteByID(notificationID uint) error {
	return repo.database.Delete(&models.Notification{}, notificationID).Error
}

// DeleteExpired is only ever called from the background sweeper.
func (repo *NotificationRepository) DeleteExpired(now time.Time) (int64, error) {
	result := repo.database.Where("expires_at <= ?", now).Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}

func (repo *NotificationRepository) CountActiveSentSince(since time.Time) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Notification{}).
		Where("sent_at >= ? AND is_active = ?", since, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
