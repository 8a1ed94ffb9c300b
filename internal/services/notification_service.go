package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/messmate/internal/models"
)

type NotificationStore interface {
	Create(notification *models.Notification) error
	Save(notification *models.Notification) error
	FindByID(notificationID uint) (models.Notification, bool, error)
	ListVisible(audiences []string, now time.Time) ([]models.Notification, error)
	ListBySender(senderID uint, offset int, limit int) ([]models.Notification, int64, error)
	DeleteByID(notificationID uint) error
}

type NotificationService struct {
	notifications NotificationStore
	location      *time.Location
}

func NewNotificationService(notifications NotificationStore, location *time.Location) *NotificationService {
	if location == nil {
		location = time.UTC
	}
	return &NotificationService{notifications: notifications, location: location}
}

type NotificationInput struct {
	Title     string
	Message   string
	Category  string
	Priority  string
	Audience  string
	ExpiresAt *time.Time
}

// normalizeNotificationInput applies defaults and reports the first
// validation problem, if any.
func normalizeNotificationInput(input NotificationInput) (NotificationInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Message = strings.TrimSpace(input.Message)

	if input.Title == "" || len(input.Title) > models.MaxNotificationTitleLength {
		return NotificationInput{}, ErrInvalidNotification
	}
	if input.Message == "" || len(input.Message) > models.MaxNotificationMessageLength {
		return NotificationInput{}, ErrInvalidNotification
	}
	if !models.IsValidNotificationCategory(input.Category) {
		return NotificationInput{}, ErrInvalidNotification
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if !models.IsValidPriority(input.Priority) {
		return NotificationInput{}, ErrInvalidNotification
	}
	if input.Audience == "" {
		input.Audience = models.AudienceAll
	}
	if !models.IsValidAudience(input.Audience) {
		return NotificationInput{}, ErrInvalidNotification
	}
	return input, nil
}

func (service *NotificationService) Send(senderID uint, input NotificationInput) (models.Notification, error) {
	normalized, err := normalizeNotificationInput(input)
	if err != nil {
		return models.Notification{}, err
	}

	now := time.Now().In(service.location)
	expiresAt := now.Add(models.DefaultNotificationTTL)
	if normalized.ExpiresAt != nil {
		expiresAt = normalized.ExpiresAt.In(service.location)
	}

	notification := models.Notification{
		Title:     normalized.Title,
		Message:   normalized.Message,
		Category:  normalized.Category,
		Priority:  normalized.Priority,
		Audience:  normalized.Audience,
		SentByID:  senderID,
		SentAt:    now,
		ExpiresAt: expiresAt,
		ReadBy:    []models.ReadReceipt{},
		IsActive:  true,
	}
	if err := service.notifications.Create(&notification); err != nil {
		return models.Notification{}, fmt.Errorf("create notification: %w", err)
	}
	return notification, nil
}

// NotificationView decorates a notification with the requesting reader's
// read status.
type NotificationView struct {
	models.Notification
	IsRead bool `json:"isRead"`
}

// ListVisibleForUser returns the page of notifications the user may see —
// active, unexpired, audience-matched — newest first, together with the
// total matching count and how many of those the user has not read yet.
func (service *NotificationService) ListVisibleForUser(user models.User, unreadOnly bool, offset int, limit int) ([]NotificationView, int64, int64, error) {
	now := time.Now().In(service.location)
	audiences := []string{models.AudienceAll, models.AudienceForRole(user.Role)}

	visible, err := service.notifications.ListVisible(audiences, now)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("load notifications: %w", err)
	}

	matching := make([]NotificationView, 0, len(visible))
	unreadCount := int64(0)
	for _, notification := range visible {
		isRead := notification.IsReadBy(user.ID)
		if !isRead {
			unreadCount++
		}
		if unreadOnly && isRead {
			continue
		}
		matching = append(matching, NotificationView{Notification: notification, IsRead: isRead})
	}

	total := int64(len(matching))
	if offset >= len(matching) {
		return []NotificationView{}, total, unreadCount, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matching) {
		end = len(matching)
	}
	return matching[offset:end], total, unreadCount, nil
}

// MarkRead appends a read receipt once; reading twice is a no-op.
func (service *NotificationService) MarkRead(userID uint, notificationID uint) error {
	notification, found, err := service.notifications.FindByID(notificationID)
	if err != nil {
		return fmt.Errorf("load notification: %w", err)
	}
	if !found {
		return ErrNotificationNotFound
	}
	if notification.IsReadBy(userID) {
		return nil
	}

	notification.ReadBy = append(notification.ReadBy, models.ReadReceipt{
		UserID: userID,
		ReadAt: time.Now().In(service.location),
	})
	if err := service.notifications.Save(&notification); err != nil {
		return fmt.Errorf("save read receipt: %w", err)
	}
	return nil
}

// Delete is allowed for the sender and for any admin.
func (service *NotificationService) Delete(actor models.User, notificationID uint) error {
	notification, found, err := service.notifications.FindByID(notificationID)
	if err != nil {
		return fmt.Errorf("load notification: %w", err)
	}
	if !found {
		return ErrNotificationNotFound
	}
	if actor.Role != models.RoleAdmin && notification.SentByID != actor.ID {
		return ErrForbidden
	}
	if err := service.notifications.DeleteByID(notificationID); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

func (service *NotificationService) ListSent(senderID uint, offset int, limit int) ([]models.Notification, int64, error) {
	return service.notifications.ListBySender(senderID, offset, limit)
}
