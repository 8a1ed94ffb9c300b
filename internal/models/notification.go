package models

import "time"

const (
	NotificationMenu         = "menu"
	NotificationTiming       = "timing"
	NotificationAchievement  = "achievement"
	NotificationAnnouncement = "announcement"
	NotificationUrgent       = "urgent"
)

func IsValidNotificationCategory(category string) bool {
	switch category {
	case NotificationMenu, NotificationTiming, NotificationAchievement, NotificationAnnouncement, NotificationUrgent:
		return true
	default:
		return false
	}
}

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

const (
	AudienceAll      = "all"
	AudienceStudents = "students"
	AudienceAdmins   = "admins"
)

func IsValidAudience(audience string) bool {
	switch audience {
	case AudienceAll, AudienceStudents, AudienceAdmins:
		return true
	default:
		return false
	}
}

// AudienceForRole maps an account role onto the audience bucket that targets
// it ("student" -> "students", "admin" -> "admins").
func AudienceForRole(role string) string {
	return role + "s"
}

const (
	MaxNotificationTitleLength   = 100
	MaxNotificationMessageLength = 500

	DefaultNotificationTTL = 7 * 24 * time.Hour
)

type ReadReceipt struct {
	UserID uint      `json:"userId"`
	ReadAt time.Time `json:"readAt"`
}

type Notification struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Title     string        `gorm:"not null" json:"title"`
	Message   string        `gorm:"not null" json:"message"`
	Category  string        `gorm:"not null;default:announcement" json:"type"`
	Priority  string        `gorm:"not null;default:medium" json:"priority"`
	Audience  string        `gorm:"not null;default:all;index" json:"targetAudience"`
	SentByID  uint          `gorm:"not null;index" json:"sentBy"`
	SentAt    time.Time     `gorm:"not null;index" json:"sentAt"`
	ExpiresAt time.Time     `gorm:"not null;index" json:"expiresAt"`
	ReadBy    []ReadReceipt `gorm:"serializer:json" json:"readBy"`
	IsActive  bool          `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (notification *Notification) IsReadBy(userID uint) bool {
	for _, receipt := range notification.ReadBy {
		if receipt.UserID == userID {
			return true
		}
	}
	return false
}

// VisibleTo reports whether the notification should reach a user with the
// given role at the given instant: active, not expired, audience matched.
func (notification *Notification) VisibleTo(role string, now time.Time) bool {
	if !notification.IsActive {
		return false
	}
	if !notification.ExpiresAt.After(now) {
		return false
	}
	return notification.Audience == AudienceAll || notification.Audience == AudienceForRole(role)
}
