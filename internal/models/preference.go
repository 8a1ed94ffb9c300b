package models

import "time"

const (
	MinItemQuantity = 0
	MaxItemQuantity = 10
)

// PreferenceItem stores the item name as submitted so reports stay readable
// even after the menu document changes.
type PreferenceItem struct {
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

type MealPreference struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	UserID          uint             `gorm:"not null;uniqueIndex:uidx_pref_user_date_meal" json:"userId"`
	Date            time.Time        `gorm:"type:date;not null;uniqueIndex:uidx_pref_user_date_meal" json:"date"`
	Meal            string           `gorm:"not null;uniqueIndex:uidx_pref_user_date_meal" json:"meal"`
	Items           []PreferenceItem `gorm:"serializer:json" json:"items"`
	// No gorm default tag here: gorm skips zero-valued fields that carry one
	// on insert, which would store a first-time opt-out as attending.
	IsAttending     bool             `gorm:"not null" json:"isAttending"`
	SpecialRequests string           `json:"specialRequests"`
	SubmittedAt     time.Time        `gorm:"not null" json:"submittedAt"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
