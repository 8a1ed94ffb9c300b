package models

import "time"

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealSnacks    = "snacks"
	MealDinner    = "dinner"
)

// MealNames returns the four fixed serving slots in serving order.
func MealNames() []string {
	return []string{MealBreakfast, MealLunch, MealSnacks, MealDinner}
}

func IsValidMeal(meal string) bool {
	switch meal {
	case MealBreakfast, MealLunch, MealSnacks, MealDinner:
		return true
	default:
		return false
	}
}

const (
	ItemTypeSolid  = "solid"
	ItemTypeLiquid = "liquid"
)

func IsValidItemType(itemType string) bool {
	return itemType == ItemTypeSolid || itemType == ItemTypeLiquid
}

const (
	CategoryMain     = "main"
	CategorySide     = "side"
	CategoryBeverage = "beverage"
	CategoryDessert  = "dessert"
)

func IsValidCategory(category string) bool {
	switch category {
	case CategoryMain, CategorySide, CategoryBeverage, CategoryDessert:
		return true
	default:
		return false
	}
}

// MenuItem is embedded in a meal slot; it is never addressable outside its
// menu document. The ID is assigned at publish time so preference rows can
// reference the item after the fact.
type MenuItem struct {
	ID           string `json:"itemId"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Unit         string `json:"unit"`
	Category     string `json:"category"`
	IsVegetarian bool   `json:"isVegetarian"`
	Calories     int    `json:"calories,omitempty"`
	Description  string `json:"description,omitempty"`
}

type MealTiming struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type MealSlot struct {
	Items    []MenuItem `json:"items"`
	Timing   MealTiming `json:"timing"`
	IsActive bool       `json:"isActive"`
}

type MealSet struct {
	Breakfast MealSlot `json:"breakfast"`
	Lunch     MealSlot `json:"lunch"`
	Snacks    MealSlot `json:"snacks"`
	Dinner    MealSlot `json:"dinner"`
}

// Slot returns a pointer into the set for the named meal, or nil for an
// unknown meal name.
func (set *MealSet) Slot(meal string) *MealSlot {
	switch meal {
	case MealBreakfast:
		return &set.Breakfast
	case MealLunch:
		return &set.Lunch
	case MealSnacks:
		return &set.Snacks
	case MealDinner:
		return &set.Dinner
	default:
		return nil
	}
}

type DailyMenu struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex" json:"date"`
	Meals        MealSet   `gorm:"serializer:json" json:"meals"`
	CreatedByID  *uint     `gorm:"index" json:"createdBy"`
	LastModified time.Time `gorm:"not null" json:"lastModified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
