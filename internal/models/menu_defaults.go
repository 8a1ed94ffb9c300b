package models

// DefaultMealTimings returns the serving windows used when a menu or slot is
// created without explicit timing.
func DefaultMealTimings() map[string]MealTiming {
	return map[string]MealTiming{
		MealBreakfast: {Start: "07:00", End: "09:00"},
		MealLunch:     {Start: "12:00", End: "14:00"},
		MealSnacks:    {Start: "16:00", End: "17:00"},
		MealDinner:    {Start: "19:00", End: "21:00"},
	}
}

// DefaultMealSet is the starter menu persisted when a date is read before any
// admin has published for it. Tests override behavior by publishing first, so
// this stays the single source of the seed items.
func DefaultMealSet() MealSet {
	timings := DefaultMealTimings()
	return MealSet{
		Breakfast: MealSlot{
			Items: []MenuItem{
				{Name: "Chapati", Type: ItemTypeSolid, Unit: "pieces", Category: CategoryMain, IsVegetarian: true},
				{Name: "Aloo Sabzi", Type: ItemTypeLiquid, Unit: "bowls", Category: CategoryMain, IsVegetarian: true},
				{Name: "Tea", Type: ItemTypeLiquid, Unit: "cups", Category: CategoryBeverage, IsVegetarian: true},
				{Name: "Butter", Type: ItemTypeSolid, Unit: "pieces", Category: CategorySide, IsVegetarian: true},
			},
			Timing:   timings[MealBreakfast],
			IsActive: true,
		},
		Lunch: MealSlot{
			Items: []MenuItem{
				{Name: "Rice", Type: ItemTypeLiquid, Unit: "bowls", Category: CategoryMain, IsVegetarian: true},
				{Name: "Dal", Type: ItemTypeLiquid, Unit: "bowls", Category: CategoryMain, IsVegetarian: true},
				{Name: "Chapati", Type: ItemTypeSolid, Unit: "pieces", Category: CategoryMain, IsVegetarian: true},
				{Name: "Mixed Vegetable", Type: ItemTypeLiquid, Unit: "bowls", Category: CategoryMain, IsVegetarian: true},
				{Name: "Pickle", Type: ItemTypeSolid, Unit: "spoons", Category: CategorySide, IsVegetarian: true},
			},
			Timing:   timings[MealLunch],
			IsActive: true,
		},
		Snacks: MealSlot{
			Items: []MenuItem{
				{Name: "Samosa", Type: ItemTypeSolid, Unit: "pieces", Category: CategoryMain, IsVegetarian: true},
				{Name: "Green Chutney", Type: ItemTypeLiquid, Unit: "bowls", Category: CategorySide, IsVegetarian: true},
				{Name: "Tea", Type: ItemTypeLiquid, Unit: "cups", Category: CategoryBeverage, IsVegetarian: true},
			},
			Timing:   timings[MealSnacks],
			IsActive: true,
		},
		Dinner: MealSlot{
			Items: []MenuItem{
				{Name: "Chapati", Type: ItemTypeSolid, Unit: "pieces", Category: CategoryMain, IsVegetarian: true},
				{Name: "Dal", Type: ItemTypeLiquid, Unit: "bowls", Category: CategoryMain, IsVegetarian: true},
				{Name: "Paneer Curry", Type: ItemTypeLiquid, Unit: "bowls", Category: CategoryMain, IsVegetarian: true},
				{Name: "Rice", Type: ItemTypeLiquid, Unit: "bowls", Category: CategoryMain, IsVegetarian: true},
				{Name: "Salad", Type: ItemTypeSolid, Unit: "portions", Category: CategorySide, IsVegetarian: true},
			},
			Timing:   timings[MealDinner],
			IsActive: true,
		},
	}
}
