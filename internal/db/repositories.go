package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Menus         *MenuRepository
	Preferences   *PreferenceRepository
	Notifications *NotificationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Menus:         NewMenuRepository(database),
		Preferences:   NewPreferenceRepository(database),
		Notifications: NewNotificationRepository(database),
	}
}
