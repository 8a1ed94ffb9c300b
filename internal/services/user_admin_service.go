package services

import (
	"fmt"

	"github.com/terraincognita07/messmate/internal/models"
)

type AdminUserStore interface {
	FindByID(userID uint) (models.User, bool, error)
	List(role string, search string, offset int, limit int) ([]models.User, int64, error)
	UpdateByID(userID uint, updates map[string]any) error
	DeleteAccountAndPreferences(userID uint) error
}

// UserAdminService owns the account operations reserved to admins. The
// authorization check itself happens at the route boundary.
type UserAdminService struct {
	users AdminUserStore
}

func NewUserAdminService(users AdminUserStore) *UserAdminService {
	return &UserAdminService{users: users}
}

func (service *UserAdminService) List(role string, search string, offset int, limit int) ([]models.User, int64, error) {
	if !models.IsValidRole(role) {
		role = ""
	}
	return service.users.List(role, search, offset, limit)
}

func (service *UserAdminService) SetActive(userID uint, isActive bool) (models.User, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	if err := service.users.UpdateByID(userID, map[string]any{"is_active": isActive}); err != nil {
		return models.User{}, fmt.Errorf("update user: %w", err)
	}
	user.IsActive = isActive
	return user, nil
}

func (service *UserAdminService) SetRole(userID uint, role string) (models.User, error) {
	if !models.IsValidRole(role) {
		return models.User{}, ErrInvalidRole
	}
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	if err := service.users.UpdateByID(userID, map[string]any{"role": role}); err != nil {
		return models.User{}, fmt.Errorf("update user: %w", err)
	}
	user.Role = role
	return user, nil
}

// Delete removes the account and cascades to that user's preferences only.
// Admins cannot delete themselves.
func (service *UserAdminService) Delete(actorID uint, userID uint) (models.User, error) {
	if actorID == userID {
		return models.User{}, ErrSelfDeletion
	}
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	if err := service.users.DeleteAccountAndPreferences(userID); err != nil {
		return models.User{}, fmt.Errorf("delete user: %w", err)
	}
	return user, nil
}
