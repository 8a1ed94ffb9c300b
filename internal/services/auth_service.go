package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/messmate/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type AuthUserStore interface {
	FindByID(userID uint) (models.User, bool, error)
	FindByNormalizedEmail(email string) (models.User, bool, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	Create(user *models.User) error
}

type AuthService struct {
	users    AuthUserStore
	location *time.Location
}

func NewAuthService(users AuthUserStore, location *time.Location) *AuthService {
	if location == nil {
		location = time.UTC
	}
	return &AuthService{users: users, location: location}
}

// Register creates a student account. Roles are promoted later by an admin,
// never chosen at registration.
func (service *AuthService) Register(name string, email string, password string) (models.User, error) {
	normalized := NormalizeEmail(email)

	exists, err := service.users.ExistsByNormalizedEmail(normalized)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return models.User{}, ErrEmailExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        normalized,
		PasswordHash: string(passwordHash),
		Role:         models.RoleStudent,
		IsActive:     true,
		CreatedAt:    time.Now().In(service.location),
	}
	if err := service.users.Create(&user); err != nil {
		// The unique index wins races between duplicate registrations.
		return models.User{}, ErrEmailExists
	}
	return user, nil
}

func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, found, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, ErrAccountDisabled
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}
