package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/messmate/internal/db"
	"github.com/terraincognita07/messmate/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	location      *time.Location
	secretKey     []byte
	auth          *services.AuthService
	menus         *services.MenuService
	preferences   *services.PreferenceService
	notifications *services.NotificationService
	reports       *services.ReportService
	userAdmin     *services.UserAdminService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location) *Handler {
	if location == nil {
		location = time.Local
	}

	repositories := db.NewRepositories(database)
	estimator := services.NewHeuristicEstimator()

	return &Handler{
		location:      location,
		secretKey:     []byte(secret),
		auth:          services.NewAuthService(repositories.Users, location),
		menus:         services.NewMenuService(repositories.Menus, location),
		preferences:   services.NewPreferenceService(repositories.Preferences, location),
		notifications: services.NewNotificationService(repositories.Notifications, location),
		reports: services.NewReportService(
			repositories.Preferences,
			repositories.Users,
			repositories.Notifications,
			estimator,
			location,
		),
		userAdmin: services.NewUserAdminService(repositories.Users),
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
