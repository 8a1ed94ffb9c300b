package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	menu := api.Group("/menu", handler.AuthRequired)
	menu.Get("/today", handler.MenuToday)
	menu.Get("/date/:date", handler.MenuByDate)
	menu.Post("", handler.AdminRequired, handler.PublishMenu)
	menu.Put("/:id/meal/:mealType", handler.AdminRequired, handler.UpdateMenuSlot)

	preferences := api.Group("/preferences", handler.AuthRequired)
	preferences.Post("", handler.SubmitPreference)
	preferences.Get("/my", handler.MyPreferences)
	preferences.Get("/summary/:date", handler.AdminRequired, handler.PreferenceSummary)
	preferences.Get("/stats/:date", handler.AdminRequired, handler.PreferenceStats)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Get("", handler.ListNotifications)
	notifications.Post("", handler.AdminRequired, handler.SendNotification)
	notifications.Get("/sent", handler.AdminRequired, handler.SentNotifications)
	notifications.Put("/:id/read", handler.MarkNotificationRead)
	notifications.Delete("/:id", handler.DeleteNotification)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminRequired)
	admin.Get("/dashboard", handler.Dashboard)
	admin.Get("/reports/weekly", handler.WeeklyReport)
	admin.Get("/reports/preferences/:date", handler.PreferencesReport)

	adminMenus := admin.Group("/menus")
	adminMenus.Get("", handler.ListMenus)
	adminMenus.Post("", handler.CreateMenu)
	adminMenus.Put("/:id", handler.ReplaceMenu)
	adminMenus.Delete("/:id", handler.DeleteMenu)

	adminUsers := admin.Group("/users")
	adminUsers.Get("", handler.ListUsers)
	adminUsers.Put("/:id/status", handler.UpdateUserStatus)
	adminUsers.Put("/:id/role", handler.UpdateUserRole)
	adminUsers.Delete("/:id", handler.DeleteUser)
}
