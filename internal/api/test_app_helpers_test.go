package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/messmate/internal/db"
	"github.com/terraincognita07/messmate/internal/models"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "messmate-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler := NewHandler(database, "test-secret", time.UTC)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func jsonRequest(t *testing.T, method string, target string, token string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return request
}

func doJSON(t *testing.T, app *fiber.App, request *http.Request, wantStatus int) map[string]any {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if response.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected status %d, got %d (body: %s)", request.Method, request.URL.Path, wantStatus, response.StatusCode, raw)
	}

	decoded := make(map[string]any)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode response body %q: %v", raw, err)
		}
	}
	return decoded
}

// registerTestUser signs up a fresh student account through the public API
// and returns the session token.
func registerTestUser(t *testing.T, app *fiber.App, name string, email string) string {
	t.Helper()

	body := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "StrongPass1",
	}), http.StatusCreated)

	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("expected session token in register response, got %#v", body)
	}
	return token
}

func promoteToAdmin(t *testing.T, database *gorm.DB, email string) {
	t.Helper()

	result := database.Model(&models.User{}).Where("email = ?", email).Update("role", models.RoleAdmin)
	if result.Error != nil {
		t.Fatalf("promote %s: %v", email, result.Error)
	}
	if result.RowsAffected != 1 {
		t.Fatalf("expected one promoted account for %s, got %d", email, result.RowsAffected)
	}
}

func registerTestAdmin(t *testing.T, app *fiber.App, database *gorm.DB, name string, email string) string {
	t.Helper()

	token := registerTestUser(t, app, name, email)
	promoteToAdmin(t, database, email)
	return token
}
