package api

import (
	"net/http"
	"testing"
)

func TestSubmitAndResubmitPreferenceKeepsOneRecord(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "Asha", "asha@example.com")

	first := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/preferences", token, map[string]any{
		"date": "2026-03-10",
		"meal": "lunch",
		"items": []any{map[string]any{
			"itemId": "item-rice", "itemName": "Rice", "quantity": 2, "unit": "serving",
		}},
	}), http.StatusOK)
	firstID := first["preference"].(map[string]any)["id"]

	second := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/preferences", token, map[string]any{
		"date": "2026-03-10",
		"meal": "lunch",
		"items": []any{map[string]any{
			"itemId": "item-dal", "itemName": "Dal", "quantity": 1, "unit": "bowl",
		}},
		"specialRequests": "less salt",
	}), http.StatusOK)
	preference := second["preference"].(map[string]any)
	if preference["id"] != firstID {
		t.Fatalf("expected resubmission to reuse record %v, got %v", firstID, preference["id"])
	}
	if preference["specialRequests"] != "less salt" {
		t.Fatalf("expected updated note, got %v", preference["specialRequests"])
	}

	mine := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/preferences/my?date=2026-03-10", token, nil), http.StatusOK)
	preferences := mine["preferences"].([]any)
	if len(preferences) != 1 {
		t.Fatalf("expected a single record after resubmission, got %d", len(preferences))
	}
	items := preferences[0].(map[string]any)["items"].([]any)
	if len(items) != 1 || items[0].(map[string]any)["itemName"] != "Dal" {
		t.Fatalf("expected items replaced, got %#v", items)
	}
}

func TestSubmitPreferenceValidation(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "Asha", "asha@example.com")

	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/preferences", token, map[string]any{
		"date": "2026-03-10",
		"meal": "brunch",
	}), http.StatusBadRequest)

	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/preferences", token, map[string]any{
		"date": "2026-03-10",
		"meal": "lunch",
		"items": []any{map[string]any{
			"itemId": "item-rice", "itemName": "Rice", "quantity": 11, "unit": "serving",
		}},
	}), http.StatusBadRequest)

	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/preferences", token, map[string]any{
		"date": "not-a-date",
		"meal": "lunch",
	}), http.StatusBadRequest)
}

func TestPreferenceSummaryAggregatesAttendingOnly(t *testing.T) {
	app, database := newTestApp(t)
	adminToken := registerTestAdmin(t, app, database, "Warden", "warden@example.com")
	ashaToken := registerTestUser(t, app, "Asha", "asha@example.com")
	ravToken := registerTestUser(t, app, "Ravi", "ravi@example.com")
	leenaToken := registerTestUser(t, app, "Leena", "leena@example.com")

	ricePayload := func(quantity int) map[string]any {
		return map[string]any{
			"date": "2026-03-10",
			"meal": "lunch",
			"items": []any{map[string]any{
				"itemId": "item-rice", "itemName": "Rice", "quantity": quantity, "unit": "serving",
			}},
		}
	}
	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/preferences", ashaToken, ricePayload(2)), http.StatusOK)
	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/preferences", ravToken, ricePayload(3)), http.StatusOK)
	optOut := ricePayload(10)
	optOut["isAttending"] = false
	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/preferences", leenaToken, optOut), http.StatusOK)

	doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/preferences/summary/2026-03-10", ashaToken, nil), http.StatusForbidden)

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/preferences/summary/2026-03-10", adminToken, nil), http.StatusOK)
	summary := body["summary"].([]any)
	if len(summary) != 1 {
		t.Fatalf("expected only lunch in the summary, got %#v", summary)
	}
	lunch := summary[0].(map[string]any)
	if lunch["meal"] != "lunch" || int(lunch["totalUsers"].(float64)) != 2 {
		t.Fatalf("expected 2 attending lunch users, got %#v", lunch)
	}
	items := lunch["items"].([]any)
	rice := items[0].(map[string]any)
	if rice["itemName"] != "Rice" || int(rice["totalQuantity"].(float64)) != 5 || int(rice["userCount"].(float64)) != 2 {
		t.Fatalf("expected Rice total 5 across 2 users, got %#v", rice)
	}

	stats := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/preferences/stats/2026-03-10", adminToken, nil), http.StatusOK)
	meals := stats["meals"].(map[string]any)
	lunchStats := meals["lunch"].(map[string]any)
	if int(lunchStats["totalSubmissions"].(float64)) != 3 {
		t.Fatalf("expected 3 lunch submissions in stats, got %#v", lunchStats)
	}
	if int(lunchStats["attending"].(float64)) != 2 || int(lunchStats["notAttending"].(float64)) != 1 {
		t.Fatalf("expected 2 attending and 1 opt-out lunch, got %#v", lunchStats)
	}
	dinnerStats := meals["dinner"].(map[string]any)
	if int(dinnerStats["totalSubmissions"].(float64)) != 0 {
		t.Fatalf("expected empty dinner stats present, got %#v", dinnerStats)
	}
}
