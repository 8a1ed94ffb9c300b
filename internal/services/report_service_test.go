package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/messmate/internal/models"
)

type reportPreferenceReaderStub struct {
	preferences []models.MealPreference
}

func (stub *reportPreferenceReaderStub) ListByRange(fromStart time.Time, toEnd time.Time) ([]models.MealPreference, error) {
	matching := make([]models.MealPreference, 0)
	for _, preference := range stub.preferences {
		if preference.Date.Before(fromStart) || !preference.Date.Before(toEnd) {
			continue
		}
		matching = append(matching, preference)
	}
	return matching, nil
}

func (stub *reportPreferenceReaderStub) ListAttendingByRange(fromStart time.Time, toEnd time.Time) ([]models.MealPreference, error) {
	matching, err := stub.ListByRange(fromStart, toEnd)
	if err != nil {
		return nil, err
	}
	attending := make([]models.MealPreference, 0, len(matching))
	for _, preference := range matching {
		if preference.IsAttending {
			attending = append(attending, preference)
		}
	}
	return attending, nil
}

type reportUserCounterStub struct {
	students int64
	admins   int64
}

func (stub *reportUserCounterStub) CountActiveByRole(role string) (int64, error) {
	if role == models.RoleAdmin {
		return stub.admins, nil
	}
	return stub.students, nil
}

type reportNotificationCounterStub struct {
	recent int64
}

func (stub *reportNotificationCounterStub) CountActiveSentSince(time.Time) (int64, error) {
	return stub.recent, nil
}

// fixedEstimator pins the heuristics so aggregation logic is what gets
// asserted, not the hash.
type fixedEstimator struct {
	daily   float64
	today   float64
	savings int
}

func (estimator fixedEstimator) DailyWastagePercent(time.Time, int) float64 { return estimator.daily }
func (estimator fixedEstimator) TodayWastagePercent(int, int) float64       { return estimator.today }
func (estimator fixedEstimator) EstimatedSavings(float64, int) int          { return estimator.savings }

func reportDay() time.Time {
	return time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
}

func attendingPreference(userID uint, day time.Time, meal string, items ...models.PreferenceItem) models.MealPreference {
	return models.MealPreference{UserID: userID, Date: day, Meal: meal, Items: items, IsAttending: true}
}

func newReportService(preferences *reportPreferenceReaderStub, users *reportUserCounterStub, notifications *reportNotificationCounterStub, estimator WastageEstimator) *ReportService {
	if estimator == nil {
		estimator = fixedEstimator{}
	}
	return NewReportService(preferences, users, notifications, estimator, time.UTC)
}

func TestDailyMealCountsSkipsNonAttendingAndOtherDays(t *testing.T) {
	day := reportDay()
	preferences := &reportPreferenceReaderStub{preferences: []models.MealPreference{
		attendingPreference(1, day, models.MealLunch),
		attendingPreference(2, day, models.MealLunch),
		attendingPreference(3, day, models.MealBreakfast),
		{UserID: 4, Date: day, Meal: models.MealLunch, IsAttending: false},
		attendingPreference(5, day.AddDate(0, 0, 1), models.MealLunch),
	}}
	service := newReportService(preferences, &reportUserCounterStub{}, &reportNotificationCounterStub{}, nil)

	counts, err := service.DailyMealCounts(day)
	if err != nil {
		t.Fatalf("DailyMealCounts() unexpected error: %v", err)
	}
	if counts[models.MealLunch] != 2 {
		t.Fatalf("expected 2 attending lunches, got %d", counts[models.MealLunch])
	}
	if counts[models.MealBreakfast] != 1 {
		t.Fatalf("expected 1 attending breakfast, got %d", counts[models.MealBreakfast])
	}
	if counts[models.MealSnacks] != 0 || counts[models.MealDinner] != 0 {
		t.Fatalf("expected zero defaults for unregistered meals, got %#v", counts)
	}
	if len(counts) != 4 {
		t.Fatalf("expected all four meals present, got %#v", counts)
	}
}

func TestItemDemandSummaryAggregatesAcrossUsers(t *testing.T) {
	day := reportDay()
	preferences := &reportPreferenceReaderStub{preferences: []models.MealPreference{
		attendingPreference(1, day, models.MealLunch,
			models.PreferenceItem{ItemID: "a", ItemName: "Rice", Quantity: 2, Unit: "serving"},
			models.PreferenceItem{ItemID: "b", ItemName: "Dal", Quantity: 1, Unit: "bowl"},
		),
		attendingPreference(2, day, models.MealLunch,
			models.PreferenceItem{ItemID: "a", ItemName: "Rice", Quantity: 3, Unit: "serving"},
		),
		{UserID: 3, Date: day, Meal: models.MealLunch, IsAttending: false, Items: []models.PreferenceItem{
			{ItemID: "a", ItemName: "Rice", Quantity: 10, Unit: "serving"},
		}},
	}}
	service := newReportService(preferences, &reportUserCounterStub{}, &reportNotificationCounterStub{}, nil)

	summary, err := service.ItemDemandSummary(day)
	if err != nil {
		t.Fatalf("ItemDemandSummary() unexpected error: %v", err)
	}
	if len(summary) != 1 {
		t.Fatalf("expected only lunch in the summary, got %#v", summary)
	}
	lunch := summary[0]
	if lunch.Meal != models.MealLunch || lunch.TotalUsers != 2 {
		t.Fatalf("expected 2 attending lunch users, got %#v", lunch)
	}
	if len(lunch.Items) != 2 {
		t.Fatalf("expected 2 distinct items, got %#v", lunch.Items)
	}
	// Items are sorted by name: Dal before Rice.
	if lunch.Items[0].ItemName != "Dal" || lunch.Items[0].TotalQuantity != 1 {
		t.Fatalf("unexpected first item: %#v", lunch.Items[0])
	}
	rice := lunch.Items[1]
	if rice.ItemName != "Rice" || rice.TotalQuantity != 5 || rice.UserCount != 2 || rice.Unit != "serving" {
		t.Fatalf("expected Rice total 5 across 2 users, got %#v", rice)
	}
}

func TestItemDemandSummaryCountsEachUserOncePerItem(t *testing.T) {
	day := reportDay()
	preferences := &reportPreferenceReaderStub{preferences: []models.MealPreference{
		attendingPreference(1, day, models.MealLunch,
			models.PreferenceItem{ItemID: "a", ItemName: "Rice", Quantity: 2, Unit: "serving"},
			models.PreferenceItem{ItemID: "a", ItemName: "Rice", Quantity: 3, Unit: "serving"},
		),
	}}
	service := newReportService(preferences, &reportUserCounterStub{}, &reportNotificationCounterStub{}, nil)

	summary, err := service.ItemDemandSummary(day)
	if err != nil {
		t.Fatalf("ItemDemandSummary() unexpected error: %v", err)
	}
	if len(summary) != 1 || len(summary[0].Items) != 1 {
		t.Fatalf("expected a single lunch item, got %#v", summary)
	}
	rice := summary[0].Items[0]
	if rice.TotalQuantity != 5 {
		t.Fatalf("expected duplicate lines to sum to 5, got %d", rice.TotalQuantity)
	}
	if rice.UserCount != 1 {
		t.Fatalf("expected the single submitter counted once, got %d", rice.UserCount)
	}
}

func TestAttendanceSummarySplitsPerMeal(t *testing.T) {
	day := reportDay()
	preferences := &reportPreferenceReaderStub{preferences: []models.MealPreference{
		attendingPreference(1, day, models.MealDinner),
		attendingPreference(2, day, models.MealDinner),
		{UserID: 3, Date: day, Meal: models.MealDinner, IsAttending: false},
	}}
	service := newReportService(preferences, &reportUserCounterStub{}, &reportNotificationCounterStub{}, nil)

	summary, err := service.AttendanceSummary(day)
	if err != nil {
		t.Fatalf("AttendanceSummary() unexpected error: %v", err)
	}
	dinner := summary[models.MealDinner]
	if dinner.TotalSubmissions != 3 || dinner.Attending != 2 || dinner.NotAttending != 1 {
		t.Fatalf("unexpected dinner split: %#v", dinner)
	}
	if stats, ok := summary[models.MealBreakfast]; !ok || stats.TotalSubmissions != 0 {
		t.Fatalf("expected empty breakfast stats present, got %#v", summary)
	}
}

func TestWeeklyTrendCoversSevenDaysWithData(t *testing.T) {
	now := time.Date(2026, time.March, 7, 15, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)
	preferences := &reportPreferenceReaderStub{preferences: []models.MealPreference{
		attendingPreference(1, today, models.MealLunch),
		attendingPreference(2, today, models.MealDinner),
		attendingPreference(1, today.AddDate(0, 0, -2), models.MealLunch),
		// Outside the window: eight days back.
		attendingPreference(1, today.AddDate(0, 0, -8), models.MealLunch),
	}}
	service := newReportService(preferences, &reportUserCounterStub{}, &reportNotificationCounterStub{}, fixedEstimator{daily: 10})

	report, err := service.WeeklyTrend(now)
	if err != nil {
		t.Fatalf("WeeklyTrend() unexpected error: %v", err)
	}
	if got := report.StartDate.Format("2006-01-02"); got != "2026-03-01" {
		t.Fatalf("expected window start 2026-03-01, got %s", got)
	}
	if len(report.Days) != 2 {
		t.Fatalf("expected only days with registrations, got %d", len(report.Days))
	}
	if !report.Days[0].Date.Before(report.Days[1].Date) {
		t.Fatalf("expected days in ascending order, got %#v", report.Days)
	}
	last := report.Days[1]
	if last.TotalRegistrations != 2 || last.MealCounts[models.MealLunch] != 1 || last.MealCounts[models.MealDinner] != 1 {
		t.Fatalf("unexpected trend for today: %#v", last)
	}
	if report.Summary.TotalDays != 2 || report.Summary.AverageWastage != 10 {
		t.Fatalf("unexpected summary: %#v", report.Summary)
	}
	// (2 + 1) / 2 rounds to 2.
	if report.Summary.AverageRegistrations != 2 {
		t.Fatalf("expected average registrations 2, got %d", report.Summary.AverageRegistrations)
	}
}

func TestWeeklyTrendWithNoDataHasEmptySummary(t *testing.T) {
	service := newReportService(&reportPreferenceReaderStub{}, &reportUserCounterStub{}, &reportNotificationCounterStub{}, nil)

	report, err := service.WeeklyTrend(reportDay())
	if err != nil {
		t.Fatalf("WeeklyTrend() unexpected error: %v", err)
	}
	if len(report.Days) != 0 || report.Summary.TotalDays != 0 {
		t.Fatalf("expected empty report, got %#v", report)
	}
	if report.Summary.AverageRegistrations != 0 || report.Summary.AverageWastage != 0 {
		t.Fatalf("expected zero averages, got %#v", report.Summary)
	}
}

func TestDashboardAggregatesCountsAndRates(t *testing.T) {
	day := reportDay()
	preferences := &reportPreferenceReaderStub{preferences: []models.MealPreference{
		attendingPreference(1, day, models.MealBreakfast),
		attendingPreference(1, day, models.MealLunch),
		attendingPreference(2, day, models.MealLunch),
	}}
	users := &reportUserCounterStub{students: 10, admins: 2}
	notifications := &reportNotificationCounterStub{recent: 4}
	service := newReportService(preferences, users, notifications, fixedEstimator{today: 15.5, savings: 950})

	snapshot, err := service.Dashboard(day.Add(10 * time.Hour))
	if err != nil {
		t.Fatalf("Dashboard() unexpected error: %v", err)
	}
	if snapshot.TotalStudents != 10 || snapshot.TotalAdmins != 2 || snapshot.TotalUsers != 12 {
		t.Fatalf("unexpected user counts: %#v", snapshot)
	}
	if snapshot.RegistrationsTotal != 3 || snapshot.Registrations[models.MealLunch] != 2 {
		t.Fatalf("unexpected registrations: %#v", snapshot)
	}
	if snapshot.FoodWastagePercent != 15.5 || snapshot.EstimatedSavings != 950 {
		t.Fatalf("unexpected estimator figures: %#v", snapshot)
	}
	if snapshot.RecentNotifications != 4 {
		t.Fatalf("expected 4 recent notifications, got %d", snapshot.RecentNotifications)
	}
	// 3 registrations out of 10 students * 4 meals = 7.5% rounded to 8.
	if snapshot.RegistrationRate != 8 {
		t.Fatalf("expected registration rate 8, got %d", snapshot.RegistrationRate)
	}
}

func TestDashboardWithNoStudentsAvoidsDivisionByZero(t *testing.T) {
	day := reportDay()
	preferences := &reportPreferenceReaderStub{preferences: []models.MealPreference{
		attendingPreference(1, day, models.MealLunch),
	}}
	service := newReportService(preferences, &reportUserCounterStub{students: 0, admins: 1}, &reportNotificationCounterStub{}, NewHeuristicEstimator())

	snapshot, err := service.Dashboard(day)
	if err != nil {
		t.Fatalf("Dashboard() unexpected error: %v", err)
	}
	if snapshot.RegistrationRate != 0 {
		t.Fatalf("expected zero registration rate, got %d", snapshot.RegistrationRate)
	}
	if snapshot.FoodWastagePercent != 0 || snapshot.EstimatedSavings != 0 {
		t.Fatalf("expected zeroed estimates for empty student body, got %#v", snapshot)
	}
}
