package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/terraincognita07/messmate/internal/models"
)

type ReportPreferenceReader interface {
	ListByRange(fromStart time.Time, toEnd time.Time) ([]models.MealPreference, error)
	ListAttendingByRange(fromStart time.Time, toEnd time.Time) ([]models.MealPreference, error)
}

type ReportUserCounter interface {
	CountActiveByRole(role string) (int64, error)
}

type ReportNotificationCounter interface {
	CountActiveSentSince(since time.Time) (int64, error)
}

type ReportService struct {
	preferences   ReportPreferenceReader
	users         ReportUserCounter
	notifications ReportNotificationCounter
	estimator     WastageEstimator
	location      *time.Location
}

func NewReportService(
	preferences ReportPreferenceReader,
	users ReportUserCounter,
	notifications ReportNotificationCounter,
	estimator WastageEstimator,
	location *time.Location,
) *ReportService {
	if location == nil {
		location = time.UTC
	}
	return &ReportService{
		preferences:   preferences,
		users:         users,
		notifications: notifications,
		estimator:     estimator,
		location:      location,
	}
}

type AttendanceStats struct {
	TotalSubmissions int `json:"totalSubmissions"`
	Attending        int `json:"attending"`
	NotAttending     int `json:"notAttending"`
}

type ItemDemand struct {
	ItemID        string `json:"itemId"`
	ItemName      string `json:"itemName"`
	TotalQuantity int    `json:"totalQuantity"`
	UserCount     int    `json:"userCount"`
	Unit          string `json:"unit"`
}

type MealDemand struct {
	Meal       string       `json:"meal"`
	Items      []ItemDemand `json:"items"`
	TotalUsers int          `json:"totalUsers"`
}

// DailyMealCounts counts attending preferences per meal for one date; meals
// without submissions report zero.
func (service *ReportService) DailyMealCounts(day time.Time) (map[string]int, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	attending, err := service.preferences.ListAttendingByRange(dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("load attending preferences: %w", err)
	}

	counts := make(map[string]int, 4)
	for _, meal := range models.MealNames() {
		counts[meal] = 0
	}
	for _, preference := range attending {
		counts[preference.Meal]++
	}
	return counts, nil
}

// ItemDemandSummary sums chosen quantities per distinct item name across
// attending records only, grouped by meal. The unit is carried through from
// the first record naming the item.
func (service *ReportService) ItemDemandSummary(day time.Time) ([]MealDemand, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	attending, err := service.preferences.ListAttendingByRange(dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("load attending preferences: %w", err)
	}
	return buildMealDemands(attending), nil
}

func buildMealDemands(attending []models.MealPreference) []MealDemand {
	type demandKey struct {
		meal string
		item string
	}
	demands := make(map[demandKey]*ItemDemand)
	userCounts := make(map[string]int)

	for _, preference := range attending {
		userCounts[preference.Meal]++
		// A submission may list the same item name more than once; the
		// quantities still sum, but the submitter counts once per item.
		counted := make(map[demandKey]bool, len(preference.Items))
		for _, item := range preference.Items {
			key := demandKey{meal: preference.Meal, item: item.ItemName}
			demand, exists := demands[key]
			if !exists {
				demand = &ItemDemand{
					ItemID:   item.ItemID,
					ItemName: item.ItemName,
					Unit:     item.Unit,
				}
				demands[key] = demand
			}
			demand.TotalQuantity += item.Quantity
			if !counted[key] {
				demand.UserCount++
				counted[key] = true
			}
		}
	}

	result := make([]MealDemand, 0, 4)
	for _, meal := range models.MealNames() {
		if userCounts[meal] == 0 {
			continue
		}
		mealDemand := MealDemand{Meal: meal, TotalUsers: userCounts[meal], Items: make([]ItemDemand, 0)}
		for key, demand := range demands {
			if key.meal == meal {
				mealDemand.Items = append(mealDemand.Items, *demand)
			}
		}
		sort.Slice(mealDemand.Items, func(i, j int) bool {
			return mealDemand.Items[i].ItemName < mealDemand.Items[j].ItemName
		})
		result = append(result, mealDemand)
	}
	return result
}

// AttendanceSummary reports, per meal, total submissions alongside the
// attending/not-attending split. All four meals are always present.
func (service *ReportService) AttendanceSummary(day time.Time) (map[string]AttendanceStats, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	preferences, err := service.preferences.ListByRange(dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	summary := make(map[string]AttendanceStats, 4)
	for _, meal := range models.MealNames() {
		summary[meal] = AttendanceStats{}
	}
	for _, preference := range preferences {
		stats := summary[preference.Meal]
		stats.TotalSubmissions++
		if preference.IsAttending {
			stats.Attending++
		}
		stats.NotAttending = stats.TotalSubmissions - stats.Attending
		summary[preference.Meal] = stats
	}
	return summary, nil
}

type DayTrend struct {
	Date               time.Time      `json:"date"`
	TotalRegistrations int            `json:"totalRegistrations"`
	MealCounts         map[string]int `json:"meals"`
	EstimatedWastage   float64        `json:"estimatedWastage"`
}

type WeeklySummary struct {
	TotalDays            int     `json:"totalDays"`
	AverageRegistrations int     `json:"averageRegistrations"`
	AverageWastage       float64 `json:"averageWastage"`
}

type WeeklyReport struct {
	StartDate time.Time     `json:"startDate"`
	EndDate   time.Time     `json:"endDate"`
	Days      []DayTrend    `json:"dailyStats"`
	Summary   WeeklySummary `json:"summary"`
}

// WeeklyTrend covers the rolling seven calendar days ending today. Only days
// with at least one attending registration appear; the wastage column is the
// estimator's synthetic placeholder, not measured consumption.
func (service *ReportService) WeeklyTrend(now time.Time) (WeeklyReport, error) {
	todayStart, todayEnd := DayRange(now, service.location)
	windowStart := todayStart.AddDate(0, 0, -6)

	attending, err := service.preferences.ListAttendingByRange(windowStart, todayEnd)
	if err != nil {
		return WeeklyReport{}, fmt.Errorf("load attending preferences: %w", err)
	}

	byDay := make(map[time.Time]*DayTrend)
	order := make([]time.Time, 0)
	for _, preference := range attending {
		dayKey := DateAtLocation(preference.Date, service.location)
		trend, exists := byDay[dayKey]
		if !exists {
			trend = &DayTrend{Date: dayKey, MealCounts: make(map[string]int, 4)}
			byDay[dayKey] = trend
			order = append(order, dayKey)
		}
		trend.TotalRegistrations++
		trend.MealCounts[preference.Meal]++
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	report := WeeklyReport{
		StartDate: windowStart,
		EndDate:   todayEnd.Add(-time.Nanosecond),
		Days:      make([]DayTrend, 0, len(order)),
	}

	totalRegistrations := 0
	totalWastage := 0.0
	for _, dayKey := range order {
		trend := byDay[dayKey]
		trend.EstimatedWastage = service.estimator.DailyWastagePercent(dayKey, trend.TotalRegistrations)
		report.Days = append(report.Days, *trend)
		totalRegistrations += trend.TotalRegistrations
		totalWastage += trend.EstimatedWastage
	}

	report.Summary.TotalDays = len(report.Days)
	if report.Summary.TotalDays > 0 {
		days := float64(report.Summary.TotalDays)
		report.Summary.AverageRegistrations = int(math.Round(float64(totalRegistrations) / days))
		report.Summary.AverageWastage = roundHundredths(totalWastage / days)
	}
	return report, nil
}

type DashboardSnapshot struct {
	TotalStudents       int64          `json:"totalStudents"`
	TotalAdmins         int64          `json:"totalAdmins"`
	TotalUsers          int64          `json:"totalUsers"`
	Registrations       map[string]int `json:"todayRegistrations"`
	RegistrationsTotal  int            `json:"todayTotal"`
	FoodWastagePercent  float64        `json:"foodWastagePercentage"`
	EstimatedSavings    int            `json:"estimatedSavings"`
	RecentNotifications int64          `json:"recentNotifications"`
	RegistrationRate    int            `json:"registrationRate"`
}

// Dashboard aggregates today's standing counts for the admin landing view.
// The wastage and savings figures are estimator heuristics.
func (service *ReportService) Dashboard(now time.Time) (DashboardSnapshot, error) {
	totalStudents, err := service.users.CountActiveByRole(models.RoleStudent)
	if err != nil {
		return DashboardSnapshot{}, fmt.Errorf("count students: %w", err)
	}
	totalAdmins, err := service.users.CountActiveByRole(models.RoleAdmin)
	if err != nil {
		return DashboardSnapshot{}, fmt.Errorf("count admins: %w", err)
	}

	counts, err := service.DailyMealCounts(now)
	if err != nil {
		return DashboardSnapshot{}, err
	}
	total := 0
	for _, count := range counts {
		total += count
	}

	recentNotifications, err := service.notifications.CountActiveSentSince(now.Add(-7 * 24 * time.Hour))
	if err != nil {
		return DashboardSnapshot{}, fmt.Errorf("count notifications: %w", err)
	}

	wastage := service.estimator.TodayWastagePercent(total, int(totalStudents))
	savings := service.estimator.EstimatedSavings(wastage, int(totalStudents))

	registrationRate := 0
	if total > 0 && totalStudents > 0 {
		registrationRate = int(math.Round(float64(total) / (float64(totalStudents) * 4) * 100))
	}

	return DashboardSnapshot{
		TotalStudents:       totalStudents,
		TotalAdmins:         totalAdmins,
		TotalUsers:          totalStudents + totalAdmins,
		Registrations:       counts,
		RegistrationsTotal:  total,
		FoodWastagePercent:  wastage,
		EstimatedSavings:    savings,
		RecentNotifications: recentNotifications,
		RegistrationRate:    registrationRate,
	}, nil
}
