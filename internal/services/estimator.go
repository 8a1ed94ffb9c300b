package services

import (
	"hash/fnv"
	"math"
	"time"
)

// WastageEstimator isolates the heuristic wastage/savings figures so the
// reporting call sites never embed the formulas and a real consumption-based
// computation can slot in later.
type WastageEstimator interface {
	// DailyWastagePercent estimates wastage for one past day of the weekly
	// trend.
	DailyWastagePercent(day time.Time, attendingTotal int) float64
	// TodayWastagePercent estimates today's wastage from registrations
	// against the active student body.
	TodayWastagePercent(attendingTotal int, activeStudents int) float64
	// EstimatedSavings derives a currency-free savings figure from a wastage
	// percentage.
	EstimatedSavings(wastagePercent float64, activeStudents int) int
}

// HeuristicEstimator is a synthetic placeholder standing in for consumption
// telemetry that does not exist yet. The daily figure is a deterministic
// hash of the date mapped into [5,25) rather than a random draw, so reports
// are stable across reads; it carries no real-world meaning.
type HeuristicEstimator struct{}

func NewHeuristicEstimator() *HeuristicEstimator {
	return &HeuristicEstimator{}
}

func (estimator *HeuristicEstimator) DailyWastagePercent(day time.Time, attendingTotal int) float64 {
	hasher := fnv.New32a()
	hasher.Write([]byte(day.Format("2006-01-02")))
	spread := float64(hasher.Sum32()%2000) / 100.0
	return roundHundredths(5 + spread)
}

func (estimator *HeuristicEstimator) TodayWastagePercent(attendingTotal int, activeStudents int) float64 {
	if activeStudents <= 0 {
		return 0
	}
	wastage := 20 - (float64(attendingTotal)/float64(activeStudents))*15
	wastage = math.Max(0, math.Min(25, wastage))
	return roundHundredths(wastage)
}

func (estimator *HeuristicEstimator) EstimatedSavings(wastagePercent float64, activeStudents int) int {
	return int(math.Round((25 - wastagePercent) * 100 * float64(activeStudents) / 25))
}

func roundHundredths(value float64) float64 {
	return math.Round(value*100) / 100
}
