package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Jakeb65/WelnessTracker/models"
)

// Monthly goals shown in the stats view. These are fixed display
// constants, not derived from the per-entry goals.
const (
	MonthlyStepsGoal    = 100000
	MonthlyActivityGoal = 1000 // minutes
)

// NoData is the mood/month sentinel when nothing usable was logged.
const NoData = "No data"

type MonthlySummary struct {
	Month        string `json:"month"`
	Steps        int    `json:"steps"`
	StepsGoal    int    `json:"stepsGoal"`
	Activity     int    `json:"activity"`
	ActivityGoal int    `json:"activityGoal"`
	Mood         string `json:"mood"`
}

// SummarizeMonth reduces a newest-first entry list into one monthly
// summary. The month label is taken from the first entry's date. Returns
// ok=false when there are no entries at all.
func SummarizeMonth(entries []models.Entry) (*MonthlySummary, bool) {
	if len(entries) == 0 {
		return nil, false
	}

	month := NoData
	if t, err := time.Parse("2006-01-02", entries[0].Date); err == nil {
		month = fmt.Sprintf("%s %d", t.Month().String(), t.Year())
	}

	var steps, activity int
	var stepsGoal, activityGoal int
	for _, e := range entries {
		steps += e.Steps
		activity += e.Activity
		stepsGoal += e.StepsGoal
		activityGoal += e.ActivityGoal
	}
	// Per-entry goal sums are intentionally ignored; the monthly view
	// shows the fixed goals instead.
	_, _ = stepsGoal, activityGoal

	return &MonthlySummary{
		Month:        month,
		Steps:        steps,
		StepsGoal:    MonthlyStepsGoal,
		Activity:     activity,
		ActivityGoal: MonthlyActivityGoal,
		Mood:         dominantMood(entries),
	}, true
}

// dominantMood counts non-blank moods and returns the most frequent one.
// Ties go to the mood seen first while counting.
func dominantMood(entries []models.Entry) string {
	counts := map[string]int{}
	var order []string
	for _, e := range entries {
		if strings.TrimSpace(e.Mood) == "" {
			continue
		}
		if _, seen := counts[e.Mood]; !seen {
			order = append(order, e.Mood)
		}
		counts[e.Mood]++
	}
	if len(order) == 0 {
		return NoData
	}
	best := order[0]
	for _, mood := range order[1:] {
		if counts[mood] > counts[best] {
			best = mood
		}
	}
	return best
}
