package services

import (
	"testing"

	"github.com/Jakeb65/WelnessTracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeMonthTotalsAndFixedGoals(t *testing.T) {
	entries := []models.Entry{
		{Date: "2024-03-05", Steps: 3000, StepsGoal: 12000, Activity: 20, ActivityGoal: 90, Mood: "Good"},
		{Date: "2024-03-04", Steps: 7000, StepsGoal: 8000, Activity: 40, ActivityGoal: 30, Mood: "Good"},
		{Date: "2024-03-01", Steps: 1000, StepsGoal: 10000, Activity: 10, ActivityGoal: 60, Mood: "Tired"},
	}

	summary, ok := SummarizeMonth(entries)
	require.True(t, ok)

	assert.Equal(t, "March 2024", summary.Month)
	assert.Equal(t, 11000, summary.Steps)
	assert.Equal(t, 70, summary.Activity)
	assert.Equal(t, "Good", summary.Mood)
	// Displayed goals are constants regardless of the per-entry goals.
	assert.Equal(t, MonthlyStepsGoal, summary.StepsGoal)
	assert.Equal(t, MonthlyActivityGoal, summary.ActivityGoal)
}

func TestSummarizeMonthEmptyInput(t *testing.T) {
	summary, ok := SummarizeMonth(nil)
	assert.False(t, ok)
	assert.Nil(t, summary)
}

func TestSummarizeMonthLabelFromFirstEntry(t *testing.T) {
	summary, ok := SummarizeMonth([]models.Entry{
		{Date: "2024-12-31"},
		{Date: "2024-11-02"},
	})
	require.True(t, ok)
	assert.Equal(t, "December 2024", summary.Month)
}

func TestSummarizeMonthUnparseableDate(t *testing.T) {
	summary, ok := SummarizeMonth([]models.Entry{{Date: "not-a-date", Steps: 100}})
	require.True(t, ok)
	assert.Equal(t, NoData, summary.Month)
	assert.Equal(t, 100, summary.Steps)
}

func TestDominantMoodTieBreaksOnFirstSeen(t *testing.T) {
	entries := []models.Entry{
		{Date: "2024-03-04", Mood: "Tired"},
		{Date: "2024-03-03", Mood: "Good"},
		{Date: "2024-03-02", Mood: "Good"},
		{Date: "2024-03-01", Mood: "Tired"},
	}

	summary, ok := SummarizeMonth(entries)
	require.True(t, ok)
	assert.Equal(t, "Tired", summary.Mood)
}

func TestDominantMoodIgnoresBlankMoods(t *testing.T) {
	summary, ok := SummarizeMonth([]models.Entry{
		{Date: "2024-03-02", Mood: ""},
		{Date: "2024-03-01", Mood: "   "},
	})
	require.True(t, ok)
	assert.Equal(t, NoData, summary.Mood)
}
