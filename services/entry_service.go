package services

import (
	"context"
	"errors"
	"time"

	"github.com/Jakeb65/WelnessTracker/models"

	"gorm.io/gorm"
)

// ErrEntryNotFound is returned by Get and Update when no entry has the
// requested id.
var ErrEntryNotFound = errors.New("entry not found")

type EntryService struct{ db *gorm.DB }

func NewEntryService(db *gorm.DB) *EntryService { return &EntryService{db: db} }

// List returns every entry ordered by date descending. ISO dates sort
// lexicographically, so string order is chronological order.
func (s *EntryService) List(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry
	if err := s.db.WithContext(ctx).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].ExerciseList = models.ParseExercises(entries[i].Exercises)
	}
	return entries, nil
}

func (s *EntryService) Get(ctx context.Context, id uint) (*models.Entry, error) {
	var entry models.Entry
	if err := s.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	entry.ExerciseList = models.ParseExercises(entry.Exercises)
	return &entry, nil
}

// Create inserts a new entry. Every omitted field takes its default:
// date=today, steps=0, stepsGoal=10000, activity=0, activityGoal=60,
// mood="", exercises=[].
func (s *EntryService) Create(ctx context.Context, in models.EntryInput) (*models.Entry, error) {
	entry := models.Entry{
		Date:            defaultString(in.Date, time.Now().Format("2006-01-02")),
		Steps:           defaultInt(in.Steps, 0),
		StepsGoal:       defaultInt(in.StepsGoal, 10000),
		Activity:        defaultInt(in.Activity, 0),
		ActivityGoal:    defaultInt(in.ActivityGoal, 60),
		Mood:            defaultString(in.Mood, ""),
		Exercises:       models.MarshalExercises(in.Exercises),
		PhotoURI:        in.PhotoURI,
		PhotoBrightness: in.PhotoBrightness,
	}
	// Select("*") forces every column into the INSERT; otherwise GORM
	// drops zero-valued fields that carry a default tag and the column
	// default overrides an explicitly supplied zero.
	if err := s.db.WithContext(ctx).Select("*").Create(&entry).Error; err != nil {
		return nil, err
	}
	// Re-read so the caller sees exactly what is stored.
	return s.Get(ctx, entry.ID)
}

// Update replaces the entry wholesale. Only date is preserved when
// omitted; every other missing field reverts to its default rather than
// keeping the stored value. Existence is checked by re-reading after the
// write, so a missing id surfaces as ErrEntryNotFound.
func (s *EntryService) Update(ctx context.Context, id uint, in models.EntryInput) (*models.Entry, error) {
	updates := map[string]interface{}{
		"steps":           defaultInt(in.Steps, 0),
		"stepsGoal":       defaultInt(in.StepsGoal, 10000),
		"activity":        defaultInt(in.Activity, 0),
		"activityGoal":    defaultInt(in.ActivityGoal, 60),
		"mood":            defaultString(in.Mood, ""),
		"exercises":       models.MarshalExercises(in.Exercises),
		"photoUri":        in.PhotoURI,
		"photoBrightness": in.PhotoBrightness,
	}
	if in.Date != nil {
		updates["date"] = *in.Date
	}
	if err := s.db.WithContext(ctx).
		Model(&models.Entry{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the entry if it exists. It reports success either way;
// delete is deliberately idempotent and never returns NotFound.
func (s *EntryService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Entry{}, id).Error
}

func defaultInt(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func defaultString(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
