package models

import "encoding/json"

// Entry is one day's wellness record. Exercises are persisted as a JSON
// array in a TEXT column (legacy schema) and exposed to callers as the
// deserialized ExerciseList.
type Entry struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	Date            string   `gorm:"column:date;not null" json:"date"` // YYYY-MM-DD
	Steps           int      `gorm:"column:steps;default:0" json:"steps"`
	StepsGoal       int      `gorm:"column:stepsGoal;default:10000" json:"stepsGoal"`
	Activity        int      `gorm:"column:activity;default:0" json:"activity"` // minutes
	ActivityGoal    int      `gorm:"column:activityGoal;default:60" json:"activityGoal"`
	Mood            string   `gorm:"column:mood;default:''" json:"mood"`
	Exercises       string   `gorm:"column:exercises;default:'[]'" json:"-"`
	PhotoURI        *string  `gorm:"column:photoUri" json:"photoUri"`
	PhotoBrightness *float64 `gorm:"column:photoBrightness" json:"photoBrightness"`

	ExerciseList []string `gorm:"-" json:"exercises"`
}

func (Entry) TableName() string { return "entries" }

// EntryInput is the request payload for create and update. Pointer fields
// distinguish "omitted" from a zero value so each field can be defaulted
// independently.
type EntryInput struct {
	Date            *string  `json:"date"`
	Steps           *int     `json:"steps"`
	StepsGoal       *int     `json:"stepsGoal"`
	Activity        *int     `json:"activity"`
	ActivityGoal    *int     `json:"activityGoal"`
	Mood            *string  `json:"mood"`
	Exercises       []string `json:"exercises"`
	PhotoURI        *string  `json:"photoUri"`
	PhotoBrightness *float64 `json:"photoBrightness"`
}

// ParseExercises deserializes the stored exercises column. Empty, NULL
// or unreadable values come back as an empty slice, never nil or an error.
func ParseExercises(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// MarshalExercises serializes an exercise list for storage. A nil list
// stores as "[]".
func MarshalExercises(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return string(b)
}
