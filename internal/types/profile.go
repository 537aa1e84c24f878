package types

import (
	"time"

	"gorm.io/datatypes"
)

// StudentProfile is replaced wholesale on save (last write wins); there is
// no partial merge anywhere in the pipeline.
type StudentProfile struct {
	StudentID            string                      `gorm:"primaryKey;column:student_id" json:"id"`
	Majors               datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"major"`
	Minors               datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"minor"`
	GPA                  float64                     `json:"gpa"`
	CompletedCourses     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"completedCourses"`
	CareerGoals          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"careerGoals"`
	Interests            datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"interests"`
	TimePreferences      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"timePreferences"`
	LearningStyle        string                      `json:"learningStyle,omitempty"`
	DifficultyPreference int                         `gorm:"default:3" json:"typicalDifficultyPreference"`
	GenedRemaining       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"genedRemaining"`
	CreatedAt            time.Time                   `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time                   `gorm:"not null" json:"updated_at"`
}

func (StudentProfile) TableName() string { return "student_profile" }
