package types

import (
	"time"

	"gorm.io/datatypes"
)

// Instructor is denormalized onto the course row; the catalog is scraped
// per-semester and instructors change with it.
type Instructor struct {
	Name             string   `json:"name"`
	Rating           *float64 `json:"rating,omitempty"`
	Background       string   `json:"background,omitempty"`
	Entrepreneurship bool     `json:"entrepreneurship"`
}

type ScheduleSlot struct {
	Time     string `json:"time"`
	Location string `json:"location,omitempty"`
}

// Course is a catalog entry keyed by the registrar course code (e.g. CS3102).
// The catalog is read-only to the recommendation core; only the syllabus
// fields are written after upload.
type Course struct {
	ID                 string                            `gorm:"primaryKey" json:"id"`
	Title              string                            `gorm:"not null" json:"title"`
	Department         string                            `gorm:"index" json:"department"`
	Credits            int                               `json:"credits"`
	Description        string                            `json:"description"`
	Difficulty         int                               `json:"difficulty"`
	TypicalGrade       string                            `json:"typicalGrade"`
	AverageGPA         *float64                          `json:"averageGPA,omitempty"`
	Instructor         datatypes.JSONType[Instructor]    `gorm:"type:jsonb" json:"instructor"`
	GenEd              datatypes.JSONSlice[string]       `gorm:"type:jsonb" json:"gened"`
	CareerRelevance    datatypes.JSONSlice[string]       `gorm:"type:jsonb" json:"careerRelevance"`
	Prerequisites      datatypes.JSONSlice[string]       `gorm:"type:jsonb" json:"prerequisites"`
	Schedule           datatypes.JSONSlice[ScheduleSlot] `gorm:"type:jsonb" json:"schedule"`
	Keywords           datatypes.JSONSlice[string]       `gorm:"type:jsonb" json:"keywords"`
	Syllabus           string                            `json:"syllabus,omitempty"`
	SyllabusUploaded   bool                              `json:"syllabusUploaded"`
	SyllabusUploadDate *time.Time                        `json:"syllabusUploadDate,omitempty"`
	CreatedAt          time.Time                         `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time                         `gorm:"not null" json:"updated_at"`
}

func (Course) TableName() string { return "course" }
