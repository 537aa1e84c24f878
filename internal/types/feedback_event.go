package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	FeedbackActionLike      = "like"
	FeedbackActionDislike   = "dislike"
	FeedbackActionAddToCart = "add_to_cart"
)

// FeedbackEvent is an append-only engagement record. Rows are never updated
// or deleted; analytics always recomputes from the full log.
type FeedbackEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID string    `gorm:"not null;index" json:"studentId"`
	CourseID  string    `gorm:"not null;index" json:"courseId"`
	Action    string    `gorm:"not null" json:"action"`
	CreatedAt time.Time `gorm:"not null" json:"timestamp"`
}

func (FeedbackEvent) TableName() string { return "feedback_event" }

func ValidFeedbackAction(action string) bool {
	switch action {
	case FeedbackActionLike, FeedbackActionDislike, FeedbackActionAddToCart:
		return true
	default:
		return false
	}
}
