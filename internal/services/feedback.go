package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coursematch/coursematch-backend/internal/apperr"
	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/repos"
	"github.com/coursematch/coursematch-backend/internal/types"
)

type FeedbackInput struct {
	StudentID string `json:"studentId"`
	CourseID  string `json:"courseId"`
	Action    string `json:"action"`
}

// FeedbackService validates and appends engagement events. Repeated
// identical events all count: the ledger is a raw event log, not a vote.
type FeedbackService interface {
	Record(ctx context.Context, tx *gorm.DB, input FeedbackInput) (*types.FeedbackEvent, error)
}

type feedbackService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repos.FeedbackRepo
}

func NewFeedbackService(db *gorm.DB, baseLog *logger.Logger, repo repos.FeedbackRepo) FeedbackService {
	return &feedbackService{
		db:   db,
		log:  baseLog.With("service", "FeedbackService"),
		repo: repo,
	}
}

func (s *feedbackService) Record(ctx context.Context, tx *gorm.DB, input FeedbackInput) (*types.FeedbackEvent, error) {
	studentID := strings.TrimSpace(input.StudentID)
	courseID := strings.TrimSpace(input.CourseID)
	action := strings.TrimSpace(strings.ToLower(input.Action))

	if studentID == "" {
		return nil, fmt.Errorf("studentId required: %w", apperr.ErrValidation)
	}
	if courseID == "" {
		return nil, fmt.Errorf("courseId required: %w", apperr.ErrValidation)
	}
	if !types.ValidFeedbackAction(action) {
		return nil, fmt.Errorf("unknown action %q: %w", input.Action, apperr.ErrValidation)
	}

	event := &types.FeedbackEvent{
		ID:        uuid.New(),
		StudentID: studentID,
		CourseID:  courseID,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}

	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	if err := s.repo.Append(ctx, transaction, event); err != nil {
		s.log.Error("feedback append failed", "error", err, "course_id", courseID)
		return nil, fmt.Errorf("append feedback: %w", err)
	}
	return event, nil
}
