package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/coursematch/coursematch-backend/internal/apperr"
	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/repos"
	"github.com/coursematch/coursematch-backend/internal/types"
)

// ProfileService reads and replaces student profiles. Save is a wholesale
// replace: the caller sends the full document and the stored row becomes
// exactly that document (last write wins).
type ProfileService interface {
	Get(ctx context.Context, tx *gorm.DB, studentID string) (*types.StudentProfile, error)
	Save(ctx context.Context, tx *gorm.DB, profile *types.StudentProfile) (*types.StudentProfile, error)
}

type profileService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repos.ProfileRepo
}

func NewProfileService(db *gorm.DB, baseLog *logger.Logger, repo repos.ProfileRepo) ProfileService {
	return &profileService{
		db:   db,
		log:  baseLog.With("service", "ProfileService"),
		repo: repo,
	}
}

func (s *profileService) Get(ctx context.Context, tx *gorm.DB, studentID string) (*types.StudentProfile, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, fmt.Errorf("studentId required: %w", apperr.ErrValidation)
	}
	return s.repo.GetByStudentID(ctx, tx, studentID)
}

func (s *profileService) Save(ctx context.Context, tx *gorm.DB, profile *types.StudentProfile) (*types.StudentProfile, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile required: %w", apperr.ErrValidation)
	}
	profile.StudentID = strings.TrimSpace(profile.StudentID)
	if profile.StudentID == "" {
		return nil, fmt.Errorf("id required: %w", apperr.ErrValidation)
	}
	if len(profile.Majors) == 0 {
		return nil, fmt.Errorf("major required: %w", apperr.ErrValidation)
	}
	if profile.GPA < 0 || profile.GPA > 4.0 {
		return nil, fmt.Errorf("gpa must be between 0.0 and 4.0: %w", apperr.ErrValidation)
	}
	if profile.DifficultyPreference == 0 {
		profile.DifficultyPreference = 3
	}
	if profile.DifficultyPreference < 1 || profile.DifficultyPreference > 5 {
		return nil, fmt.Errorf("difficulty preference must be 1-5: %w", apperr.ErrValidation)
	}
	profile.UpdatedAt = time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = profile.UpdatedAt
	}

	saved, err := s.repo.Upsert(ctx, tx, profile)
	if err != nil {
		s.log.Error("profile save failed", "error", err, "student_id", profile.StudentID)
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return saved, nil
}
