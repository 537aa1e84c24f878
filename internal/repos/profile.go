package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coursematch/coursematch-backend/internal/apperr"
	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/types"
)

type ProfileRepo interface {
	GetByStudentID(ctx context.Context, tx *gorm.DB, studentID string) (*types.StudentProfile, error)
	// Upsert replaces the stored profile wholesale. Two concurrent saves
	// resolve to whichever write lands last; there is no merge.
	Upsert(ctx context.Context, tx *gorm.DB, profile *types.StudentProfile) (*types.StudentProfile, error)
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return &profileRepo{db: db, log: baseLog.With("repo", "ProfileRepo")}
}

func (r *profileRepo) GetByStudentID(ctx context.Context, tx *gorm.DB, studentID string) (*types.StudentProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.StudentProfile
	if err := transaction.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile %s: %w", studentID, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (r *profileRepo) Upsert(ctx context.Context, tx *gorm.DB, profile *types.StudentProfile) (*types.StudentProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}},
			UpdateAll: true,
		}).
		Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
