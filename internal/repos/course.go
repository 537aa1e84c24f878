package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/coursematch/coursematch-backend/internal/apperr"
	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/types"
)

// CourseRepo is read-only for the recommendation core. AttachSyllabus is the
// single write path, used after a confident syllabus match.
type CourseRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Course, error)
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Course, error)
	AttachSyllabus(ctx context.Context, tx *gorm.DB, id string, syllabus string) error
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return &courseRepo{db: db, log: baseLog.With("repo", "CourseRepo")}
}

func (r *courseRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Course
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Course
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course %s: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (r *courseRepo) AttachSyllabus(ctx context.Context, tx *gorm.DB, id string, syllabus string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	now := time.Now().UTC()
	res := transaction.WithContext(ctx).
		Model(&types.Course{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"syllabus":             syllabus,
			"syllabus_uploaded":    true,
			"syllabus_upload_date": now,
			"updated_at":           now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("course %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}
