package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/types"
)

// FeedbackRepo is append-only. There is deliberately no update or delete:
// the ledger is the source of truth analytics recomputes from.
type FeedbackRepo interface {
	Append(ctx context.Context, tx *gorm.DB, event *types.FeedbackEvent) error
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.FeedbackEvent, error)
}

type feedbackRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFeedbackRepo(db *gorm.DB, baseLog *logger.Logger) FeedbackRepo {
	return &feedbackRepo{db: db, log: baseLog.With("repo", "FeedbackRepo")}
}

func (r *feedbackRepo) Append(ctx context.Context, tx *gorm.DB, event *types.FeedbackEvent) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	// Single-row insert; concurrent appends never read or rewrite each
	// other's rows.
	if err := transaction.WithContext(ctx).Create(event).Error; err != nil {
		return err
	}
	return nil
}

func (r *feedbackRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.FeedbackEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.FeedbackEvent
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
