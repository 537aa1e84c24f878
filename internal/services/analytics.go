package services

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/repos"
	"github.com/coursematch/coursematch-backend/internal/types"
)

const topCoursesLimit = 10

type EngagementAggregate struct {
	CourseID  string `json:"courseId"`
	Likes     int    `json:"likes"`
	Dislikes  int    `json:"dislikes"`
	CartAdds  int    `json:"cartAdds"`
	Total     int    `json:"total"`
	Sentiment int    `json:"sentiment"`
}

type AnalyticsResult struct {
	TotalFeedback    int                            `json:"totalFeedback"`
	CourseEngagement map[string]EngagementAggregate `json:"courseEngagement"`
	TopCourses       []EngagementAggregate          `json:"topCourses"`
}

// Aggregate recomputes engagement statistics from the full event history.
// It is a pure function: the same event set always yields identical output,
// and totals are derived, never incremented.
func Aggregate(events []*types.FeedbackEvent) AnalyticsResult {
	perCourse := make(map[string]EngagementAggregate)
	total := 0

	for _, e := range events {
		if e == nil || e.CourseID == "" {
			continue
		}
		agg := perCourse[e.CourseID]
		agg.CourseID = e.CourseID
		switch e.Action {
		case types.FeedbackActionLike:
			agg.Likes++
		case types.FeedbackActionDislike:
			agg.Dislikes++
		case types.FeedbackActionAddToCart:
			agg.CartAdds++
		default:
			continue
		}
		agg.Total = agg.Likes + agg.Dislikes + agg.CartAdds
		if agg.Total > 0 {
			agg.Sentiment = (agg.Likes - agg.Dislikes) * 100 / agg.Total
		}
		perCourse[e.CourseID] = agg
		total++
	}

	top := make([]EngagementAggregate, 0, len(perCourse))
	for _, agg := range perCourse {
		top = append(top, agg)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Total != top[j].Total {
			return top[i].Total > top[j].Total
		}
		return top[i].CourseID < top[j].CourseID
	})
	if len(top) > topCoursesLimit {
		top = top[:topCoursesLimit]
	}

	return AnalyticsResult{
		TotalFeedback:    total,
		CourseEngagement: perCourse,
		TopCourses:       top,
	}
}

// AnalyticsService loads the current ledger snapshot and aggregates it.
// Full recompute per request sidesteps incremental-counter races at O(events)
// read cost, which is fine for a read-heavy, low-write faculty dashboard.
type AnalyticsService interface {
	GetAnalytics(ctx context.Context, tx *gorm.DB) (AnalyticsResult, error)
}

type analyticsService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repos.FeedbackRepo
}

func NewAnalyticsService(db *gorm.DB, baseLog *logger.Logger, repo repos.FeedbackRepo) AnalyticsService {
	return &analyticsService{
		db:   db,
		log:  baseLog.With("service", "AnalyticsService"),
		repo: repo,
	}
}

func (s *analyticsService) GetAnalytics(ctx context.Context, tx *gorm.DB) (AnalyticsResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	events, err := s.repo.GetAll(ctx, transaction)
	if err != nil {
		s.log.Error("load feedback events failed", "error", err)
		return AnalyticsResult{}, fmt.Errorf("load feedback events: %w", err)
	}
	return Aggregate(events), nil
}
