package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/coursematch/coursematch-backend/internal/apperr"
	"github.com/coursematch/coursematch-backend/internal/clients/redis"
	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/repos"
	"github.com/coursematch/coursematch-backend/internal/types"
)

// CatalogService reads the course catalog, optionally through the redis
// snapshot cache. Courses without a curated keyword set get keywords
// derived from their title and description on the way out.
type CatalogService interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Course, error)
	GetSyllabus(ctx context.Context, tx *gorm.DB, courseID string) (*types.Course, error)
	GetProfessors(ctx context.Context, tx *gorm.DB) ([]ProfessorSummary, error)
	InvalidateCache(ctx context.Context)
}

// ProfessorSummary is the instructor view of the catalog. Instructors are
// denormalized onto course rows, so the listing is derived, not stored.
type ProfessorSummary struct {
	Name             string   `json:"name"`
	Rating           *float64 `json:"rating,omitempty"`
	Background       string   `json:"background,omitempty"`
	Entrepreneurship bool     `json:"entrepreneurship"`
	Courses          []string `json:"courses"`
}

type catalogService struct {
	db         *gorm.DB
	log        *logger.Logger
	courseRepo repos.CourseRepo
	cache      redis.CatalogCache
}

// NewCatalogService accepts a nil cache; caching is then skipped entirely.
func NewCatalogService(db *gorm.DB, baseLog *logger.Logger, courseRepo repos.CourseRepo, cache redis.CatalogCache) CatalogService {
	return &catalogService{
		db:         db,
		log:        baseLog.With("service", "CatalogService"),
		courseRepo: courseRepo,
		cache:      cache,
	}
}

func (s *catalogService) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Course, error) {
	if s.cache != nil && tx == nil {
		if courses, ok := s.cache.Get(ctx); ok {
			return courses, nil
		}
	}

	courses, err := s.courseRepo.GetAll(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	for _, c := range courses {
		ensureKeywords(c)
	}

	if s.cache != nil && tx == nil {
		s.cache.Set(ctx, courses)
	}
	return courses, nil
}

func (s *catalogService) GetSyllabus(ctx context.Context, tx *gorm.DB, courseID string) (*types.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, tx, courseID)
	if err != nil {
		return nil, err
	}
	if course.Syllabus == "" {
		return nil, fmt.Errorf("no syllabus for course %s: %w", courseID, apperr.ErrNotFound)
	}
	return course, nil
}

func (s *catalogService) GetProfessors(ctx context.Context, tx *gorm.DB) ([]ProfessorSummary, error) {
	courses, err := s.GetAll(ctx, tx)
	if err != nil {
		return nil, err
	}
	return DistinctProfessors(courses), nil
}

func (s *catalogService) InvalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// DistinctProfessors folds the per-course instructor records into one entry
// per instructor name, with the courses they teach in catalog order.
func DistinctProfessors(courses []*types.Course) []ProfessorSummary {
	byName := make(map[string]*ProfessorSummary)
	for _, course := range courses {
		if course == nil {
			continue
		}
		instructor := course.Instructor.Data()
		name := strings.TrimSpace(instructor.Name)
		if name == "" {
			continue
		}
		entry, ok := byName[name]
		if !ok {
			entry = &ProfessorSummary{
				Name:             name,
				Rating:           instructor.Rating,
				Background:       instructor.Background,
				Entrepreneurship: instructor.Entrepreneurship,
			}
			byName[name] = entry
		}
		entry.Courses = append(entry.Courses, course.ID)
	}

	out := make([]ProfessorSummary, 0, len(byName))
	for _, entry := range byName {
		sort.Strings(entry.Courses)
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func ensureKeywords(course *types.Course) {
	if course == nil || len(course.Keywords) > 0 {
		return
	}
	course.Keywords = tokenize(course.Title + " " + course.Description)
}
