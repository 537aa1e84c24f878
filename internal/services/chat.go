package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/coursematch/coursematch-backend/internal/apperr"
	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/types"
)

const maxRecommendations = 5

// RecommendedCourse is the chat-turn view of a catalog course: the course
// itself plus why it was picked.
type RecommendedCourse struct {
	*types.Course
	MatchScore   int      `json:"matchScore"`
	MatchReasons []string `json:"matchReasons"`
}

type ChatResult struct {
	Message string              `json:"message"`
	Courses []RecommendedCourse `json:"courses"`
	Count   int                 `json:"count"`
}

// ChatService handles one chat turn. It holds no conversational state:
// each call is a pure function of the current message and the stored
// profile, so concurrent turns never interact.
type ChatService interface {
	Recommend(ctx context.Context, tx *gorm.DB, studentID, message string) (ChatResult, error)
}

type chatService struct {
	db         *gorm.DB
	log        *logger.Logger
	extractor  ExtractorService
	scoring    ScoringService
	catalogSvc CatalogService
	profileSvc ProfileService
}

func NewChatService(
	db *gorm.DB,
	baseLog *logger.Logger,
	extractor ExtractorService,
	scoring ScoringService,
	catalogSvc CatalogService,
	profileSvc ProfileService,
) ChatService {
	return &chatService{
		db:         db,
		log:        baseLog.With("service", "ChatService"),
		extractor:  extractor,
		scoring:    scoring,
		catalogSvc: catalogSvc,
		profileSvc: profileSvc,
	}
}

func (s *chatService) Recommend(ctx context.Context, tx *gorm.DB, studentID, message string) (ChatResult, error) {
	if strings.TrimSpace(message) == "" {
		return ChatResult{}, fmt.Errorf("message required: %w", apperr.ErrValidation)
	}

	var (
		profile *types.StudentProfile
		catalog []*types.Course
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profileSvc.Get(gctx, tx, studentID)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		c, err := s.catalogSvc.GetAll(gctx, tx)
		if err != nil {
			return err
		}
		catalog = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return ChatResult{}, err
	}

	prefs := s.extractor.Extract(message, profile)
	ranked := s.scoring.Rank(catalog, profile, prefs)
	if len(ranked) > maxRecommendations {
		ranked = ranked[:maxRecommendations]
	}

	courses := make([]RecommendedCourse, 0, len(ranked))
	for _, r := range ranked {
		courses = append(courses, RecommendedCourse{
			Course:       r.Course,
			MatchScore:   r.Score,
			MatchReasons: r.Reasons,
		})
	}

	s.log.Debug("chat turn ranked",
		"student_id", studentID,
		"keywords", len(prefs.Keywords),
		"results", len(courses),
	)

	return ChatResult{
		Message: advisorReply(message, courses),
		Courses: courses,
		Count:   len(courses),
	}, nil
}

// advisorReply builds the conversational explanation for the ranked list.
func advisorReply(message string, courses []RecommendedCourse) string {
	if len(courses) == 0 {
		return fmt.Sprintf("I couldn't find courses matching %q that you're eligible for. Try different keywords, or check whether prerequisites are holding courses back.", message)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your query %q, I found %d great matches for you.", message, len(courses))

	top := courses[0]
	fmt.Fprintf(&b, "\n\n**%s** is the top match because: %s.", top.Title, strings.Join(firstN(top.MatchReasons, 3), "; "))
	if len(courses) > 1 {
		fmt.Fprintf(&b, "\n\nHere are %d courses ranked by how well they fit your profile:", len(courses))
	}
	return b.String()
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
