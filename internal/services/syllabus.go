package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/coursematch/coursematch-backend/internal/apperr"
	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/repos"
	"github.com/coursematch/coursematch-backend/internal/types"
)

// Match scoring: token overlap contributes up to overlapPoints, an exact
// course-code hit adds codeBonus, and a caller-supplied hint adds at most
// hintBonus. The hint bonus is deliberately below the confidence threshold
// so a hint alone can never produce a match. A course-code hit is decisive
// on its own: it never scores below the threshold, no matter how little of
// the keyword set the document shares.
const (
	overlapPoints       = 70
	codeBonus           = 30
	hintBonus           = 15
	confidenceThreshold = 50
	syllabusMaxChars    = 10000
)

// Registrar course codes: department prefix plus a four digit number,
// optionally separated by a space (CS 3102 or CS3102).
var courseCodeRe = regexp.MustCompile(`\b([A-Z]{2,4})\s?([0-9]{4})\b`)

type SyllabusMatchResult struct {
	CourseID        string `json:"courseId"`
	CourseTitle     string `json:"courseTitle"`
	MatchConfidence int    `json:"matchConfidence"`
	MatchReason     string `json:"matchReason"`
}

type SyllabusService interface {
	// Match scores documentText against the catalog and returns the best
	// course, or ErrNoConfidentMatch when nothing clears the threshold.
	Match(documentText string, hintedCourseID string, catalog []*types.Course) (SyllabusMatchResult, error)
	// Upload extracts text from the file, matches it, and attaches the
	// syllabus to the matched course.
	Upload(ctx context.Context, tx *gorm.DB, filename string, data []byte, hintedCourseID string) (SyllabusMatchResult, error)
}

type syllabusService struct {
	db         *gorm.DB
	log        *logger.Logger
	catalogSvc CatalogService
	courseRepo repos.CourseRepo
}

func NewSyllabusService(db *gorm.DB, baseLog *logger.Logger, catalogSvc CatalogService, courseRepo repos.CourseRepo) SyllabusService {
	return &syllabusService{
		db:         db,
		log:        baseLog.With("service", "SyllabusService"),
		catalogSvc: catalogSvc,
		courseRepo: courseRepo,
	}
}

func (s *syllabusService) Match(documentText string, hintedCourseID string, catalog []*types.Course) (SyllabusMatchResult, error) {
	docTokens := tokenSet(documentText)
	docCodes := extractCourseCodes(documentText)
	hint := strings.ToUpper(strings.TrimSpace(hintedCourseID))

	hintInCatalog := false
	if hint != "" {
		for _, c := range catalog {
			if c != nil && c.ID == hint {
				hintInCatalog = true
				break
			}
		}
	}

	var (
		best      *types.Course
		bestScore int
		bestCode  bool
		bestHits  int
	)
	for _, course := range catalog {
		if course == nil {
			continue
		}
		score, codeHit, overlapHits := scoreSyllabus(docTokens, docCodes, course)
		if hintInCatalog && course.ID == hint {
			score += hintBonus
		}
		if score > 100 {
			score = 100
		}
		if best == nil || score > bestScore || (score == bestScore && course.ID < best.ID) {
			best = course
			bestScore = score
			bestCode = codeHit
			bestHits = overlapHits
		}
	}

	if best == nil || bestScore < confidenceThreshold {
		return SyllabusMatchResult{}, fmt.Errorf("best candidate scored %d/%d: %w", bestScore, confidenceThreshold, apperr.ErrNoConfidentMatch)
	}

	return SyllabusMatchResult{
		CourseID:        best.ID,
		CourseTitle:     best.Title,
		MatchConfidence: bestScore,
		MatchReason:     matchReason(best.ID, bestCode, bestHits, hintInCatalog && best.ID == hint),
	}, nil
}

func (s *syllabusService) Upload(ctx context.Context, tx *gorm.DB, filename string, data []byte, hintedCourseID string) (SyllabusMatchResult, error) {
	text, err := ExtractSyllabusText(filename, data)
	if err != nil {
		return SyllabusMatchResult{}, err
	}

	catalog, err := s.catalogSvc.GetAll(ctx, tx)
	if err != nil {
		return SyllabusMatchResult{}, fmt.Errorf("load catalog: %w", err)
	}

	result, err := s.Match(text, hintedCourseID, catalog)
	if err != nil {
		return SyllabusMatchResult{}, err
	}

	stored := text
	if len(stored) > syllabusMaxChars {
		stored = stored[:syllabusMaxChars]
	}
	if err := s.courseRepo.AttachSyllabus(ctx, tx, result.CourseID, stored); err != nil {
		s.log.Error("attach syllabus failed", "error", err, "course_id", result.CourseID)
		return SyllabusMatchResult{}, fmt.Errorf("attach syllabus: %w", err)
	}
	s.catalogSvc.InvalidateCache(ctx)

	s.log.Info("syllabus matched", "course_id", result.CourseID, "confidence", result.MatchConfidence)
	return result, nil
}

func scoreSyllabus(docTokens map[string]struct{}, docCodes map[string]struct{}, course *types.Course) (score int, codeHit bool, overlapHits int) {
	courseTokens := tokenSet(course.Title)
	for _, k := range course.Keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			courseTokens[k] = struct{}{}
		}
	}

	hits := intersect(docTokens, courseTokens)
	overlapHits = len(hits)
	denom := len(docTokens)
	if len(courseTokens) < denom {
		denom = len(courseTokens)
	}
	if denom > 0 && overlapHits > 0 {
		score += (overlapPoints*overlapHits + denom/2) / denom
		if score > overlapPoints {
			score = overlapPoints
		}
	}

	if _, ok := docCodes[course.ID]; ok {
		score += codeBonus
		codeHit = true
		if score < confidenceThreshold {
			score = confidenceThreshold
		}
	}
	return score, codeHit, overlapHits
}

func extractCourseCodes(text string) map[string]struct{} {
	codes := make(map[string]struct{})
	for _, m := range courseCodeRe.FindAllStringSubmatch(strings.ToUpper(text), -1) {
		codes[m[1]+m[2]] = struct{}{}
	}
	return codes
}

func matchReason(courseID string, codeHit bool, overlapHits int, hinted bool) string {
	switch {
	case codeHit:
		return fmt.Sprintf("exact course-code match (%s)", courseID)
	case overlapHits > 0 && hinted:
		return fmt.Sprintf("%d shared keywords with course description, confirmed by the suggested course", overlapHits)
	case overlapHits > 0:
		return fmt.Sprintf("%d shared keywords with course description", overlapHits)
	default:
		return "suggested course accepted"
	}
}
