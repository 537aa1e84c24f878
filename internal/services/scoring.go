package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coursematch/coursematch-backend/internal/types"
)

// Dimension weights carried over from the rule-based matcher this service
// replaces. Each dimension is capped; the sum is clamped to [0,100].
const (
	careerPointsPerHit = 10
	careerPointsCap    = 30
	ratingPoints       = 15
	entrepreneurPoints = 15
	genEdPoints        = 20
	schedulePoints     = 10
	departmentPoints   = 15
	maxScore           = 100
	maxReasons         = 5
)

var difficultyPoints = map[int]int{0: 15, 1: 10, 2: 5}

type ScoredCourse struct {
	Course  *types.Course
	Score   int
	Reasons []string
}

// ScoringService ranks catalog courses against a profile and the extracted
// preferences. A course missing any prerequisite is excluded outright, and
// zero-score courses never appear in the output.
type ScoringService interface {
	Rank(courses []*types.Course, profile *types.StudentProfile, prefs PreferenceSet) []ScoredCourse
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

func (s *scoringService) Rank(courses []*types.Course, profile *types.StudentProfile, prefs PreferenceSet) []ScoredCourse {
	completed := toSet(profile.CompletedCourses)

	var ranked []ScoredCourse
	for _, course := range courses {
		if course == nil || !prerequisitesMet(course, completed) {
			continue
		}
		score, reasons := scoreCourse(course, profile, prefs)
		if score <= 0 {
			continue
		}
		ranked = append(ranked, ScoredCourse{Course: course, Score: score, Reasons: reasons})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		ri, rj := instructorRating(ranked[i].Course), instructorRating(ranked[j].Course)
		if (ri == nil) != (rj == nil) {
			return ri != nil
		}
		if ri != nil && rj != nil && *ri != *rj {
			return *ri > *rj
		}
		return ranked[i].Course.ID < ranked[j].Course.ID
	})
	return ranked
}

func prerequisitesMet(course *types.Course, completed map[string]struct{}) bool {
	for _, prereq := range course.Prerequisites {
		if _, ok := completed[strings.ToLower(strings.TrimSpace(prereq))]; !ok {
			return false
		}
	}
	return true
}

type contribution struct {
	points int
	reason string
}

func scoreCourse(course *types.Course, profile *types.StudentProfile, prefs PreferenceSet) (int, []string) {
	var contribs []contribution

	// Career / interest overlap.
	needles := toSet(prefs.Keywords)
	for _, t := range prefs.CareerTerms {
		needles[strings.ToLower(t)] = struct{}{}
	}
	hay := toSet(course.CareerRelevance)
	for _, k := range course.Keywords {
		hay[strings.ToLower(k)] = struct{}{}
	}
	hay[strings.ToLower(course.Department)] = struct{}{}
	if overlap := intersect(needles, hay); len(overlap) > 0 {
		pts := len(overlap) * careerPointsPerHit
		if pts > careerPointsCap {
			pts = careerPointsCap
		}
		shown := overlap
		if len(shown) > 3 {
			shown = shown[:3]
		}
		contribs = append(contribs, contribution{pts, fmt.Sprintf("Matches your search for: %s", strings.Join(shown, ", "))})
	}

	// Instructor rating threshold. No preference means no credit and no
	// penalty for this dimension.
	instructor := course.Instructor.Data()
	if prefs.MinInstructorRating != nil && instructor.Rating != nil && *instructor.Rating >= *prefs.MinInstructorRating {
		contribs = append(contribs, contribution{ratingPoints, fmt.Sprintf("Highly rated professor (%.1f)", *instructor.Rating)})
	}

	// Entrepreneurial instructors, when the query asked for that world.
	if instructor.Entrepreneurship {
		if _, ok := needles["entrepreneurship"]; ok {
			contribs = append(contribs, contribution{entrepreneurPoints, "Professor has entrepreneurial background"})
		}
	}

	// Difficulty fit, inversely proportional to distance from the target.
	target := profile.DifficultyPreference
	if target == 0 {
		target = 3
	}
	if prefs.MaxDifficulty != nil {
		target = *prefs.MaxDifficulty
	}
	if course.Difficulty > 0 {
		dist := course.Difficulty - target
		if dist < 0 {
			dist = -dist
		}
		if pts, ok := difficultyPoints[dist]; ok {
			reason := "Difficulty matches your preference"
			if dist > 0 {
				reason = "Difficulty close to your preference"
			}
			contribs = append(contribs, contribution{pts, reason})
		}
	}

	// GenEd need.
	if overlap := intersect(toSet(course.GenEd), toSet(profile.GenedRemaining)); len(overlap) > 0 {
		contribs = append(contribs, contribution{genEdPoints, fmt.Sprintf("Satisfies GenEd requirement: %s", strings.Join(overlap, ", "))})
	}

	// Schedule fit against the extracted hints.
	if hint, ok := scheduleMatch(course.Schedule, prefs.ScheduleHints); ok {
		contribs = append(contribs, contribution{schedulePoints, fmt.Sprintf("Fits your schedule (%s)", hint)})
	}

	// Department alignment with declared major/minor.
	if departmentAligned(course.Department, profile) {
		contribs = append(contribs, contribution{departmentPoints, "Aligned with your major/minor"})
	}

	total := 0
	for _, c := range contribs {
		total += c.points
	}
	if total > maxScore {
		total = maxScore
	}

	// Reasons ordered by descending contribution, capped.
	sort.SliceStable(contribs, func(i, j int) bool { return contribs[i].points > contribs[j].points })
	reasons := make([]string, 0, len(contribs))
	for _, c := range contribs {
		reasons = append(reasons, c.reason)
		if len(reasons) == maxReasons {
			break
		}
	}
	return total, reasons
}

func scheduleMatch(slots []types.ScheduleSlot, hints []string) (string, bool) {
	for _, hint := range hints {
		h := strings.ToLower(strings.TrimSpace(hint))
		if h == "" {
			continue
		}
		for _, slot := range slots {
			if strings.Contains(strings.ToLower(slot.Time), h) {
				return hint, true
			}
		}
	}
	return "", false
}

func departmentAligned(department string, profile *types.StudentProfile) bool {
	if department == "" {
		return false
	}
	dept := strings.ToLower(department)
	for _, m := range profile.Majors {
		if strings.ToLower(strings.TrimSpace(m)) == dept {
			return true
		}
	}
	for _, m := range profile.Minors {
		if strings.ToLower(strings.TrimSpace(m)) == dept {
			return true
		}
	}
	return false
}

func instructorRating(course *types.Course) *float64 {
	if course == nil {
		return nil
	}
	return course.Instructor.Data().Rating
}
