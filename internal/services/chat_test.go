package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/coursematch/coursematch-backend/internal/apperr"
	"github.com/coursematch/coursematch-backend/internal/types"
)

type fakeCatalogService struct {
	courses []*types.Course
	err     error
}

func (f *fakeCatalogService) GetAll(_ context.Context, _ *gorm.DB) ([]*types.Course, error) {
	return f.courses, f.err
}

func (f *fakeCatalogService) GetSyllabus(_ context.Context, _ *gorm.DB, courseID string) (*types.Course, error) {
	for _, c := range f.courses {
		if c.ID == courseID {
			return c, nil
		}
	}
	return nil, fmt.Errorf("course %s: %w", courseID, apperr.ErrNotFound)
}

func (f *fakeCatalogService) GetProfessors(_ context.Context, _ *gorm.DB) ([]ProfessorSummary, error) {
	return DistinctProfessors(f.courses), nil
}

func (f *fakeCatalogService) InvalidateCache(_ context.Context) {}

type fakeProfileService struct {
	profile *types.StudentProfile
	err     error
}

func (f *fakeProfileService) Get(_ context.Context, _ *gorm.DB, studentID string) (*types.StudentProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfileService) Save(_ context.Context, _ *gorm.DB, profile *types.StudentProfile) (*types.StudentProfile, error) {
	return profile, nil
}

func chatFixture(catalog []*types.Course, profile *types.StudentProfile, t *testing.T) ChatService {
	t.Helper()
	return NewChatService(
		nil,
		testLogger(t),
		NewExtractorService(),
		NewScoringService(),
		&fakeCatalogService{courses: catalog},
		&fakeProfileService{profile: profile},
	)
}

func chatCatalog() []*types.Course {
	mk := func(id, dept, title string, rating float64, careers, keywords []string) *types.Course {
		return &types.Course{
			ID: id, Title: title, Department: dept, Credits: 3, Difficulty: 3,
			Instructor:      datatypes.NewJSONType(types.Instructor{Name: "Prof " + id, Rating: &rating}),
			CareerRelevance: careers,
			Keywords:        keywords,
		}
	}
	return []*types.Course{
		mk("CS3102", "CS", "Database Systems", 4.7, []string{"finance", "tech"}, []string{"sql", "databases"}),
		mk("ECON2010", "ECON", "Principles of Microeconomics", 4.1, []string{"finance", "investment-banking", "consulting"}, []string{"markets"}),
		mk("COMM3200", "COMM", "Financial Accounting", 4.4, []string{"finance", "investment-banking"}, []string{"accounting"}),
		mk("PHIL1010", "PHIL", "Introduction to Ethics", 3.2, nil, []string{"ethics"}),
		mk("MATH1310", "MATH", "Calculus I", 3.9, nil, []string{"calculus"}),
		mk("HIST2001", "HIST", "Modern Europe", 4.0, nil, []string{"europe"}),
	}
}

func TestRecommend_EmptyMessage(t *testing.T) {
	svc := chatFixture(chatCatalog(), testProfile(), t)

	_, err := svc.Recommend(context.Background(), nil, "student_demo", "   ")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation for a blank message", err)
	}
}

func TestRecommend_UnknownStudent(t *testing.T) {
	svc := NewChatService(
		nil,
		testLogger(t),
		NewExtractorService(),
		NewScoringService(),
		&fakeCatalogService{courses: chatCatalog()},
		&fakeProfileService{err: fmt.Errorf("profile: %w", apperr.ErrNotFound)},
	)

	_, err := svc.Recommend(context.Background(), nil, "ghost", "easy gened")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want the profile lookup failure surfaced", err)
	}
}

func TestRecommend_BankingQuery(t *testing.T) {
	svc := chatFixture(chatCatalog(), testProfile(), t)

	got, err := svc.Recommend(context.Background(), nil, "student_demo",
		"I'm interested in banking and want SQL practice with a 4.0+ rated professor")
	if err != nil {
		t.Fatalf("Recommend err = %v", err)
	}
	if got.Count == 0 || got.Count != len(got.Courses) {
		t.Fatalf("Count = %d with %d courses, want consistent non-empty result", got.Count, len(got.Courses))
	}
	if got.Courses[0].ID != "CS3102" {
		t.Fatalf("top course = %s, want CS3102 (sql + finance + rating + major)", got.Courses[0].ID)
	}
	for i := 1; i < len(got.Courses); i++ {
		if got.Courses[i].MatchScore > got.Courses[i-1].MatchScore {
			t.Fatalf("courses not sorted by score: %d after %d", got.Courses[i].MatchScore, got.Courses[i-1].MatchScore)
		}
	}
	if !strings.Contains(got.Message, "Database Systems") {
		t.Fatalf("advisor message %q does not mention the top match", got.Message)
	}
}

func TestRecommend_CapsAtFive(t *testing.T) {
	catalog := chatCatalog()
	for i := 0; i < 10; i++ {
		catalog = append(catalog, &types.Course{
			ID: fmt.Sprintf("GEN%04d", 1000+i), Title: "General Studies", Department: "GEN",
			Difficulty: 3, Keywords: datatypes.JSONSlice[string]{"finance"},
		})
	}
	svc := chatFixture(catalog, testProfile(), t)

	got, err := svc.Recommend(context.Background(), nil, "student_demo", "anything about finance")
	if err != nil {
		t.Fatalf("Recommend err = %v", err)
	}
	if got.Count > maxRecommendations {
		t.Fatalf("Count = %d, want at most %d", got.Count, maxRecommendations)
	}
}

func TestRecommend_NoEligibleCourses(t *testing.T) {
	catalog := []*types.Course{
		{
			ID: "CS4750", Title: "Database Applications", Department: "CS", Difficulty: 4,
			Prerequisites: datatypes.JSONSlice[string]{"CS 3102"},
			Keywords:      datatypes.JSONSlice[string]{"databases"},
		},
	}
	profile := testProfile()
	profile.Majors = datatypes.JSONSlice[string]{"ECON"}
	svc := chatFixture(catalog, profile, t)

	got, err := svc.Recommend(context.Background(), nil, "student_demo", "databases")
	if err != nil {
		t.Fatalf("Recommend err = %v", err)
	}
	if got.Count != 0 || len(got.Courses) != 0 {
		t.Fatalf("got %d courses, want none when prerequisites exclude everything", got.Count)
	}
	if !strings.Contains(got.Message, "couldn't find") {
		t.Fatalf("advisor message %q should explain the empty result", got.Message)
	}
}
