package services

import (
	"strings"
	"testing"

	"gorm.io/datatypes"

	"github.com/coursematch/coursematch-backend/internal/types"
)

func hasKeyword(prefs PreferenceSet, kw string) bool {
	for _, k := range prefs.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

func hasCareerTerm(prefs PreferenceSet, term string) bool {
	for _, t := range prefs.CareerTerms {
		if t == term {
			return true
		}
	}
	return false
}

func TestExtract_CareerSynonyms(t *testing.T) {
	svc := NewExtractorService()

	prefs := svc.Extract("I'm interested in banking after graduation", nil)

	for _, want := range []string{"finance", "investment-banking"} {
		if !hasCareerTerm(prefs, want) {
			t.Fatalf("Extract career terms = %v, want to contain %q", prefs.CareerTerms, want)
		}
		if !hasKeyword(prefs, want) {
			t.Fatalf("Extract keywords = %v, want canonical term %q included", prefs.Keywords, want)
		}
	}
}

func TestExtract_RatingThreshold(t *testing.T) {
	svc := NewExtractorService()

	cases := []struct {
		name    string
		message string
		want    float64
	}{
		{name: "plus_rated", message: "I want SQL practice and a 4.0+ rated professor", want: 4.0},
		{name: "rating_above", message: "something with a rating above 4.5", want: 4.5},
		{name: "rated_at_least", message: "rated at least 3 please", want: 3.0},
		{name: "highly_rated", message: "a highly rated professor", want: 4.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prefs := svc.Extract(tc.message, nil)
			if prefs.MinInstructorRating == nil {
				t.Fatalf("Extract(%q) MinInstructorRating = nil, want %v", tc.message, tc.want)
			}
			if *prefs.MinInstructorRating != tc.want {
				t.Fatalf("Extract(%q) MinInstructorRating = %v, want %v", tc.message, *prefs.MinInstructorRating, tc.want)
			}
		})
	}
}

func TestExtract_DifficultyWords(t *testing.T) {
	svc := NewExtractorService()

	cases := []struct {
		message string
		want    int
	}{
		{message: "an easy gened to round out my schedule", want: 2},
		{message: "I want something challenging", want: 4},
	}

	for _, tc := range cases {
		prefs := svc.Extract(tc.message, nil)
		if prefs.MaxDifficulty == nil || *prefs.MaxDifficulty != tc.want {
			t.Fatalf("Extract(%q) MaxDifficulty = %v, want %d", tc.message, prefs.MaxDifficulty, tc.want)
		}
	}

	if prefs := svc.Extract("databases please", nil); prefs.MaxDifficulty != nil {
		t.Fatalf("MaxDifficulty = %v, want nil when no difficulty language present", *prefs.MaxDifficulty)
	}
}

func TestExtract_ScheduleHints(t *testing.T) {
	svc := NewExtractorService()

	prefs := svc.Extract("morning classes on tuesday around 9am", nil)
	for _, want := range []string{"morning", "tuesday", "9am"} {
		found := false
		for _, h := range prefs.ScheduleHints {
			if h == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("ScheduleHints = %v, want to contain %q", prefs.ScheduleHints, want)
		}
	}
}

func TestExtract_ScheduleProfileFallback(t *testing.T) {
	svc := NewExtractorService()
	profile := &types.StudentProfile{
		StudentID:       "student_demo",
		TimePreferences: datatypes.JSONSlice[string]{"morning", "early afternoon"},
	}

	prefs := svc.Extract("something that fits my SIS schedule", profile)
	if len(prefs.ScheduleHints) != 2 {
		t.Fatalf("ScheduleHints = %v, want the profile's two time preferences", prefs.ScheduleHints)
	}

	// An explicit time wins over the fallback.
	prefs = svc.Extract("evening classes that fit my schedule", profile)
	if len(prefs.ScheduleHints) != 1 || prefs.ScheduleHints[0] != "evening" {
		t.Fatalf("ScheduleHints = %v, want just the explicit hint", prefs.ScheduleHints)
	}
}

func TestExtract_DepartmentAliases(t *testing.T) {
	svc := NewExtractorService()

	prefs := svc.Extract("looking for art classes and comm classes", nil)
	if !hasKeyword(prefs, "arts") {
		t.Fatalf("keywords = %v, want dept code arts", prefs.Keywords)
	}
	if !hasKeyword(prefs, "comm") {
		t.Fatalf("keywords = %v, want dept code comm", prefs.Keywords)
	}

	// "cs" must not fire inside "physics".
	prefs = svc.Extract("physics lab", nil)
	if hasKeyword(prefs, "cs") {
		t.Fatalf("keywords = %v, cs alias matched inside another word", prefs.Keywords)
	}
}

func TestExtract_CreditBounds(t *testing.T) {
	svc := NewExtractorService()

	prefs := svc.Extract("a 3 credit course", nil)
	if prefs.CreditBounds == nil || prefs.CreditBounds.Min != 3 || prefs.CreditBounds.Max != 3 {
		t.Fatalf("CreditBounds = %+v, want {3 3}", prefs.CreditBounds)
	}

	prefs = svc.Extract("something 1-3 credits", nil)
	if prefs.CreditBounds == nil || prefs.CreditBounds.Min != 1 || prefs.CreditBounds.Max != 3 {
		t.Fatalf("CreditBounds = %+v, want {1 3}", prefs.CreditBounds)
	}
}

func TestExtract_NeverFails(t *testing.T) {
	svc := NewExtractorService()

	inputs := []string{
		"",
		"    ",
		"!!!???",
		strings.Repeat("x", 100000),
		"ñöñ-àscii tèxt with 日本語",
	}
	for _, in := range inputs {
		prefs := svc.Extract(in, nil)
		if prefs.MinInstructorRating != nil || prefs.MaxDifficulty != nil {
			t.Fatalf("Extract(%.20q) invented thresholds from noise", in)
		}
	}
}
