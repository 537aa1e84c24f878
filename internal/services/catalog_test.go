package services

import (
	"reflect"
	"testing"

	"gorm.io/datatypes"

	"github.com/coursematch/coursematch-backend/internal/types"
)

func TestDistinctProfessors(t *testing.T) {
	mk := func(id, name string, rating *float64, entrepreneurship bool) *types.Course {
		return &types.Course{
			ID: id, Title: "Course " + id,
			Instructor: datatypes.NewJSONType(types.Instructor{
				Name: name, Rating: rating, Entrepreneurship: entrepreneurship,
			}),
		}
	}
	courses := []*types.Course{
		mk("CS3102", "A. Rivera", floatPtr(4.7), false),
		mk("ECON2010", "B. Shaw", floatPtr(3.5), true),
		mk("CS4750", "A. Rivera", floatPtr(4.7), false),
		{ID: "PHIL1010", Title: "Introduction to Ethics"}, // no instructor on record
	}

	got := DistinctProfessors(courses)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 distinct professors (unnamed rows skipped)", len(got))
	}
	if got[0].Name != "A. Rivera" || got[1].Name != "B. Shaw" {
		t.Fatalf("order = [%s %s], want sorted by name", got[0].Name, got[1].Name)
	}
	if !reflect.DeepEqual(got[0].Courses, []string{"CS3102", "CS4750"}) {
		t.Fatalf("Courses = %v, want both sections in id order", got[0].Courses)
	}
	if !got[1].Entrepreneurship {
		t.Fatal("entrepreneurship flag lost in aggregation")
	}
	if got[0].Rating == nil || *got[0].Rating != 4.7 {
		t.Fatalf("Rating = %v, want 4.7 carried over", got[0].Rating)
	}
}

func TestDistinctProfessors_Empty(t *testing.T) {
	if got := DistinctProfessors(nil); len(got) != 0 {
		t.Fatalf("DistinctProfessors(nil) = %v, want empty", got)
	}
}
