package services

import (
	"reflect"
	"testing"

	"github.com/coursematch/coursematch-backend/internal/types"
)

func event(courseID, action string) *types.FeedbackEvent {
	return &types.FeedbackEvent{StudentID: "student_demo", CourseID: courseID, Action: action}
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	if got.TotalFeedback != 0 || len(got.CourseEngagement) != 0 || len(got.TopCourses) != 0 {
		t.Fatalf("Aggregate(nil) = %+v, want empty result", got)
	}
}

func TestAggregate_PerCourseCounts(t *testing.T) {
	events := []*types.FeedbackEvent{
		event("CS3102", types.FeedbackActionLike),
		event("CS3102", types.FeedbackActionLike),
		event("CS3102", types.FeedbackActionDislike),
		event("CS3102", types.FeedbackActionLike),
		event("ECON2010", types.FeedbackActionAddToCart),
	}

	got := Aggregate(events)
	want := EngagementAggregate{
		CourseID: "CS3102", Likes: 3, Dislikes: 1, CartAdds: 0, Total: 4, Sentiment: 50,
	}
	if got.CourseEngagement["CS3102"] != want {
		t.Fatalf("CourseEngagement[CS3102] = %+v, want %+v", got.CourseEngagement["CS3102"], want)
	}
	if got.TotalFeedback != 5 {
		t.Fatalf("TotalFeedback = %d, want 5", got.TotalFeedback)
	}
}

func TestAggregate_SumInvariant(t *testing.T) {
	events := []*types.FeedbackEvent{
		event("CS3102", types.FeedbackActionLike),
		event("CS3102", "bogus"),
		event("ECON2010", types.FeedbackActionDislike),
		event("ECON2010", types.FeedbackActionAddToCart),
		event("", types.FeedbackActionLike),
	}

	got := Aggregate(events)
	sum := 0
	for _, agg := range got.CourseEngagement {
		if agg.Total != agg.Likes+agg.Dislikes+agg.CartAdds {
			t.Fatalf("total %d != likes+dislikes+cartAdds for %s", agg.Total, agg.CourseID)
		}
		sum += agg.Total
	}
	if got.TotalFeedback != sum {
		t.Fatalf("TotalFeedback = %d, want sum of per-course totals %d", got.TotalFeedback, sum)
	}
	// Unknown actions and empty course ids are skipped entirely.
	if got.TotalFeedback != 3 {
		t.Fatalf("TotalFeedback = %d, want 3 counted events", got.TotalFeedback)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	events := []*types.FeedbackEvent{
		event("CS3102", types.FeedbackActionLike),
		event("ECON2010", types.FeedbackActionDislike),
		event("CS3102", types.FeedbackActionAddToCart),
	}

	first := Aggregate(events)
	second := Aggregate(events)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Aggregate not idempotent:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestAggregate_TopCoursesOrderAndLimit(t *testing.T) {
	var events []*types.FeedbackEvent
	// Twelve courses: CRS00 gets 1 event, CRS01 gets 2, and so on.
	for i := 0; i < 12; i++ {
		id := string(rune('A'+i)) + "RS1000"
		for j := 0; j <= i; j++ {
			events = append(events, event(id, types.FeedbackActionLike))
		}
	}
	// A tie at the top: same total as the busiest course, lower id.
	for j := 0; j < 12; j++ {
		events = append(events, event("AAAA1000", types.FeedbackActionAddToCart))
	}

	got := Aggregate(events)
	if len(got.TopCourses) != topCoursesLimit {
		t.Fatalf("len(TopCourses) = %d, want %d", len(got.TopCourses), topCoursesLimit)
	}
	if got.TopCourses[0].CourseID != "AAAA1000" {
		t.Fatalf("TopCourses[0] = %s, want AAAA1000 (ties break by course id)", got.TopCourses[0].CourseID)
	}
	for i := 1; i < len(got.TopCourses); i++ {
		prev, cur := got.TopCourses[i-1], got.TopCourses[i]
		if cur.Total > prev.Total {
			t.Fatalf("TopCourses not ordered by total: %+v before %+v", prev, cur)
		}
	}
}

func TestAggregate_SentimentBounds(t *testing.T) {
	cases := []struct {
		name    string
		actions []string
		want    int
	}{
		{name: "all_likes", actions: []string{"like", "like"}, want: 100},
		{name: "all_dislikes", actions: []string{"dislike", "dislike"}, want: -100},
		{name: "cart_only", actions: []string{"add_to_cart"}, want: 0},
		{name: "mixed", actions: []string{"like", "like", "like", "dislike"}, want: 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var events []*types.FeedbackEvent
			for _, a := range tc.actions {
				events = append(events, event("CS3102", a))
			}
			got := Aggregate(events).CourseEngagement["CS3102"].Sentiment
			if got != tc.want {
				t.Fatalf("sentiment = %d, want %d", got, tc.want)
			}
		})
	}
}
