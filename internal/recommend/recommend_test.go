package recommend

import (
	"testing"

	"agilecheck/internal/catalog"
	"agilecheck/internal/scoring"
)

func TestForCategory_AllCategoriesCovered(t *testing.T) {
	for _, c := range catalog.Categories() {
		recs := ForCategory(c)
		if len(recs) != 4 {
			t.Errorf("ForCategory(%s) returned %d recommendations, want 4", c, len(recs))
		}
	}
}

func TestNeedsImprovement_WeakestFirst(t *testing.T) {
	scores := []scoring.CategoryScore{
		{Category: catalog.CategoryDelivery, Score: 5, MaxScore: 10},      // 50%
		{Category: catalog.CategoryAdaptation, Score: 2, MaxScore: 10},    // 20%
		{Category: catalog.CategoryCollaboration, Score: 9, MaxScore: 15}, // 60%
		{Category: catalog.CategoryTechnical, Score: 5, MaxScore: 5},      // 100%
	}

	low := NeedsImprovement(scores)
	if len(low) != 2 {
		t.Fatalf("NeedsImprovement returned %d categories, want 2", len(low))
	}
	if low[0].Category != catalog.CategoryAdaptation {
		t.Errorf("weakest category = %s, want adaptation", low[0].Category)
	}
	if low[1].Category != catalog.CategoryDelivery {
		t.Errorf("second category = %s, want delivery", low[1].Category)
	}
}

func TestStrengths_StrongestFirst(t *testing.T) {
	scores := []scoring.CategoryScore{
		{Category: catalog.CategoryDelivery, Score: 8, MaxScore: 10},   // 80%
		{Category: catalog.CategoryTechnical, Score: 5, MaxScore: 5},   // 100%
		{Category: catalog.CategoryTeam, Score: 7, MaxScore: 10},       // 70%
		{Category: catalog.CategoryAdaptation, Score: 9, MaxScore: 10}, // 90%
	}

	high := Strengths(scores)
	if len(high) != 3 {
		t.Fatalf("Strengths returned %d categories, want 3", len(high))
	}
	want := []catalog.Category{
		catalog.CategoryTechnical,
		catalog.CategoryAdaptation,
		catalog.CategoryDelivery,
	}
	for i, c := range want {
		if high[i].Category != c {
			t.Errorf("strengths[%d] = %s, want %s", i, high[i].Category, c)
		}
	}
}

func TestBands_EmptyWhenMiddling(t *testing.T) {
	scores := []scoring.CategoryScore{
		{Category: catalog.CategoryDelivery, Score: 7, MaxScore: 10}, // 70%
	}

	if got := NeedsImprovement(scores); len(got) != 0 {
		t.Errorf("NeedsImprovement = %d entries, want 0", len(got))
	}
	if got := Strengths(scores); len(got) != 0 {
		t.Errorf("Strengths = %d entries, want 0", len(got))
	}
}
