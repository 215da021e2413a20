package catalog

import "testing"

func TestQuestions_StableIDOrder(t *testing.T) {
	qs := Questions()
	if len(qs) != 12 {
		t.Fatalf("len(Questions()) = %d, want 12", len(qs))
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Errorf("question at index %d has ID %d, want %d", i, q.ID, i+1)
		}
		if q.Text == "" {
			t.Errorf("question %d has empty text", q.ID)
		}
	}
}

func TestQuestions_EveryCategoryRepresented(t *testing.T) {
	counts := make(map[Category]int)
	for _, q := range Questions() {
		counts[q.Category]++
	}

	for _, c := range Categories() {
		if counts[c] == 0 {
			t.Errorf("category %q has no questions", c)
		}
	}
	if len(counts) != len(Categories()) {
		t.Errorf("questions use %d categories, want %d", len(counts), len(Categories()))
	}
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID(1)
	if !ok {
		t.Fatal("QuestionByID(1) not found")
	}
	if q.Category != CategoryDelivery {
		t.Errorf("question 1 category = %q, want %q", q.Category, CategoryDelivery)
	}

	if _, ok := QuestionByID(13); ok {
		t.Error("QuestionByID(13) should not be found")
	}
	if _, ok := QuestionByID(0); ok {
		t.Error("QuestionByID(0) should not be found")
	}
}

func TestQuestionsInCategory_PartitionsCatalog(t *testing.T) {
	total := 0
	for _, c := range Categories() {
		total += len(QuestionsInCategory(c))
	}
	if total != Count() {
		t.Errorf("category partitions cover %d questions, want %d", total, Count())
	}
}

func TestRatingScale(t *testing.T) {
	scale := RatingScale()
	if len(scale) != 5 {
		t.Fatalf("len(RatingScale()) = %d, want 5", len(scale))
	}
	for i, level := range scale {
		if level.Score != i+1 {
			t.Errorf("level at index %d has score %d, want %d", i, level.Score, i+1)
		}
		if level.Label == "" || level.Description == "" {
			t.Errorf("level %d missing label or description", level.Score)
		}
	}
}

func TestCategoryDisplayName(t *testing.T) {
	for _, c := range Categories() {
		if c.DisplayName() == "" || c.DisplayName() == string(c) {
			t.Errorf("category %q has no display name", c)
		}
		if c.Description() == "" {
			t.Errorf("category %q has no description", c)
		}
	}
}
