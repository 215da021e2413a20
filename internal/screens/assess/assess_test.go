package assess

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"agilecheck/internal/assessment"
	"agilecheck/internal/catalog"
	"agilecheck/internal/router"
	"agilecheck/internal/screen"
	"agilecheck/internal/screens/results"
	"agilecheck/internal/ui/components"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testScreen(t *testing.T) (*AssessScreen, *assessment.Store) {
	t.Helper()
	store, err := assessment.NewStore(nil, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	store.StartNew("Team A")
	return New(store), store
}

func TestRatingRecordsAnswerAndAdvances(t *testing.T) {
	s, store := testScreen(t)

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('4'))
	if cmd == nil {
		t.Fatal("expected a command after pressing a rating key")
	}
	scr, _ = scr.Update(cmd())

	q := catalog.Questions()[0]
	if score, ok := store.AnswerFor(q.ID); !ok || score != 4 {
		t.Errorf("AnswerFor(%d) = %d, %v, want 4, true", q.ID, score, ok)
	}
	if store.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1 after rating", store.Cursor())
	}
	_ = scr
}

func TestArrowKeysMoveCursor(t *testing.T) {
	s, store := testScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('l'))
	if store.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1 after next", store.Cursor())
	}
	scr, _ = scr.Update(keyPress('h'))
	if store.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0 after prev", store.Cursor())
	}
	// Prev at the first question stays put.
	scr, _ = scr.Update(keyPress('h'))
	if store.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0 at lower bound", store.Cursor())
	}
	_ = scr
}

func TestNavigatorJump(t *testing.T) {
	s, store := testScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('n'))
	as := scr.(*AssessScreen)
	if !as.showNav {
		t.Fatal("expected navigator overlay to open")
	}

	// Move down a row (6 columns) and jump.
	scr, _ = as.Update(keyPress('j'))
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	as = scr.(*AssessScreen)

	if as.showNav {
		t.Error("expected navigator overlay to close after jump")
	}
	if store.Cursor() != 6 {
		t.Errorf("Cursor = %d, want 6 after navigator jump", store.Cursor())
	}
}

func TestCompleteGatedOnFullCompletion(t *testing.T) {
	s, store := testScreen(t)

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('c'))
	if cmd != nil {
		t.Fatal("expected no command before all questions are answered")
	}
	if store.Current().Complete {
		t.Fatal("assessment must not complete early")
	}

	for _, q := range catalog.Questions() {
		if err := store.SetAnswer(q.ID, 3); err != nil {
			t.Fatalf("SetAnswer(%d): %v", q.ID, err)
		}
	}

	scr, cmd = scr.Update(keyPress('c'))
	if cmd == nil {
		t.Fatal("expected a command once all questions are answered")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", msg.Screen)
	}
	if !store.Current().Complete {
		t.Error("expected assessment to be marked complete")
	}
	_ = scr
}

func TestRatingPreselectedForAnsweredQuestion(t *testing.T) {
	_, store := testScreen(t)

	q := catalog.Questions()[0]
	if err := store.SetAnswer(q.ID, 5); err != nil {
		t.Fatalf("SetAnswer: %v", err)
	}

	s := New(store)
	want := components.NewLikert(5)
	if s.likert.Chosen != want.Chosen {
		t.Errorf("likert.Chosen = %d, want %d", s.likert.Chosen, want.Chosen)
	}
}

func TestViewRenders(t *testing.T) {
	s, _ := testScreen(t)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
	s.showNav = true
	if s.View(80, 24) == "" {
		t.Error("expected non-empty navigator view")
	}
}
