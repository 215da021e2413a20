package welcome

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"agilecheck/internal/assessment"
	"agilecheck/internal/router"
	"agilecheck/internal/screen"
	"agilecheck/internal/screens/assess"
)

func testStore(t *testing.T) *assessment.Store {
	t.Helper()
	store, err := assessment.NewStore(nil, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestEnterStartsAssessmentWithTeamName(t *testing.T) {
	store := testStore(t)
	w := New(store)
	w.input.Model.SetValue("  Platform Crew  ")

	var scr screen.Screen = w
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after pressing enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*assess.AssessScreen); !ok {
		t.Errorf("expected assess screen, got %T", msg.Screen)
	}
	if got := store.Current().TeamName; got != "Platform Crew" {
		t.Errorf("TeamName = %q, want trimmed %q", got, "Platform Crew")
	}
}

func TestTabTogglesFocus(t *testing.T) {
	w := New(testStore(t))
	if !w.inputFocus {
		t.Fatal("expected input focused initially")
	}

	var scr screen.Screen = w
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	ws := scr.(*WelcomeScreen)
	if ws.inputFocus {
		t.Error("expected focus to move to the menu")
	}

	scr, _ = ws.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	ws = scr.(*WelcomeScreen)
	if !ws.inputFocus {
		t.Error("expected focus to return to the input")
	}
}

func TestViewRenders(t *testing.T) {
	w := New(testStore(t))
	if w.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}
