package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return s, cmd
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, stubID, testRuntime())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Choice() != ChoiceScores {
		t.Errorf("choice = %v, want ChoiceScores", m.Choice())
	}
	if cmd == nil {
		t.Error("a choice should end the standalone menu")
	}
}

func TestMenuQuitAndTab(t *testing.T) {
	m := NewMenuModel(nil, stubID, testRuntime())
	next, _ := m.Update(runeKey('q'))
	if next.(MenuModel).Choice() != ChoiceQuit {
		t.Error("q should choose quit")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(MenuModel).Choice() != ChoiceScores {
		t.Error("tab should open the scores")
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(nil, stubID, testRuntime())
	view := m.View()
	for _, want := range []string{"S T U B", "Play", "High Scores", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, stubID, 60, 20)
	if !strings.Contains(m.View(), "Scores are unavailable") {
		t.Error("scoreboard should explain a missing database")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[time.Duration]string{
		0:                                     "0:00",
		1400 * time.Millisecond:               "0:01",
		65 * time.Second:                      "1:05",
		10*time.Minute + 500*time.Millisecond: "10:01",
	}
	for d, want := range tests {
		if got := FormatDuration(d); got != want {
			t.Errorf("FormatDuration(%v) = %q, want %q", d, got, want)
		}
	}
}

func TestSessionPlayAndReturn(t *testing.T) {
	s := NewSessionModel(nil, stubID, testRuntime(), Options{})

	s, cmd := updateSession(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame {
		t.Fatalf("screen = %v, want game", s.screen)
	}
	if cmd == nil {
		t.Error("starting a game should start the tick loop")
	}

	g, ok := s.gameModel.game.(*stubGame)
	if !ok {
		t.Fatalf("game is %T", s.gameModel.game)
	}
	g.dieAfter = 1

	s, _ = updateSession(t, s, TickMsg(time.Now()))
	if !s.gameModel.State().GameOver {
		t.Fatal("stub run should be over")
	}

	s, _ = updateSession(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Errorf("screen = %v, want menu after back", s.screen)
	}
	if s.menu.Choice() != ChoiceNone {
		t.Error("menu should be fresh after returning")
	}
}

func TestSessionScoresAndBack(t *testing.T) {
	s := NewSessionModel(nil, stubID, testRuntime(), Options{})

	s, _ = updateSession(t, s, tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatalf("screen = %v, want scores", s.screen)
	}

	s, _ = updateSession(t, s, runeKey('b'))
	if s.screen != screenMenu {
		t.Errorf("screen = %v, want menu", s.screen)
	}
	if s.quitting {
		t.Error("going back should not end the session")
	}
}

func TestSessionQuit(t *testing.T) {
	s := NewSessionModel(nil, stubID, testRuntime(), Options{})
	s, cmd := updateSession(t, s, runeKey('q'))
	if !s.quitting || cmd == nil {
		t.Error("q on the menu should end the session")
	}
	if s.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
