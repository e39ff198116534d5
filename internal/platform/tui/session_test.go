package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-puzzle/internal/core"
	_ "github.com/vovakirdan/tui-puzzle/internal/games/imgpuzzle"
	"github.com/vovakirdan/tui-puzzle/internal/storage"
)

func newSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
	return NewSessionModel(store, cfg, "ann", log.New(io.Discard), NewScreenRenderer(nil))
}

func send(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "puzzle.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newSession(t, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenGame {
		t.Fatalf("screen = %v, want game", m.current)
	}
	if m.quitting {
		t.Fatal("starting a game must not end the session")
	}

	m = send(t, m, TickMsg{})
	if !strings.Contains(m.View(), "Image Puzzle 3x3") {
		t.Errorf("game view missing HUD:\n%s", m.View())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu {
		t.Fatalf("screen = %v, want menu", m.current)
	}
	if m.quitting {
		t.Error("going back must not end the session")
	}
}

func TestSessionScoreboardBack(t *testing.T) {
	m := newSession(t, openStore(t))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != screenScores {
		t.Fatalf("screen = %v, want scoreboard", m.current)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu || m.quitting {
		t.Fatalf("screen = %v quitting = %v, want menu", m.current, m.quitting)
	}
}

func TestSessionSaveUsesUserSlot(t *testing.T) {
	store := openStore(t)
	m := newSession(t, store)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runeKey("w"))

	entry, err := store.LoadState("ann/3x3")
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if entry.GameID != "3x3" || entry.Rows != 3 || entry.Cols != 3 {
		t.Errorf("entry = %+v", entry)
	}

	// The saved puzzle is listed and resumable from the saves screen.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.menu.items[0].Saved {
		t.Error("menu does not mark the saved grid")
	}
	m = send(t, m, runeKey("l"))
	if m.current != screenSaves {
		t.Fatalf("screen = %v, want saves", m.current)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenGame {
		t.Fatalf("screen = %v, want resumed game", m.current)
	}
	if m.game.slot != "ann/3x3" {
		t.Errorf("slot = %q", m.game.slot)
	}
}

func TestSessionRecordsRebuiltGrid(t *testing.T) {
	store := openStore(t)
	m := newSession(t, store)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runeKey("g"))
	m = send(t, m, TickMsg{})
	m = send(t, m, runeKey("w"))

	entry, err := store.LoadState("ann/3x3")
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if entry.GameID != "4x4" || entry.Rows != 4 || entry.Cols != 4 {
		t.Errorf("entry = %+v, want game 4x4", entry)
	}

	for i := 0; i < 16 && !m.game.gameState.GameOver; i++ {
		m = send(t, m, runeKey("t"))
		m = send(t, m, TickMsg{})
	}
	if !m.game.gameState.GameOver {
		t.Fatal("puzzle not solved by hints")
	}

	scores, err := store.TopScores("4x4", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("4x4 has %d scores, want 1", len(scores))
	}
	if scores, _ := store.TopScores("3x3", 10); len(scores) != 0 {
		t.Errorf("3x3 has %d scores, want 0", len(scores))
	}
}

func TestSessionQuit(t *testing.T) {
	m := newSession(t, nil)
	next, cmd := m.Update(runeKey("q"))
	if !next.(SessionModel).quitting {
		t.Error("expected session to quit")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestGameModelSaveWithoutStore(t *testing.T) {
	m := newSession(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runeKey("w"))
	if m.game.status != "No database, nothing saved" {
		t.Errorf("status = %q", m.game.status)
	}
}
