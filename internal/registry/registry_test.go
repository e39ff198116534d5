package registry

import (
	"testing"

	"github.com/vovakirdan/tui-puzzle/internal/core"
)

type stubGame struct{ id, title string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return g.title }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func stub(id, title string) Factory {
	return func() Game { return stubGame{id: id, title: title} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_create", stub("test_create", "Created"))

	if !Exists("test_create") {
		t.Fatal("expected test_create to exist")
	}
	g, err := Create("test_create")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Created" {
		t.Errorf("Title = %q, want Created", g.Title())
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", stub("test_dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test_dup", stub("test_dup", "Dup again"))
}

func TestReplaceUpdatesTitle(t *testing.T) {
	Register("test_replace", stub("test_replace", "Old"))
	Replace("test_replace", stub("test_replace", "New"))

	for _, info := range List() {
		if info.ID == "test_replace" && info.Title != "New" {
			t.Errorf("Title = %q, want New", info.Title)
		}
	}
}

func TestListSorted(t *testing.T) {
	Register("test_b", stub("test_b", "B"))
	Register("test_a", stub("test_a", "A"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
