package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/kickoff/internal/core"
	"github.com/vovakirdan/kickoff/internal/input"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{} }
func (s *stubGame) Controls() *input.Aggregator { return nil }

func TestRegisterListCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return &stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") || !Exists("aa-stub") {
		t.Fatal("registered modes should exist")
	}
	if Exists("nope") {
		t.Error("unregistered mode should not exist")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "aa-stub" {
			found = true
			if info.Title != "Stub aa-stub" {
				t.Errorf("title = %q, want %q", info.Title, "Stub aa-stub")
			}
		}
	}
	if !found {
		t.Error("aa-stub missing from List")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID = %q, want zz-stub", g.ID())
	}
	other, _ := Create("zz-stub")
	if g == other {
		t.Error("Create should return a fresh instance each call")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("missing-mode")
	if err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if !strings.Contains(err.Error(), "missing-mode") {
		t.Errorf("error %q should name the mode", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
}
