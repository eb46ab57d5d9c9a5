package registry

import (
	"testing"

	"github.com/Conner685/Comp2522TermProject/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndLookup(t *testing.T) {
	Register(GameInfo{ID: "stub_a", Key: 'Z'}, func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist")
	}
	info, ok := Lookup("stub_a")
	if !ok || info.Title != "Stub stub_a" {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}

	id, ok := ByKey('z')
	if !ok || id != "stub_a" {
		t.Errorf("ByKey('z') = %q, %v", id, ok)
	}
	if id, ok := ByKey('Z'); !ok || id != "stub_a" {
		t.Errorf("ByKey('Z') = %q, %v", id, ok)
	}

	g, err := Create("stub_a")
	if err != nil || g.ID() != "stub_a" {
		t.Errorf("Create() = %v, %v", g, err)
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestRegisterDuplicateKeyPanics(t *testing.T) {
	Register(GameInfo{ID: "stub_b", Key: 'y'}, func() Game { return &stubGame{id: "stub_b"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic for duplicate key")
		}
	}()
	Register(GameInfo{ID: "stub_c", Key: 'Y'}, func() Game { return &stubGame{id: "stub_c"} })
}

func TestListSorted(t *testing.T) {
	Register(GameInfo{ID: "stub_e"}, func() Game { return &stubGame{id: "stub_e"} })
	Register(GameInfo{ID: "stub_d"}, func() Game { return &stubGame{id: "stub_d"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}
