package registry

import (
	"strings"
	"sync"
	"testing"

	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
)

type fakeGame struct {
	id   string
	wide int
}

func (g *fakeGame) ID() string { return g.id }
func (g *fakeGame) Title() string { return "Fake " + g.id }
func (g *fakeGame) Description() string { return "a test mode" }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) State() core.GameState { return core.GameState{} }

func fakeFactory(id string) Factory {
	return func(cfg config.Config) Game {
		return &fakeGame{id: id, wide: cfg.Grid.Width}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-create", fakeFactory("test-create"))

	if !Exists("test-create") {
		t.Fatal("Exists() = false after Register")
	}

	cfg := config.Default()
	cfg.Grid.Width = 9
	g, err := Create("test-create", cfg)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "test-create" {
		t.Errorf("ID() = %q, want test-create", g.ID())
	}
	if fg := g.(*fakeGame); fg.wide != 9 {
		t.Errorf("factory got width %d, want 9", fg.wide)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-mode", config.Default())
	if err == nil {
		t.Fatal("Create() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "no-such-mode") {
		t.Errorf("error %q should name the mode", err)
	}
	if Exists("no-such-mode") {
		t.Error("Exists() = true for unknown mode")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", fakeFactory("test-dup"))

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on duplicate ID")
		}
	}()
	Register("test-dup", fakeFactory("test-dup"))
}

func TestListSortedWithMetadata(t *testing.T) {
	Register("test-list-b", fakeFactory("test-list-b"))
	Register("test-list-a", fakeFactory("test-list-a"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	var found bool
	for _, info := range list {
		if info.ID == "test-list-a" {
			found = true
			if info.Title != "Fake test-list-a" {
				t.Errorf("Title = %q", info.Title)
			}
			if info.Description != "a test mode" {
				t.Errorf("Description = %q", info.Description)
			}
		}
	}
	if !found {
		t.Error("List() missing test-list-a")
	}
}

func TestConcurrentCreate(t *testing.T) {
	Register("test-concurrent", fakeFactory("test-concurrent"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := Create("test-concurrent", config.Default()); err != nil {
				t.Errorf("Create() error = %v", err)
			}
		}()
	}
	wg.Wait()
}
