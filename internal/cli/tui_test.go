package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/snapdock/pkg/board"
	"github.com/matzehuels/snapdock/pkg/store"
)

func testModel(t *testing.T) BoardModel {
	t.Helper()
	cfg := DefaultConfig()
	b, err := cfg.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return NewBoardModel(board.NewController(b), cfg, store.NewNullStore())
}

func TestToSurface(t *testing.T) {
	m := testModel(t)

	p := m.toSurface(0, 0)
	if p.X != unitsPerCol/2 || p.Y != unitsPerRow/2 {
		t.Errorf("cell (0,0) maps to %v, want cell center", p)
	}

	p = m.toSurface(10, 4)
	if p.X != 105 || p.Y != 112.5 {
		t.Errorf("cell (10,4) maps to %v, want (105, 112.5)", p)
	}
}

func TestMouseDragUpdatesController(t *testing.T) {
	m := testModel(t)

	// The first seed block spans (40,40)-(240,90): cell (6,2) centers at
	// (65, 62.5), inside it.
	press := tea.MouseMsg{X: 6, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	next, _ := m.Update(press)
	m = next.(BoardModel)

	if s := m.ctrl.Session(); s == nil {
		t.Fatal("no drag session after mouse press on a block")
	}

	move := tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionMotion}
	next, _ = m.Update(move)
	m = next.(BoardModel)

	release := tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionRelease}
	next, _ = m.Update(release)
	m = next.(BoardModel)

	if m.ctrl.Session() != nil {
		t.Error("session survived mouse release")
	}
}

func TestViewContainsBlocks(t *testing.T) {
	m := testModel(t)
	m.width = 100
	m.height = 30

	view := m.View()
	if !strings.Contains(view, "5 blocks") {
		t.Error("status line missing block count")
	}
	// Seed block IDs are painted as labels.
	if !strings.Contains(view, "steelblue") {
		t.Error("canvas missing block label")
	}
	if !strings.Contains(view, "q: quit") {
		t.Error("help line missing")
	}
}

func TestResetKey(t *testing.T) {
	m := testModel(t)

	// Drag a block away, then reset.
	m.ctrl.PointerDown(65, 62.5)
	m.ctrl.PointerMove(500, 500)
	m.ctrl.PointerUp()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(BoardModel)

	blk, ok := m.ctrl.Board().Block("indianred")
	if !ok {
		t.Fatal("seed block missing after reset")
	}
	if blk.X != 40 || blk.Y != 40 {
		t.Errorf("block at (%v, %v) after reset, want (40, 40)", blk.X, blk.Y)
	}
}
