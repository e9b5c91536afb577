package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/snapdock/pkg/board"
	"github.com/matzehuels/snapdock/pkg/boardfile"
	"github.com/matzehuels/snapdock/pkg/geom"
	"github.com/matzehuels/snapdock/pkg/store"
)

// Terminal cells are not square, so board units map to cells anisotropically.
// A 200x50 block renders as 20x2 cells.
const (
	unitsPerCol = 10.0
	unitsPerRow = 25.0
)

// footerRows is the number of rows below the canvas (status + help).
const footerRows = 2

// blockPalette maps the named block colors to terminal colors. Unknown names
// fall back to gray rather than failing.
var blockPalette = map[string]lipgloss.Color{
	"indianred":    lipgloss.Color("167"),
	"steelblue":    lipgloss.Color("67"),
	"seagreen":     lipgloss.Color("29"),
	"goldenrod":    lipgloss.Color("178"),
	"mediumpurple": lipgloss.Color("104"),
	"white":        lipgloss.Color("255"),
	"gray":         lipgloss.Color("245"),
}

// =============================================================================
// BoardModel - Interactive board
// =============================================================================

// BoardModel is the bubbletea model for the interactive board. It translates
// terminal mouse events into surface coordinates, feeds them to the
// controller's three pointer entry points, and paints the block set with the
// dragged stack always on top.
type BoardModel struct {
	ctrl      *board.Controller
	cfg       Config
	snapshots store.Store

	width  int
	height int

	status    string
	showDebug bool
}

// NewBoardModel creates the interactive board model.
func NewBoardModel(ctrl *board.Controller, cfg Config, snapshots store.Store) BoardModel {
	return BoardModel{
		ctrl:      ctrl,
		cfg:       cfg,
		snapshots: snapshots,
		width:     80,
		height:    24,
		status:    "drag blocks with the mouse",
	}
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			b, err := m.cfg.NewBoard()
			if err != nil {
				m.status = "reset failed: " + err.Error()
				return m, nil
			}
			m.ctrl.Reset(b)
			m.status = "board reset"
		case "s":
			name := "board-" + time.Now().Format("20060102-150405")
			if err := m.snapshots.Save(context.Background(), name, boardfile.FromBoard(m.ctrl.Board())); err != nil {
				m.status = "save failed: " + err.Error()
			} else {
				m.status = "saved snapshot " + name
			}
		case "d":
			m.showDebug = !m.showDebug
		}

	case tea.MouseMsg:
		p := m.toSurface(msg.X, msg.Y)
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.ctrl.PointerDown(p.X, p.Y)
		case msg.Action == tea.MouseActionMotion:
			m.ctrl.PointerMove(p.X, p.Y)
		case msg.Action == tea.MouseActionRelease:
			m.ctrl.PointerUp()
		}
		m.ctrl.TakeRedraw() // bubbletea repaints after every Update

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// toSurface converts a terminal cell to the surface coordinate at its center.
func (m BoardModel) toSurface(col, row int) geom.Point {
	return geom.Point{
		X: (float64(col) + 0.5) * unitsPerCol,
		Y: (float64(row) + 0.5) * unitsPerRow,
	}
}

// =============================================================================
// Rendering
// =============================================================================

// cell is one canvas cell: a rune plus its display style inputs.
type cell struct {
	ch    rune
	color lipgloss.Color
	label bool
}

func (m BoardModel) View() string {
	rows := m.height - footerRows
	if rows < 4 {
		rows = 4
	}
	cols := m.width
	if cols < 20 {
		cols = 20
	}

	canvas := make([][]cell, rows)
	for r := range canvas {
		canvas[r] = make([]cell, cols)
		for c := range canvas[r] {
			canvas[r][c] = cell{ch: ' '}
		}
	}

	session := m.ctrl.Session()
	inCollision := make(map[string]bool)
	for _, col := range m.ctrl.Collisions() {
		inCollision[col.BlockID] = true
		inCollision[col.OtherID] = true
	}

	// Grounded blocks first, the dragged stack last so it paints on top.
	for _, blk := range m.ctrl.Board().Blocks() {
		if !session.InStack(blk.ID) {
			m.paintBlock(canvas, blk, inCollision[blk.ID])
		}
	}
	if session != nil {
		for _, id := range session.StackIDs {
			if blk, ok := m.ctrl.Board().Block(id); ok {
				m.paintBlock(canvas, blk, inCollision[blk.ID])
			}
		}
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(renderRow(row))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("drag: mouse  r: reset  s: save  d: debug  q: quit"))
	return b.String()
}

// paintBlock fills the block's cell rectangle and writes its ID into the
// middle row. Blocks involved in a collision render red regardless of their
// own color; the hovered block uses a lighter fill.
func (m BoardModel) paintBlock(canvas [][]cell, blk *board.Block, collides bool) {
	color, ok := blockPalette[blk.Color]
	if !ok {
		color = colorGray
	}
	if collides {
		color = colorRed
	}

	ch := '█'
	if blk.ID == m.ctrl.Hovered() {
		ch = '▓'
	}

	c0 := int(blk.X / unitsPerCol)
	c1 := int(blk.Rect().Right() / unitsPerCol)
	r0 := int(blk.Y / unitsPerRow)
	r1 := int(blk.Rect().Bottom() / unitsPerRow)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}

	for r := r0; r < r1; r++ {
		if r < 0 || r >= len(canvas) {
			continue
		}
		for c := c0; c < c1; c++ {
			if c < 0 || c >= len(canvas[r]) {
				continue
			}
			canvas[r][c] = cell{ch: ch, color: color}
		}
	}

	// ID label, centered on the middle row, clipped to the block.
	label := blk.ID
	if len(label) > c1-c0-2 {
		label = label[:max(0, c1-c0-2)]
	}
	lr := (r0 + r1 - 1) / 2
	lc := c0 + (c1-c0-len(label))/2
	if lr < 0 || lr >= len(canvas) {
		return
	}
	for i, ch := range label {
		c := lc + i
		if c >= 0 && c < len(canvas[lr]) {
			canvas[lr][c] = cell{ch: ch, color: color, label: true}
		}
	}
}

// renderRow styles a canvas row, grouping runs of identical style so the
// output stays compact.
func renderRow(row []cell) string {
	var b strings.Builder
	i := 0
	for i < len(row) {
		j := i
		for j < len(row) && row[j].color == row[i].color && row[j].label == row[i].label {
			j++
		}
		var run strings.Builder
		for _, c := range row[i:j] {
			run.WriteRune(c.ch)
		}
		style := lipgloss.NewStyle().Foreground(row[i].color)
		if row[i].label {
			style = style.Reverse(true)
		}
		b.WriteString(style.Render(run.String()))
		i = j
	}
	return b.String()
}

func (m BoardModel) statusLine() string {
	parts := []string{
		StyleValue.Render(fmt.Sprintf("%d blocks", m.ctrl.Board().Len())),
		StyleDim.Render(m.status),
	}
	if s := m.ctrl.Session(); s != nil {
		parts = append(parts, StyleWarning.Render(fmt.Sprintf("dragging %s (%d)", s.GrabbedID, len(s.StackIDs))))
	} else if h := m.ctrl.Hovered(); h != "" {
		parts = append(parts, StyleDim.Render("hover "+h))
	}
	if m.showDebug {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("collisions: %d", len(m.ctrl.Collisions()))))
		for _, col := range m.ctrl.Collisions() {
			parts = append(parts, StyleDim.Render(fmt.Sprintf("%s~%s(%s)", col.BlockID, col.OtherID, col.Side)))
		}
	}
	return strings.Join(parts, "  ")
}
