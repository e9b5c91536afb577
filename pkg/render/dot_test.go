package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/snapdock/pkg/boardfile"
)

func testDoc() boardfile.Document {
	return boardfile.Document{
		Tolerance: 20,
		Blocks: []boardfile.BlockRecord{
			{ID: "head", X: 10, Y: 20, Width: 200, Height: 50, Color: "steelblue", Next: "tail"},
			{ID: "tail", X: 10, Y: 70, Width: 200, Height: 50, Color: "seagreen"},
			{ID: "solo", X: 400, Y: 300, Width: 200, Height: 50},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testDoc(), Options{})

	for _, want := range []string{
		"digraph chains {",
		"rankdir=TB",
		`"head" [label="head", fillcolor="steelblue", fontcolor=white];`,
		`"solo" [label="solo"];`,
		`"head" -> "tail";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("output missing %q\n%s", want, dot)
		}
	}

	if strings.Contains(dot, `"solo" ->`) {
		t.Error("unlinked block got an edge")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testDoc(), Options{Detailed: true})

	if !strings.Contains(dot, "pos: (10, 20)") {
		t.Errorf("detailed output missing position label\n%s", dot)
	}
	if !strings.Contains(dot, "size: 200x50") {
		t.Errorf("detailed output missing size label\n%s", dot)
	}
}

func TestToDOTDanglingLink(t *testing.T) {
	doc := boardfile.Document{
		Blocks: []boardfile.BlockRecord{
			{ID: "a", Width: 100, Height: 50, Next: "vanished"},
		},
	}
	dot := ToDOT(doc, Options{})
	if strings.Contains(dot, "->") {
		t.Errorf("dangling link produced an edge\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(boardfile.Document{}, Options{})
	if !strings.HasPrefix(dot, "digraph chains {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty document did not produce a well-formed graph\n%s", dot)
	}
}
