// Package render exports a board's chain structure as Graphviz diagrams.
//
// The chain relation (which block hangs under which) is the part of board
// state that's hard to read from raw coordinates; rendering it as a directed
// graph makes debug dumps reviewable at a glance.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/snapdock/pkg/boardfile"
)

// Options configures chain diagram rendering.
type Options struct {
	// Detailed includes position and size in node labels.
	// When false, only the block ID is shown.
	Detailed bool
}

// ToDOT converts a board document to Graphviz DOT format. Each block is a
// node; each chain link is an edge from the block above to the block below,
// so chains read top-to-bottom like they do on the board. A link to a block
// that isn't in the document is skipped, matching how the core treats
// dangling references.
func ToDOT(doc boardfile.Document, opts Options) string {
	known := make(map[string]bool, len(doc.Blocks))
	for _, blk := range doc.Blocks {
		known[blk.ID] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph chains {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("\n")

	for _, blk := range doc.Blocks {
		attrs := fmtAttrs(blk, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", blk.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, blk := range doc.Blocks {
		if blk.Next != "" && known[blk.Next] {
			fmt.Fprintf(&buf, "  %q -> %q;\n", blk.ID, blk.Next)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(blk boardfile.BlockRecord, detailed bool) []string {
	label := blk.ID
	if detailed {
		label = fmt.Sprintf("%s\npos: (%.0f, %.0f)\nsize: %.0fx%.0f",
			blk.ID, blk.X, blk.Y, blk.Width, blk.Height)
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if blk.Color != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", blk.Color), "fontcolor=white")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
