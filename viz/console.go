package viz

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/splay/topdown"
	"golang.org/x/term"
)

// Labeler produces a printable label for a link node, usually by
// recovering the record behind it. Clients of the typed façade will close
// over their element type:
//
//	label := func(n *splay.Node) string {
//	    return fmt.Sprintf("%d", byID.FindBy(...)) // or via Config.NodeOf inversion
//	}
type Labeler func(*topdown.Node) string

// ConsoleTree renders the shape of a splay tree to a console, one node
// per line, sideways (right subtree above, left subtree below), indented
// by depth and colored by depth.
type ConsoleTree struct {
	colors    []*color.Color
	linewidth int
}

// NewConsoleTree creates a renderer. colors may be nil, selecting a
// default palette. The line width is taken from the current terminal, if
// stdout is interactive.
func NewConsoleTree(colors []*color.Color) *ConsoleTree {
	ct := &ConsoleTree{
		colors:    colors,
		linewidth: lineWidthFromTerminal(),
	}
	if ct.colors == nil {
		ct.colors = makeDefaultPalette()
	}
	return ct
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgCyan),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
		color.New(color.FgRed),
	}
}

// Print renders tree to stdout.
func (ct *ConsoleTree) Print(tree *topdown.Tree, label Labeler) {
	ct.Fprint(os.Stdout, tree, label)
}

// Fprint renders tree to w.
//
// Every line is of the form indent + label; lines longer than the
// configured line width are truncated with an ellipsis.
func (ct *ConsoleTree) Fprint(w io.Writer, tree *topdown.Tree, label Labeler) {
	if tree == nil || tree.Root() == nil {
		fmt.Fprintln(w, "·")
		return
	}
	ct.fprintNode(w, tree.Root(), 0, label)
}

func (ct *ConsoleTree) fprintNode(w io.Writer, node *topdown.Node, depth int, label Labeler) {
	if node.Right() != nil {
		ct.fprintNode(w, node.Right(), depth+1, label)
	}
	line := strings.Repeat("    ", depth) + label(node)
	if len(line) > ct.linewidth && ct.linewidth > 1 {
		line = line[:ct.linewidth-1] + "…"
	}
	c := ct.colors[depth%len(ct.colors)]
	c.Fprint(w, line)
	fmt.Fprintln(w)
	if node.Left() != nil {
		ct.fprintNode(w, node.Left(), depth+1, label)
	}
}

// lineWidthFromTerminal checks wether stdout is a terminal, and if so
// reads the terminal's width for line truncation.
func lineWidthFromTerminal() int {
	linewidth := 65
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil && w > 10 {
			linewidth = w - 2
		}
	}
	tracer().P("format", "console").Debugf("setting line length to %d en", linewidth)
	return linewidth
}
