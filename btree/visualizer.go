package btree

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const indent = "  "

// level colors repeat once a tree is deeper than the palette
var levelColors = []*color.Color{
	color.New(color.FgCyan, color.Bold),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
}

/*
Visualizer prints a depth-first dump of a tree: one line per node, each level indented
two more spaces than its parent, keys in brackets.

	[3]
	  [1 2]
	  [4]

Colors follow color.NoColor unless Plain is set.
*/
type Visualizer[K any] struct {
	Tree  *Btree[K]
	Plain bool
}

func (v *Visualizer[K]) Visualize() string {
	return v.VisualizeSnapshot(v.Tree.Snapshot())
}

// VisualizeSnapshot renders an already captured snapshot.
func (v *Visualizer[K]) VisualizeSnapshot(s *Snapshot[K]) string {
	var b strings.Builder
	s.Walk(func(n NodeView[K], depth int) {
		b.WriteString(strings.Repeat(indent, depth))
		b.WriteString(v.paint(depth, formatKeys(n.Keys)))
		b.WriteByte('\n')
	})
	return strings.TrimSuffix(b.String(), "\n")
}

func (v *Visualizer[K]) paint(depth int, s string) string {
	if v.Plain {
		return s
	}
	return levelColors[depth%len(levelColors)].Sprint(s)
}

func formatKeys[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
