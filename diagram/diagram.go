/*
Package diagram draws a tree snapshot as nested boxes in the terminal.

Every node is a bordered box holding its keys. Children hang below their parent,
side by side, each topped with the label of the key range it covers.
*/
package diagram

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"natbtree/btree"
)

const childGap = 2

type Options struct {
	Direction Direction
	// Mirror lays children out right to left, smallest keys on the right.
	Mirror bool
	// Color enables foreground colors; borders are drawn either way.
	Color bool
}

type styles struct {
	node  lipgloss.Style
	key   lipgloss.Style
	label lipgloss.Style
	edge  lipgloss.Style
}

func newStyles(color bool) styles {
	s := styles{
		node:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		key:   lipgloss.NewStyle(),
		label: lipgloss.NewStyle(),
		edge:  lipgloss.NewStyle(),
	}
	if color {
		s.node = s.node.BorderForeground(lipgloss.Color("#4589ff"))
		s.key = s.key.Foreground(lipgloss.Color("#f4f4f4")).Bold(true)
		s.label = s.label.Foreground(lipgloss.Color("#ff832b"))
		s.edge = s.edge.Foreground(lipgloss.Color("#8d8d8d"))
	}
	return s
}

// Render draws the snapshot. An empty tree renders as "".
func Render[K any](s *btree.Snapshot[K], opts Options) string {
	if len(s.Root.Keys) == 0 {
		return ""
	}
	r := renderer[K]{opts: opts, styles: newStyles(opts.Color)}
	return r.node(s.Root, "")
}

type renderer[K any] struct {
	opts   Options
	styles styles
}

func (r renderer[K]) node(v btree.NodeView[K], label string) string {
	keys := formatKeys(v.Keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = r.styles.key.Render(k)
	}
	box := r.styles.node.Render(strings.Join(parts, " "))

	if label != "" {
		box = lipgloss.JoinVertical(lipgloss.Center,
			r.styles.label.Render(label),
			r.styles.edge.Render("│"),
			box,
		)
	}
	if v.IsLeaf() {
		return box
	}

	children := make([]string, 0, 2*len(v.Children))
	for i, child := range v.Children {
		if i > 0 {
			children = append(children, strings.Repeat(" ", childGap))
		}
		children = append(children, r.node(child, EdgeLabel(keys, i, r.opts.Direction)))
	}
	if r.opts.Mirror {
		slices.Reverse(children)
	}

	return lipgloss.JoinVertical(lipgloss.Center, box, lipgloss.JoinHorizontal(lipgloss.Top, children...))
}

func formatKeys[K any](keys []K) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprint(k)
	}
	return out
}

// Labels returns the edge label of every child of v, in child order.
func Labels[K any](v btree.NodeView[K], dir Direction) []string {
	if v.IsLeaf() {
		return nil
	}
	keys := formatKeys(v.Keys)
	labels := make([]string, len(v.Children))
	for i := range v.Children {
		labels[i] = EdgeLabel(keys, i, dir)
	}
	return labels
}
