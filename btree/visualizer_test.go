package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"natbtree/natural"
)

func TestVisualize(t *testing.T) {
	tree := NewOrdered[int]()
	v := &Visualizer[int]{Tree: tree, Plain: true}
	assert.Equal(t, "[]", v.Visualize())

	for k := 1; k <= 4; k++ {
		tree.Insert(k)
	}
	assert.Equal(t, "[3]\n  [1 2]\n  [4]", v.Visualize())
}

func TestVisualizeDeep(t *testing.T) {
	tree := NewOrdered[int]()
	for k := 1; k <= 13; k++ {
		tree.Insert(k)
	}
	v := &Visualizer[int]{Tree: tree, Plain: true}
	expected := "[9]\n" +
		"  [3 6]\n" +
		"    [1 2]\n" +
		"    [4 5]\n" +
		"    [7 8]\n" +
		"  [12]\n" +
		"    [10 11]\n" +
		"    [13]"
	assert.Equal(t, expected, v.Visualize())
}

func TestVisualizePersian(t *testing.T) {
	tree := New(natural.Compare)
	for _, k := range []string{"ت", "پ", "ب"} {
		tree.Insert(k)
	}
	v := &Visualizer[string]{Tree: tree, Plain: true}
	assert.Equal(t, "[ب پ ت]", v.Visualize())
}
