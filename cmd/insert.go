package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"natbtree/btree"
	"natbtree/config"
	"natbtree/diagram"
	"natbtree/natural"
)

type printFlags struct {
	keys   string
	dir    string
	draw   bool
	mirror bool
}

func newInsertCmd(a *app) *cobra.Command {
	var f printFlags
	c := &cobra.Command{
		Use:   "insert <key>...",
		Short: "Insert the given keys in order and print the resulting tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInsert(cmd.OutOrStdout(), args, f)
		},
	}
	c.Flags().StringVar(&f.keys, "keys", "", "key mode: int, text or auto (default from config)")
	c.Flags().StringVar(&f.dir, "dir", "", "range label direction: ltr, rtl or auto (default from config)")
	c.Flags().BoolVar(&f.draw, "draw", false, "also draw the box diagram")
	c.Flags().BoolVar(&f.mirror, "mirror", false, "lay out diagram children right to left")
	return c
}

func (a *app) runInsert(out io.Writer, args []string, f printFlags) error {
	mode, dir, err := a.modeAndDirection(f.keys, f.dir)
	if err != nil {
		return err
	}
	opts := diagram.Options{Direction: dir, Mirror: f.mirror || a.cfg.Mirror, Color: a.cfg.Color}

	ints, err := parseInts(args)
	switch {
	case err == nil && mode != config.KeyModeText:
		return printTree(out, btree.NewOrdered[int](), ints, f.draw, opts)
	case err != nil && mode == config.KeyModeInt:
		return err
	}
	return printTree(out, btree.New(natural.Compare), args, f.draw, opts)
}

func parseInts(args []string) ([]int, error) {
	ints := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("key %q is not an integer: %w", s, err)
		}
		ints[i] = n
	}
	return ints, nil
}

func printTree[K any](out io.Writer, tree *btree.Btree[K], keys []K, draw bool, opts diagram.Options) error {
	for _, k := range keys {
		tree.Insert(k)
	}
	v := &btree.Visualizer[K]{Tree: tree, Plain: !opts.Color}
	fmt.Fprintln(out, v.Visualize())
	if draw {
		fmt.Fprintln(out, diagram.Render(tree.Snapshot(), opts))
	}
	fmt.Fprintf(out, "keys: %d  height: %d\n", tree.Len(), tree.Height())
	return nil
}

func (a *app) modeAndDirection(keys, dir string) (config.KeyMode, diagram.Direction, error) {
	mode, err := a.keyMode(keys)
	if err != nil {
		return "", diagram.LTR, err
	}
	d, err := a.cfg.ParsedDirection()
	if dir != "" {
		d, err = diagram.ParseDirection(dir)
	}
	if err != nil {
		return "", diagram.LTR, err
	}
	return mode, d, nil
}
