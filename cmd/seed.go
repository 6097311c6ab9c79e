package cmd

import (
	"io"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/cobra"

	"natbtree/btree"
	"natbtree/diagram"
	"natbtree/logging"
	"natbtree/natural"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		records int
		draw    bool
	)
	c := &cobra.Command{
		Use:   "seed",
		Short: "Fill a tree with random words created with go-faker and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if records <= 0 {
				records = a.cfg.SeedRecords
			}
			return a.runSeed(cmd.OutOrStdout(), records, draw)
		},
	}
	c.Flags().IntVar(&records, "records", 0, "number of words to insert (default from config)")
	c.Flags().BoolVar(&draw, "draw", false, "also draw the box diagram")
	return c
}

func (a *app) runSeed(out io.Writer, records int, draw bool) error {
	dir, err := a.cfg.ParsedDirection()
	if err != nil {
		return err
	}

	tree := btree.New(natural.Compare)
	words := seedWords(tree, records)
	log := logging.Module(a.log, "seed")
	log.Info().
		Int("words", len(words)).
		Int("stored", tree.Len()).
		Int("height", tree.Height()).
		Msg("seeded tree")

	return printTree(out, tree, nil, draw, diagram.Options{Direction: dir, Color: a.cfg.Color})
}

// seedWords inserts n faker words into tree and returns them in insertion order.
func seedWords(tree *btree.Btree[string], n int) []string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		w := faker.Word()
		tree.Insert(w)
		words = append(words, w)
	}
	return words
}
