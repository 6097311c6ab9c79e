package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"natbtree/btree"
	"natbtree/logging"
	"natbtree/natural"
	"natbtree/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr string
		seed int
	)
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tree over HTTP with live updates on /ws",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.HTTPAddress
			}
			dir, err := a.cfg.ParsedDirection()
			if err != nil {
				return err
			}

			tree := btree.New(natural.Compare)
			if seed > 0 {
				seedWords(tree, seed)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(tree, dir, logging.Module(a.log, "server"))
			return srv.ListenAndServe(ctx, addr)
		},
	}
	c.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	c.Flags().IntVar(&seed, "seed", 0, "prefill the tree with this many go-faker words")
	return c
}
