package cmd

import (
	"bufio"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"natbtree/cli"
	"natbtree/config"
	"natbtree/logging"
)

type replFlags struct {
	keys   string
	dir    string
	draw   bool
	mirror bool
}

func newReplCmd(a *app) *cobra.Command {
	var f replFlags
	c := &cobra.Command{
		Use:   "repl",
		Short: "Read keys from standard input and print the tree after each one",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRepl(cmd, f)
		},
	}
	c.Flags().StringVar(&f.keys, "keys", "", "key mode: int, text or auto (default from config)")
	c.Flags().StringVar(&f.dir, "dir", "", "range label direction: ltr, rtl or auto (default from config)")
	c.Flags().BoolVar(&f.draw, "draw", false, "draw the box diagram after every insertion")
	c.Flags().BoolVar(&f.mirror, "mirror", false, "lay out diagram children right to left")
	return c
}

func (a *app) runRepl(cmd *cobra.Command, f replFlags) error {
	mode, dir, err := a.modeAndDirection(f.keys, f.dir)
	if err != nil {
		return err
	}

	settings := cli.Settings{
		Mode:   mode,
		Prompt: logging.IsTerminal(os.Stdin),
		Color:  !color.NoColor,
		Draw:   f.draw,
	}
	settings.Diagram.Direction = dir
	settings.Diagram.Color = settings.Color
	settings.Diagram.Mirror = f.mirror || a.cfg.Mirror

	in := bufio.NewScanner(cmd.InOrStdin())
	log := logging.Module(a.log, "repl")
	log.Debug().Str("mode", string(mode)).Str("dir", dir.String()).Msg("starting console")
	return cli.NewCli(in, cmd.OutOrStdout(), settings, log).Start()
}

func (a *app) keyMode(flag string) (config.KeyMode, error) {
	if flag == "" {
		return a.cfg.KeyMode, nil
	}
	return config.ParseKeyMode(flag)
}
