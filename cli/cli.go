package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/shlex"
	"github.com/rs/zerolog"

	"natbtree/btree"
	"natbtree/config"
	"natbtree/diagram"
	"natbtree/natural"
)

var ErrNotInteger = errors.New("key is not an integer")

type Settings struct {
	Mode    config.KeyMode
	Diagram diagram.Options
	// Prompt prints "> " before every line; off when stdin is not a terminal.
	Prompt bool
	// Color enables the colored dump and prompt.
	Color bool
	// Draw prints the box diagram after every insertion, not only the dump.
	Draw bool
}

/*
Cli reads one line at a time. A line starting with a command word runs that command,
any other non-blank line is inserted as a single key and the tree is printed again.
*/
type Cli struct {
	scanner  *bufio.Scanner
	out      io.Writer
	log      zerolog.Logger
	settings Settings

	ints     *btree.Btree[int]
	texts    *btree.Btree[string]
	textMode bool
}

func NewCli(s *bufio.Scanner, out io.Writer, settings Settings, log zerolog.Logger) *Cli {
	if settings.Mode == "" {
		settings.Mode = config.KeyModeAuto
	}
	return &Cli{
		scanner:  s,
		out:      out,
		log:      log,
		settings: settings,
		ints:     btree.NewOrdered[int](),
		texts:    btree.New(natural.Compare),
		textMode: settings.Mode == config.KeyModeText,
	}
}

// Start runs the loop until EXIT or end of input.
func (c *Cli) Start() error {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if done := c.processInput(c.scanner.Text()); done {
			return nil
		}
		c.printPrompt()
	}
	return c.scanner.Err()
}

func (c *Cli) printHelp() {
	fmt.Fprintf(c.out, `
Order-4 B-Tree CLI (keys: %s)

Type a key and press enter to insert it. Integers sort by value,
Persian text by the alphabet, anything else after Persian letters.

Available Commands:
  INSERT <key>...       Insert keys; quote keys that contain spaces
  PRINT                 Print the tree, one node per line
  DRAW                  Draw the tree with range labels
  KEYS                  List all keys in order
  STATS                 Show key count, height and key mode
  DIR <ltr|rtl|auto>    Set how range labels are written
  HELP                  Show this message
  EXIT                  Terminate this session

Command words (INSERT ADD PRINT DUMP DRAW KEYS STATS DIR HELP EXIT QUIT)
are reserved at the start of a line; use INSERT to store them as keys.
Leading and trailing spaces are trimmed from keys.
`, c.settings.Mode)
}

func (c *Cli) printPrompt() {
	if !c.settings.Prompt {
		return
	}
	if c.settings.Color {
		color.New(color.FgHiBlue).Fprint(c.out, "> ")
		return
	}
	fmt.Fprint(c.out, "> ")
}

func (c *Cli) active() keyspace {
	if c.textMode {
		return space[string]{c.texts}
	}
	return space[int]{c.ints}
}

func (c *Cli) processInput(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	word, rest, _ := strings.Cut(line, " ")
	switch strings.ToLower(word) {
	default:
		c.processInsert([]string{line})
	case "insert", "add":
		c.processInsertCommand(rest)
	case "print", "dump":
		fmt.Fprintln(c.out, c.active().dump(!c.settings.Color))
	case "draw":
		c.printDiagram()
	case "keys":
		fmt.Fprintln(c.out, strings.Join(c.active().keys(), " "))
	case "stats":
		ks := c.active()
		fmt.Fprintf(c.out, "keys: %d  height: %d  mode: %s\n", ks.len(), ks.height(), c.modeName())
	case "dir":
		c.processDirCommand(strings.TrimSpace(rest))
	case "help":
		c.printHelp()
	case "exit", "quit":
		return true
	}
	return false
}

func (c *Cli) processInsertCommand(rest string) {
	keys, err := shlex.Split(rest)
	if err != nil {
		fmt.Fprintf(c.out, "Cannot parse keys: %v\n", err)
		return
	}
	if len(keys) == 0 {
		fmt.Fprintln(c.out, "Usage: INSERT <key>...")
		return
	}
	c.processInsert(keys)
}

func (c *Cli) processInsert(keys []string) {
	changed := false
	for _, raw := range keys {
		inserted, err := c.insert(raw)
		if err != nil {
			fmt.Fprintf(c.out, "Cannot insert %q: %v\n", raw, err)
			continue
		}
		if !inserted {
			fmt.Fprintf(c.out, "Key %s already present.\n", raw)
			continue
		}
		changed = true
	}
	if !changed {
		return
	}
	ks := c.active()
	fmt.Fprintln(c.out, ks.dump(!c.settings.Color))
	if c.settings.Draw {
		c.printDiagram()
	}
}

/*
insert routes raw to the tree of the current key mode. In auto mode the first key
that is not an integer moves every integer key over to the text tree; natural order
compares integer strings by value, so the tree keeps the same order.
*/
func (c *Cli) insert(raw string) (bool, error) {
	if c.textMode {
		return c.insertText(raw), nil
	}

	if natural.IsInteger(raw) {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return false, err
		}
		inserted := c.ints.Insert(n)
		c.log.Debug().Int("key", n).Bool("inserted", inserted).Int("height", c.ints.Height()).Msg("insert")
		return inserted, nil
	}
	if c.settings.Mode == config.KeyModeInt {
		return false, ErrNotInteger
	}

	c.switchToText()
	return c.insertText(raw), nil
}

func (c *Cli) insertText(raw string) bool {
	inserted := c.texts.Insert(raw)
	c.log.Debug().Str("key", raw).Bool("inserted", inserted).Int("height", c.texts.Height()).Msg("insert")
	return inserted
}

func (c *Cli) switchToText() {
	moved := 0
	c.ints.Ascend(func(k int) bool {
		c.texts.Insert(strconv.Itoa(k))
		moved++
		return true
	})
	c.ints = btree.NewOrdered[int]()
	c.textMode = true
	c.log.Info().Int("moved", moved).Msg("switched to text keys")
	fmt.Fprintln(c.out, "Switched to text keys.")
}

func (c *Cli) processDirCommand(arg string) {
	if arg == "" {
		fmt.Fprintf(c.out, "Direction: %s\n", c.settings.Diagram.Direction)
		return
	}
	dir, err := diagram.ParseDirection(arg)
	if err != nil {
		fmt.Fprintln(c.out, "Usage: DIR <ltr|rtl|auto>")
		return
	}
	c.settings.Diagram.Direction = dir
	fmt.Fprintf(c.out, "Direction: %s\n", dir)
}

func (c *Cli) printDiagram() {
	out := c.active().draw(c.settings.Diagram)
	if out == "" {
		fmt.Fprintln(c.out, "(empty tree)")
		return
	}
	fmt.Fprintln(c.out, out)
}

func (c *Cli) modeName() string {
	if c.textMode {
		return string(config.KeyModeText)
	}
	return string(config.KeyModeInt)
}
