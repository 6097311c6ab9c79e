package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natbtree/config"
	"natbtree/diagram"
)

func run(t *testing.T, settings Settings, input string) (*Cli, string) {
	t.Helper()
	var out bytes.Buffer
	c := NewCli(bufio.NewScanner(strings.NewReader(input)), &out, settings, zerolog.Nop())
	require.NoError(t, c.Start())
	return c, out.String()
}

func TestIntegerScenario(t *testing.T) {
	c, out := run(t, Settings{Mode: config.KeyModeInt}, "1\n2\n3\n4\n")
	assert.Contains(t, out, "[1 2 3]\n")
	assert.Contains(t, out, "[3]\n  [1 2]\n  [4]\n")
	assert.Equal(t, "[[1 2] 3 [4]]", c.ints.String())
	assert.Equal(t, 2, c.active().height())
}

func TestIntegerModeRejectsText(t *testing.T) {
	c, out := run(t, Settings{Mode: config.KeyModeInt}, "5\nabc\n")
	assert.Contains(t, out, `Cannot insert "abc": key is not an integer`)
	assert.Equal(t, []string{"5"}, c.active().keys())
	assert.False(t, c.textMode)
}

func TestAutoModeFallsBackToText(t *testing.T) {
	c, out := run(t, Settings{Mode: config.KeyModeAuto}, "10\n2\nپ\nب\n")
	assert.Contains(t, out, "Switched to text keys.")
	assert.True(t, c.textMode)
	// Persian letters rank before every untabulated rune, digits included.
	assert.Equal(t, []string{"ب", "پ", "2", "10"}, c.active().keys())
	assert.Equal(t, 0, c.ints.Len())
}

func TestTextScenario(t *testing.T) {
	c, out := run(t, Settings{Mode: config.KeyModeText}, "ت\nپ\nب\n")
	assert.Contains(t, out, "[ب پ ت]")
	assert.Equal(t, []string{"ب", "پ", "ت"}, c.active().keys())
}

func TestBlankLinesIgnored(t *testing.T) {
	c, _ := run(t, Settings{}, "\n   \n\t\n")
	assert.Equal(t, 0, c.active().len())
}

func TestDuplicateReported(t *testing.T) {
	c, out := run(t, Settings{Mode: config.KeyModeText}, "علی\nعلی\n")
	assert.Contains(t, out, "Key علی already present.")
	assert.Equal(t, 1, c.active().len())
}

func TestInsertCommand(t *testing.T) {
	c, _ := run(t, Settings{Mode: config.KeyModeText}, `insert "علی رضا" exit 'a b'`+"\nkeys\n")
	assert.Equal(t, []string{"علی رضا", "a b", "exit"}, c.active().keys())

	_, out := run(t, Settings{}, "insert\n")
	assert.Contains(t, out, "Usage: INSERT <key>...")

	_, out = run(t, Settings{}, `insert "unterminated`+"\n")
	assert.Contains(t, out, "Cannot parse keys")
}

func TestExitStopsReading(t *testing.T) {
	c, _ := run(t, Settings{}, "1\nEXIT\n2\n")
	assert.Equal(t, []string{"1"}, c.active().keys())
}

func TestStatsAndKeys(t *testing.T) {
	_, out := run(t, Settings{}, "3\n1\n2\n4\nstats\nKEYS\n")
	assert.Contains(t, out, "keys: 4  height: 2  mode: int")
	assert.Contains(t, out, "1 2 3 4\n")
}

func TestDrawAndDirection(t *testing.T) {
	input := "insert آ ب پ ت ث ج چ\ndir rtl\ndraw\ndir ltr\ndraw\ndir up\n"
	_, out := run(t, Settings{Mode: config.KeyModeText}, input)
	assert.Contains(t, out, "Direction: rtl")
	assert.Contains(t, out, "ج - پ")
	assert.Contains(t, out, "Direction: ltr")
	assert.Contains(t, out, "پ - ج")
	assert.Contains(t, out, "Usage: DIR <ltr|rtl|auto>")
}

func TestDrawEmpty(t *testing.T) {
	_, out := run(t, Settings{Diagram: diagram.Options{Direction: diagram.Auto}}, "draw\n")
	assert.Contains(t, out, "(empty tree)")
}

func TestDrawAfterInsert(t *testing.T) {
	_, out := run(t, Settings{Draw: true}, "insert 1 2 3 4\n")
	assert.Contains(t, out, "< 3")
	assert.Contains(t, out, "> 3")
}

func TestPrompt(t *testing.T) {
	_, out := run(t, Settings{Prompt: true}, "1\n")
	assert.Equal(t, 2, strings.Count(out, "\n> "))
}

func TestCommandWordsAreReserved(t *testing.T) {
	c, out := run(t, Settings{Mode: config.KeyModeText}, "help\nkeys\nstats\ninsert keys stats\n")
	assert.Contains(t, out, "Command words (INSERT ADD PRINT DUMP DRAW KEYS STATS DIR HELP EXIT QUIT)")
	assert.Equal(t, []string{"keys", "stats"}, c.active().keys())
}

func TestKeysAreTrimmed(t *testing.T) {
	c, _ := run(t, Settings{Mode: config.KeyModeText}, "  ب  \nب\n\tپ\n")
	assert.Equal(t, []string{"ب", "پ"}, c.active().keys())
	assert.Equal(t, 2, c.active().len())
}

func TestIntegerKeysOutOfRangeAreText(t *testing.T) {
	c, _ := run(t, Settings{Mode: config.KeyModeAuto}, "5\n99999999999999999999\n")
	assert.True(t, c.textMode)
	assert.Equal(t, []string{"5", "99999999999999999999"}, c.active().keys())
}
