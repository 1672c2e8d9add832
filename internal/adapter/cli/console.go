package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/peterh/liner"
	"golang.org/x/term"
)

// Console is the interactive LineReader backed by liner, with history kept
// in a file between runs.
type Console struct {
	line        *liner.State
	historyFile string
}

func NewConsole(historyFile string) *Console {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	c := &Console{line: line, historyFile: historyFile}
	c.loadHistory()
	return c
}

func (c *Console) ReadLine(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves history and restores the terminal.
func (c *Console) Close() error {
	c.saveHistory()
	return c.line.Close()
}

func (c *Console) loadHistory() {
	if c.historyFile == "" {
		return
	}
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

func (c *Console) saveHistory() {
	if c.historyFile == "" {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// IsStdoutTTY reports whether output goes to a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// MarkdownRenderer renders replies with glamour. It falls back to the raw
// text when glamour fails.
func MarkdownRenderer(wordWrap int) Renderer {
	if wordWrap <= 0 {
		wordWrap = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return PlainRenderer
	}
	return func(text string) string {
		out, err := r.Render(text)
		if err != nil {
			return text
		}
		return strings.TrimRight(out, "\n") + "\n"
	}
}

// PlainRenderer leaves text untouched.
func PlainRenderer(text string) string { return text }
