// Package prompt implements the interactive selection, confirmation and text
// prompts used when the installer runs on a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"
)

// color helpers
var (
	colQuestion = color.New(color.FgGreen)
	colChoice   = color.New(color.FgCyan)
	colWarn     = color.Warn
)

// Prompter reads answers line by line from a single input stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a prompter bound to stdin/stdout.
func New() *Prompter {
	return NewWithStreams(os.Stdin, os.Stdout)
}

// NewWithStreams returns a prompter with explicit streams, used by tests.
func NewWithStreams(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// StdinIsTerminal reports whether stdin is attached to a terminal. Prompting
// a non-terminal stdin would hang, so callers fall back to silent mode.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Select shows a numbered list and returns the index of the chosen option.
func (p *Prompter) Select(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("no options to select from")
	}

	fmt.Fprintln(p.out, colQuestion.Sprint(label))
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %s %s\n", colChoice.Sprintf("%d)", i+1), opt)
	}

	for {
		fmt.Fprintf(p.out, "%s [1-%d]: ", colQuestion.Sprint("Enter choice"), len(options))
		line, err := p.in.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("reading selection: %w", err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 1 && choice <= len(options) {
			return choice - 1, nil
		}
		fmt.Fprintln(p.out, colWarn.Sprint("Invalid input."))
	}
}

// Confirm asks a yes/no question. Empty input counts as yes; read errors
// (like Ctrl+D) count as no.
func (p *Prompter) Confirm(format string, a ...any) bool {
	fullPrompt := fmt.Sprintf("%s [Y/n]: ", fmt.Sprintf(format, a...))

	for {
		fmt.Fprint(p.out, colQuestion.Sprint(fullPrompt))
		response, err := p.in.ReadString('\n')
		if err != nil {
			return false
		}
		response = strings.ToLower(strings.TrimSpace(response))

		if response == "y" || response == "yes" || response == "" {
			return true
		}
		if response == "n" || response == "no" {
			return false
		}
		fmt.Fprintln(p.out, colWarn.Sprint("Invalid input."))
	}
}

// Input asks for a free-text answer and returns the trimmed line.
func (p *Prompter) Input(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", colQuestion.Sprint(label))
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
