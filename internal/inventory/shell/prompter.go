// Package shell implements the interactive inventory menu: command parsing,
// per-command handlers and the read-dispatch loop.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter writes a label to out and reads one line from in.
// It serves both the terminal and scripted input in tests.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter over in and out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Prompt prints label and returns the next line without its line ending.
// A final line without a newline is returned as is; io.EOF is returned only when nothing is left.
func (p *LinePrompter) Prompt(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
