package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Progress renders a single-line file counter, rewritten in place.
type Progress struct {
	out       io.Writer
	label     string
	total     int
	completed int
}

// NewProgress creates a progress line prefixed with label.
func NewProgress(out io.Writer, label string) *Progress {
	return &Progress{out: out, label: label}
}

// Start resets the counter for total items and draws the first line.
func (p *Progress) Start(total int) {
	p.total = total
	p.completed = 0
	p.draw()
}

// Done marks one item as completed.
func (p *Progress) Done(string) {
	p.completed++
	p.draw()
}

// Finish ends the progress line.
func (p *Progress) Finish() {
	_, _ = fmt.Fprintln(p.out)
}

func (p *Progress) draw() {
	_, _ = fmt.Fprintf(p.out, "\r%s: %d/%d files", p.label, p.completed, p.total)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
