package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestProgress_Done(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, "Counting lines")

	p.Start(3)
	p.Done("a.txt")
	p.Done("b.txt")
	p.Done("c.txt")
	p.Finish()

	out := buf.String()
	for _, want := range []string{
		"\rCounting lines: 0/3 files",
		"\rCounting lines: 1/3 files",
		"\rCounting lines: 3/3 files\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in progress output: %q", want, out)
		}
	}
}

func TestProgress_StartResets(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, "Counting lines")

	p.Start(1)
	p.Done("a.txt")
	buf.Reset()

	p.Start(2)
	if got := buf.String(); got != "\rCounting lines: 0/2 files" {
		t.Errorf("unexpected output after restart: %q", got)
	}
}

func TestIsTerminal_File(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "progress")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
}
