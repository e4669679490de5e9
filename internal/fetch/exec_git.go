package fetch

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strconv"
	"time"
)

// waitDelay bounds how long a cancelled clone may keep its output pipes open.
const waitDelay = 2 * time.Second

// ExecCloner clones with the git binary.
type ExecCloner struct {
	Bin string

	// Stdout and Stderr receive git's output; both default to os.Stderr so
	// clone chatter never mixes with the counts on stdout.
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecCloner returns an ExecCloner running bin, or "git" when bin is empty,
// that writes git's output to w.
func NewExecCloner(bin string, w io.Writer) *ExecCloner {
	return &ExecCloner{Bin: bin, Stdout: w, Stderr: w}
}

// Clone runs git until it exits or ctx is done, in which case git is killed.
func (c *ExecCloner) Clone(ctx context.Context, dest string, opts Options) error {
	bin := c.Bin
	if bin == "" {
		bin = "git"
	}

	cmd := exec.CommandContext(ctx, bin, cloneArgs(dest, opts)...)
	cmd.Stdout = writerOr(c.Stdout, os.Stderr)
	cmd.Stderr = writerOr(c.Stderr, os.Stderr)
	cmd.WaitDelay = waitDelay
	if err := cmd.Run(); err != nil {
		return &CloneError{URL: opts.URL, Branch: opts.Branch, Err: err}
	}
	return nil
}

// cloneArgs builds: clone --depth 1 [--branch <b>] -- <url> <dest>
func cloneArgs(dest string, opts Options) []string {
	args := []string{"clone", "--depth", strconv.Itoa(Depth)}
	if opts.Branch != "" {
		args = append(args, "--branch", opts.Branch)
	}
	return append(args, "--", opts.URL, dest)
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
