package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Depth is the history depth of every clone.
const Depth = 1

// Options describes what to clone.
type Options struct {
	URL string

	// Branch is checked out instead of the remote HEAD when set.
	Branch string
}

// Cloner makes a shallow clone of opts.URL into dest, which must be empty.
type Cloner interface {
	Clone(ctx context.Context, dest string, opts Options) error
}

// CloneError reports a failed clone.
type CloneError struct {
	URL    string
	Branch string
	Err    error
}

func (e *CloneError) Error() string {
	if e.Branch != "" {
		return fmt.Sprintf("cloning %s (branch %s): %v", e.URL, e.Branch, e.Err)
	}
	return fmt.Sprintf("cloning %s: %v", e.URL, e.Err)
}

func (e *CloneError) Unwrap() error { return e.Err }

// ExitCode returns the exit status of the git process, or 1 when the clone
// failed without one.
func (e *CloneError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

// WithClone clones into a fresh temporary directory and calls fn with its
// path. The directory is removed before WithClone returns, whether the clone
// or fn failed or not.
func WithClone(ctx context.Context, c Cloner, opts Options, fn func(dir string) error) (err error) {
	dir, err := os.MkdirTemp("", "calc-repo-lines-")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil && err == nil {
			err = fmt.Errorf("removing %s: %w", dir, rmErr)
		}
	}()

	if err := c.Clone(ctx, dir, opts); err != nil {
		return err
	}
	return fn(dir)
}
