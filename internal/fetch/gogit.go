package fetch

import (
	"context"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GoGitCloner clones in-process with go-git.
type GoGitCloner struct {
	// Progress receives the remote's sideband messages when set.
	Progress io.Writer
}

func (c *GoGitCloner) Clone(ctx context.Context, dest string, opts Options) error {
	co := &git.CloneOptions{
		URL:          opts.URL,
		Depth:        Depth,
		SingleBranch: true,
		Progress:     c.Progress,
	}
	if opts.Branch != "" {
		co.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
	}

	if _, err := git.PlainCloneContext(ctx, dest, false, co); err != nil {
		return &CloneError{URL: opts.URL, Branch: opts.Branch, Err: err}
	}
	return nil
}
