package fetch

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
)

// Revision describes the commit a checkout is at.
type Revision struct {
	Hash    string
	Branch  string // empty when HEAD is detached
	Author  string
	When    time.Time
	Subject string
}

// Head reads the HEAD commit of the checkout at dir.
func Head(dir string) (Revision, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return Revision{}, fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return Revision{}, fmt.Errorf("getting HEAD for repository at %s: %w", dir, err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return Revision{}, fmt.Errorf("reading commit %s: %w", head.Hash(), err)
	}

	rev := Revision{
		Hash:    head.Hash().String(),
		Author:  commit.Author.Name,
		When:    commit.Author.When,
		Subject: strings.TrimSpace(strings.SplitN(commit.Message, "\n", 2)[0]),
	}
	if head.Name().IsBranch() {
		rev.Branch = head.Name().Short()
	}
	return rev, nil
}
