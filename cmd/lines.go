package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/keiv-fly/calc-repo-lines/internal/fetch"
	"github.com/keiv-fly/calc-repo-lines/internal/linecount"
	"github.com/keiv-fly/calc-repo-lines/internal/logging"
	"github.com/keiv-fly/calc-repo-lines/internal/ui"
)

const (
	backendGit   = "git"
	backendGoGit = "go-git"

	progressAuto   = "auto"
	progressAlways = "always"
	progressNever  = "never"
)

var (
	branch       string
	resultsPath  string
	backend      string
	gitBin       string
	progressMode string
	debug        bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&branch, "branch", "b", "", "Branch to check out; defaults to the repository's default branch")
	flags.StringVar(&resultsPath, "results", envOr("CALC_REPO_LINES_RESULTS", defaultResultsPath), "File the result record is appended to")
	flags.StringVar(&backend, "backend", envOr("CALC_REPO_LINES_BACKEND", backendGit), "Clone backend: git or go-git")
	flags.StringVar(&gitBin, "git-bin", envOr("CALC_REPO_LINES_GIT", "git"), "git binary used by the git backend")
	flags.StringVar(&progressMode, "progress", progressAuto, "Show progress on stderr: auto, always or never")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging (also "+logging.DebugEnv+"=1)")
}

func runLines(cmd *cobra.Command, args []string) error {
	url := args[0]
	stderr := cmd.ErrOrStderr()
	logger := logging.New(stderr, debug)

	cloner, err := newCloner(stderr)
	if err != nil {
		return err
	}
	progress, err := newProgress(stderr)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	opts := fetch.Options{URL: url, Branch: branch}
	logger.Debug("cloning repository", "url", url, "branch", branch, "backend", backend)

	var res linecount.Result
	err = fetch.WithClone(ctx, cloner, opts, func(dir string) error {
		if rev, err := fetch.Head(dir); err != nil {
			logger.Debug("reading HEAD", "dir", dir, "err", err)
		} else {
			logger.Debug("cloned repository", "url", url, "commit", rev.Hash, "branch", rev.Branch, "author", rev.Author, "when", rev.When, "subject", rev.Subject)
		}

		counted, err := linecount.Dir(ctx, dir, progress)
		if err != nil {
			return fmt.Errorf("counting lines: %w", err)
		}
		res = counted
		return nil
	})
	if err != nil {
		return err
	}
	logger.Debug("counted lines", "files", res.Files, "unreadable", res.Unreadable)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# lines: %d\n", res.Total)
	fmt.Fprintf(out, "# code lines: %d\n", res.NonBlank)

	rec := Record{Repo: url, Count: res.Count, Time: nowFn()}
	if err := appendRecord(resultsPath, rec); err != nil {
		return fmt.Errorf("writing results to %s: %w", resultsPath, err)
	}
	logger.Debug("appended result", "path", resultsPath)
	return nil
}

func newCloner(w io.Writer) (fetch.Cloner, error) {
	switch backend {
	case backendGit:
		return fetch.NewExecCloner(gitBin, w), nil
	case backendGoGit:
		return &fetch.GoGitCloner{Progress: w}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", backend, backendGit, backendGoGit)
	}
}

func newProgress(w io.Writer) (linecount.Progress, error) {
	switch progressMode {
	case progressAlways:
		return ui.NewProgress(w, "Counting lines"), nil
	case progressNever:
		return nil, nil
	case progressAuto:
		if f, ok := w.(*os.File); ok && ui.IsTerminal(f) {
			return ui.NewProgress(w, "Counting lines"), nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown progress mode %q (want %s, %s or %s)", progressMode, progressAuto, progressAlways, progressNever)
	}
}
