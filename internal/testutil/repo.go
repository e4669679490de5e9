// Package testutil builds throwaway git repositories for tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RequireGit skips the test when the git binary is not on PATH.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}
}

// HangingGit writes a stand-in for the git binary that drops a file named
// "partial" into the clone destination and then sleeps, so tests can
// interrupt a clone that is in progress. It returns the script path.
func HangingGit(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available in PATH")
	}

	script := filepath.Join(t.TempDir(), "hanging-git")
	body := "#!/bin/sh\nfor dest; do :; done\necho partial > \"$dest/partial\"\nexec sleep 30\n"
	if err := os.WriteFile(script, []byte(body), 0755); err != nil { //nolint:gosec // test script
		t.Fatalf("Failed to write %s: %v", script, err)
	}
	return script
}

// WaitForClone polls tmpDir until a clone directory holding the file written
// by HangingGit shows up. It reports false after ten seconds without one.
// It is safe to call from a goroutine other than the test's.
func WaitForClone(tmpDir string) bool {
	pattern := filepath.Join(tmpDir, "calc-repo-lines-*", "partial")
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if matches, _ := filepath.Glob(pattern); len(matches) > 0 {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

// CloneDirs lists the clone directories left under tmpDir.
func CloneDirs(t *testing.T, tmpDir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(tmpDir, "calc-repo-lines-*"))
	if err != nil {
		t.Fatalf("Failed to glob %s: %v", tmpDir, err)
	}
	return matches
}

// CreateRepo initialises a repository in a temp directory with one commit
// holding files, keyed by slash-separated path. It returns the directory.
func CreateRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repository: %v", err)
	}
	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	commitFiles(t, dir, w, files, "Initial commit")
	return dir
}

// CreateRepoWithBranch is CreateRepo plus a second branch that adds
// branchFiles on top. HEAD is left on the default branch.
func CreateRepoWithBranch(t *testing.T, files map[string]string, branch string, branchFiles map[string]string) string {
	t.Helper()
	dir := CreateRepo(t, files)

	repo, err := git.PlainOpen(dir)
	if err != nil {
		t.Fatalf("Failed to open repository: %v", err)
	}
	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Failed to get HEAD: %v", err)
	}
	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	err = w.Checkout(&git.CheckoutOptions{
		Create: true,
		Branch: plumbing.NewBranchReferenceName(branch),
	})
	if err != nil {
		t.Fatalf("Failed to create branch %s: %v", branch, err)
	}
	commitFiles(t, dir, w, branchFiles, "Branch commit")

	if err := w.Checkout(&git.CheckoutOptions{Branch: head.Name()}); err != nil {
		t.Fatalf("Failed to switch back to %s: %v", head.Name().Short(), err)
	}
	return dir
}

// FileURL returns a file:// URL for dir, so git honours --depth.
func FileURL(dir string) string {
	return "file://" + filepath.ToSlash(dir)
}

func commitFiles(t *testing.T, dir string, w *git.Worktree, files map[string]string, msg string) {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(files[name]), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
		if _, err := w.Add(name); err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
	}

	_, err := w.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
}
