package linecount

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// metadataDir is the version-control metadata directory that is never counted.
const metadataDir = ".git"

// Progress receives updates while a Counter works through its files.
type Progress interface {
	Start(total int)
	Done(path string)
	Finish()
}

// Result is the outcome of counting a whole tree.
type Result struct {
	Count
	Files      int
	Unreadable int
}

// Counter counts lines across every regular file below a root.
type Counter struct {
	FS       billy.Filesystem
	Progress Progress
}

// Dir counts the lines of all files below root on the local filesystem.
func Dir(ctx context.Context, root string, p Progress) (Result, error) {
	c := &Counter{FS: osfs.New(root), Progress: p}
	return c.Count(ctx, ".")
}

// Count walks root and sums the lines of every file found. Paths inside a
// .git directory are skipped, and so are unreadable subdirectories. Files
// that cannot be read add nothing and are tallied in Result.Unreadable.
// Count stops with ctx.Err() once ctx is done.
func (c *Counter) Count(ctx context.Context, root string) (Result, error) {
	files, err := c.files(ctx, root)
	if err != nil {
		return Result{}, err
	}

	progress := c.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	var res Result
	progress.Start(len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			progress.Finish()
			return Result{}, err
		}
		n, ok := File(c.FS, path)
		if !ok {
			res.Unreadable++
		}
		res.Count = res.Count.Add(n)
		res.Files++
		progress.Done(path)
	}
	progress.Finish()

	return res, nil
}

func (c *Counter) files(ctx context.Context, root string) ([]string, error) {
	var files []string
	err := util.Walk(c.FS, root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if path != root && info.Name() == metadataDir {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		switch {
		case info.Mode().IsRegular():
			files = append(files, path)
		case info.Mode()&os.ModeSymlink != 0:
			// Follow links to files, never into directories.
			target, err := c.FS.Stat(path)
			if err == nil && target.Mode().IsRegular() {
				files = append(files, path)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

type nopProgress struct{}

func (nopProgress) Start(int)   {}
func (nopProgress) Done(string) {}
func (nopProgress) Finish()     {}
