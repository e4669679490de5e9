package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/keiv-fly/calc-repo-lines/internal/linecount"
)

// Record is one line of the results file.
type Record struct {
	Repo  string
	Count linecount.Count
	Time  time.Time
}

const (
	defaultResultsPath = "data/results.txt"
	resultsTimeLayout  = "2006-01-02T15:04:05Z"
)

var nowFn = time.Now

// String formats the record as it is stored, with the time in UTC to the
// second.
func (r Record) String() string {
	return fmt.Sprintf("Repo: %s | # lines: %d | # code lines: %d | Datetime: %s",
		r.Repo, r.Count.Total, r.Count.NonBlank, r.Time.UTC().Format(resultsTimeLayout))
}

// appendRecord appends rec to the results file at path, creating the file
// and its directory when missing.
func appendRecord(path string, rec Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
