// Package ui provides terminal output helpers for calc-repo-lines.
package ui
