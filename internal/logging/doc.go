// Package logging configures the structured diagnostics written to stderr.
package logging
