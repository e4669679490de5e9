package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandHelp(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})
	t.Cleanup(func() { _ = rootCmd.Flags().Set("help", "false") })
	err := rootCmd.Execute()
	assert.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, "calc-repo-lines <repository-url>")
	assert.Contains(t, output, "--branch")
	assert.Contains(t, output, "--results")
}

func TestRootCommandRequiresURL(t *testing.T) {
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))

	rootCmd.SetArgs([]string{})
	assert.Error(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"a", "b"})
	assert.Error(t, rootCmd.Execute())
}

func TestEnvOr(t *testing.T) {
	t.Setenv("CALC_REPO_LINES_TEST_VAR", "")
	assert.Equal(t, "def", envOr("CALC_REPO_LINES_TEST_VAR", "def"))

	t.Setenv("CALC_REPO_LINES_TEST_VAR", "set")
	assert.Equal(t, "set", envOr("CALC_REPO_LINES_TEST_VAR", "def"))
}
