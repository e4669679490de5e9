// Package fetch makes shallow, throwaway checkouts of remote repositories.
// The default Cloner shells out to the git binary; GoGitCloner clones
// in-process with go-git.
package fetch
