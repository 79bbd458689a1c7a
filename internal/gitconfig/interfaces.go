package gitconfig

import "context"

// Commander provides an interface for executing git commands
// This interface is used for mocking in tests
type Commander interface {
	// Output executes a git command and returns its trimmed output
	Output(ctx context.Context, args ...string) (string, error)
}
