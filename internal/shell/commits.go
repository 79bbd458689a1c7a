package shell

import (
	"context"
	"strings"

	gherrors "github.com/hubsh/hubsh/internal/errors"
)

// defaultBranch is assumed when c.file is given a bare file path.
const defaultBranch = "master"

func (sh *Shell) commitBranch(ctx context.Context, arg string) error {
	if len(strings.Fields(arg)) != 1 {
		return gherrors.NewUsageError("c.branch", "expects a branch name", "<branch>")
	}
	commits, err := sh.session.Client().Commits().ListBranch(ctx, arg)
	if err != nil {
		return err
	}
	return sh.renderer.Show(commits)
}

func (sh *Shell) commitFile(ctx context.Context, arg string) error {
	parts := strings.Fields(arg)

	var branch, file string
	switch len(parts) {
	case 1:
		branch, file = defaultBranch, parts[0]
	case 2:
		branch, file = parts[0], parts[1]
	default:
		return gherrors.NewUsageError("c.file", "expects a file path with an optional branch", "[branch] <file>")
	}

	commits, err := sh.session.Client().Commits().ListFile(ctx, branch, file)
	if err != nil {
		return err
	}
	return sh.renderer.Show(commits)
}

func (sh *Shell) commitShow(ctx context.Context, arg string) error {
	if len(strings.Fields(arg)) != 1 {
		return gherrors.NewUsageError("c.show", "expects a commit sha", "<sha1>")
	}
	commit, err := sh.session.Client().Commits().Get(ctx, arg)
	if err != nil {
		return err
	}
	return sh.renderer.Show(commit)
}
