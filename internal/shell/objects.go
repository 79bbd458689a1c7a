package shell

import (
	"context"
	"strings"

	gherrors "github.com/hubsh/hubsh/internal/errors"
)

func (sh *Shell) objectTree(ctx context.Context, arg string) error {
	if len(strings.Fields(arg)) != 1 {
		return gherrors.NewUsageError("o.tree", "expects a tree sha", "<sha1>")
	}
	tree, err := sh.session.Client().Objects().Tree(ctx, arg)
	if err != nil {
		return err
	}
	return sh.renderer.Show(tree)
}

func (sh *Shell) objectBlob(ctx context.Context, arg string) error {
	parts := strings.Fields(arg)
	if len(parts) != 2 {
		return gherrors.NewUsageError("o.blob", "expects a tree sha and a file path", "<sha1> <file>")
	}

	blob, err := sh.session.Client().Objects().Blob(ctx, parts[0], parts[1])
	if err != nil {
		return err
	}
	return sh.renderer.Show(blob)
}

// objectRaw is the one command whose result is not pretty-printed:
// blob bytes pass through exactly as stored.
func (sh *Shell) objectRaw(ctx context.Context, arg string) error {
	if len(strings.Fields(arg)) != 1 {
		return gherrors.NewUsageError("o.raw", "expects a blob sha", "<sha1>")
	}
	content, err := sh.session.Client().Objects().Raw(ctx, arg)
	if err != nil {
		return err
	}
	return sh.renderer.ShowRaw(content)
}
