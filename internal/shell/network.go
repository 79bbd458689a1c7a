package shell

import (
	"context"
	"strings"

	gherrors "github.com/hubsh/hubsh/internal/errors"
)

func (sh *Shell) networkMeta(ctx context.Context, arg string) error {
	meta, err := sh.session.Client().Network().Meta(ctx)
	if err != nil {
		return err
	}
	return sh.renderer.Show(meta)
}

func (sh *Shell) networkDataChunk(ctx context.Context, arg string) error {
	if len(strings.Fields(arg)) != 1 {
		return gherrors.NewUsageError("n.data_chunk", "expects the nethash from n.meta", "<hash>")
	}
	chunk, err := sh.session.Client().Network().DataChunk(ctx, arg)
	if err != nil {
		return err
	}
	return sh.renderer.Show(chunk)
}
