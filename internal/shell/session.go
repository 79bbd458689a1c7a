package shell

import (
	"context"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"

	gherrors "github.com/hubsh/hubsh/internal/errors"
	"github.com/hubsh/hubsh/internal/session"
)

func (sh *Shell) cmdRepo(ctx context.Context, arg string) error {
	parts := strings.Fields(arg)
	if len(parts) != 2 {
		return gherrors.NewUsageError("repo", "expects an owner and a repository name", "<owner> <name>")
	}
	// The new prompt is the confirmation.
	return sh.session.SelectRepo(parts[0], parts[1])
}

func (sh *Shell) cmdLogin(ctx context.Context, arg string) error {
	parts := strings.Fields(arg)
	if len(parts) != 2 {
		return gherrors.NewUsageError("login", "expects a login and a token", "<login> <token>")
	}
	if err := sh.session.Authenticate(parts[0], parts[1]); err != nil {
		return err
	}
	sh.renderer.Success("Authenticated as %s (token %s).", parts[0], session.MaskToken(parts[1]))
	return nil
}

func (sh *Shell) cmdLoadcfg(ctx context.Context, arg string) error {
	if sh.creds == nil {
		return errors.New("git config unavailable (git not found on PATH)")
	}
	login, token, err := sh.creds.Credentials(ctx)
	if err != nil {
		return err
	}
	if err := sh.session.Authenticate(login, token); err != nil {
		return err
	}
	sh.renderer.Success("Loaded credentials for %s from git config.", login)
	return nil
}

func (sh *Shell) cmdStatus(ctx context.Context, arg string) error {
	if sh.session.HasRepo() {
		sh.renderer.Text("Repository: %s/%s", sh.session.Owner, sh.session.Repo)
	} else {
		sh.renderer.Text("Repository: none (run 'repo <owner> <name>')")
	}
	if sh.session.Authenticated() {
		sh.renderer.Text("Login:      %s (token %s)", sh.session.Login, session.MaskToken(sh.session.Token))
	} else {
		sh.renderer.Text("Login:      anonymous")
	}
	return nil
}

func (sh *Shell) cmdLimits(ctx context.Context, arg string) error {
	limits, err := sh.session.Client().GetRateLimit(ctx)
	if err != nil {
		return err
	}
	if core := limits.GetCore(); core != nil {
		sh.renderer.Text("Core:   %d/%d remaining, resets %s",
			core.Remaining, core.Limit, humanize.Time(core.Reset.Time))
	}
	if search := limits.GetSearch(); search != nil {
		sh.renderer.Text("Search: %d/%d remaining, resets %s",
			search.Remaining, search.Limit, humanize.Time(search.Reset.Time))
	}
	return nil
}

func (sh *Shell) cmdCopy(ctx context.Context, arg string) error {
	last := sh.renderer.LastOutput()
	if last == "" {
		sh.renderer.Info("Nothing to copy yet.")
		return nil
	}
	if err := clipboard.WriteAll(last); err != nil {
		return err
	}
	sh.renderer.Success("Copied the last result to the clipboard.")
	return nil
}

func (sh *Shell) cmdExit(ctx context.Context, arg string) error {
	sh.quit = true
	return nil
}
