package shell

import (
	"context"
	"fmt"
	"strings"

	gherrors "github.com/hubsh/hubsh/internal/errors"
)

func (sh *Shell) repoShow(ctx context.Context, arg string) error {
	owner, name := sh.session.Owner, sh.session.Repo
	if arg != "" {
		parts := strings.Fields(arg)
		if len(parts) != 2 {
			return gherrors.NewUsageError("r.show", "expects an owner and a repository name", "[owner name]")
		}
		owner, name = parts[0], parts[1]
	} else if !sh.session.HasRepo() {
		return gherrors.ErrNoRepo
	}

	repo, err := sh.session.Client().Repos().Get(ctx, owner, name)
	if err != nil {
		return err
	}
	return sh.renderer.Show(repo)
}

func (sh *Shell) repoList(ctx context.Context, arg string) error {
	if len(strings.Fields(arg)) > 1 {
		return gherrors.NewUsageError("r.list", "expects at most one user", "[user]")
	}
	repos, err := sh.session.Client().Repos().List(ctx, arg)
	if err != nil {
		return err
	}
	return sh.renderer.Show(repos)
}

func (sh *Shell) repoSearch(ctx context.Context, arg string) error {
	if arg == "" {
		return gherrors.NewUsageError("r.search", "expects a search word", "<word>")
	}
	result, err := sh.session.Client().Repos().Search(ctx, arg)
	if err != nil {
		return err
	}
	return sh.renderer.Show(result)
}

func (sh *Shell) repoWatch(ctx context.Context, arg string) error {
	sub, err := sh.session.Client().Repos().Watch(ctx)
	if err != nil {
		return err
	}
	return sh.renderer.Show(sub)
}

func (sh *Shell) repoUnwatch(ctx context.Context, arg string) error {
	if err := sh.session.Client().Repos().Unwatch(ctx); err != nil {
		return err
	}
	sh.renderer.Success("No longer watching %s.", sh.targetRef())
	return nil
}

func (sh *Shell) repoFork(ctx context.Context, arg string) error {
	fork, err := sh.session.Client().Repos().Fork(ctx)
	if err != nil {
		return err
	}
	if fork == nil {
		// 202: the fork is being created in the background.
		sh.renderer.Success("Fork of %s queued.", sh.targetRef())
		return nil
	}
	return sh.renderer.Show(fork)
}

func (sh *Shell) repoCreate(ctx context.Context, arg string) error {
	values, err := sh.prompt.Fields("name", "description", "homepage")
	if err != nil {
		return err
	}
	name := strings.TrimSpace(values["name"])
	if name == "" {
		return gherrors.NewUsageError("r.create", "a repository name is required", "")
	}

	repo, err := sh.session.Client().Repos().Create(ctx, name, values["description"], values["homepage"])
	if err != nil {
		return err
	}
	return sh.renderer.Show(repo)
}

func (sh *Shell) repoDelete(ctx context.Context, arg string) error {
	target := fmt.Sprintf("%s/%s", sh.session.Owner, sh.session.Repo)
	ok, err := sh.prompt.Confirm(fmt.Sprintf("Type '%s' to confirm deletion: ", target), target)
	if err != nil {
		return err
	}
	if !ok {
		sh.renderer.Info("Aborted.")
		return nil
	}

	if err := sh.session.Client().Repos().Delete(ctx); err != nil {
		return err
	}
	sh.renderer.Success("Deleted %s.", target)
	return nil
}

func (sh *Shell) repoSetPrivate(ctx context.Context, arg string) error {
	repo, err := sh.session.Client().Repos().SetPrivate(ctx)
	if err != nil {
		return err
	}
	return sh.renderer.Show(repo)
}

func (sh *Shell) repoSetPublic(ctx context.Context, arg string) error {
	repo, err := sh.session.Client().Repos().SetPublic(ctx)
	if err != nil {
		return err
	}
	return sh.renderer.Show(repo)
}

func (sh *Shell) repoNetwork(ctx context.Context, arg string) error {
	forks, err := sh.session.Client().Repos().Network(ctx)
	if err != nil {
		return err
	}
	return sh.renderer.Show(forks)
}

func (sh *Shell) repoTags(ctx context.Context, arg string) error {
	tags, err := sh.session.Client().Repos().Tags(ctx)
	if err != nil {
		return err
	}
	return sh.renderer.Show(tags)
}

func (sh *Shell) repoBranches(ctx context.Context, arg string) error {
	branches, err := sh.session.Client().Repos().Branches(ctx)
	if err != nil {
		return err
	}
	return sh.renderer.Show(branches)
}

// targetRef names the repository the client is bound to, for
// confirmation messages. With no selection the owner falls back to the
// login, same as the client build.
func (sh *Shell) targetRef() string {
	owner := sh.session.Owner
	if owner == "" {
		owner = sh.session.Login
	}
	if sh.session.Repo == "" {
		return owner
	}
	return fmt.Sprintf("%s/%s", owner, sh.session.Repo)
}
