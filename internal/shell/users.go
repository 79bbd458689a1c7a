package shell

import (
	"context"
	"strconv"
	"strings"

	gherrors "github.com/hubsh/hubsh/internal/errors"
)

// profileFields are the only keys u.update will send to the API.
var profileFields = []string{"name", "email", "blog", "company", "location"}

func (sh *Shell) userSearch(ctx context.Context, arg string) error {
	if arg == "" {
		return gherrors.NewUsageError("u.search", "expects a search word", "<word>")
	}
	result, err := sh.session.Client().Users().Search(ctx, arg)
	if err != nil {
		return err
	}
	return sh.renderer.Show(result)
}

func (sh *Shell) userShow(ctx context.Context, arg string) error {
	if len(strings.Fields(arg)) > 1 {
		return gherrors.NewUsageError("u.show", "expects at most one user", "[user]")
	}
	user, err := sh.session.Client().Users().Get(ctx, arg)
	if err != nil {
		return err
	}
	return sh.renderer.Show(user)
}

func (sh *Shell) userUpdate(ctx context.Context, arg string) error {
	sh.renderer.Info("Fields: %s", strings.Join(profileFields, ", "))

	var field string
	for {
		input, err := sh.prompt.Field("field")
		if err != nil {
			return err
		}
		field = strings.TrimSpace(input)
		if isProfileField(field) {
			break
		}
		sh.renderer.Text("Choose one of: %s.", strings.Join(profileFields, ", "))
	}

	value, err := sh.prompt.Field(field)
	if err != nil {
		return err
	}

	user, err := sh.session.Client().Users().Update(ctx, field, value)
	if err != nil {
		return err
	}
	return sh.renderer.Show(user)
}

func isProfileField(field string) bool {
	for _, allowed := range profileFields {
		if field == allowed {
			return true
		}
	}
	return false
}

func (sh *Shell) userFollowers(ctx context.Context, arg string) error {
	users, err := sh.session.Client().Users().Followers(ctx)
	if err != nil {
		return err
	}
	return sh.renderer.Show(users)
}

func (sh *Shell) userFollowing(ctx context.Context, arg string) error {
	users, err := sh.session.Client().Users().Following(ctx)
	if err != nil {
		return err
	}
	return sh.renderer.Show(users)
}

func (sh *Shell) userFollow(ctx context.Context, arg string) error {
	if arg == "" {
		return gherrors.NewUsageError("u.follow", "expects a user", "<user>")
	}
	if err := sh.session.Client().Users().Follow(ctx, arg); err != nil {
		return err
	}
	sh.renderer.Success("Now following %s.", arg)
	return nil
}

func (sh *Shell) userUnfollow(ctx context.Context, arg string) error {
	if arg == "" {
		return gherrors.NewUsageError("u.unfollow", "expects a user", "<user>")
	}
	if err := sh.session.Client().Users().Unfollow(ctx, arg); err != nil {
		return err
	}
	sh.renderer.Success("Unfollowed %s.", arg)
	return nil
}

func (sh *Shell) userKeys(ctx context.Context, arg string) error {
	keys, err := sh.session.Client().Users().Keys(ctx)
	if err != nil {
		return err
	}
	return sh.renderer.Show(keys)
}

func (sh *Shell) userKeyAdd(ctx context.Context, arg string) error {
	values, err := sh.prompt.Fields("name", "key")
	if err != nil {
		return err
	}

	key, err := sh.session.Client().Users().AddKey(ctx, values["name"], values["key"])
	if err != nil {
		return err
	}
	return sh.renderer.Show(key)
}

func (sh *Shell) userKeyDel(ctx context.Context, arg string) error {
	if !digits.MatchString(arg) {
		return gherrors.NewUsageError("u.pub_keys.del", "expects a numeric key id", "<id>")
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return gherrors.NewUsageError("u.pub_keys.del", "expects a numeric key id", "<id>")
	}

	if err := sh.session.Client().Users().DeleteKey(ctx, id); err != nil {
		return err
	}
	sh.renderer.Success("Deleted key %s.", arg)
	return nil
}
