package shell

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	gherrors "github.com/hubsh/hubsh/internal/errors"
)

var digits = regexp.MustCompile(`^[0-9]+$`)

// issueNumber parses an issue number argument. Anything non-numeric is
// a usage error, raised before any prompting or API work.
func issueNumber(cmdName, arg string) (int, error) {
	if !digits.MatchString(arg) {
		return 0, gherrors.NewUsageError(cmdName, fmt.Sprintf("%q is not an issue number", arg), "<number>")
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, gherrors.NewUsageError(cmdName, fmt.Sprintf("%q is not an issue number", arg), "<number>")
	}
	return n, nil
}

func issueState(cmdName, state string) (string, error) {
	if state != "open" && state != "closed" {
		return "", gherrors.NewUsageError(cmdName, fmt.Sprintf("unknown state %q", state), "<open|closed>")
	}
	return state, nil
}

func (sh *Shell) issueList(ctx context.Context, arg string) error {
	state := "open"
	if arg != "" {
		var err error
		if state, err = issueState("i.list", arg); err != nil {
			return err
		}
	}

	issues, err := sh.session.Client().Issues().List(ctx, state)
	if err != nil {
		return err
	}
	return sh.renderer.Show(issues)
}

func (sh *Shell) issueView(ctx context.Context, arg string) error {
	n, err := issueNumber("i.view", arg)
	if err != nil {
		return err
	}
	issue, err := sh.session.Client().Issues().Get(ctx, n)
	if err != nil {
		return err
	}
	return sh.renderer.Show(issue)
}

func (sh *Shell) issueSearch(ctx context.Context, arg string) error {
	parts := strings.Fields(arg)
	if len(parts) < 2 {
		return gherrors.NewUsageError("i.search", "expects a state and a search word", "<open|closed> <word>")
	}
	state, err := issueState("i.search", parts[0])
	if err != nil {
		return err
	}
	word := strings.Join(parts[1:], " ")

	result, err := sh.session.Client().Issues().Search(ctx, state, word)
	if err != nil {
		return err
	}
	return sh.renderer.Show(result)
}

func (sh *Shell) issueOpen(ctx context.Context, arg string) error {
	title, body, err := sh.prompt.TitledBody("title")
	if err != nil {
		return err
	}

	issue, err := sh.session.Client().Issues().Create(ctx, title, body)
	if err != nil {
		return err
	}
	return sh.renderer.Show(issue)
}

func (sh *Shell) issueEdit(ctx context.Context, arg string) error {
	n, err := issueNumber("i.edit", arg)
	if err != nil {
		return err
	}

	title, body, err := sh.prompt.TitledBody("title")
	if err != nil {
		return err
	}

	issue, err := sh.session.Client().Issues().Edit(ctx, n, title, body)
	if err != nil {
		return err
	}
	return sh.renderer.Show(issue)
}

func (sh *Shell) issueClose(ctx context.Context, arg string) error {
	return sh.issueSetState(ctx, "i.close", arg, "closed")
}

func (sh *Shell) issueReopen(ctx context.Context, arg string) error {
	return sh.issueSetState(ctx, "i.reopen", arg, "open")
}

func (sh *Shell) issueSetState(ctx context.Context, cmdName, arg, state string) error {
	n, err := issueNumber(cmdName, arg)
	if err != nil {
		return err
	}
	issue, err := sh.session.Client().Issues().SetState(ctx, n, state)
	if err != nil {
		return err
	}
	return sh.renderer.Show(issue)
}

func (sh *Shell) issueLabel(ctx context.Context, arg string) error {
	const usage = "add|del <number> <label>"

	parts := strings.Fields(arg)
	if len(parts) < 3 {
		return gherrors.NewUsageError("i.label", "expects an action, an issue number and a label", usage)
	}
	action := parts[0]
	if action != "add" && action != "del" {
		return gherrors.NewUsageError("i.label", fmt.Sprintf("unknown action %q", action), usage)
	}
	if !digits.MatchString(parts[1]) {
		return gherrors.NewUsageError("i.label", fmt.Sprintf("%q is not an issue number", parts[1]), usage)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return gherrors.NewUsageError("i.label", fmt.Sprintf("%q is not an issue number", parts[1]), usage)
	}
	label := strings.Join(parts[2:], " ")

	if action == "add" {
		labels, err := sh.session.Client().Issues().AddLabel(ctx, n, label)
		if err != nil {
			return err
		}
		return sh.renderer.Show(labels)
	}

	if err := sh.session.Client().Issues().RemoveLabel(ctx, n, label); err != nil {
		return err
	}
	sh.renderer.Success("Removed label %q from issue #%d.", label, n)
	return nil
}

func (sh *Shell) issueComment(ctx context.Context, arg string) error {
	n, err := issueNumber("i.comment", arg)
	if err != nil {
		return err
	}

	body, err := sh.prompt.Body()
	if err != nil {
		return err
	}

	comment, err := sh.session.Client().Issues().Comment(ctx, n, body)
	if err != nil {
		return err
	}
	return sh.renderer.Show(comment)
}
