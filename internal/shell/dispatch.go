package shell

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	gherrors "github.com/hubsh/hubsh/internal/errors"
)

// needs is the set of session preconditions a command checks before it
// runs. A failed check short-circuits: the handler is never entered
// and no API call is attempted.
type needs uint8

const (
	// needClient requires a derived API client (a repo selection or
	// credentials, whichever came first).
	needClient needs = 1 << iota
	// needRepo requires an active repository selection.
	needRepo
	// needAuth requires credentials.
	needAuth
)

// command is one dispatch table entry. Names are literal tokens,
// dots included; there is no namespace resolution beyond exact match.
type command struct {
	name    string
	aliases []string
	usage   string
	summary string
	needs   needs
	run     func(ctx context.Context, arg string) error
}

// register adds commands to the table, panicking on a duplicate name
// or alias. The table once shipped two handlers under one key and the
// survivor depended on insertion order; making duplicates fatal at
// startup keeps that from coming back.
func (sh *Shell) register(cmds ...command) {
	if sh.commands == nil {
		sh.commands = make(map[string]*command)
	}
	for i := range cmds {
		cmd := &cmds[i]
		for _, name := range append([]string{cmd.name}, cmd.aliases...) {
			if _, dup := sh.commands[name]; dup {
				panic(fmt.Sprintf("shell: duplicate command %q", name))
			}
			sh.commands[name] = cmd
		}
		sh.order = append(sh.order, cmd.name)
	}
}

// Names returns every registered token, aliases included, sorted for
// completion.
func (sh *Shell) Names() []string {
	names := make([]string, 0, len(sh.commands))
	for name := range sh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// dispatch resolves a trimmed, non-empty input line and runs the
// matching command. A full-line match wins over token splitting, so a
// line that happens to equal a registered compound name dispatches
// with an empty argument. Unknown commands print a message and return
// control to the loop.
func (sh *Shell) dispatch(ctx context.Context, line string) {
	if cmd, ok := sh.commands[line]; ok {
		sh.execute(ctx, cmd, line, "")
		return
	}

	name, arg := splitCommand(line)
	cmd, ok := sh.commands[name]
	if !ok {
		sh.renderer.Text("Unknown command %q. Type '?' for help.", name)
		return
	}
	sh.execute(ctx, cmd, name, arg)
}

func (sh *Shell) execute(ctx context.Context, cmd *command, name, arg string) {
	sh.log.WithFields(logrus.Fields{"command": name, "arg": arg}).Debug("dispatching command")

	if err := sh.gate(cmd); err != nil {
		sh.renderer.Fail(err)
		return
	}
	if err := cmd.run(ctx, arg); err != nil {
		sh.renderer.Fail(err)
	}
}

// gate checks a command's preconditions against the session, most
// general first: a missing client subsumes the narrower checks.
func (sh *Shell) gate(cmd *command) error {
	if cmd.needs&needClient != 0 && sh.session.Client() == nil {
		return gherrors.ErrNoSession
	}
	if cmd.needs&needRepo != 0 && !sh.session.HasRepo() {
		return gherrors.ErrNoRepo
	}
	if cmd.needs&needAuth != 0 && !sh.session.Authenticated() {
		return gherrors.ErrAuthNeeded
	}
	return nil
}

// splitCommand splits a line on its first run of whitespace into a
// command token and the remainder argument string.
func splitCommand(line string) (name, arg string) {
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		return line[:i], strings.TrimSpace(line[i:])
	}
	return line, ""
}
