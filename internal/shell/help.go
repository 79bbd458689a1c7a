package shell

import (
	"context"
	"fmt"
	"strings"
)

// helpSections groups the command table for display. Every canonical
// command name must appear in exactly one section; a test keeps this
// in sync with registration.
var helpSections = []struct {
	title string
	names []string
}{
	{"Session", []string{"repo", "login", "loadcfg", "status", "limits"}},
	{"Repositories", []string{
		"r.show", "r.list", "r.search", "r.watch", "r.unwatch", "r.fork",
		"r.create", "r.delete", "r.set_private", "r.set_public",
		"r.network", "r.tags", "r.branches",
	}},
	{"Issues", []string{
		"i.list", "i.view", "i.search", "i.open", "i.edit",
		"i.close", "i.reopen", "i.label", "i.comment",
	}},
	{"Users", []string{
		"u.search", "u.show", "u.update", "u.followers", "u.following",
		"u.follow", "u.unfollow", "u.pub_keys", "u.pub_keys.add", "u.pub_keys.del",
	}},
	{"Commits", []string{"c.branch", "c.file", "c.show"}},
	{"Objects", []string{"o.tree", "o.blob", "o.raw"}},
	{"Network", []string{"n.meta", "n.data_chunk"}},
	{"Shell", []string{"copy", "?", "q"}},
}

func (sh *Shell) cmdHelp(ctx context.Context, arg string) error {
	var b strings.Builder

	b.WriteString(sh.renderer.Paint(sh.renderer.Styles.Banner, "hubsh commands"))
	b.WriteString("\n")

	for _, section := range helpSections {
		b.WriteString("\n")
		b.WriteString(sh.renderer.Paint(sh.renderer.Styles.Info, section.title))
		b.WriteString("\n")
		for _, name := range section.names {
			cmd, ok := sh.commands[name]
			if !ok {
				continue
			}
			left := fmt.Sprintf("  %-36s", displayName(cmd))
			b.WriteString(sh.renderer.Paint(sh.renderer.Styles.HelpCommand, left))
			b.WriteString(sh.renderer.Paint(sh.renderer.Styles.HelpDesc, cmd.summary))
			b.WriteString("\n")
		}
	}

	b.WriteString("\nMultiline input ends with a line 'EOF'; 'QUIT' cancels the dialog.\n")

	return sh.renderer.Page(b.String())
}

func displayName(cmd *command) string {
	name := cmd.name
	if len(cmd.aliases) > 0 {
		name += " (" + strings.Join(cmd.aliases, ", ") + ")"
	}
	if cmd.usage != "" {
		name += " " + cmd.usage
	}
	return name
}
