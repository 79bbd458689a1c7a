package shell

// registerCommands builds the dispatch table. Every command the loop
// can reach is declared here, session commands first, then one block
// per API resource. Preconditions live in the table, not the handlers.
func (sh *Shell) registerCommands() {
	sh.register(
		command{name: "repo", usage: "<owner> <name>", summary: "select the active repository", run: sh.cmdRepo},
		command{name: "login", usage: "<login> <token>", summary: "set credentials for API calls", run: sh.cmdLogin},
		command{name: "loadcfg", summary: "load credentials from git config (github.user/github.token)", run: sh.cmdLoadcfg},
		command{name: "status", summary: "show the current session", run: sh.cmdStatus},
		command{name: "limits", summary: "show API rate limits", needs: needClient, run: sh.cmdLimits},
		command{name: "copy", summary: "copy the last result to the clipboard", run: sh.cmdCopy},
		command{name: "?", aliases: []string{"h"}, summary: "print this help", run: sh.cmdHelp},
		command{name: "q", aliases: []string{"exit", "quit"}, summary: "leave the shell", run: sh.cmdExit},
	)

	sh.register(
		command{name: "r.show", usage: "[owner name]", summary: "show repository metadata", needs: needClient, run: sh.repoShow},
		command{name: "r.list", usage: "[user]", summary: "list repositories", needs: needClient, run: sh.repoList},
		command{name: "r.search", usage: "<word>", summary: "search repositories", needs: needClient, run: sh.repoSearch},
		command{name: "r.watch", summary: "watch the repository", needs: needClient | needAuth, run: sh.repoWatch},
		command{name: "r.unwatch", summary: "stop watching the repository", needs: needClient | needAuth, run: sh.repoUnwatch},
		command{name: "r.fork", summary: "fork the repository", needs: needClient | needAuth, run: sh.repoFork},
		command{name: "r.create", summary: "create a repository (interactive)", needs: needClient | needAuth, run: sh.repoCreate},
		command{name: "r.delete", summary: "delete the repository (asks to confirm)", needs: needClient | needAuth | needRepo, run: sh.repoDelete},
		command{name: "r.set_private", summary: "make the repository private", needs: needClient | needAuth | needRepo, run: sh.repoSetPrivate},
		command{name: "r.set_public", summary: "make the repository public", needs: needClient | needAuth | needRepo, run: sh.repoSetPublic},
		command{name: "r.network", summary: "list the repository's forks", needs: needClient | needRepo, run: sh.repoNetwork},
		command{name: "r.tags", summary: "list tags", needs: needClient | needRepo, run: sh.repoTags},
		command{name: "r.branches", summary: "list branches", needs: needClient | needRepo, run: sh.repoBranches},
	)

	sh.register(
		command{name: "i.list", usage: "[open|closed]", summary: "list issues (default open)", needs: needClient | needRepo, run: sh.issueList},
		command{name: "i.view", usage: "<number>", summary: "show one issue", needs: needClient | needRepo, run: sh.issueView},
		command{name: "i.search", usage: "<open|closed> <word>", summary: "search issues", needs: needClient | needRepo, run: sh.issueSearch},
		command{name: "i.open", summary: "open an issue (interactive)", needs: needClient | needAuth | needRepo, run: sh.issueOpen},
		command{name: "i.edit", usage: "<number>", summary: "edit an issue (interactive)", needs: needClient | needAuth | needRepo, run: sh.issueEdit},
		command{name: "i.close", usage: "<number>", summary: "close an issue", needs: needClient | needAuth | needRepo, run: sh.issueClose},
		command{name: "i.reopen", usage: "<number>", summary: "reopen an issue", needs: needClient | needAuth | needRepo, run: sh.issueReopen},
		command{name: "i.label", usage: "add|del <number> <label>", summary: "add or remove a label", needs: needClient | needAuth | needRepo, run: sh.issueLabel},
		command{name: "i.comment", usage: "<number>", summary: "comment on an issue (interactive)", needs: needClient | needAuth | needRepo, run: sh.issueComment},
	)

	sh.register(
		command{name: "u.search", usage: "<word>", summary: "search users", needs: needClient, run: sh.userSearch},
		command{name: "u.show", usage: "[user]", summary: "show a user (default: yourself)", needs: needClient, run: sh.userShow},
		command{name: "u.update", summary: "update a profile field (interactive)", needs: needClient | needAuth, run: sh.userUpdate},
		command{name: "u.followers", summary: "list your followers", needs: needClient | needAuth, run: sh.userFollowers},
		command{name: "u.following", summary: "list who you follow", needs: needClient | needAuth, run: sh.userFollowing},
		command{name: "u.follow", usage: "<user>", summary: "follow a user", needs: needClient | needAuth, run: sh.userFollow},
		command{name: "u.unfollow", usage: "<user>", summary: "unfollow a user", needs: needClient | needAuth, run: sh.userUnfollow},
		command{name: "u.pub_keys", summary: "list your public keys", needs: needClient | needAuth, run: sh.userKeys},
		command{name: "u.pub_keys.add", summary: "add a public key (interactive)", needs: needClient | needAuth, run: sh.userKeyAdd},
		command{name: "u.pub_keys.del", usage: "<id>", summary: "remove a public key", needs: needClient | needAuth, run: sh.userKeyDel},
	)

	sh.register(
		command{name: "c.branch", usage: "<branch>", summary: "list commits on a branch", needs: needClient | needRepo, run: sh.commitBranch},
		command{name: "c.file", usage: "[branch] <file>", summary: "list commits touching a file (default branch master)", needs: needClient | needRepo, run: sh.commitFile},
		command{name: "c.show", usage: "<sha1>", summary: "show one commit", needs: needClient | needRepo, run: sh.commitShow},
	)

	sh.register(
		command{name: "o.tree", usage: "<sha1>", summary: "list a tree's contents", needs: needClient | needRepo, run: sh.objectTree},
		command{name: "o.blob", usage: "<sha1> <file>", summary: "show a file's blob within a tree", needs: needClient | needRepo, run: sh.objectBlob},
		command{name: "o.raw", usage: "<sha1>", summary: "print a blob verbatim", needs: needClient | needRepo, run: sh.objectRaw},
	)

	sh.register(
		command{name: "n.meta", summary: "network graph metadata", needs: needClient | needRepo, run: sh.networkMeta},
		command{name: "n.data_chunk", usage: "<hash>", summary: "network graph data chunk", needs: needClient | needRepo, run: sh.networkDataChunk},
	)
}
