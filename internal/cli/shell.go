package cli

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hubsh/hubsh/internal/github"
	"github.com/hubsh/hubsh/internal/gitconfig"
	"github.com/hubsh/hubsh/internal/pager"
	"github.com/hubsh/hubsh/internal/render"
	"github.com/hubsh/hubsh/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	Long: `Start the interactive GitHub shell.

The shell reads one command per line and prints the API response as
indented JSON:

  repo octocat hello      select a repository
  login <login> <token>   authenticate
  r.show                  show the selected repository
  i.open                  open an issue (interactive)
  ?                       list all commands

This command is equivalent to running 'hubsh' with no arguments.`,
	Aliases: []string{"repl", "interactive"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// runShell assembles the shell from the configured pieces and runs it
// until the user quits or input ends.
func runShell() error {
	ctx := rootCmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// The no-argument path bypasses cobra, so the config file may not
	// have been read yet. Initializing twice is harmless.
	initConfig()

	cfg := configLoader.Settings()
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	p := &pager.Pager{Command: pager.Select(cfg.Pager), Out: os.Stdout}
	renderer := render.New(p)
	renderer.Color = cfg.ColorEnabled(tty)

	// Credentials stay optional: without git on PATH the shell still
	// works, loadcfg just reports the problem.
	var creds shell.CredentialSource
	if src, err := gitconfig.New(); err == nil {
		creds = src
	} else {
		log.WithError(err).Debug("Stored git credentials unavailable")
	}

	sh, err := shell.New(shell.Options{
		Factory:  github.NewClient,
		Renderer: renderer,
		Creds:    creds,
		Log:      log,
		Version:  Version,
	})
	if err != nil {
		return err
	}
	defer sh.Close()

	return sh.Run(ctx)
}
