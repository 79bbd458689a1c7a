// Package cli provides the command-line interface for hubsh
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hubsh/hubsh/internal/config"
)

// Version information (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	verbose   bool
	pagerFlag string
	colorFlag string
)

// Global logger
var log = logrus.New()

// Config loader
var configLoader *config.Loader

// Root command
var rootCmd = &cobra.Command{
	Use:   "hubsh",
	Short: "Interactive GitHub shell",
	Long: `An interactive shell for working with GitHub from the terminal.

Running hubsh with no arguments starts the shell. Short mnemonic
commands (r.show, i.open, u.follow, ...) map onto the GitHub API,
and results are pretty-printed through a pager.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Inject config file values
		configLoader.InjectToCommand(cmd)

		// Re-read flags after injection
		verbose, _ = cmd.Flags().GetBool("verbose")
		pagerFlag, _ = cmd.Flags().GetString("pager")
		colorFlag, _ = cmd.Flags().GetString("color")

		// Set log level
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.InfoLevel)
		}

		return nil
	},
}

func init() {
	// Initialize config loader
	configLoader = config.NewLoader()
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&pagerFlag, "pager", "p", "", "Pager command for results (overrides $PAGER)")
	rootCmd.PersistentFlags().StringVarP(&colorFlag, "color", "c", "", "Colorize output: auto, always or never")
}

func initConfig() {
	if err := configLoader.Initialize(); err != nil {
		// Config initialization failure is not fatal for all commands
		log.Debugf("Config initialization: %v", err)
	}

	// Bind flags to viper
	configLoader.BindFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	configLoader.BindFlag("pager", rootCmd.PersistentFlags().Lookup("pager"))
	configLoader.BindFlag("color", rootCmd.PersistentFlags().Lookup("color"))
}

// Execute runs the root command
func Execute() {
	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// Store context for subcommands
	rootCmd.SetContext(ctx)

	// Check if running with no arguments - launch the shell
	if len(os.Args) == 1 {
		if err := runShell(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// GetLogger returns the global logger
func GetLogger() *logrus.Logger {
	return log
}

// GetVerbose returns the verbose flag
func GetVerbose() bool {
	return verbose
}
