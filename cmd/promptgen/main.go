package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alnah/go-promptgen/internal/cli"
	"github.com/alnah/go-promptgen/internal/config"
	"github.com/alnah/go-promptgen/internal/form"
	"github.com/alnah/go-promptgen/internal/interrupt"
	"github.com/alnah/go-promptgen/internal/logger"
	"github.com/alnah/go-promptgen/internal/request"
	"github.com/alnah/go-promptgen/internal/template"
	"github.com/alnah/go-promptgen/internal/tool"
)

// Injected at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitGeneral    = 1
	ExitUsage      = 2
	ExitSetup      = 3
	ExitValidation = 4
	ExitInterrupt  = interrupt.ExitInterrupt
)

// envLogLevel overrides the default log level when --log-level is not given.
var envLogLevel = config.EnvPrefix + "_LOG_LEVEL"

func main() {
	// Load .env file if present (ignore error if missing).
	_ = godotenv.Load()

	// Context with signal cancellation.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create the CLI environment with production defaults.
	env := cli.DefaultEnv()
	rootCmd := newRootCmd(env)

	err := rootCmd.ExecuteContext(ctx)
	_ = env.Logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// newRootCmd builds the command tree over env.
func newRootCmd(env *cli.Env) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "promptgen",
		Short:   "Generate structured prompts for AI writing tools",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		// Silence Cobra's default error/usage printing; we handle it ourselves.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel == "" {
				logLevel = env.Getenv(envLogLevel)
			}
			return cli.SetupLogger(env, logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level on stderr: debug, info, warn, error (default: off)")

	// Subcommands.
	rootCmd.AddCommand(cli.GenerateCmd(env))
	rootCmd.AddCommand(cli.TemplateCmd(env))
	rootCmd.AddCommand(cli.BatchCmd(env))
	rootCmd.AddCommand(cli.ListCmd(env))
	rootCmd.AddCommand(cli.ServeCmd(env))
	rootCmd.AddCommand(cli.ConfigCmd(env))

	return rootCmd
}

// exitCode maps errors to exit codes.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	// Check for context cancellation (interrupt).
	if errors.Is(err, context.Canceled) {
		return ExitInterrupt
	}

	// Usage errors (ExitUsage = 2): Cobra flag/arg parsing errors and flag
	// combinations rejected by the commands.
	if isCobraUsageError(err) || errors.Is(err, cli.ErrFlagConflict) ||
		errors.Is(err, cli.ErrInvalidAssignment) || errors.Is(err, logger.ErrInvalidLevel) {
		return ExitUsage
	}

	// Setup errors (ExitSetup = 3).
	if errors.Is(err, cli.ErrClipboardUnavailable) || errors.Is(err, cli.ErrNotTerminal) {
		return ExitSetup
	}

	// Validation errors (ExitValidation = 4).
	if errors.Is(err, request.ErrInvalidInput) || errors.Is(err, form.ErrMissingField) ||
		errors.Is(err, form.ErrInvalidChoice) ||
		errors.Is(err, template.ErrUnknown) || errors.Is(err, tool.ErrInvalid) ||
		errors.Is(err, cli.ErrFileNotFound) || errors.Is(err, cli.ErrOutputExists) ||
		errors.Is(err, config.ErrUnknownKey) || errors.Is(err, config.ErrInvalidKey) ||
		errors.Is(err, config.ErrInvalidValue) {
		return ExitValidation
	}

	return ExitGeneral
}

// cobraUsageErrorPatterns contains error message substrings that indicate Cobra usage errors.
// Cobra doesn't expose typed errors, so string matching is the only reliable approach.
var cobraUsageErrorPatterns = []string{
	"required flag",             // Missing required flag
	"unknown flag",              // Flag doesn't exist
	"unknown shorthand",         // Short flag doesn't exist
	"unknown command",           // Subcommand doesn't exist
	"flag needs an argument",    // Flag provided without value
	"invalid argument",          // Invalid flag value type
	"if any flags in the group", // Mutually exclusive flag violation
	"accepts ",                  // Wrong number of arguments (e.g., "accepts 1 arg(s)")
	"requires at least",         // Too few arguments
	"requires at most",          // Too many arguments
}

// isCobraUsageError checks if an error is a Cobra usage/parsing error.
func isCobraUsageError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := err.Error()
	for _, pattern := range cobraUsageErrorPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
