// Package cli provides the command-line interface for indentect.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/l0b0/indentect/internal/cli/commands"
	"github.com/l0b0/indentect/internal/cli/config"
	"github.com/l0b0/indentect/pkg/indent"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "indentect [options] [FILE...]",
		Short: "Diagnose mixed tab and space indentation",
		Long: `indentect checks whether files (or standard input) mix tabs and spaces in
their indentation, and exits with status 1 when they do.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return &commands.ArgumentError{Err: err}
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg)
			if cfg.ConfigFile != "" {
				logger.Debug("using config file", "path", cfg.ConfigFile)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunCheck(cmd, &commands.CheckOptions{
				Files: args,
				Stdin: cmd.InOrStdin(),
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), helpText)
	})
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &commands.ArgumentError{Err: err}
	})

	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./.indentect.yaml)")
	flags.BoolP("verbose", "v", false, "Print every line's indentation and a summary")
	flags.String("color", "", "Color output (auto|always|never)")
	flags.String("scope", "", "Consistency scope (file|run)")
	flags.Bool("skip-binary", false, "Skip sources that look binary")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")

	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ColorAuto, config.ColorAlways, config.ColorNever}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("scope", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(indent.ScopeFile), string(indent.ScopeRun)}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	return rootCmd
}

// report prints errors that were not already reported while running.
func report(cmd *cobra.Command, err error) {
	var exitErr *commands.ExitError
	if err == nil || errors.As(err, &exitErr) {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "indentect: %v\n", err)
	var argErr *commands.ArgumentError
	if errors.As(err, &argErr) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Run 'indentect --help' for usage.")
	}
}

// ExitCode maps an Execute error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return indent.ExitOK
	}
	var exitErr *commands.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return indent.ExitError
}

// Run executes the root command with args on the given streams and returns
// the process exit status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	report(rootCmd, err)
	return ExitCode(err)
}
