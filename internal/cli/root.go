package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hoanghonghuy/clog-ai/internal/config"
	"github.com/hoanghonghuy/clog-ai/internal/i18n"

	"github.com/spf13/cobra"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
	ExitConfigError  = 3
)

var (
	cfgFile string
	verbose bool
)

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var rootCmd = &cobra.Command{
	Use:           "clog-ai [init]",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Positional arguments other than init select the default path.
		if len(args) > 0 && strings.TrimSpace(args[0]) == "init" {
			exitCode = runInit(cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		}
		exitCode = runGenerate(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:  "init",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exitCode = runInit(cmd.OutOrStdout(), cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	msgs := i18n.MustNew(i18n.Fallback)

	rootCmd.Short = msgs.Get("app_short_description")
	rootCmd.Long = msgs.Get("app_long_description")
	initCmd.Short = msgs.Get("init_command_short")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", msgs.Get("config_file_flag"))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, msgs.Get("verbose_output_flag"))
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(initCmd)
}

// SetVersion sets the string printed by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Run executes the root command and returns an exit code.
func Run(ctx context.Context) int {
	exitCode = ExitSuccess
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return ExitUsageError
	}
	return exitCode
}

// configPath returns --config as an absolute path, or the default location.
func configPath() (string, error) {
	if cfgFile != "" {
		return filepath.Abs(cfgFile)
	}
	return config.DefaultPath()
}
