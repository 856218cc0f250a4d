package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	sharedErrors "github.com/khanhnv2901/arch-health/internal/shared/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "ARCHHC"

var cfgFile string
var logger = zap.NewNop().Sugar()

var rootCmd = &cobra.Command{
	Use:   "arch-health",
	Short: "Health check for an Arch Linux system: shared libraries, package files, known vulnerabilities",
	Long: `Run the system health check.

Every enabled check runs in turn:
- library: ldd over every ELF file in /usr/bin, /usr/lib, /usr/local/bin, /usr/local/lib
- pacman:  pacman -Qk package file consistency
- audit:   arch-audit --vulnerable (disabled by default)

Checks are selected in the config file; use "check <name>" to run one.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configErr := initConfig()
		applyConfigDefaults(cmd.Flags())

		l, err := newLogger(cliConfig.Log, cmd.ErrOrStderr())
		if err != nil {
			if flag := cmd.Flags().Lookup("log-level"); flag != nil && flag.Changed {
				return err
			}
			// a bad level from the config file falls back like any other config error
			cliConfig.Log.Level = defaultLogLevel
			if l, err = newLogger(cliConfig.Log, cmd.ErrOrStderr()); err != nil {
				return err
			}
		}
		logger = l.Sugar()

		if configErr != nil {
			logger.Debugw("config not loaded, using defaults", "error", configErr)
		} else if path := viper.ConfigFileUsed(); path != "" {
			logger.Debugw("config loaded", "path", path)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHealthCheck(cmd, checkSelection{
			Library: cliConfig.Checks.Library,
			Pacman:  cliConfig.Checks.Pacman,
			Audit:   cliConfig.Checks.Audit,
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// initConfig points viper at the first config file found and reads it.
// Environment variables such as ARCHHC_OUTPUT_FORMAT override file values.
func initConfig() error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	path := cfgFile
	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return nil
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: %s: %v", sharedErrors.ErrInvalidConfig, path, err)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var issues *IssuesFoundError
		if errors.As(err, &issues) {
			fmt.Fprintln(os.Stderr, colorWarn(err.Error()))
			os.Exit(issues.ExitCode())
		}
		fmt.Fprintln(os.Stderr, colorError("Error:"), err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()

	// config file flag
	flags.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/arch-health/config.toml, then ./.archhc.toml)")

	// output
	flags.StringVarP(&cliConfig.Output.Format, "format", "f", cliConfig.Output.Format, "output format: text, json, yaml")
	flags.BoolVar(&cliConfig.Output.Progress, "progress", cliConfig.Output.Progress, "show progress on stderr (text format on a terminal only)")
	flags.BoolVar(&cliConfig.Output.History, "history", cliConfig.Output.History, "append a run summary to the history file")
	flags.BoolVar(&cliConfig.Output.Strict, "strict", cliConfig.Output.Strict, "exit with status 2 when any check finds issues")

	// library scan
	flags.StringVar(&cliConfig.Library.LddPath, "ldd", cliConfig.Library.LddPath, "dependency-resolution utility run against each file")
	flags.IntVar(&cliConfig.Library.Workers, "workers", cliConfig.Library.Workers, "parallel ldd probes (0 = number of CPUs)")
	flags.IntVar(&cliConfig.Library.RateLimit, "rate-limit", cliConfig.Library.RateLimit, "max ldd probes started per second (0 = unlimited)")
	flags.DurationVar(&cliConfig.Library.ProbeTimeout, "probe-timeout", cliConfig.Library.ProbeTimeout, "per-file ldd timeout (0 = no timeout)")

	// logging
	flags.StringVar(&cliConfig.Log.Level, "log-level", cliConfig.Log.Level, "log level: debug, info, warn, error")
	flags.StringVar(&cliConfig.Log.File, "log-file", cliConfig.Log.File, "also write JSON logs to this file, rotated by size")

	// add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
