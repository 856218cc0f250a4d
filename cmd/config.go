package cmd

import (
	"time"

	consts "github.com/khanhnv2901/arch-health/internal/shared/constants"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultFormat   = "text"
	defaultLogLevel = "warn"
	defaultLogMaxMB = 10
	defaultLogFiles = 3
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Checks  ChecksConfig
	Output  OutputConfig
	Library LibraryConfig
	Log     LogConfig
}

// ChecksConfig selects which checks a full run performs.
type ChecksConfig struct {
	Library bool
	Pacman  bool
	Audit   bool
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format   string
	Progress bool
	History  bool
	Strict   bool
}

// LibraryConfig tunes the ELF dependency scan.
type LibraryConfig struct {
	Roots         []string
	LddPath       string
	Workers       int
	RateLimit     int
	ProbeTimeout  time.Duration
	ProgressEvery int
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

type configOverrides struct {
	Library       *bool
	Pacman        *bool
	Audit         *bool
	Format        string
	History       *bool
	Roots         []string
	LddPath       string
	Workers       *int
	RateLimit     *int
	ProbeTimeout  *time.Duration
	ProgressEvery *int
	LogLevel      string
	LogFile       string
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Checks: ChecksConfig{
			Library: true,
			Pacman:  true,
			Audit:   false,
		},
		Output: OutputConfig{
			Format:   defaultFormat,
			Progress: true,
		},
		Library: LibraryConfig{
			Roots:         append([]string(nil), consts.DefaultLibraryRoots...),
			LddPath:       consts.DefaultLddPath,
			Workers:       0,
			RateLimit:     0,
			ProbeTimeout:  0,
			ProgressEvery: consts.DefaultProgressEvery,
		},
		Log: LogConfig{
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxMB,
			MaxBackups: defaultLogFiles,
		},
	}
}

func loadConfigOverrides() configOverrides {
	overrides := configOverrides{}

	if viper.IsSet("checks.library") {
		val := viper.GetBool("checks.library")
		overrides.Library = &val
	}
	if viper.IsSet("checks.pacman") {
		val := viper.GetBool("checks.pacman")
		overrides.Pacman = &val
	}
	if viper.IsSet("checks.audit") {
		val := viper.GetBool("checks.audit")
		overrides.Audit = &val
	}

	if viper.IsSet("output.format") {
		overrides.Format = viper.GetString("output.format")
	}
	if viper.IsSet("output.history") {
		val := viper.GetBool("output.history")
		overrides.History = &val
	}

	if viper.IsSet("library.roots") {
		overrides.Roots = viper.GetStringSlice("library.roots")
	}
	if viper.IsSet("library.ldd_path") {
		overrides.LddPath = viper.GetString("library.ldd_path")
	}
	if viper.IsSet("library.workers") {
		val := viper.GetInt("library.workers")
		overrides.Workers = &val
	}
	if viper.IsSet("library.rate_limit") {
		val := viper.GetInt("library.rate_limit")
		overrides.RateLimit = &val
	}
	if viper.IsSet("library.probe_timeout") {
		val := viper.GetDuration("library.probe_timeout")
		overrides.ProbeTimeout = &val
	}
	if viper.IsSet("library.progress_every") {
		val := viper.GetInt("library.progress_every")
		overrides.ProgressEvery = &val
	}

	if viper.IsSet("log.level") {
		overrides.LogLevel = viper.GetString("log.level")
	}
	if viper.IsSet("log.file") {
		overrides.LogFile = viper.GetString("log.file")
	}

	return overrides
}

// applyConfigDefaults merges config file values into the runtime config when the user
// did not explicitly override the corresponding flag.
func applyConfigDefaults(flags *pflag.FlagSet) {
	overrides := loadConfigOverrides()

	// checks.* have no flags: a full run takes them straight from config.
	if overrides.Library != nil {
		cliConfig.Checks.Library = *overrides.Library
	}
	if overrides.Pacman != nil {
		cliConfig.Checks.Pacman = *overrides.Pacman
	}
	if overrides.Audit != nil {
		cliConfig.Checks.Audit = *overrides.Audit
	}

	if overrides.Format != "" {
		applyStringDefault(flags, "format", overrides.Format, func(v string) {
			cliConfig.Output.Format = v
		})
	}
	if overrides.History != nil {
		applyBoolDefault(flags, "history", *overrides.History, func(v bool) {
			cliConfig.Output.History = v
		})
	}

	if len(overrides.Roots) > 0 {
		cliConfig.Library.Roots = overrides.Roots
	}
	if overrides.LddPath != "" {
		applyStringDefault(flags, "ldd", overrides.LddPath, func(v string) {
			cliConfig.Library.LddPath = v
		})
	}
	if overrides.Workers != nil {
		applyIntDefault(flags, "workers", *overrides.Workers, func(v int) {
			cliConfig.Library.Workers = v
		})
	}
	if overrides.RateLimit != nil {
		applyIntDefault(flags, "rate-limit", *overrides.RateLimit, func(v int) {
			cliConfig.Library.RateLimit = v
		})
	}
	if overrides.ProbeTimeout != nil {
		applyDurationDefault(flags, "probe-timeout", *overrides.ProbeTimeout, func(v time.Duration) {
			cliConfig.Library.ProbeTimeout = v
		})
	}
	if overrides.ProgressEvery != nil && *overrides.ProgressEvery > 0 {
		cliConfig.Library.ProgressEvery = *overrides.ProgressEvery
	}

	if overrides.LogLevel != "" {
		applyStringDefault(flags, "log-level", overrides.LogLevel, func(v string) {
			cliConfig.Log.Level = v
		})
	}
	if overrides.LogFile != "" {
		applyStringDefault(flags, "log-file", overrides.LogFile, func(v string) {
			cliConfig.Log.File = v
		})
	}
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, setter func(int)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyBoolDefault(flags *pflag.FlagSet, name string, value bool, setter func(bool)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyStringDefault(flags *pflag.FlagSet, name, value string, setter func(string)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyDurationDefault(flags *pflag.FlagSet, name string, value time.Duration, setter func(time.Duration)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}
