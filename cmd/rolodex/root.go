// Root command for the rolodex CLI.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dukaforge/rolodex/internal/logging"
	"github.com/dukaforge/rolodex/internal/paths"
	"github.com/dukaforge/rolodex/pkg/rolodex"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagLogLevel  string
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// logger is the process-wide logger, built in PersistentPreRunE.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:     "rolodex",
	Short:   "Rolodex is a local contact book with per-user accounts",
	Version: rolodex.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)

		level := flagLogLevel
		if level == "" {
			level = cfg.GetString(cfgKeyLogLevel)
		}
		l, err := logging.New(level, "console")
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.rolodex-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(adminCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > ROLODEX_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > ROLODEX_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
