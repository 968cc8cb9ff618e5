// Root command for the larder CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/paths"
	"github.com/mesh-intelligence/larder/pkg/larder"
	"github.com/mesh-intelligence/larder/pkg/registry"
)

// Exit code for any command error; success exits 0 implicitly.
const exitUserError = 1

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
)

// configDataDir holds the data_dir value loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var configDataDir string

// models is the registry populated from the model definitions in
// config.yaml. Constructed once per invocation.
var models = registry.New()

var rootCmd = &cobra.Command{
	Use:          "larder",
	Short:        "Larder is a declarative record store over embedded SQLite",
	Version:      larder.Version,
	SilenceUsage: true,
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

		defs, err := modelDefs(cfg)
		if err != nil {
			return err
		}
		return registerModels(models, defs)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.larder-db)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(delCmd)
	rootCmd.AddCommand(countCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > LARDER_CONFIG_DIR > platform
// default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence
// chain: --data-dir flag > config.yaml data_dir > LARDER_DATA_DIR >
// default $(CWD)/.larder-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
