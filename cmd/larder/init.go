// Init command for the larder CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize larder storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}

		// Opening the store creates the data directory; the connection is
		// lazy, so probe it once to materialize the database file.
		gw, err := openStore()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer gw.Close()

		if _, err := gw.Execute("SELECT 1 AS probe", nil); err != nil {
			return fmt.Errorf("init: %w", err)
		}

		dataDir, err := resolveDataDir()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}

		fmt.Println("Larder initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}
