// Sync command creates tables for declared models.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagForce bool

var syncCmd = &cobra.Command{
	Use:   "sync [model...]",
	Short: "Create tables for declared models",
	Long: `Sync creates the table for each named model from its declared columns.
Without arguments every declared model is synced. Sync is idempotent;
existing tables and their data are left alone unless --force is given,
which drops and recreates the tables, losing existing rows.

Example:
  larder sync
  larder sync User
  larder sync User --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := openStore()
		if err != nil {
			return err
		}
		defer gw.Close()

		names := args
		if len(names) == 0 {
			names = models.Models()
		}
		if len(names) == 0 {
			return fmt.Errorf("no models declared (add them under models: in config.yaml)")
		}

		for _, name := range names {
			m, err := modelFor(name, gw)
			if err != nil {
				return err
			}
			if err := m.Sync(flagForce); err != nil {
				return err
			}
			fmt.Printf("synced %s -> %s\n", name, m.TableName())
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&flagForce, "force", false, "drop and recreate tables")
}
