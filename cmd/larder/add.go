// Add command inserts a record built from column=value assignments.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <model> <column=value>...",
	Short: "Insert a record",
	Long: `Add inserts a record with the given column assignments. Values are
parsed as JSON when possible; column=null binds SQL NULL explicitly.
The created record, including its assigned primary key, is printed.

Example:
  larder add User email="a@b.com" name=Ada age=36`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := openStore()
		if err != nil {
			return err
		}
		defer gw.Close()

		m, err := modelFor(args[0], gw)
		if err != nil {
			return err
		}

		values, err := parseAssigns(args[1:])
		if err != nil {
			return err
		}

		record, err := m.Create(values)
		if err != nil {
			return fmt.Errorf("add %s: %w", args[0], err)
		}
		return printJSON(record)
	},
}
