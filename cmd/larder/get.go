// Get command retrieves one record by primary key.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <model> <id>",
	Short: "Get a record by primary key",
	Args:  cobra.ExactArgs(2),
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

		record, err := m.FindByPK(parseValue(args[1]))
		if err != nil {
			return fmt.Errorf("get %s: %w", args[0], err)
		}
		if record == nil {
			return fmt.Errorf("%s %s not found", args[0], args[1])
		}
		return printJSON(record)
	},
}
