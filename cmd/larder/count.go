// Count command counts records matching a filter.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var countCmd = &cobra.Command{
	Use:   "count <model> [filter...]",
	Short: "Count records matching a filter",
	Args:  cobra.MinimumNArgs(1),
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

		conds, err := parseFilter(args[1:])
		if err != nil {
			return err
		}

		count, err := m.Count(&types.Query{Where: conds})
		if err != nil {
			return fmt.Errorf("count %s: %w", args[0], err)
		}
		fmt.Println(count)
		return nil
	},
}
