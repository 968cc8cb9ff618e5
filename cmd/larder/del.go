// Del command deletes records by primary key or filter.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var delCmd = &cobra.Command{
	Use:   "del <model> <id | column=value...>",
	Short: "Delete records",
	Long: `Del deletes by primary key when given a bare id, or every record
matching the column=value filters otherwise.

Example:
  larder del User 3
  larder del User age=0`,
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

		conds, err := delConds(m.PrimaryKeyName(), args[1:])
		if err != nil {
			return err
		}

		count, err := m.Destroy(&types.Query{Where: conds})
		if err != nil {
			return fmt.Errorf("del %s: %w", args[0], err)
		}
		fmt.Printf("deleted %d record(s)\n", count)
		return nil
	},
}

// delConds interprets the arguments: a single bare value is a primary-key
// match, anything else is a column=value filter list.
func delConds(pkName string, args []string) ([]types.Cond, error) {
	if len(args) == 1 && !strings.Contains(args[0], "=") {
		return []types.Cond{types.Eq(pkName, parseValue(args[0]))}, nil
	}
	return parseFilter(args)
}
