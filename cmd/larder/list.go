// List command queries records of a model with optional filtering.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var (
	flagLimit  int
	flagOffset int
	flagOrder  []string
)

var listCmd = &cobra.Command{
	Use:   "list <model> [filter...]",
	Short: "List records with optional filter",
	Long: `List queries records of the named model with optional filters.

Filters are column=value pairs ANDed together; values are parsed as JSON
when possible, so column=null matches IS NULL and column=5 matches the
number 5. An empty filter returns all records.

Example:
  larder list User
  larder list User age=30
  larder list User deleted_at=null --order name:asc --limit 10`,
	Args: cobra.MinimumNArgs(1),
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
		order, err := parseOrder(flagOrder)
		if err != nil {
			return err
		}

		q := types.Query{Where: conds, Order: order}
		if cmd.Flags().Changed("limit") {
			q.Limit = types.Limit(flagLimit)
		}
		if cmd.Flags().Changed("offset") {
			q.Offset = types.Offset(flagOffset)
		}

		records, err := m.FindAll(&q)
		if err != nil {
			return fmt.Errorf("list %s: %w", args[0], err)
		}
		return printJSON(records)
	},
}

func init() {
	listCmd.Flags().IntVar(&flagLimit, "limit", 0, "maximum number of records")
	listCmd.Flags().IntVar(&flagOffset, "offset", 0, "number of records to skip")
	listCmd.Flags().StringSliceVar(&flagOrder, "order", nil, "sort order as column:asc or column:desc")
}

// parseOrder parses --order values of the form column:asc or column:desc.
// A bare column name sorts ascending.
func parseOrder(specs []string) ([]types.Order, error) {
	order := make([]types.Order, 0, len(specs))
	for _, spec := range specs {
		column, dir, ok := strings.Cut(spec, ":")
		if !ok {
			order = append(order, types.OrderBy(column, types.Asc))
			continue
		}
		switch strings.ToUpper(dir) {
		case string(types.Asc):
			order = append(order, types.OrderBy(column, types.Asc))
		case string(types.Desc):
			order = append(order, types.OrderBy(column, types.Desc))
		default:
			return nil, fmt.Errorf("invalid order %q (expected column:asc or column:desc)", spec)
		}
	}
	return order, nil
}
