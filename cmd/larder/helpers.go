// Shared helpers for larder CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mesh-intelligence/larder/pkg/larder"
	"github.com/mesh-intelligence/larder/pkg/sqlite"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// openStore resolves the data directory and opens the SQLite gateway. The
// caller must defer gw.Close().
func openStore() (types.Gateway, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	gw := sqlite.NewGateway()
	if err := gw.Open(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return gw, nil
}

// modelFor constructs the accessor for a declared model name.
func modelFor(name string, gw types.Executor) (*larder.Model, error) {
	if _, ok := models.Lookup(name); !ok {
		return nil, fmt.Errorf("unknown model %q (declare it under models: in config.yaml)", name)
	}
	return larder.NewModel(name, models, gw), nil
}

// parseValue interprets a CLI argument value as JSON when possible,
// falling back to the raw string. "null" therefore becomes nil, numbers
// become numbers, and everything else stays text.
func parseValue(raw string) any {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return raw
	}
	return parsed
}

// parseAssigns turns key=value arguments into ordered column assignments.
func parseAssigns(args []string) (types.Values, error) {
	values := make(types.Values, 0, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid assignment %q (expected column=value)", arg)
		}
		values = append(values, types.Set(key, parseValue(raw)))
	}
	return values, nil
}

// parseFilter turns key=value arguments into equality conditions; a JSON
// null value becomes an IS NULL test.
func parseFilter(args []string) ([]types.Cond, error) {
	conds := make([]types.Cond, 0, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid filter %q (expected column=value)", arg)
		}
		conds = append(conds, types.Eq(key, parseValue(raw)))
	}
	return conds, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
