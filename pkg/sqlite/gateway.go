// Package sqlite provides the public API for the SQLite storage gateway.
// It exposes the factory function while keeping implementation details
// internal.
package sqlite

import (
	"github.com/mesh-intelligence/larder/internal/sqlite"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// NewGateway creates a new SQLite gateway. The gateway is not connected;
// call Open with a Config to initialize.
//
// Example:
//
//	gw := sqlite.NewGateway()
//	err := gw.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".larder",
//	})
//	defer gw.Close()
func NewGateway() types.Gateway {
	return sqlite.NewGateway()
}
