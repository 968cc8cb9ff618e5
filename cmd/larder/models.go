// Declarative model definitions loaded from config.yaml and registered
// with the metadata registry on startup.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/larder/pkg/registry"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// modelDef is one entry of the config.yaml models list.
type modelDef struct {
	Name    string      `mapstructure:"name"`
	Table   string      `mapstructure:"table"`
	Columns []columnDef `mapstructure:"columns"`
}

// columnDef declares one column. AutoIncrement is a pointer so a primary
// key without an explicit auto_increment key defaults to autoincrement.
type columnDef struct {
	Property      string `mapstructure:"property"`
	Name          string `mapstructure:"name"`
	Type          string `mapstructure:"type"`
	PrimaryKey    bool   `mapstructure:"primary_key"`
	AutoIncrement *bool  `mapstructure:"auto_increment"`
	NotNull       bool   `mapstructure:"not_null"`
	Unique        bool   `mapstructure:"unique"`
	Default       any    `mapstructure:"default"`
}

// modelDefs decodes the models list from the loaded config.
func modelDefs(cfg *viper.Viper) ([]modelDef, error) {
	var defs []modelDef
	if err := cfg.UnmarshalKey(cfgKeyModels, &defs); err != nil {
		return nil, fmt.Errorf("parse model definitions: %w", err)
	}
	return defs, nil
}

// registerModels populates the registry from the decoded definitions.
func registerModels(reg *registry.Registry, defs []modelDef) error {
	for _, def := range defs {
		if def.Name == "" {
			return fmt.Errorf("model definition without a name")
		}
		if def.Table != "" {
			reg.Table(def.Name, def.Table)
		}
		for _, col := range def.Columns {
			opts, err := columnOptions(def.Name, col)
			if err != nil {
				return err
			}
			reg.Column(def.Name, col.Property, opts...)
		}
	}
	return nil
}

// columnOptions translates one column definition into registration
// options.
func columnOptions(model string, col columnDef) ([]types.ColumnOption, error) {
	if col.Property == "" {
		return nil, fmt.Errorf("model %s: column without a property name", model)
	}

	colType := types.ColumnType(strings.ToUpper(col.Type))
	if !types.IsValidColumnType(colType) {
		return nil, fmt.Errorf("model %s, column %s: %w (%q)",
			model, col.Property, types.ErrUnknownColumnType, col.Type)
	}

	opts := []types.ColumnOption{types.WithType(colType)}
	if col.Name != "" {
		opts = append(opts, types.WithName(col.Name))
	}
	if col.PrimaryKey {
		autoIncrement := true
		if col.AutoIncrement != nil {
			autoIncrement = *col.AutoIncrement
		}
		opts = append(opts, types.PrimaryKey(autoIncrement))
	}
	if col.NotNull {
		opts = append(opts, types.NotNull())
	}
	if col.Unique {
		opts = append(opts, types.Unique())
	}
	if col.Default != nil {
		opts = append(opts, types.Default(col.Default))
	}
	return opts, nil
}
