// Package types defines the passive data model for the Larder storage
// layer: configuration, column and schema descriptors, query descriptors,
// ordered value lists, execution results, and the standard errors shared by
// the registry, the statement builder, and the record accessor.
//
// Everything in this package is plain data. The packages that act on these
// types are pkg/registry (metadata resolution), internal/statement (SQL
// generation), internal/sqlite (execution), and pkg/larder (the per-model
// accessor).
package types
