// Package database manages the relational store connection.
//
// It wraps GORM with a driver switch: MySQL for production, sqlite for local
// development and tests. Connect verifies the connection with a bounded ping
// before returning it. Migrate applies the schema for the tracker entities,
// and the inspector helpers expose column-level metadata for schema checks.
package database
