// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout
// the application, facilitating consistent and DRY testing across the
// codebase. Instead of defining inline mocks in individual test files, these
// standardized mock implementations can be reused.
//
// Each mock follows the same shape: exported function fields override
// individual methods, and when a field is nil the mock falls back to a
// functional in-memory default. The in-memory stores implement the real
// ordering, pagination, and token-consumption semantics so service tests can
// exercise those contracts without a database.
package mocks
