// Package app provides the application service layer.
//
// Orchestrates the dictionary use cases: entry validation, lookups and definitions.
// Sits between HTTP handlers and the dictionary repository. Depends on domain interfaces, not concrete implementations.
package app
