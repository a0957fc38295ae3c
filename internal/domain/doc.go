// Package domain defines the core dictionary types and interfaces.
//
// Concept-oriented files (entry.go, errors.go) hold shared types and the repository contract.
// No implementation code - just contracts.
package domain
