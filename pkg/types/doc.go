// Package types defines the ReadingStore interface, domain entity types,
// and standard error types for the horasat reading engine.
package types
