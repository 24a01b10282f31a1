// Package orchestrator wires the loader → descriptor builder → renderer
// pipeline into a single entry point, providing dependency injection friendly
// helpers for consumers that want the whole skeleton in one call.
package orchestrator
