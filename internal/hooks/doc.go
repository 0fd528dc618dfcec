// Package hooks executes resolved hooks and dispatches lifecycle events.
//
// [Run] takes one resolved hook through the full execution sequence:
// expand the action's placeholders into a concrete argument list, spawn the
// command from the repository root with the source working copy first in
// PATH, and on success re-stage any staged file the hook modified.
//
// [Dispatch] walks every materialized source, selects the hooks bound to
// the event that are active in the top-level config, and runs them in
// order, collecting failures into one aggregate error after all matched
// hooks have been attempted.
//
// Execution is strictly serial: hooks mutate the shared working tree and
// index, and the engine is the only writer of git state during a dispatch.
package hooks
