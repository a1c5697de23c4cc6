// Package metadata persists librarian's controller state.
//
// All state lives in one YAML document (librarian.yaml by default) holding
// exactly six keys: the library and workspace roots, the current project,
// creation and modification times in epoch seconds, and the sync targets.
// Unrecognized keys are ignored when reading; all six keys are always written.
package metadata
