// Package library manages the projects stored under the library root and syncs
// them with the workspace.
//
// A project named "a/b" lives in <library>/a/b and is recognized by the marker
// file .librarian-project.yaml at its root. Projects never nest. The
// workspace holds one project at a time, so each sync target (for example
// "UserData") maps <library>/<project>/<target> onto <workspace>/<target>.
//
// Key components:
//   - FileLibrary: project lifecycle (create, copy, list, delete)
//   - Marker: per-project identity file
//   - Pull/Push: mirror sync targets between library and workspace
package library
