// Package planner computes the filesystem operations needed to sync one
// directory tree onto another.
//
// Push and pull never copy blindly. The planner walks the source tree and the
// destination tree side by side and emits an ordered plan: stale destination
// entries are removed, missing directories are created and only files whose
// content differs are copied. Executing the plan leaves the destination an
// exact mirror of the source.
package planner
