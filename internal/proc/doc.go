// Package proc owns the lifecycle of spawned script processes.
//
// Every script runs in its own process group so that termination reaches the
// whole tree, including grandchildren a runtime may fork. Full group
// termination is only guaranteed on Unix, where signals sent to the negated
// pid fan out through the kernel's job-control semantics. On Windows the
// package offers best-effort semantics: the direct child is terminated, but
// grandchildren may remain and must be cleaned up separately by the caller.
//
// A Handle is the single owner of a group's identity. Kill escalates from
// graceful to forceful termination and is idempotent; Close additionally
// removes the process from the package registry and is safe to defer on
// every exit path.
package proc
