// Package ffitoolkit implements the value-passing protocol used when this
// module is built as a shared library and called from another runtime. The
// only contract shared with the caller is the platform calling convention:
// no common collector, no common exception mechanism, no common string type.
//
// Every boundary call returns a single pointer to an ExternResult, a
// two-field envelope on the C heap:
//
//   - success with a payload: Ok non-null, Err null
//   - success with no value:  both null
//   - failure:                Ok null, Err pointing at an ExternError
//
// The foreign caller inspects the two fields, uses the payload or the
// (kind, message) pair, and then releases everything reachable from the
// envelope in reverse allocation order: DestroyError for the error
// substructure, the payload's own typed release, DestroyResult last. Every
// release primitive treats nil as a no-op and treats a double free or a
// foreign pointer as undefined behavior.
//
// The protocol is stateless. Each envelope and its transitive allocations
// belong to whichever single goroutine or foreign thread holds the handle,
// so no operation here synchronizes.
package ffitoolkit
