package ffitoolkit

import (
	"unsafe"

	"github.com/viniciusmorgado/ffi-toolkit/internal/cmem"
)

// Destroy releases a type-erased allocation produced by this package.
// It is the void* release foreign callers reach for when the payload's
// concrete type carries no resources beyond its own allocation. nil is a
// no-op; any pointer not produced by a constructor here, or already freed,
// is undefined behavior.
func Destroy(p unsafe.Pointer) { cmem.Free(p) }

// Release is the typed destructor, one instantiation per concrete payload
// type at the call site that knows the type. It plays the role a per-type
// generated release function plays in C bindings. nil is a no-op.
func Release[T any](p *T) {
	if p == nil {
		return
	}
	cmem.Free(unsafe.Pointer(p))
}

// MustNonNil guards boundary entry points that require non-null handles.
// A nil argument is a caller contract violation and fatal.
func MustNonNil(ps ...unsafe.Pointer) {
	for i, p := range ps {
		if p == nil {
			fatalf("unexpected null pointer (argument %d)", i)
		}
	}
}
