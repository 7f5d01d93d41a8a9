package ffitoolkit

import (
	"unsafe"

	"github.com/viniciusmorgado/ffi-toolkit/internal/cmem"
)

// NewCBytes copies b into a fresh C allocation and transfers ownership.
// Unlike text buffers there is no terminator; the caller must carry the
// length alongside the handle. Release with DestroyBytes.
func NewCBytes(b []byte) unsafe.Pointer {
	p := cmem.Alloc(uintptr(len(b)))
	if len(b) > 0 {
		cmem.Memcpy(p, unsafe.Pointer(&b[0]), uintptr(len(b)))
	}
	return p
}

// GoBytesFrom copies n bytes out of a borrowed buffer. nil or a
// non-positive length yields nil.
func GoBytesFrom(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(p), n))
	return out
}

// DestroyBytes releases a buffer produced by NewCBytes. nil is a no-op.
func DestroyBytes(p unsafe.Pointer) { cmem.Free(p) }
