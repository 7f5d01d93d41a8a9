package ffitoolkit

import (
	"unsafe"

	"github.com/google/uuid"

	"github.com/viniciusmorgado/ffi-toolkit/internal/cmem"
)

// uuidSize is fixed by RFC 4122; the buffer crosses the boundary as a plain
// 16-byte array, not a formatted string.
const uuidSize = 16

// NewUUIDHandle copies id into an owned 16-byte C buffer and transfers
// ownership. Release with DestroyUUID.
func NewUUIDHandle(id uuid.UUID) unsafe.Pointer {
	p := cmem.Alloc(uuidSize)
	*(*[uuidSize]byte)(p) = id
	return p
}

// UUIDFromHandle reads a borrowed 16-byte buffer back into a uuid.UUID.
// nil yields uuid.Nil.
func UUIDFromHandle(p unsafe.Pointer) uuid.UUID {
	if p == nil {
		return uuid.Nil
	}
	return uuid.UUID(*(*[uuidSize]byte)(p))
}

// DestroyUUID releases a buffer produced by NewUUIDHandle. nil is a no-op.
func DestroyUUID(p unsafe.Pointer) { cmem.Free(p) }
