package ffitoolkit

import (
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/viniciusmorgado/ffi-toolkit/internal/cmem"
)

// NewCString copies s into a fresh C allocation with a trailing NUL byte and
// transfers ownership to the caller. Release with DestroyString.
//
// An embedded NUL in s cannot be represented in a NUL-terminated buffer;
// it is a contract violation and fatal (never silent truncation).
func NewCString(s string) unsafe.Pointer {
	if strings.IndexByte(s, 0) >= 0 {
		fatalf("NewCString: embedded NUL byte in %q", s)
	}
	p := cmem.Alloc(uintptr(len(s)) + 1)
	if len(s) > 0 {
		cmem.Memcpy(p, unsafe.Pointer(unsafe.StringData(s)), uintptr(len(s)))
	}
	// Alloc zeroes, so the terminator is already in place.
	return p
}

// GoStringFrom decodes a NUL-terminated UTF-8 buffer into a Go string. The
// buffer is borrowed: it is never freed here and must stay valid for the
// duration of the call. nil and invalid UTF-8 both decode to "". The lossy
// fallback is deliberate; this path has no error channel of its own.
func GoStringFrom(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	b := unsafe.Slice((*byte)(p), n)
	if !utf8.Valid(b) {
		return ""
	}
	return string(b)
}

// DestroyString releases a buffer produced by NewCString. nil is a no-op.
func DestroyString(p unsafe.Pointer) { cmem.Free(p) }
