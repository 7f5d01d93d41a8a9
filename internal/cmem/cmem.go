// Package cmem owns every allocation that crosses the boundary. All C
// references in the module live in this single translation unit; the rest of
// the library works with unsafe.Pointer values handed out from here.
//
// Each Alloc has exactly one matching Free. The package keeps atomic
// alloc/free counters so callers (and the test suite) can verify that a
// sequence of boundary calls reclaimed everything it produced.
package cmem

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/rs/zerolog"
)

var (
	allocs atomic.Int64
	frees  atomic.Int64
)

// fatalLog writes straight to stderr; an allocation failure must be reported
// before the process dies and cannot go through any path that allocates.
var fatalLog = zerolog.New(os.Stderr).With().Timestamp().Str("component", "cmem").Logger()

// Alloc returns a zeroed C allocation of n bytes, ownership with the caller.
// n == 0 still yields a distinct live allocation so that alloc/free parity
// holds for empty buffers. A NULL return from the C allocator is fatal.
func Alloc(n uintptr) unsafe.Pointer {
	if n == 0 {
		n = 1
	}
	p := C.calloc(1, C.size_t(n))
	if p == nil {
		fatalLog.Error().Uint64("bytes", uint64(n)).Msg("C allocator returned NULL")
		panic(fmt.Sprintf("cmem: calloc(%d) returned NULL", n))
	}
	allocs.Add(1)
	return p
}

// Free releases an allocation produced by Alloc. Free(nil) is a no-op.
// Freeing the same pointer twice, or a pointer not produced by Alloc, is
// undefined behavior.
func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	frees.Add(1)
	C.free(p)
}

// Memcpy copies n bytes from src to dst. The regions must not overlap.
func Memcpy(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	C.memcpy(dst, src, C.size_t(n))
}

// Allocs reports the total number of Alloc calls since process start.
func Allocs() int64 { return allocs.Load() }

// Frees reports the total number of non-nil Free calls since process start.
func Frees() int64 { return frees.Load() }

// Live reports allocations not yet freed.
func Live() int64 { return allocs.Load() - frees.Load() }

// Stats returns the accounting counters in one call. A snapshot taken
// while another goroutine allocates may be skewed by in-flight calls;
// parity checks should quiesce first.
func Stats() (allocCount, freeCount, live int64) {
	a, f := allocs.Load(), frees.Load()
	return a, f, a - f
}
