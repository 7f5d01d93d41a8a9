package ffitoolkit

import (
	"testing"
	"unsafe"

	"github.com/viniciusmorgado/ffi-toolkit/internal/cmem"
)

func TestRelease_TypedDestructor(t *testing.T) {
	type payload struct {
		A uint64
		B [16]byte
	}
	base := cmem.Live()
	for i := 0; i < 50; i++ {
		r := OkValue(payload{A: uint64(i)})
		Release((*payload)(r.Ok))
		DestroyResult(r)
	}
	if live := cmem.Live(); live != base {
		t.Fatalf("typed release leaked %d allocations", live-base)
	}
}

func TestDestroy_ErasedHandle(t *testing.T) {
	base := cmem.Live()
	p := NewCBytes(make([]byte, 1024))
	Destroy(p)
	if live := cmem.Live(); live != base {
		t.Fatalf("erased destroy leaked %d allocations", live-base)
	}
}

func TestMustNonNil(t *testing.T) {
	var b byte
	MustNonNil(unsafe.Pointer(&b))

	mustPanic(t, "null pointer", func() {
		MustNonNil(unsafe.Pointer(&b), nil)
	})
}

func TestBytes_RoundTrip(t *testing.T) {
	in := []byte{0, 1, 2, 0xff, 0}
	p := NewCBytes(in)
	got := GoBytesFrom(p, len(in))
	DestroyBytes(p)
	if string(got) != string(in) {
		t.Fatalf("want % x, got % x", in, got)
	}
}

func TestBytes_EmptyStillOwned(t *testing.T) {
	base := cmem.Live()
	p := NewCBytes(nil)
	if p == nil {
		t.Fatalf("empty buffer has no handle")
	}
	if got := GoBytesFrom(p, 0); got != nil {
		t.Fatalf("want nil for zero length, got % x", got)
	}
	DestroyBytes(p)
	if live := cmem.Live(); live != base {
		t.Fatalf("empty buffer leaked %d allocations", live-base)
	}
}
