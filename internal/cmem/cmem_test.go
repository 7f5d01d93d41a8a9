package cmem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocFreeParity(t *testing.T) {
	base := Live()
	ps := make([]unsafe.Pointer, 0, 64)
	for i := 0; i < 64; i++ {
		ps = append(ps, Alloc(uintptr(i)))
	}
	assert.Equal(t, base+64, Live())
	for _, p := range ps {
		Free(p)
	}
	assert.Equal(t, base, Live())
}

func TestAllocZeroBytesIsDistinct(t *testing.T) {
	base := Live()
	p := Alloc(0)
	require.NotNil(t, p)
	assert.Equal(t, base+1, Live())
	Free(p)
	assert.Equal(t, base, Live())
}

func TestAllocIsZeroed(t *testing.T) {
	p := Alloc(32)
	defer Free(p)
	for i := 0; i < 32; i++ {
		require.Zero(t, *(*byte)(unsafe.Add(p, i)), "byte %d", i)
	}
}

func TestStatsSnapshot(t *testing.T) {
	p := Alloc(8)

	allocCount, freeCount, live := Stats()
	assert.Equal(t, Allocs(), allocCount)
	assert.Equal(t, Frees(), freeCount)
	assert.Equal(t, allocCount-freeCount, live)
	assert.Equal(t, Live(), live)

	Free(p)
	_, _, after := Stats()
	assert.Equal(t, live-1, after)
}

func TestFreeNilIsNoOp(t *testing.T) {
	frees := Frees()
	Free(nil)
	assert.Equal(t, frees, Frees(), "nil free must not count")
}

func TestMemcpy(t *testing.T) {
	src := Alloc(8)
	dst := Alloc(8)
	defer Free(src)
	defer Free(dst)

	*(*uint64)(src) = 0xdeadbeefcafe
	Memcpy(dst, src, 8)
	assert.Equal(t, uint64(0xdeadbeefcafe), *(*uint64)(dst))

	Memcpy(dst, nil, 0) // zero-length copy never touches pointers
}
