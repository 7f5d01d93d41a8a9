package ffitoolkit

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciusmorgado/ffi-toolkit/internal/cmem"
)

func TestUUID_RoundTrip(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	base := cmem.Live()
	p := NewUUIDHandle(id)
	require.NotNil(t, p)
	assert.Equal(t, id, UUIDFromHandle(p))
	DestroyUUID(p)
	assert.Equal(t, base, cmem.Live())
}

func TestUUID_NilHandle(t *testing.T) {
	assert.Equal(t, uuid.Nil, UUIDFromHandle(nil))
}

func TestUUID_AsPayload(t *testing.T) {
	id := uuid.New()
	r := OkHandle(NewUUIDHandle(id))
	require.NotNil(t, r.Ok)
	require.Nil(t, r.Err)
	assert.Equal(t, id, UUIDFromHandle(r.Ok))
	DestroyUUID(r.Ok)
	DestroyResult(r)
}
