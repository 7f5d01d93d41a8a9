package ffitoolkit

import (
	"reflect"
	"unsafe"

	"github.com/viniciusmorgado/ffi-toolkit/internal/cmem"
)

// ExternResult is the two-field envelope every boundary call returns.
// Instances live on the C heap and are layout-identical to:
//
//	typedef struct ft_result {
//	    void*     ok;
//	    ft_error* err;
//	} ft_result;
//
// Exactly one of Ok/Err is non-null for a meaningful result; both null is
// the explicit "ok with no value" state. Err non-null implies Ok is null.
//
// Ownership is exclusive and transferred at return: after a constructor
// returns, the producing side holds no reference to anything reachable from
// the envelope, and the consumer must release all of it. Release order is
// the reverse of allocation: the error substructure via DestroyError, the
// payload via whatever release matches its true type (DestroyResult cannot
// know it), and finally the envelope via DestroyResult.
type ExternResult struct {
	Ok  unsafe.Pointer
	Err *ExternError
}

// OkValue copies v into a fresh C allocation and wraps it in a success
// envelope. The payload handle is type-erased; the caller is expected to
// know T by construction and release the payload with Release[T] (or
// Destroy) before releasing the envelope.
//
// T must not contain Go pointers (strings, slices, maps, pointers, ...):
// the copy lives on the C heap where the Go collector cannot see it.
// Violations are fatal, not silent.
func OkValue[T any](v T) *ExternResult {
	return OkHandle(box(v))
}

// OkHandle adopts an already-allocated handle as the payload without
// copying. Ownership of p moves into the envelope's consumer.
func OkHandle(p unsafe.Pointer) *ExternResult {
	r := (*ExternResult)(cmem.Alloc(unsafe.Sizeof(ExternResult{})))
	r.Ok = p
	return r
}

// OkEmpty builds the "succeeded with no value" envelope: both fields null.
func OkEmpty() *ExternResult {
	return (*ExternResult)(cmem.Alloc(unsafe.Sizeof(ExternResult{})))
}

// OkOptional wraps an optional value: nil becomes OkEmpty, anything else is
// copied as OkValue. Purely a dispatch, not a distinct allocation path.
func OkOptional[T any](v *T) *ExternResult {
	if v == nil {
		return OkEmpty()
	}
	return OkValue(*v)
}

// Err builds a failure envelope carrying kind and a copy of msg.
// Allocation order is innermost-first: message buffer, error record,
// envelope.
func Err(kind ErrorKind, msg string) *ExternResult {
	e := newExternError(kind, msg)
	r := (*ExternResult)(cmem.Alloc(unsafe.Sizeof(ExternResult{})))
	r.Err = e
	return r
}

// Wrap adapts an idiomatic Go (value, error) pair into an envelope: a nil
// error maps to OkValue(v), anything else to Err(KindOther, err.Error()).
// This is the single integration point between Go error handling and the
// boundary protocol.
func Wrap[T any](v T, err error) *ExternResult {
	if err != nil {
		return Err(KindOther, err.Error())
	}
	return OkValue(v)
}

// DestroyResult releases the envelope allocation itself and nothing else.
// It never follows Ok (the type is erased) and never follows Err (release
// it first with DestroyError). nil is a no-op.
func DestroyResult(r *ExternResult) {
	if r == nil {
		return
	}
	cmem.Free(unsafe.Pointer(r))
}

// box copies v onto the C heap after checking that its type is safe to
// move out of collected memory.
func box[T any](v T) unsafe.Pointer {
	if t := reflect.TypeOf((*T)(nil)).Elem(); holdsGoPointers(t) {
		fatalf("OkValue: %s contains Go pointers and cannot cross the boundary", t)
	}
	p := cmem.Alloc(unsafe.Sizeof(v))
	*(*T)(p) = v
	return p
}

// holdsGoPointers reports whether a value of type t may embed a pointer the
// Go collector tracks. unsafe.Pointer fields are permitted: by convention
// they hold C addresses (handles produced by this package).
func holdsGoPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.UnsafePointer:
		return false
	case reflect.Array:
		return holdsGoPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if holdsGoPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, String, Slice, Map, Chan, Func, Interface.
		return true
	}
}
