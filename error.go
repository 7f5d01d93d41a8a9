package ffitoolkit

import (
	"unsafe"

	"github.com/viniciusmorgado/ffi-toolkit/internal/cmem"
)

// ExternError is the failure half of the envelope. Instances live on the C
// heap and are layout-identical to the C declaration foreign callers compile
// against:
//
//	typedef struct ft_error {
//	    int32_t kind;
//	    char*   message;
//	} ft_error;
//
// Message, when non-null, is a NUL-terminated UTF-8 buffer owned exclusively
// by this record; nothing else may free it.
type ExternError struct {
	Kind    ErrorKind
	Message unsafe.Pointer
}

// newExternError allocates the error record for a failure envelope. The
// message buffer is allocated first, then the record, so destruction can run
// strictly innermost-first.
func newExternError(kind ErrorKind, msg string) *ExternError {
	cmsg := NewCString(msg)
	e := (*ExternError)(cmem.Alloc(unsafe.Sizeof(ExternError{})))
	e.Kind = kind
	e.Message = cmsg
	return e
}

// DestroyError releases an ExternError and the message buffer it owns, in
// that order reversed: message first, then the record. nil is a no-op.
func DestroyError(e *ExternError) {
	if e == nil {
		return
	}
	DestroyString(e.Message)
	cmem.Free(unsafe.Pointer(e))
}
