// exports.go is the C API for libffitoolkit.
// Build with: go build -buildmode=c-shared -o libffitoolkit.so ./cmd/libffitoolkit
//
// The typedefs in the preamble are the binary contract foreign callers
// compile against; they mirror ffitoolkit.ExternError / ExternResult field
// for field. Keep them append-only.
package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef int32_t ft_error_kind;

typedef struct ft_error {
	ft_error_kind kind;
	char*         message;
} ft_error;

typedef struct ft_result {
	void*     ok;
	ft_error* err;
} ft_result;
*/
import "C"

import (
	"unsafe"

	"github.com/google/uuid"

	ffitoolkit "github.com/viniciusmorgado/ffi-toolkit"
)

func asResult(r *ffitoolkit.ExternResult) *C.ft_result {
	return (*C.ft_result)(unsafe.Pointer(r))
}

// ---------------------------------------------------------------------------
// Release surface: one export per allocated type, all null-tolerant.
// ---------------------------------------------------------------------------

//export ffi_result_destroy
func ffi_result_destroy(r *C.ft_result) {
	ffitoolkit.DestroyResult((*ffitoolkit.ExternResult)(unsafe.Pointer(r)))
}

//export ffi_error_destroy
func ffi_error_destroy(e *C.ft_error) {
	ffitoolkit.DestroyError((*ffitoolkit.ExternError)(unsafe.Pointer(e)))
}

//export ffi_string_destroy
func ffi_string_destroy(s *C.char) {
	ffitoolkit.DestroyString(unsafe.Pointer(s))
}

//export ffi_bytes_destroy
func ffi_bytes_destroy(p unsafe.Pointer) {
	ffitoolkit.DestroyBytes(p)
}

//export ffi_uuid_destroy
func ffi_uuid_destroy(p unsafe.Pointer) {
	ffitoolkit.DestroyUUID(p)
}

//export ffi_destroy
func ffi_destroy(p unsafe.Pointer) {
	ffitoolkit.Destroy(p)
}

// ---------------------------------------------------------------------------
// Demonstration producers: the protocol end to end, callable from C.
// ---------------------------------------------------------------------------

// ffi_uuid_parse parses a textual uuid. Success: ok points at an owned
// 16-byte buffer (release with ffi_uuid_destroy, then ffi_result_destroy).
// Failure: err carries (ValidationError, parse message).
//
//export ffi_uuid_parse
func ffi_uuid_parse(s *C.char) *C.ft_result {
	id, err := uuid.Parse(ffitoolkit.GoStringFrom(unsafe.Pointer(s)))
	if err != nil {
		return asResult(ffitoolkit.Err(ffitoolkit.KindValidation, err.Error()))
	}
	return asResult(ffitoolkit.OkHandle(ffitoolkit.NewUUIDHandle(id)))
}

// ffi_version returns an owned version string; release with
// ffi_string_destroy.
//
//export ffi_version
func ffi_version() *C.char {
	return (*C.char)(ffitoolkit.NewCString(ffitoolkit.Version))
}

func main() {}
