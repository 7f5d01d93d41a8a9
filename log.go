package ffitoolkit

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// logger reports contract violations before the process is taken down.
// Quiet by default: a host application embedding the shared library owns
// stderr, so only warnings and worse are emitted unless overridden.
var logger = zerolog.New(os.Stderr).
	With().Timestamp().Str("component", "ffitoolkit").Logger().
	Level(zerolog.WarnLevel)

// SetLogger replaces the package logger. Useful for hosts that route
// diagnostics through their own zerolog sink. The swap is unsynchronized:
// call it during host initialization, before any boundary traffic.
func SetLogger(l zerolog.Logger) { logger = l }

// fatalf reports an unrecoverable condition: a caller contract violation or
// an allocation failure mid-construction. It logs a structured event and
// panics; a panic unwinding through an exported c-shared entry point aborts
// the process, which is the required behavior. Nothing here is reported
// through ExternResult because the failure occurs while building the very
// machinery used to report failures.
func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.Error().Msg(msg)
	panic("ffitoolkit: " + msg)
}
