// logging.go - structured logging backbone for the engine. The happy path
// stays silent at the default warn level; corrections, uncorrectable faults
// and failed KAT vectors are the only things logged at that level.
package aesfd

import (
	"os"

	"github.com/rs/zerolog"
)

// log is the package-level logger. Callers embedding this engine in a
// larger service can replace it with SetLogger to route output through
// their own sink.
var log zerolog.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	Level(zerolog.WarnLevel).
	With().Timestamp().Logger()

// SetLogger installs a caller-provided logger, e.g. to raise verbosity to
// zerolog.DebugLevel or to redirect output to a file/collector.
func SetLogger(l zerolog.Logger) {
	log = l
}
