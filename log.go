package bizarromath

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// pkgLogger is the package-wide logger. It defaults to a disabled logger so
// the library stays silent unless a host application opts in with
// SetLogger, mirroring how cloudflared threads an injected zerolog.Logger
// through its subsystems rather than reaching for a global log.Print.
var (
	pkgLoggerMu sync.RWMutex
	pkgLogger   = zerolog.New(os.Stderr).Level(zerolog.Disabled).With().Timestamp().Logger()
)

// SetLogger installs the logger used for auto-tune and multiplier-dispatch
// diagnostics. Passing the zero value re-disables logging.
func SetLogger(l zerolog.Logger) {
	pkgLoggerMu.Lock()
	defer pkgLoggerMu.Unlock()
	pkgLogger = l
}

func logger() zerolog.Logger {
	pkgLoggerMu.RLock()
	defer pkgLoggerMu.RUnlock()
	return pkgLogger
}
