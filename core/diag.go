package core

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var diagnostics atomic.Pointer[zap.Logger]

func init() {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	l := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zapcore.DebugLevel,
	)).Named("plog")
	diagnostics.Store(l)
}

// Diagnostics returns the logger that receives the library's own advisory
// messages: malformed patterns, failed appender writes, and so on.
// By default it writes to stderr.
func Diagnostics() *zap.Logger {
	return diagnostics.Load()
}

// SetDiagnostics replaces the diagnostic logger. A nil logger silences
// diagnostics.
func SetDiagnostics(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	diagnostics.Store(l)
}
