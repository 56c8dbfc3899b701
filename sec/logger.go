package sec

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu sync.RWMutex
	logger   = zap.NewNop()
)

// Logger returns the package's logger. It is a no-op logger by default.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger installs a logger for entry-point call tracing. Passing nil
// restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// trace debug-logs a foreign call and its status, and returns the status
// unchanged so wrappers can return through it.
func trace(fn string, status Status) Status {
	if ce := Logger().Check(zap.DebugLevel, "sec call"); ce != nil {
		ce.Write(zap.String("fn", fn), zap.Int32("status", int32(status)))
	}
	return status
}

// traceCall debug-logs a foreign call that reports through a CFError
// out-parameter or a bare result instead of an OSStatus.
func traceCall(fn string, ok bool) {
	if ce := Logger().Check(zap.DebugLevel, "sec call"); ce != nil {
		ce.Write(zap.String("fn", fn), zap.Bool("ok", ok))
	}
}
