// logger/logger.go
package logger

import (
	"go.uber.org/zap"
)

// Log is the process-wide sugared logger. Init replaces it; until then it is
// a no-op so packages can log safely from tests.
var Log = zap.NewNop().Sugar()

func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l.Sugar()
	return nil
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	_ = Log.Sync()
}
