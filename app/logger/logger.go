package logger

import "go.uber.org/zap"

// New builds the application logger. LOG_MODE=dev switches to the
// human-readable development encoder.
func New(mode string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if mode == "dev" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return l
}
