package log

import (
	"go.uber.org/zap"
)

// NewZap builds a sugared zap logger, development mode prints
// human friendly lines with debug level enabled.
// The returned func flushes buffered entries.
func NewZap(develop bool) (*zap.SugaredLogger, func()) {
	var (
		zl  *zap.Logger
		err error
	)
	if develop {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		zl = zap.NewNop()
	}
	return zl.Sugar(), func() { _ = zl.Sync() }
}
