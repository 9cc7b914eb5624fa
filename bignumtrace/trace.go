//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

// Package bignumtrace provides optional, gated structured logging for
// the bignum package, mirroring how the kernel package only pays for
// its own trace output when a caller has turned it on.
package bignumtrace

import "go.uber.org/zap"

var logger = zap.NewNop().Sugar()

// Configure installs l as the destination for bignum trace output. A
// nil l turns tracing back off.
func Configure(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l.Sugar()
}

// Debugf logs a debug-level trace message. It is a cheap no-op until
// Configure has installed a real logger.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warnf logs a warning-level trace message. The bignum package itself
// only logs through Debugf (including the R^2 mod N recomputation and
// the window-size clamp in ExpMod).
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}
