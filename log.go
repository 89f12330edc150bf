// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// pkglog is the package-wide logger. Where the teacher library gates its
// debug output behind a "debug" build tag (debug.go's _DEBUG constant),
// this package exposes the same choice at runtime through SetLogLevel, since
// a library consumed by other programs should not force a rebuild just to
// see its diagnostics.
var (
	pkglogMu sync.RWMutex
	pkglog   = logrus.New()
)

func init() {
	pkglog.SetLevel(logrus.WarnLevel)
}

func log() *logrus.Logger {
	pkglogMu.RLock()
	defer pkglogMu.RUnlock()
	return pkglog
}

// SetLogLevel adjusts the verbosity of the package's internal
// diagnostics. Engines share one package-level logger; there is no
// per-Engine logger because the teacher's own debug output is likewise
// global, not tied to a particular BDD manager instance.
func SetLogLevel(level logrus.Level) {
	pkglogMu.Lock()
	defer pkglogMu.Unlock()
	pkglog.SetLevel(level)
}
