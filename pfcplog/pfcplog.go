// Package pfcplog is the codec's opt-in observability side-channel.
//
// The codec core (ie, message, comparison) is pure: marshal and unmarshal
// never depend on, or are observable through, this package's state. It
// exists only so a caller embedding the codec in a long-running UPF/SMF can
// route the codec's one Debug-level forward-compatibility notice (ie.Unmarshal
// decoding an IE of an unrecognized type) through the same zap logger the
// rest of the process uses.
package pfcplog

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger replaces the package-level logger. Passing nil restores the
// no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}

// L returns the current logger. Safe to call from concurrent goroutines
// since marshal/unmarshal hold no lock around it; SetLogger is expected to
// be called once at process startup, not during steady-state decode.
func L() *zap.Logger {
	return logger
}
