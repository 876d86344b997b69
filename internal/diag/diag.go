// Package diag provides optional, opt-in dispatcher tracing. The
// library is silent unless a caller supplies a Logger explicitly via a
// scn.Option (scn.WithTrace) — never a package global — matching §5's "no shared
// mutable state between calls" requirement.
package diag

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Logger is the leveled logger dispatcher tracing writes through,
// grounded on grafana-alloy's go-kit/log component-logger wiring.
type Logger struct {
	base log.Logger
}

// New builds a Logger writing logfmt lines to w.
func New(w io.Writer) Logger {
	return Logger{base: log.NewLogfmtLogger(w)}
}

// Discard is the default Logger, which drops every entry.
var Discard = Logger{base: log.NewNopLogger()}

func (l Logger) Debugf(msg string, keyvals ...interface{}) {
	level.Debug(l.base).Log(append([]interface{}{"msg", msg}, keyvals...)...)
}

func (l Logger) Errorf(msg string, keyvals ...interface{}) {
	level.Error(l.base).Log(append([]interface{}{"msg", msg}, keyvals...)...)
}
