// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ShowLogger is a capability-polymorphic logging utility: it renders any
// value for which a Show instance chain resolves through the registry
// and emits the rendering as a structured field. A failed resolution is
// returned to the caller — nothing is logged with a defaulted rendering.
type ShowLogger struct {
	reg *Registry
	log *zap.Logger
}

// NewShowLogger creates a ShowLogger over a populated registry.
func NewShowLogger(reg *Registry, log *zap.Logger) *ShowLogger {
	return &ShowLogger{reg: reg, log: log}
}

// Log resolves the Show instance for shape and emits msg at the given
// level with the shape key and the value's rendering as fields.
func (l *ShowLogger) Log(level zapcore.Level, msg string, shape Shape, v Erased) error {
	inst, err := l.reg.Resolve(ShowCap, shape)
	if err != nil {
		return err
	}
	s, ok := inst.(*Show)
	if !ok {
		return &ResolutionError{Capability: ShowCap, Shape: shape}
	}
	l.log.Log(level, msg,
		zap.String("shape", shape.Key()),
		zap.String("value", s.Show(v)),
	)
	return nil
}

// Debug logs at debug level.
func (l *ShowLogger) Debug(msg string, shape Shape, v Erased) error {
	return l.Log(zapcore.DebugLevel, msg, shape, v)
}

// Info logs at info level.
func (l *ShowLogger) Info(msg string, shape Shape, v Erased) error {
	return l.Log(zapcore.InfoLevel, msg, shape, v)
}
