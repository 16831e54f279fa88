// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"math"

	"github.com/go-logr/logr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapSink struct {
	l *zap.Logger
}

var _ logr.LogSink = (*zapSink)(nil)

// NewZapSink returns a logr.LogSink writing to l. logr level V(n) is written
// at zap level -n, so V(1) is Debug.
func NewZapSink(l *zap.Logger) logr.LogSink {
	return &zapSink{l: l}
}

func zapLevel(v int) zapcore.Level {
	if v > -math.MinInt8 {
		v = -math.MinInt8
	}
	return zapcore.Level(-v)
}

func (s *zapSink) Init(info logr.RuntimeInfo) {
	s.l = s.l.WithOptions(zap.AddCallerSkip(info.CallDepth))
}

func (s *zapSink) Enabled(level int) bool {
	return s.l.Core().Enabled(zapLevel(level))
}

func (s *zapSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if ce := s.l.Check(zapLevel(level), msg); ce != nil {
		ce.Write(zapFields(keysAndValues)...)
	}
}

func (s *zapSink) Error(err error, msg string, keysAndValues ...interface{}) {
	if ce := s.l.Check(zapcore.ErrorLevel, msg); ce != nil {
		ce.Write(append(zapFields(keysAndValues), zap.Error(err))...)
	}
}

func (s *zapSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return &zapSink{l: s.l.With(zapFields(keysAndValues)...)}
}

func (s *zapSink) WithName(name string) logr.LogSink {
	return &zapSink{l: s.l.Named(name)}
}

func zapFields(keysAndValues []interface{}) []zap.Field {
	ps := pairs(keysAndValues)
	fs := make([]zap.Field, len(ps))
	for i, p := range ps {
		fs[i] = zap.Any(p.key, p.value)
	}
	return fs
}
