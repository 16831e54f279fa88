// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

type logrusSink struct {
	entry *logrus.Entry
	name  string
}

var _ logr.LogSink = (*logrusSink)(nil)

// NewLogrusSink returns a logr.LogSink writing to l. V(0) is logged at Info,
// V(1) at Debug and anything more verbose at Trace. The logger name goes in
// the NameKey field.
func NewLogrusSink(l *logrus.Logger) logr.LogSink {
	return &logrusSink{entry: logrus.NewEntry(l)}
}

func logrusLevel(v int) logrus.Level {
	switch {
	case v <= 0:
		return logrus.InfoLevel
	case v == 1:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

func (s *logrusSink) Init(logr.RuntimeInfo) {}

func (s *logrusSink) Enabled(level int) bool {
	return s.entry.Logger.IsLevelEnabled(logrusLevel(level))
}

func (s *logrusSink) withFields(keysAndValues []interface{}) *logrus.Entry {
	f := logrus.Fields(fields(keysAndValues))
	if s.name != "" {
		f[NameKey] = s.name
	}
	return s.entry.WithFields(f)
}

func (s *logrusSink) Info(level int, msg string, keysAndValues ...interface{}) {
	s.withFields(keysAndValues).Log(logrusLevel(level), msg)
}

func (s *logrusSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.withFields(keysAndValues).WithError(err).Error(msg)
}

func (s *logrusSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	s2 := *s
	s2.entry = s.entry.WithFields(logrus.Fields(fields(keysAndValues)))
	return &s2
}

func (s *logrusSink) WithName(name string) logr.LogSink {
	s2 := *s
	s2.name = joinName(s.name, name)
	return &s2
}
