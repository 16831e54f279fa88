// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
)

type zerologSink struct {
	l    zerolog.Logger
	min  zerolog.Level
	name string
}

var _ logr.LogSink = (*zerologSink)(nil)

// NewZerologSink returns a logr.LogSink writing to l, dropping anything below
// min. Levels map as for NewLogrusSink.
func NewZerologSink(l zerolog.Logger, min zerolog.Level) logr.LogSink {
	return &zerologSink{l: l.Level(min), min: min}
}

func zerologLevel(v int) zerolog.Level {
	switch {
	case v <= 0:
		return zerolog.InfoLevel
	case v == 1:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func (s *zerologSink) Init(logr.RuntimeInfo) {}

func (s *zerologSink) Enabled(level int) bool {
	return zerologLevel(level) >= s.min
}

// named adds the logger name to e. e may be nil if its level is disabled.
func (s *zerologSink) named(e *zerolog.Event) *zerolog.Event {
	if s.name == "" {
		return e
	}
	return e.Str(NameKey, s.name)
}

func (s *zerologSink) Info(level int, msg string, keysAndValues ...interface{}) {
	s.named(s.l.WithLevel(zerologLevel(level))).Fields(fields(keysAndValues)).Msg(msg)
}

func (s *zerologSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.named(s.l.Error()).Err(err).Fields(fields(keysAndValues)).Msg(msg)
}

func (s *zerologSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	s2 := *s
	s2.l = s.l.With().Fields(fields(keysAndValues)).Logger()
	return &s2
}

func (s *zerologSink) WithName(name string) logr.LogSink {
	s2 := *s
	s2.name = joinName(s.name, name)
	return &s2
}
