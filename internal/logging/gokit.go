// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-logr/logr"
)

type gokitSink struct {
	l         log.Logger
	verbosity int
	name      string
}

var _ logr.LogSink = (*gokitSink)(nil)

// NewGoKitSink returns a logr.LogSink writing to l. Messages above verbosity
// are dropped; V(0) is tagged level=info and anything more verbose
// level=debug.
func NewGoKitSink(l log.Logger, verbosity int) logr.LogSink {
	return &gokitSink{l: l, verbosity: verbosity}
}

func (s *gokitSink) Init(logr.RuntimeInfo) {}

func (s *gokitSink) Enabled(lvl int) bool {
	return lvl <= s.verbosity
}

func (s *gokitSink) keyvals(msg string, keysAndValues []interface{}) []interface{} {
	kv := make([]interface{}, 0, len(keysAndValues)+4)
	if s.name != "" {
		kv = append(kv, NameKey, s.name)
	}
	kv = append(kv, "msg", msg)
	for _, p := range pairs(keysAndValues) {
		kv = append(kv, p.key, p.value)
	}
	return kv
}

func (s *gokitSink) Info(lvl int, msg string, keysAndValues ...interface{}) {
	l := level.Info(s.l)
	if lvl > 0 {
		l = level.Debug(s.l)
	}
	_ = l.Log(s.keyvals(msg, keysAndValues)...)
}

func (s *gokitSink) Error(err error, msg string, keysAndValues ...interface{}) {
	_ = level.Error(s.l).Log(append(s.keyvals(msg, keysAndValues), "err", err)...)
}

func (s *gokitSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	s2 := *s
	kv := make([]interface{}, 0, len(keysAndValues))
	for _, p := range pairs(keysAndValues) {
		kv = append(kv, p.key, p.value)
	}
	s2.l = log.With(s.l, kv...)
	return &s2
}

func (s *gokitSink) WithName(name string) logr.LogSink {
	s2 := *s
	s2.name = joinName(s.name, name)
	return &s2
}
