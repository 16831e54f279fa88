// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging provides logr sinks backed by zap, logrus, zerolog and
// go-kit, and chooses between them by name.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"
)

// A Backend names the library a logger writes through.
type Backend string

const (
	Zap     Backend = "zap"
	Logrus  Backend = "logrus"
	Zerolog Backend = "zerolog"
	GoKit   Backend = "gokit"
)

// Backends lists every supported backend, default first.
var Backends = []Backend{Zap, Logrus, Zerolog, GoKit}

// Options configures New.
type Options struct {
	Backend Backend   // defaults to Zap
	Output  io.Writer // defaults to os.Stderr

	// Verbosity is the highest logr V level that is written.
	Verbosity int
}

// NameKey is the field that carries the logger name for backends without
// native named loggers.
const NameKey = "logger"

// New returns a logger writing to opts.Output through opts.Backend.
func New(opts Options) (logr.Logger, error) {
	w := opts.Output
	if w == nil {
		w = os.Stderr
	}
	if opts.Verbosity < 0 {
		return logr.Discard(), xerrors.Errorf("negative verbosity %d", opts.Verbosity)
	}
	switch opts.Backend {
	case Zap, "":
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(w), zapLevel(opts.Verbosity))
		return logr.New(NewZapSink(zap.New(core))), nil
	case Logrus:
		l := logrus.New()
		l.SetOutput(w)
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(logrusLevel(opts.Verbosity))
		return logr.New(NewLogrusSink(l)), nil
	case Zerolog:
		l := zerolog.New(w).With().Timestamp().Logger()
		return logr.New(NewZerologSink(l, zerologLevel(opts.Verbosity))), nil
	case GoKit:
		l := log.With(log.NewLogfmtLogger(log.NewSyncWriter(w)), "ts", log.DefaultTimestampUTC)
		return logr.New(NewGoKitSink(l, opts.Verbosity)), nil
	default:
		return logr.Discard(), xerrors.Errorf("unknown logging backend %q", opts.Backend)
	}
}

// ParseBackend returns the Backend named s.
func ParseBackend(s string) (Backend, error) {
	for _, b := range Backends {
		if string(b) == s {
			return b, nil
		}
	}
	return "", xerrors.Errorf("unknown logging backend %q (want one of %v)", s, Backends)
}

// missingValue is logged for a key that has no value.
const missingValue = "(MISSING)"

type pair struct {
	key   string
	value interface{}
}

// pairs splits logr key/value arguments. Non-string keys are formatted with
// %v.
func pairs(keysAndValues []interface{}) []pair {
	ps := make([]pair, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		p := pair{key: keyString(keysAndValues[i]), value: missingValue}
		if i+1 < len(keysAndValues) {
			p.value = keysAndValues[i+1]
		}
		ps = append(ps, p)
	}
	return ps
}

// fields is like pairs but returns a map; later keys win.
func fields(keysAndValues []interface{}) map[string]interface{} {
	m := make(map[string]interface{}, (len(keysAndValues)+1)/2)
	for _, p := range pairs(keysAndValues) {
		m[p.key] = p.value
	}
	return m
}

func keyString(k interface{}) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

func joinName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
