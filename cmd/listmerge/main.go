// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// listmerge builds two sorted lists from its flags, merges them and prints
// the inputs and the result.
//
// Usage:
//
//	listmerge [-type int|string] [-log backend] [-v n] [-trace] -a list -b list
//
// Lists are comma-separated. Each input should already be sorted in
// ascending order; listmerge logs a message for an input that is not, and
// merges it anyway.
//
// listmerge accepts the following flags:
//
// -a list, -b list: the two inputs. An empty value is an empty list.
//
// -type int|string: element type. Default int.
//
// -log zap|logrus|zerolog|gokit: logging library used for messages on
// stderr. Default zap.
//
// -v n: log verbosity. At 1 and above the parsed inputs are logged.
//
// -trace: record a span around the merge and log it when it ends.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"

	"listmerge/internal/logging"
	"listmerge/list"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("listmerge: ")
	if err := runMerge(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var uerr *usageError
		if xerrors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type config struct {
	a, b    string
	typ     string
	backend logging.Backend
	verbose int
	trace   bool
}

func parseArgs(args []string) (*config, error) {
	fs := flag.NewFlagSet("listmerge", flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(ioutil.Discard)
	cfg := &config{}
	var backend string
	fs.StringVar(&cfg.a, "a", "", "first sorted list, comma-separated")
	fs.StringVar(&cfg.b, "b", "", "second sorted list, comma-separated")
	fs.StringVar(&cfg.typ, "type", "int", "element type: int or string")
	fs.StringVar(&backend, "log", string(logging.Zap), "logging backend")
	fs.IntVar(&cfg.verbose, "v", 0, "log verbosity")
	fs.BoolVar(&cfg.trace, "trace", false, "log a span around the merge")
	if err := fs.Parse(args); err != nil {
		return nil, &usageError{err: err}
	}
	if len(fs.Args()) > 0 {
		return nil, usageErrorf("no arguments allowed")
	}
	if cfg.verbose < 0 {
		return nil, usageErrorf("-v must not be negative")
	}
	b, err := logging.ParseBackend(backend)
	if err != nil {
		return nil, &usageError{err: err}
	}
	cfg.backend = b
	return cfg, nil
}

// runMerge is the main function of listmerge. It's called by tests, so it
// writes to stdout and stderr instead of the process streams and returns an
// error instead of exiting.
func runMerge(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		Backend:   cfg.backend,
		Output:    stderr,
		Verbosity: cfg.verbose,
	})
	if err != nil {
		return err
	}
	logger = logger.WithName("listmerge")

	var tp trace.TracerProvider = trace.NewNoopTracerProvider()
	if cfg.trace {
		sdk := sdktrace.NewTracerProvider(sdktrace.WithSyncer(logging.NewSpanExporter(logger.WithName("trace"))))
		defer func() {
			if err := sdk.Shutdown(ctx); err != nil {
				logger.Error(err, "shutting down tracer provider")
			}
		}()
		tp = sdk
	}
	m := &merger{
		log:    logger,
		tracer: tp.Tracer("listmerge"),
		w:      stdout,
		typ:    cfg.typ,
	}

	switch cfg.typ {
	case "int":
		as, err := parseInts(cfg.a)
		if err != nil {
			return &usageError{err: xerrors.Errorf("-a: %w", err)}
		}
		bs, err := parseInts(cfg.b)
		if err != nil {
			return &usageError{err: xerrors.Errorf("-b: %w", err)}
		}
		return mergeValues(ctx, m, as, bs)
	case "string":
		return mergeValues(ctx, m, parseStrings(cfg.a), parseStrings(cfg.b))
	default:
		return usageErrorf("unknown -type %q (want int or string)", cfg.typ)
	}
}

type merger struct {
	log    logr.Logger
	tracer trace.Tracer
	w      io.Writer
	typ    string
}

func mergeValues[T constraints.Ordered](ctx context.Context, m *merger, as, bs []T) error {
	a, b := list.Of(as...), list.Of(bs...)
	m.log.V(1).Info("parsed inputs", "type", m.typ, "a", a.String(), "b", b.String())
	if !list.IsSorted(a) {
		m.log.Info("input not sorted", "list", "a")
	}
	if !list.IsSorted(b) {
		m.log.Info("input not sorted", "list", "b")
	}
	if _, err := fmt.Fprintf(m.w, "a: %v\nb: %v\n", a, b); err != nil {
		return xerrors.Errorf("writing inputs: %w", err)
	}

	_, span := m.tracer.Start(ctx, "merge", trace.WithAttributes(
		attribute.String("type", m.typ),
		attribute.Int("a.len", a.Len()),
		attribute.Int("b.len", b.Len()),
	))
	c := list.Merge(a, b)
	span.SetAttributes(attribute.Int("merged.len", c.Len()))
	span.End()

	if _, err := fmt.Fprintf(m.w, "merged: %v\n", c); err != nil {
		return xerrors.Errorf("writing result: %w", err)
	}
	m.log.Info("merged", "len", c.Len())
	return nil
}

// splitList splits a comma-separated list, trimming spaces. An empty or
// all-space s is an empty list.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	fields := strings.Split(s, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

func parseInts(s string) ([]int, error) {
	fields := splitList(s)
	vs := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, xerrors.Errorf("element %d: %w", i, err)
		}
		vs[i] = v
	}
	return vs, nil
}

func parseStrings(s string) []string {
	return splitList(s)
}
