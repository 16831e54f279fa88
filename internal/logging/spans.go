// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"

	"github.com/go-logr/logr"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SpanExporter is an sdktrace.SpanExporter that logs each finished span.
type SpanExporter struct {
	log logr.Logger
}

var _ sdktrace.SpanExporter = (*SpanExporter)(nil)

func NewSpanExporter(log logr.Logger) *SpanExporter {
	return &SpanExporter{log: log}
}

func (e *SpanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		kv := []interface{}{
			"span", s.Name(),
			"duration", s.EndTime().Sub(s.StartTime()).String(),
		}
		if sc := s.SpanContext(); sc.HasTraceID() {
			kv = append(kv, "trace_id", sc.TraceID().String())
		}
		for _, a := range s.Attributes() {
			kv = append(kv, string(a.Key), a.Value.AsInterface())
		}
		e.log.Info("span finished", kv...)
	}
	return ctx.Err()
}

func (e *SpanExporter) Shutdown(ctx context.Context) error {
	return nil
}
