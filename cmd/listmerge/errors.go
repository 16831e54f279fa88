// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"golang.org/x/xerrors"
)

const helpText = `usage: listmerge [-type int|string] [-log backend] [-v n] [-trace] -a list -b list

Merges two comma-separated lists, each sorted in ascending order, and prints
the inputs and the merged list.

Flags:
  -a list      first input
  -b list      second input
  -type t      element type, int or string (default int)
  -log name    logging backend: zap, logrus, zerolog or gokit (default zap)
  -v n         log verbosity (default 0)
  -trace       log a span around the merge`

// usageError reports a problem with the command line.
type usageError struct {
	err error
}

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{err: xerrors.Errorf(format, args...)}
}

func (e *usageError) Error() string {
	if xerrors.Is(e.err, flag.ErrHelp) {
		return helpText
	}
	return e.err.Error() + "\nFor more information, run listmerge -h"
}

func (e *usageError) Unwrap() error {
	return e.err
}
