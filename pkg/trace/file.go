// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package trace

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	pkgErrors "github.com/pkg/errors"
)

// ReadFile parses a register trace dump: one binary state per line, exactly
// as produced by a testbench $display("%b", ...).  Blank lines are skipped
// and "#" or "//" introduce comments.  The trace width is taken from the
// longest state line, so dumps should be zero-padded to the register width.
func ReadFile(path string) (Trace, error) {
	var t Trace
	//
	bytes, err := os.ReadFile(path)
	if err != nil {
		return t, pkgErrors.Wrapf(err, "failed to read trace file %#v", path)
	}
	//
	for n, line := range strings.Split(string(bytes), "\n") {
		line = stripComment(line)
		if line == "" {
			continue
		}
		//
		state, err := strconv.ParseUint(line, 2, 64)
		if err != nil {
			return Trace{}, fmt.Errorf("%s:%d: malformed state %#v", path, n+1, line)
		}
		//
		if width := uint(len(line)); width > t.Width {
			t.Width = width
		}
		//
		t.States = append(t.States, state)
	}
	//
	return t, nil
}

// WriteFile writes the trace in the same line-per-state format ReadFile
// accepts, zero-padded to the trace width.
func WriteFile(path string, t Trace) error {
	if err := os.WriteFile(path, []byte(t.String()), 0644); err != nil {
		return pkgErrors.Wrapf(err, "failed to write trace file %#v", path)
	}

	return nil
}

// Remove any trailing comment and surrounding whitespace from a dump line.
func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	//
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	//
	return strings.TrimSpace(line)
}
