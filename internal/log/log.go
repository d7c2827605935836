/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package log prints leveled, colored diagnostics for the dxtheory command.
// The model packages never log.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Level selects which messages are printed.
type Level int

const (
	LevelNone Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// CurrentLevel is the threshold; messages above it are dropped.
var CurrentLevel = LevelInfo

// Output receives every message.
var Output io.Writer = os.Stderr

var (
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
)

var indent = 0

// ParseLevel accepts "none", "warn", "info" and "debug", in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "silent":
		return LevelNone, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info", "":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Errorf prints an error message unless logging is silenced.
func Errorf(f string, args ...any) {
	if LevelWarn <= CurrentLevel {
		red.Fprintf(Output, "[ERROR] "+f+"\n", args...)
	}
}

func Warnf(f string, args ...any) {
	if LevelWarn <= CurrentLevel {
		yellow.Fprintf(Output, "[WARNING] "+f+"\n", args...)
	}
}

func Infof(f string, args ...any) {
	if LevelInfo <= CurrentLevel {
		fmt.Fprintf(Output, f+"\n", args...)
	}
}

// Debugf prints at the current indentation, two spaces per Enter.
func Debugf(f string, args ...any) {
	if LevelDebug <= CurrentLevel {
		cyan.Fprintf(Output, strings.Repeat("  ", indent)+f+"\n", args...)
	}
}

func Enter() {
	indent++
}

func Leave() {
	if indent > 0 {
		indent--
	}
}
