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

package subcmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/dxtheory/internal/log"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns what it wrote to stdout. Log
// output goes to logs when non-nil.
func run(t *testing.T, logs io.Writer, args ...string) (string, error) {
	t.Helper()

	if logs == nil {
		logs = io.Discard
	}
	prevOut, prevLevel, prevColor := log.Output, log.CurrentLevel, color.NoColor
	log.Output, log.CurrentLevel, color.NoColor = logs, log.LevelInfo, true
	t.Cleanup(func() {
		log.Output, log.CurrentLevel, color.NoColor = prevOut, prevLevel, prevColor
	})

	var out bytes.Buffer
	app := NewApp("test")
	app.Writer = &out
	app.ErrWriter = io.Discard

	err := app.Run(append([]string{"dxtheory"}, args...))
	return out.String(), err
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scales.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scales:
  - name: whole tone
    intervals: P1 M2 M3 A4 A5 A6
`), 0o600))
	return path
}

func TestSpell(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default major", []string{"spell", "C4"}, "C4, D4, E4, F4, G4, A4, B4\n"},
		{"mode flag", []string{"spell", "--mode", "dorian", "D4"}, "D4, E4, F4, G4, A4, B4, C5\n"},
		{"minor alias", []string{"spell", "-m", "minor", "C4"}, "C4, D4, E♭4, F4, G4, A♭4, B♭4\n"},
		{"catalog scale", []string{"spell", "--scale", "Harmonic Minor", "A4"}, "A4, B4, C5, D5, E5, F5, G♯5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, nil, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSpell_Errors(t *testing.T) {
	_, err := run(t, nil, "spell")
	assert.ErrorContains(t, err, "spell: expected <root>")

	_, err = run(t, nil, "spell", "H4")
	assert.ErrorContains(t, err, "spell")

	_, err = run(t, nil, "spell", "--mode", "bebop", "C4")
	assert.ErrorContains(t, err, "Mode")

	_, err = run(t, nil, "spell", "--scale", "bebop", "C4")
	assert.ErrorContains(t, err, `unknown scale "bebop"`)
}

func TestSpell_JSON(t *testing.T) {
	out, err := run(t, nil, "--format", "json", "spell", "Eb4")
	require.NoError(t, err)

	var got struct {
		Root      string   `json:"root"`
		Scale     string   `json:"scale"`
		Intervals []string `json:"intervals"`
		Notes     []string `json:"notes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Eb4", got.Root)
	assert.Equal(t, "ionian", got.Scale)
	assert.Equal(t, []string{"P1", "M2", "M3", "P4", "P5", "M6", "M7"}, got.Intervals)
	assert.Equal(t, []string{"Eb4", "F4", "G4", "Ab4", "Bb4", "C5", "D5"}, got.Notes)
}

func TestModes(t *testing.T) {
	out, err := run(t, nil, "modes", "C4")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "lydian     F4, G4, A4, B4, C5, D5, E5", lines[0])
	assert.Equal(t, "ionian     C4, D4, E4, F4, G4, A4, B4", lines[1])
	assert.Equal(t, "locrian    B4, C5, D5, E5, F5, G5, A5", lines[6])
}

func TestLeapFall(t *testing.T) {
	out, err := run(t, nil, "leap", "C4", "M3")
	require.NoError(t, err)
	assert.Equal(t, "C4 + M3 = E4\n", out)

	out, err = run(t, nil, "fall", "E4", "m3")
	require.NoError(t, err)
	assert.Equal(t, "E4 - m3 = C♯4\n", out)

	out, err = run(t, nil, "--format", "yaml", "leap", "B4", "m2")
	require.NoError(t, err)
	assert.Equal(t, "from: B4\ninterval: m2\nto: C5\n", out)
}

func TestLeapFall_Errors(t *testing.T) {
	_, err := run(t, nil, "fall", "C0", "m2")
	assert.ErrorContains(t, err, "octave underflow")

	_, err = run(t, nil, "leap", "C4", "TT")
	assert.ErrorContains(t, err, "spell the tritone")

	_, err = run(t, nil, "leap", "C4", "P3")
	assert.Error(t, err)

	_, err = run(t, nil, "leap", "C4")
	assert.ErrorContains(t, err, "leap: expected <note> <interval>")
}

func TestLeap_DebugLog(t *testing.T) {
	var logs bytes.Buffer
	_, err := run(t, &logs, "--debug", "leap", "C4", "P5")
	require.NoError(t, err)
	assert.Equal(t, "leap C4 by perfect fifth\n  4 letter steps, 7 semitones\n", logs.String())
}

func TestChord(t *testing.T) {
	out, err := run(t, nil, "chord", "-k", "minor", "-t", "7", "-t", "9", "C4")
	require.NoError(t, err)
	assert.Equal(t, "Cm7(9): C4, E♭4, G4, B♭4, D5\n", out)

	out, err = run(t, nil, "chord", "--tension", "7,13", "G3")
	require.NoError(t, err)
	assert.Equal(t, "G7(13): G3, B3, D4, F4, E5\n", out)

	_, err = run(t, nil, "chord", "-t", "7,M7", "C4")
	assert.ErrorContains(t, err, "cannot combine")

	_, err = run(t, nil, "chord", "-k", "aug", "C4")
	assert.Error(t, err)
}

func TestCatalog(t *testing.T) {
	path := writeCatalog(t)

	out, err := run(t, nil, "--catalog", path, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "dorian: P1 M2 m3 P4 P5 M6 m7\n")
	assert.Contains(t, out, "whole tone: P1 M2 M3 A4 A5 A6")

	t.Setenv("DXTHEORY_CATALOG", path)
	out, err = run(t, nil, "spell", "-s", "whole tone", "C4")
	require.NoError(t, err)
	assert.Equal(t, "C4, D4, E4, F♯4, G♯4, A♯4\n", out)
}

func TestCatalog_Errors(t *testing.T) {
	_, err := run(t, nil, "--catalog", filepath.Join(t.TempDir(), "missing.yaml"), "catalog")
	assert.ErrorContains(t, err, "read catalog")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("scales:\n  - {name: x, intervals: P1 P3}\n"), 0o600))
	_, err = run(t, nil, "--catalog", bad, "catalog")
	assert.ErrorContains(t, err, "load catalog")
}

func TestFormat_EnvAndUnknown(t *testing.T) {
	t.Setenv("DXTHEORY_FORMAT", "json")
	out, err := run(t, nil, "leap", "C4", "P5")
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"C4","interval":"P5","to":"G4"}`, out)

	_, err = run(t, nil, "--format", "xml", "leap", "C4", "P5")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}
