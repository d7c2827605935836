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

package chord

import (
	"encoding/json"
	"testing"

	"dirpx.dev/dxtheory/dxcore/model/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuality(t *testing.T) {
	tests := []struct {
		in      string
		want    Quality
		wantErr bool
	}{
		{"", Major, false},
		{"M", Major, false},
		{"Major", Major, false},
		{"maj", Major, false},
		{"m", Minor, false},
		{"min", Minor, false},
		{"MINOR", Minor, false},
		{"dim", Diminished, false},
		{"°", Diminished, false},
		{"sus", Sus4, false},
		{"Sus4", Sus4, false},
		{"sus2", Sus2, false},
		{"aug", Major, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseQuality(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuality_Triad(t *testing.T) {
	assert.Equal(t, "P1 M3 P5", Major.Triad().String())
	assert.Equal(t, "P1 m3 P5", Minor.Triad().String())
	assert.Equal(t, "P1 m3 d5", Diminished.Triad().String())
	assert.Equal(t, "P1 P4 P5", Sus4.Triad().String())
	assert.Equal(t, "P1 M2 P5", Sus2.Triad().String())
	assert.Panics(t, func() { Quality(5).Triad() })
}

func TestQuality_Model(t *testing.T) {
	assert.Equal(t, "ChordQuality", Minor.TypeName())
	assert.Equal(t, "minor", Minor.Redacted())
	assert.Equal(t, "m", Minor.Symbol())
	assert.Equal(t, "", Major.Symbol())
	assert.Equal(t, "sus2", Sus2.Symbol())
	assert.True(t, Major.IsZero())
	assert.Equal(t, "unknown", Quality(7).String())

	q := Sus4
	assert.True(t, Sus4.Equal(&q))
	assert.False(t, Sus4.Equal(Sus2))
	assert.Error(t, Quality(7).Validate())

	data, err := json.Marshal(Diminished)
	require.NoError(t, err)
	assert.Equal(t, `"diminished"`, string(data))
	_, err = json.Marshal(Quality(-3))
	assert.Error(t, err)
}

func TestParseTension(t *testing.T) {
	tests := map[string]Tension{
		"7":             Seventh,
		"seventh":       Seventh,
		"M7":            MajorSeventh,
		"maj7":          MajorSeventh,
		"Major Seventh": MajorSeventh,
		"9":             Ninth,
		"ninth":         Ninth,
		"11":            Eleventh,
		"13":            Thirteenth,
		"thirteenth":    Thirteenth,
	}
	for in, want := range tests {
		got, err := ParseTension(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseTension("m7")
	assert.Error(t, err)
	_, err = ParseTension("15")
	assert.Error(t, err)
}

func TestTension_Interval(t *testing.T) {
	assert.Equal(t, interval.MinorSeventh, Seventh.Interval())
	assert.Equal(t, interval.MajorSeventh, MajorSeventh.Interval())
	assert.Equal(t, interval.MajorSecond, Ninth.Interval())
	assert.Equal(t, interval.PerfectFourth, Eleventh.Interval())
	assert.Equal(t, interval.MajorSixth, Thirteenth.Interval())
	assert.Panics(t, func() { Tension(8).Interval() })

	assert.False(t, Seventh.Compound())
	assert.False(t, MajorSeventh.Compound())
	assert.True(t, Ninth.Compound())
	assert.True(t, Thirteenth.Compound())
}

func TestTension_Model(t *testing.T) {
	assert.Equal(t, "Tension", Ninth.TypeName())
	assert.Equal(t, "9", Ninth.Redacted())
	assert.True(t, Seventh.IsZero())
	assert.NoError(t, Eleventh.Validate())
	assert.Error(t, Tension(5).Validate())

	data, err := json.Marshal([]Tension{Seventh, Thirteenth})
	require.NoError(t, err)
	assert.Equal(t, `["7","13"]`, string(data))
}
