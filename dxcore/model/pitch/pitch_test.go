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

package pitch

import (
	"encoding/json"
	"fmt"
	"testing"

	"dirpx.dev/dxtheory/dxcore/model/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// samplePitches covers every letter with up to two flats or sharps.
func samplePitches() []Pitch {
	var out []Pitch
	for n := C; n <= B; n++ {
		for a := DoubleFlat; a <= DoubleSharp; a++ {
			out = append(out, New(n, a))
		}
	}
	return out
}

func TestPitch_StepForward(t *testing.T) {
	tests := []struct {
		from   string
		adjust int
		want   string
	}{
		{"C", 2, "D"},
		{"C", 1, "Db"},
		{"E", 1, "F"},
		{"E", 2, "F#"},
		{"B", 1, "C"},
		{"B", 0, "Cb"},
		{"A#", 2, "B#"},
		{"Gb", 0, "Abbb"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s+%d", tt.from, tt.adjust), func(t *testing.T) {
			assert.Equal(t, MustParse(tt.want), MustParse(tt.from).StepForward(tt.adjust))
		})
	}
}

func TestPitch_StepBackward_InvertsStepForward(t *testing.T) {
	for _, p := range samplePitches() {
		for adjust := -2; adjust <= 3; adjust++ {
			assert.Equal(t, p, p.StepForward(adjust).StepBackward(adjust), "pitch %v adjust %d", p, adjust)
			assert.Equal(t, p, p.StepBackward(adjust).StepForward(adjust), "pitch %v adjust %d", p, adjust)
		}
	}
}

func TestPitch_Leap(t *testing.T) {
	tests := []struct {
		from     string
		interval interval.Interval
		want     string
	}{
		{"C", interval.PerfectUnison, "C"},
		{"C", interval.MajorSecond, "D"},
		{"C", interval.MajorThird, "E"},
		{"C", interval.PerfectFourth, "F"},
		{"C", interval.PerfectFifth, "G"},
		{"C", interval.MajorSixth, "A"},
		{"C", interval.MajorSeventh, "B"},
		{"C", interval.PerfectOctave, "C"},
		{"C", interval.MinorThird, "Eb"},
		{"C", interval.Augmented(interval.Second), "D#"},
		{"C#", interval.Diminished(interval.Third), "Eb"},
		{"C", interval.AugmentedFourth, "F#"},
		{"C", interval.DiminishedFifth, "Gb"},
		{"Cb", interval.PerfectFourth, "Fb"},
		{"G#", interval.MajorSeventh, "F##"},
		{"B#", interval.Augmented(interval.Sixth), "G###"},
		{"E", interval.Diminished(interval.Second), "Fb"},
	}

	for _, tt := range tests {
		t.Run(tt.from+"+"+tt.interval.String(), func(t *testing.T) {
			assert.Equal(t, MustParse(tt.want), MustParse(tt.from).Leap(tt.interval))
		})
	}
}

func TestPitch_Fall(t *testing.T) {
	tests := []struct {
		from     string
		interval interval.Interval
		want     string
	}{
		{"C", interval.PerfectUnison, "C"},
		{"C", interval.MinorSecond, "B"},
		{"C", interval.MinorThird, "A"},
		{"C", interval.PerfectFourth, "G"},
		{"C", interval.PerfectFifth, "F"},
		{"C", interval.MinorSixth, "E"},
		{"C", interval.MinorSeventh, "D"},
		{"F", interval.AugmentedFourth, "Cb"},
		{"Eb", interval.MajorThird, "Cb"},
	}

	for _, tt := range tests {
		t.Run(tt.from+"-"+tt.interval.String(), func(t *testing.T) {
			assert.Equal(t, MustParse(tt.want), MustParse(tt.from).Fall(tt.interval))
		})
	}
}

func TestPitch_LeapFall_RoundTrip(t *testing.T) {
	for _, p := range samplePitches() {
		for _, i := range interval.All() {
			assert.Equal(t, p, p.Fall(i).Leap(i), "leap(fall(%v, %v))", p, i)
			assert.Equal(t, p, p.Leap(i).Fall(i), "fall(leap(%v, %v))", p, i)
		}
	}
}

func TestPitch_Leap_LetterAndClass(t *testing.T) {
	for _, p := range samplePitches() {
		for _, i := range interval.All() {
			got := p.Leap(i)
			wantName := p.Name
			for range i.DiatonicSteps() {
				wantName = wantName.Next()
			}
			assert.Equal(t, wantName, got.Name, "%v + %v letter", p, i)
			assert.Equal(t, (p.Class()+i.Size())%12, got.Class(), "%v + %v class", p, i)
		}
	}
}

func TestPitch_TritonePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("C").Leap(interval.Tritone()) })
}

func TestPitch_Class(t *testing.T) {
	tests := []struct {
		pitch string
		want  int
	}{
		{"C", 0}, {"C#", 1}, {"Db", 1}, {"B#", 0}, {"Cb", 11}, {"Fb", 4}, {"E#", 5}, {"Bbb", 9}, {"Cbbbb", 8},
	}

	for _, tt := range tests {
		t.Run(tt.pitch, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.pitch).Class())
		})
	}

	assert.True(t, MustParse("C#").Enharmonic(MustParse("Db")))
	assert.False(t, MustParse("C#").Enharmonic(MustParse("D")))
	assert.NotEqual(t, MustParse("C#"), MustParse("Db"))
}

func TestPitch_Compare(t *testing.T) {
	assert.Equal(t, -1, MustParse("C#").Compare(MustParse("Db")))
	assert.Equal(t, 1, MustParse("B").Compare(MustParse("Cb")))
	assert.Equal(t, -1, MustParse("Eb").Compare(MustParse("E")))
	assert.Equal(t, 0, MustParse("F#").Compare(MustParse("F♯")))
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Pitch
		wantErr bool
	}{
		{"C", New(C, Natural), false},
		{"Eb", New(E, Flat), false},
		{"E♭", New(E, Flat), false},
		{"ees", New(E, Flat), false},
		{"es", New(E, Flat), false},
		{"as", New(A, Flat), false},
		{"ases", New(A, DoubleFlat), false},
		{"bb", New(B, Flat), false},
		{"Bbb", New(B, DoubleFlat), false},
		{"cis", New(C, Sharp), false},
		{"Fx", New(F, DoubleSharp), false},
		{"F𝄪", New(F, DoubleSharp), false},
		{"g♯♯♯", New(G, 3), false},

		{"", Pitch{}, true},
		{"H", Pitch{}, true},
		{"C#b", Pitch{}, true},
		{"Cq", Pitch{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPitch_Formats(t *testing.T) {
	tests := []struct {
		pitch   Pitch
		display string
		ascii   string
		dutch   string
		literal string
		gostr   string
	}{
		{New(C, Natural), "C", "C", "c", "c4", "pitch.New(pitch.C, 0)"},
		{New(E, Flat), "E♭", "Eb", "ees", "ees4", "pitch.New(pitch.E, -1)"},
		{New(F, DoubleSharp), "F𝄪", "F##", "fisis", "fisis4", "pitch.New(pitch.F, 2)"},
		{New(B, DoubleFlat), "B𝄫", "Bbb", "beses", "beses4", "pitch.New(pitch.B, -2)"},
		{New(G, 3), "G♯♯♯", "G###", "gisisis", "gisisis4", "pitch.New(pitch.G, 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.ascii, func(t *testing.T) {
			assert.Equal(t, tt.display, tt.pitch.String())
			assert.Equal(t, tt.ascii, tt.pitch.ASCII())
			assert.Equal(t, tt.dutch, tt.pitch.Dutch())
			assert.Equal(t, tt.literal, tt.pitch.Literal())
			assert.Equal(t, tt.gostr, fmt.Sprintf("%#v", tt.pitch))

			for _, form := range []string{tt.display, tt.ascii, tt.dutch} {
				got, err := Parse(form)
				require.NoError(t, err, form)
				assert.Equal(t, tt.pitch, got, form)
			}
			n, err := ParseNote(tt.literal)
			require.NoError(t, err)
			assert.Equal(t, AtOctave(tt.pitch, DefaultOctave), n)
		})
	}
}

func TestPitch_Model(t *testing.T) {
	p := New(A, Flat)
	assert.Equal(t, "Pitch", p.TypeName())
	assert.Equal(t, p.String(), p.Redacted())
	assert.True(t, Pitch{}.IsZero())
	assert.False(t, p.IsZero())
	assert.True(t, p.Equal(New(A, Flat)))
	assert.True(t, p.Equal(&p))
	assert.False(t, p.Equal((*Pitch)(nil)))
	assert.False(t, p.Equal(New(G, Sharp)))
	assert.NoError(t, p.Validate())
	assert.Error(t, Pitch{Name: NoteName(12)}.Validate())
}

func TestPitch_JSON_YAML(t *testing.T) {
	in := []Pitch{New(E, Flat), New(F, Sharp), New(C, Natural)}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `["Eb","F#","C"]`, string(data))

	var out []Pitch
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	ydata, err := yaml.Marshal(in)
	require.NoError(t, err)
	var yout []Pitch
	require.NoError(t, yaml.Unmarshal(ydata, &yout))
	assert.Equal(t, in, yout)

	_, err = json.Marshal(Pitch{Name: NoteName(9)})
	assert.Error(t, err)
}
