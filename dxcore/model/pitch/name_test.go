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
	"testing"
)

func TestNoteName_String(t *testing.T) {
	tests := []struct {
		name NoteName
		want string
	}{
		{C, "C"}, {D, "D"}, {E, "E"}, {F, "F"}, {G, "G"}, {A, "A"}, {B, "B"},
		{NoteName(7), "?"},
		{NoteName(-1), "?"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.name.String(); got != tt.want {
				t.Errorf("NoteName.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseNoteName(t *testing.T) {
	tests := []struct {
		input   string
		want    NoteName
		wantErr bool
	}{
		{"C", C, false},
		{"c", C, false},
		{"g", G, false},
		{"B", B, false},
		{"H", C, true},
		{"", C, true},
		{"Cb", C, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNoteName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseNoteName() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseNoteName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNoteName_NextPrev(t *testing.T) {
	order := []NoteName{C, D, E, F, G, A, B}
	for i, n := range order {
		next := order[(i+1)%7]
		prev := order[(i+6)%7]
		if got := n.Next(); got != next {
			t.Errorf("%v.Next() = %v, want %v", n, got, next)
		}
		if got := n.Prev(); got != prev {
			t.Errorf("%v.Prev() = %v, want %v", n, got, prev)
		}
	}
}

func TestNoteName_Gap(t *testing.T) {
	total := 0
	for n := C; n <= B; n++ {
		want := 2
		if n == E || n == B {
			want = 1
		}
		if got := n.Gap(); got != want {
			t.Errorf("%v.Gap() = %d, want %d", n, got, want)
		}
		if n < B && n.Base()+n.Gap() != n.Next().Base() {
			t.Errorf("%v.Base()+Gap() = %d, want %v.Base() = %d", n, n.Base()+n.Gap(), n.Next(), n.Next().Base())
		}
		total += n.Gap()
	}
	if total != 12 {
		t.Errorf("sum of gaps = %d, want 12", total)
	}
}

func TestNoteName_Validate(t *testing.T) {
	if err := G.Validate(); err != nil {
		t.Errorf("G.Validate() error = %v", err)
	}
	if err := NoteName(7).Validate(); err == nil {
		t.Error("NoteName(7).Validate() should fail")
	}
	if _, err := json.Marshal(NoteName(9)); err == nil {
		t.Error("json.Marshal(NoteName(9)) should fail")
	}
}

func TestAccidental_Forms(t *testing.T) {
	tests := []struct {
		acc   Accidental
		glyph string
		ascii string
		dutch string
	}{
		{-3, "♭♭♭", "bbb", "eseses"},
		{DoubleFlat, "𝄫", "bb", "eses"},
		{Flat, "♭", "b", "es"},
		{Natural, "", "", ""},
		{Sharp, "♯", "#", "is"},
		{DoubleSharp, "𝄪", "##", "isis"},
		{4, "♯♯♯♯", "####", "isisisis"},
	}

	for _, tt := range tests {
		t.Run(tt.ascii, func(t *testing.T) {
			if got := tt.acc.Glyph(); got != tt.glyph {
				t.Errorf("Glyph() = %q, want %q", got, tt.glyph)
			}
			if got := tt.acc.ASCII(); got != tt.ascii {
				t.Errorf("ASCII() = %q, want %q", got, tt.ascii)
			}
			if got := tt.acc.Dutch(); got != tt.dutch {
				t.Errorf("Dutch() = %q, want %q", got, tt.dutch)
			}
		})
	}

	if got := Natural.String(); got != "♮" {
		t.Errorf("Natural.String() = %q, want ♮", got)
	}
}

func TestParseAccidental(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Accidental
		wantErr bool
	}{
		{"empty", "", Natural, false},
		{"natural glyph", "♮", Natural, false},
		{"n", "n", Natural, false},
		{"sharp", "#", Sharp, false},
		{"x", "x", DoubleSharp, false},
		{"double sharp glyph", "𝄪", DoubleSharp, false},
		{"glyph run", "♯♯♯", 3, false},
		{"mixed sharps", "𝄪♯", 3, false},
		{"flat", "b", Flat, false},
		{"double flat glyph", "𝄫", DoubleFlat, false},
		{"dutch sharps", "isis", DoubleSharp, false},
		{"dutch flats", "eses", DoubleFlat, false},

		{"sharp and flat", "#b", Natural, true},
		{"unknown", "q", Natural, true},
		{"partial dutch", "i", Natural, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAccidental(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAccidental() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAccidental() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccidental_RoundTrip(t *testing.T) {
	for a := Accidental(-6); a <= 6; a++ {
		for _, form := range []string{a.Glyph(), a.String(), a.ASCII(), a.Dutch()} {
			got, err := ParseAccidental(form)
			if err != nil || got != a {
				t.Errorf("ParseAccidental(%q) = %v, %v; want %d", form, got, err, int(a))
			}
		}
	}
}

func TestAccidental_Glyph_Monotonic(t *testing.T) {
	for a := Accidental(1); a <= 8; a++ {
		if len([]rune(a.ASCII())) != int(a) || len([]rune((-a).ASCII())) != int(a) {
			t.Errorf("ASCII run for %d has the wrong length", int(a))
		}
	}
}

func TestAccidental_JSON(t *testing.T) {
	data, err := json.Marshal(Accidental(-2))
	if err != nil || string(data) != "-2" {
		t.Fatalf("json.Marshal(-2) = %s, %v", data, err)
	}

	var a Accidental
	if err := json.Unmarshal([]byte(`"##"`), &a); err != nil || a != DoubleSharp {
		t.Errorf("json.Unmarshal(\"##\") = %v, %v", a, err)
	}
	if err := json.Unmarshal([]byte(`3`), &a); err != nil || a != 3 {
		t.Errorf("json.Unmarshal(3) = %v, %v", a, err)
	}
	if err := json.Unmarshal([]byte(`"zz"`), &a); err == nil {
		t.Error("json.Unmarshal(\"zz\") should fail")
	}
}
