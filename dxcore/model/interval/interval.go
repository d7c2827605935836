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

// Package interval models musical intervals as a quality applied to an
// interval number, measured two ways: Size in semitones and DiatonicSteps
// in letter names.
//
// The two measurements are what make correctly spelled arithmetic possible.
// A minor third and an augmented second are both three semitones, but one
// moves two letter names and the other moves one, so C up a minor third is
// E♭ while C up an augmented second is D♯.
//
// # Construction
//
// Interval has no exported fields. Values are built by quality constructors
// that only accept the number family the quality applies to:
//
//	interval.Perfect(interval.Fifth)      // P5
//	interval.Major(interval.Third)        // M3
//	interval.Diminished(interval.Fifth)   // d5
//	interval.Augmented(interval.Second)   // A2
//
// interval.Perfect(interval.Third) and interval.Minor(interval.Fourth) do not
// compile. Forcing a number across families through a numeric conversion
// panics at construction.
//
// # Size rules
//
//	perfect:    unison 0, fourth 5, fifth 7, octave 12
//	minor:      second 1, third 3, sixth 8, seventh 10
//	major:      minor + 1
//	diminished: perfect - 1 (never below 0), or minor - 1
//	augmented:  perfect + 1, or major + 1
//
// A diminished unison is clamped to 0 semitones. A diminished second is also
// 0 semitones, but that follows from minor second minus one without any
// clamp; it is the enharmonic equivalent of a unison spelled one letter up.
package interval

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"dirpx.dev/dxtheory/dxcore/errors"
	"dirpx.dev/dxtheory/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Semitone sizes of the unaltered interval: perfect for the perfect family,
// minor for the imperfect family.
var baseSize = [...]int{
	DegreeUnison:  0,
	DegreeSecond:  1,
	DegreeThird:   3,
	DegreeFourth:  5,
	DegreeFifth:   7,
	DegreeSixth:   8,
	DegreeSeventh: 10,
	DegreeOctave:  12,
}

// Interval is a quality-numbered musical distance within one octave.
//
// The zero value is the perfect unison. Interval is comparable and may be
// used as a map key.
type Interval struct {
	quality Quality
	degree  Degree
	tritone bool
}

// Perfect returns the perfect interval of number n.
func Perfect(n PerfectNumber) Interval {
	return build(QualityPerfect, n)
}

// Minor returns the minor interval of number n.
func Minor(n ImperfectNumber) Interval {
	return build(QualityMinor, n)
}

// Major returns the major interval of number n.
func Major(n ImperfectNumber) Interval {
	return build(QualityMajor, n)
}

// Diminished returns the diminished interval of number n, which may be of
// either family.
func Diminished(n Number) Interval {
	return build(QualityDiminished, n)
}

// Augmented returns the augmented interval of number n, which may be of
// either family.
func Augmented(n Number) Interval {
	return build(QualityAugmented, n)
}

func build(q Quality, n Number) Interval {
	if n == nil {
		panic("interval: nil interval number")
	}
	d := n.Degree()
	if !compatible(q, d) {
		panic(fmt.Sprintf("interval: %s quality cannot apply to %s", q, d))
	}
	return Interval{quality: q, degree: d}
}

// compatible reports whether quality q may be applied to degree d, checking
// both the family type and the underlying numeric value.
func compatible(q Quality, d Degree) bool {
	if !q.Valid() || !d.Valid() {
		return false
	}
	switch q {
	case QualityPerfect:
		return d.IsPerfect()
	case QualityMinor, QualityMajor:
		return !d.IsPerfect()
	default:
		return true
	}
}

// New returns the interval of quality q and degree d, or a *ValidationError
// when q does not apply to d. It is the checked entry point for callers that
// hold a runtime Quality and Degree, such as decoders.
func New(q Quality, d Degree) (Interval, error) {
	if !compatible(q, d) {
		return Interval{}, &errors.ValidationError{
			Type:   "Interval",
			Reason: q.String() + " quality cannot apply to " + d.String(),
			Value:  q.Symbol() + fmt.Sprint(d.Ordinal()),
		}
	}
	return Interval{quality: q, degree: d}, nil
}

// Tritone returns the six-semitone interval without a spelling.
//
// A tritone is either an augmented fourth or a diminished fifth, and the two
// land on different letter names. Size reports 6, but DiatonicSteps, Degree
// and Quality panic until the tritone has been resolved with Resolve.
func Tritone() Interval {
	return Interval{tritone: true}
}

// Named intervals within one octave.
var (
	PerfectUnison   = Perfect(Unison)
	MinorSecond     = Minor(Second)
	MajorSecond     = Major(Second)
	MinorThird      = Minor(Third)
	MajorThird      = Major(Third)
	PerfectFourth   = Perfect(Fourth)
	AugmentedFourth = Augmented(Fourth)
	DiminishedFifth = Diminished(Fifth)
	PerfectFifth    = Perfect(Fifth)
	MinorSixth      = Minor(Sixth)
	MajorSixth      = Major(Sixth)
	MinorSeventh    = Minor(Seventh)
	MajorSeventh    = Major(Seventh)
	PerfectOctave   = Perfect(Octave)
)

// All returns every spelled interval within one octave, ordered by Compare.
func All() []Interval {
	var out []Interval
	for d := DegreeUnison; d <= DegreeOctave; d++ {
		for q := QualityPerfect; q <= QualityAugmented; q++ {
			if compatible(q, d) {
				out = append(out, Interval{quality: q, degree: d})
			}
		}
	}
	SortSlice(out)
	return out
}

// IsTritone reports whether i is the unresolved tritone.
func (i Interval) IsTritone() bool {
	return i.tritone
}

// Resolve spells an unresolved tritone as an augmented fourth (DegreeFourth)
// or a diminished fifth (DegreeFifth). Any other degree is a
// *ValidationError. Resolving an interval that is not a tritone returns it
// unchanged.
func (i Interval) Resolve(d Degree) (Interval, error) {
	if !i.tritone {
		return i, nil
	}
	switch d {
	case DegreeFourth:
		return AugmentedFourth, nil
	case DegreeFifth:
		return DiminishedFifth, nil
	default:
		return i, &errors.ValidationError{
			Type:   "Interval",
			Reason: "tritone cannot be spelled as a " + d.String(),
		}
	}
}

func (i Interval) mustBeSpelled() {
	if i.tritone {
		panic("interval: diatonic distance of an unresolved tritone is undefined")
	}
}

// Quality returns the interval's quality. It panics on an unresolved tritone.
func (i Interval) Quality() Quality {
	i.mustBeSpelled()
	return i.quality
}

// Degree returns the interval number. It panics on an unresolved tritone.
func (i Interval) Degree() Degree {
	i.mustBeSpelled()
	return i.degree
}

// Size returns the distance in semitones: 0 for a unison, 12 for an octave.
func (i Interval) Size() int {
	if i.tritone {
		return 6
	}
	base := baseSize[i.degree]
	switch i.quality {
	case QualityMajor:
		return base + 1
	case QualityDiminished:
		if i.degree.IsPerfect() {
			return max(0, base-1)
		}
		return base - 1
	case QualityAugmented:
		if i.degree.IsPerfect() {
			return base + 1
		}
		return base + 2
	default:
		return base
	}
}

// DiatonicSteps returns the distance in letter names: 0 for a unison, 7 for
// an octave. It depends on the interval number only. It panics on an
// unresolved tritone.
func (i Interval) DiatonicSteps() int {
	i.mustBeSpelled()
	return int(i.degree)
}

// Inverse returns the complement of i within the octave: a major third
// becomes a minor sixth, an augmented fourth a diminished fifth, a unison an
// octave. The tritone inverts to itself.
//
// Sizes of an interval and its inverse add up to 12, except for the
// diminished unison, whose size is clamped.
func (i Interval) Inverse() Interval {
	if i.tritone {
		return i
	}
	return Interval{quality: i.quality.Invert(), degree: DegreeOctave - i.degree}
}

// Compare orders a before b by Size, then by DiatonicSteps, so that an
// augmented fourth sorts before a diminished fifth. It returns -1, 0 or +1.
// Both intervals must be spelled.
func Compare(a, b Interval) int {
	switch {
	case a.Size() < b.Size():
		return -1
	case a.Size() > b.Size():
		return 1
	case a.DiatonicSteps() < b.DiatonicSteps():
		return -1
	case a.DiatonicSteps() > b.DiatonicSteps():
		return 1
	default:
		return 0
	}
}

// SortSlice sorts intervals in place by Compare. Equal intervals keep their
// relative order.
func SortSlice(intervals []Interval) {
	slices.SortStableFunc(intervals, Compare)
}

// Less reports whether i sorts before other under Compare.
func (i Interval) Less(other Interval) bool {
	return Compare(i, other) < 0
}

// Name returns the long form of the interval ("major third",
// "diminished fifth", "tritone").
func (i Interval) Name() string {
	if i.tritone {
		return "tritone"
	}
	return i.quality.String() + " " + i.degree.String()
}

// String returns the short form of the interval: the quality symbol followed
// by the one-based number ("P5", "m3", "A4", "d5"). The unresolved tritone
// is "TT".
func (i Interval) String() string {
	if i.tritone {
		return "TT"
	}
	return i.quality.Symbol() + fmt.Sprint(i.degree.Ordinal())
}

// ParseInterval parses the short form produced by String ("M3", "d5", "TT")
// or the long form produced by Name ("major third", "perfect-fifth",
// "Tritone"). Combinations that cross families, such as "P3" or
// "minor fourth", are rejected with a *ParseError.
func ParseInterval(s string) (Interval, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "TT") || strings.EqualFold(trimmed, "tritone") {
		return Tritone(), nil
	}

	var qs, ds string
	if fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}); len(fields) == 2 {
		qs, ds = fields[0], fields[1]
	} else if len(trimmed) == 2 {
		qs, ds = trimmed[:1], trimmed[1:]
	} else {
		return Interval{}, &errors.ParseError{Type: "Interval", Value: s}
	}

	q, err := ParseQuality(qs)
	if err != nil {
		return Interval{}, &errors.ParseError{Type: "Interval", Value: s}
	}
	d, err := ParseDegree(ds)
	if err != nil {
		return Interval{}, &errors.ParseError{Type: "Interval", Value: s}
	}
	if !compatible(q, d) {
		return Interval{}, &errors.ParseError{Type: "Interval", Value: s}
	}
	return Interval{quality: q, degree: d}, nil
}

// MustParse is like ParseInterval but panics on error. It is intended for
// literal tables.
func MustParse(s string) Interval {
	i, err := ParseInterval(s)
	if err != nil {
		panic(err)
	}
	return i
}

// TypeName returns "Interval".
func (i Interval) TypeName() string {
	return "Interval"
}

// Redacted returns the same string representation as String().
func (i Interval) Redacted() string {
	return i.String()
}

// IsZero reports whether i is the perfect unison.
func (i Interval) IsZero() bool {
	return i == Interval{}
}

// Equal reports whether i equals other, which may be an Interval or
// *Interval. Equality is by spelling: an augmented fourth is not equal to a
// diminished fifth.
func (i Interval) Equal(other any) bool {
	switch v := other.(type) {
	case Interval:
		return i == v
	case *Interval:
		if v == nil {
			return false
		}
		return i == *v
	default:
		return false
	}
}

// Validate reports whether the quality applies to the number. Values built
// through the constructors are always valid.
func (i Interval) Validate() error {
	if i.tritone {
		return nil
	}
	if !compatible(i.quality, i.degree) {
		return &errors.ValidationError{
			Type:   "Interval",
			Reason: i.quality.String() + " quality cannot apply to " + i.degree.String(),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Interval using the short form.
func (i Interval) MarshalJSON() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(i.String())
}

// UnmarshalJSON implements json.Unmarshaler for Interval.
func (i *Interval) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Interval", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseInterval(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Interval using the short form.
func (i Interval) MarshalYAML() (any, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return i.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Interval.
func (i *Interval) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Interval", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseInterval(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Interval.
func (i Interval) MarshalText() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Interval.
func (i *Interval) UnmarshalText(text []byte) error {
	parsed, err := ParseInterval(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// Compile-time checks that Interval implements the model interfaces.
var (
	_ model.Model           = (*Interval)(nil)
	_ model.Comparable[any] = Interval{}
)
