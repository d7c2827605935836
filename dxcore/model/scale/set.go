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

package scale

import (
	"encoding/json"
	"slices"
	"strings"

	"dirpx.dev/dxtheory/dxcore/errors"
	"dirpx.dev/dxtheory/dxcore/model"
	"dirpx.dev/dxtheory/dxcore/model/interval"
	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Set is an immutable collection of spelled intervals above a root, at most
// one per interval number.
//
// The zero Set is empty and valid. Sets are built with NewSet or MustSet
// and derived from one another with Substitute; no method modifies the
// receiver.
type Set struct {
	intervals []interval.Interval
}

// NewSet returns the set of the given intervals, or a *ValidationError if two
// of them share an interval number or one is an unresolved tritone.
func NewSet(intervals ...interval.Interval) (Set, error) {
	s := Set{intervals: slices.Clone(intervals)}
	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// MustSet is like NewSet but panics on error. It is intended for literal
// tables.
func MustSet(intervals ...interval.Interval) Set {
	return model.MustValidate(Set{intervals: slices.Clone(intervals)})
}

// Intervals returns a copy of the intervals in construction order.
func (s Set) Intervals() []interval.Interval {
	return slices.Clone(s.intervals)
}

// Len returns the number of intervals in the set.
func (s Set) Len() int {
	return len(s.intervals)
}

// Get returns the interval of number d, if present.
func (s Set) Get(d interval.Degree) (interval.Interval, bool) {
	if i := s.index(d); i >= 0 {
		return s.intervals[i], true
	}
	return interval.Interval{}, false
}

// Has reports whether the set holds an interval of number d.
func (s Set) Has(d interval.Degree) bool {
	return s.index(d) >= 0
}

func (s Set) index(d interval.Degree) int {
	return slices.IndexFunc(s.intervals, func(i interval.Interval) bool {
		return !i.IsTritone() && i.Degree() == d
	})
}

// Substitute returns a new set in which the interval sharing replacement's
// number is replaced by replacement, whatever its quality. The receiver is
// left untouched.
//
// When the set holds no interval of that number, Substitute returns the set
// unchanged. Mode derivation relies on this being a no-op rather than an
// error, since the reference table always holds all seven numbers.
// replacement must be spelled.
func (s Set) Substitute(replacement interval.Interval) Set {
	i := s.index(replacement.Degree())
	if i < 0 {
		return s
	}
	out := slices.Clone(s.intervals)
	out[i] = replacement
	return Set{intervals: out}
}

// With returns a new set holding the intervals of s followed by extra, or a
// *ValidationError if the result would repeat an interval number.
func (s Set) With(extra ...interval.Interval) (Set, error) {
	return NewSet(append(s.Intervals(), extra...)...)
}

// Sorted returns the intervals in spelling order: ascending size, then
// ascending diatonic steps.
func (s Set) Sorted() []interval.Interval {
	out := slices.Clone(s.intervals)
	interval.SortSlice(out)
	return out
}

// Equal reports whether s and other hold the same intervals, in any order.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.Sorted(), other.Sorted())
}

// Clone returns a copy of s that shares no backing array with it.
func (s Set) Clone() Set {
	return Set{intervals: slices.Clone(s.intervals)}
}

// String returns the sorted short interval names separated by spaces
// ("P1 M2 m3 P4 P5 M6 m7").
func (s Set) String() string {
	names := make([]string, 0, len(s.intervals))
	for _, i := range s.Sorted() {
		names = append(names, i.String())
	}
	return strings.Join(names, " ")
}

// ParseSet parses a whitespace- or comma-separated list of interval names
// ("P1 M2 m3", "P1, M3, P5").
func ParseSet(str string) (Set, error) {
	fields := strings.FieldsFunc(str, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	intervals := make([]interval.Interval, 0, len(fields))
	for _, f := range fields {
		i, err := interval.ParseInterval(f)
		if err != nil {
			return Set{}, err
		}
		intervals = append(intervals, i)
	}
	return NewSet(intervals...)
}

// TypeName returns "Set".
func (s Set) TypeName() string {
	return "Set"
}

// Redacted returns the same string representation as String().
func (s Set) Redacted() string {
	return s.String()
}

// IsZero reports whether the set is empty.
func (s Set) IsZero() bool {
	return len(s.intervals) == 0
}

// Validate reports every duplicate interval number and every unresolved
// tritone in the set.
func (s Set) Validate() error {
	c := rxmerr.NewCollector()
	seen := make(map[interval.Degree]interval.Interval, len(s.intervals))

	for _, i := range s.intervals {
		if i.IsTritone() {
			c.Append(&errors.ValidationError{
				Type:   "Set",
				Field:  "Intervals",
				Reason: "tritone must be spelled as A4 or d5",
				Value:  i.String(),
			})
			continue
		}
		if err := i.Validate(); err != nil {
			c.Append(err)
			continue
		}
		if prev, ok := seen[i.Degree()]; ok {
			c.Append(&errors.ValidationError{
				Type:   "Set",
				Field:  "Intervals",
				Reason: "duplicate interval number " + i.Degree().String() + " (" + prev.String() + ", " + i.String() + ")",
				Value:  i.String(),
			})
			continue
		}
		seen[i.Degree()] = i
	}

	return c.Err()
}

// MarshalJSON encodes the set as a sorted array of short interval names.
func (s Set) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of interval names, or a single string
// accepted by ParseSet.
func (s *Set) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Set", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseSet(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var intervals []interval.Interval
	if err := json.Unmarshal(data, &intervals); err != nil {
		return &errors.UnmarshalError{Type: "Set", Data: data, Reason: err.Error()}
	}
	parsed, err := NewSet(intervals...)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes the set as a sorted sequence of short interval names.
func (s Set) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.Sorted(), nil
}

// UnmarshalYAML decodes a sequence of interval names, or a scalar accepted
// by ParseSet.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		parsed, err := ParseSet(node.Value)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var intervals []interval.Interval
	if err := node.Decode(&intervals); err != nil {
		return &errors.UnmarshalError{Type: "Set", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := NewSet(intervals...)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Compile-time checks that Set implements the model interfaces.
var (
	_ model.Model           = (*Set)(nil)
	_ model.Comparable[Set] = Set{}
	_ model.Cloneable[Set]  = Set{}
)
