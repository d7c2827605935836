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
	"fmt"
	"slices"
	"strings"

	"dirpx.dev/dxtheory/dxcore/errors"
	"dirpx.dev/dxtheory/dxcore/model"
	"dirpx.dev/dxtheory/dxcore/model/pitch"
	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Definition names an interval set so that it can be looked up and rooted
// later.
//
// In YAML a definition is written as
//
//	name: harmonic minor
//	intervals: [P1, M2, m3, P4, P5, m6, M7]
//
// or with the intervals as a single string ("P1 M2 m3 P4 P5 m6 M7").
type Definition struct {
	Name      string `json:"name" yaml:"name"`
	Intervals Set    `json:"intervals" yaml:"intervals"`
}

// definition has the fields of Definition without its methods.
type definition Definition

// At returns the scale rooted at root.
func (d Definition) At(root pitch.Note) Custom {
	return New(root, d.Intervals).Named(d.Name)
}

// String returns "name: P1 M2 ...".
func (d Definition) String() string {
	return d.Name + ": " + d.Intervals.String()
}

// TypeName returns "Definition".
func (d Definition) TypeName() string {
	return "Definition"
}

// Redacted returns the same string representation as String().
func (d Definition) Redacted() string {
	return d.String()
}

// IsZero reports whether d has neither a name nor intervals.
func (d Definition) IsZero() bool {
	return d.Name == "" && d.Intervals.IsZero()
}

// Validate requires a name and a non-empty, valid interval set.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return &errors.ValidationError{Type: "Definition", Field: "Name", Reason: "must not be empty"}
	}
	if d.Intervals.IsZero() {
		return &errors.ValidationError{Type: "Definition", Field: "Intervals", Reason: "must not be empty", Value: d.Name}
	}
	return d.Intervals.Validate()
}

// MarshalJSON implements json.Marshaler for Definition.
func (d Definition) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(definition(d))
}

// UnmarshalJSON implements json.Unmarshaler for Definition.
func (d *Definition) UnmarshalJSON(data []byte) error {
	var v definition
	if err := json.Unmarshal(data, &v); err != nil {
		return &errors.UnmarshalError{Type: "Definition", Data: data, Reason: err.Error()}
	}
	*d = Definition(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Definition.
func (d Definition) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return definition(d), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Definition.
func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	var v definition
	if err := node.Decode(&v); err != nil {
		return err
	}
	*d = Definition(v)
	return nil
}

// Catalog is an ordered list of scale definitions.
//
// Catalogs are read from YAML documents of the form
//
//	scales:
//	  - name: hungarian minor
//	    intervals: P1 M2 m3 A4 P5 m6 M7
//
// Malformed interval lists are rejected while decoding. Once decoded, the
// catalog is validated as a whole and every unnamed or empty definition and
// every duplicated name is reported in one error.
type Catalog struct {
	Scales []Definition `json:"scales" yaml:"scales"`
}

type catalog Catalog

// Builtin returns a catalog holding the seven modes followed by the
// derived minor and pentatonic sets.
func Builtin() Catalog {
	defs := make([]Definition, 0, 11)
	for _, m := range Modes() {
		defs = append(defs, Definition{Name: m.String(), Intervals: m.Intervals()})
	}
	defs = append(defs,
		Definition{Name: "harmonic minor", Intervals: HarmonicMinor},
		Definition{Name: "melodic minor", Intervals: MelodicMinor},
		Definition{Name: "major pentatonic", Intervals: MajorPentatonic},
		Definition{Name: "minor pentatonic", Intervals: MinorPentatonic},
	)
	return Catalog{Scales: defs}
}

// LoadCatalog decodes and validates a YAML catalog.
func LoadCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := model.FromYAML(data, &c); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Lookup returns the definition whose name matches name, ignoring case and
// surrounding spaces.
func (c Catalog) Lookup(name string) (Definition, bool) {
	key := normalizeName(name)
	i := slices.IndexFunc(c.Scales, func(d Definition) bool {
		return normalizeName(d.Name) == key
	})
	if i < 0 {
		return Definition{}, false
	}
	return c.Scales[i], true
}

// Names returns the definition names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.Scales))
	for _, d := range c.Scales {
		names = append(names, d.Name)
	}
	return names
}

// Merge returns a catalog holding the definitions of c followed by those of
// other. A definition in other replaces the one of the same name in c, in
// place.
func (c Catalog) Merge(other Catalog) Catalog {
	out := slices.Clone(c.Scales)
	for _, d := range other.Scales {
		key := normalizeName(d.Name)
		i := slices.IndexFunc(out, func(e Definition) bool {
			return normalizeName(e.Name) == key
		})
		if i >= 0 {
			out[i] = d
			continue
		}
		out = append(out, d)
	}
	return Catalog{Scales: out}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// String returns the definitions one per line.
func (c Catalog) String() string {
	lines := make([]string, 0, len(c.Scales))
	for _, d := range c.Scales {
		lines = append(lines, d.String())
	}
	return strings.Join(lines, "\n")
}

// TypeName returns "Catalog".
func (c Catalog) TypeName() string {
	return "Catalog"
}

// Redacted returns the same string representation as String().
func (c Catalog) Redacted() string {
	return c.String()
}

// IsZero reports whether the catalog has no definitions.
func (c Catalog) IsZero() bool {
	return len(c.Scales) == 0
}

// Validate validates every definition and rejects names used twice.
func (c Catalog) Validate() error {
	col := rxmerr.NewCollector()
	if err := model.ValidateAll(c.Scales); err != nil {
		col.Append(err)
	}

	seen := make(map[string]int, len(c.Scales))
	for i, d := range c.Scales {
		key := normalizeName(d.Name)
		if key == "" {
			continue
		}
		if first, ok := seen[key]; ok {
			col.Append(&errors.ValidationError{
				Type:   "Catalog",
				Field:  "Scales",
				Reason: fmt.Sprintf("duplicate name %q at %d and %d", d.Name, first, i),
			})
			continue
		}
		seen[key] = i
	}

	return col.Err()
}

// MarshalJSON implements json.Marshaler for Catalog.
func (c Catalog) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(catalog(c))
}

// UnmarshalJSON implements json.Unmarshaler for Catalog.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	var v catalog
	if err := json.Unmarshal(data, &v); err != nil {
		return &errors.UnmarshalError{Type: "Catalog", Data: data, Reason: err.Error()}
	}
	*c = Catalog(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Catalog.
func (c Catalog) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return catalog(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Catalog.
func (c *Catalog) UnmarshalYAML(node *yaml.Node) error {
	var v catalog
	if err := node.Decode(&v); err != nil {
		return err
	}
	*c = Catalog(v)
	return nil
}

// Compile-time checks that Definition and Catalog implement model.Model.
var (
	_ model.Model = (*Definition)(nil)
	_ model.Model = (*Catalog)(nil)
)
