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

package model_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"dirpx.dev/dxtheory/dxcore/model"
	"gopkg.in/yaml.v3"
)

// ExampleTuning demonstrates a complete Model implementation.
type ExampleTuning struct {
	Name string
	A4   int // reference frequency in Hz
}

// Validate implements Validatable
func (e ExampleTuning) Validate() error {
	if e.Name == "" {
		return errors.New("name required")
	}
	if e.A4 <= 0 {
		return errors.New("reference frequency must be positive")
	}
	return nil
}

// TypeName implements Identifiable
func (e ExampleTuning) TypeName() string {
	return "ExampleTuning"
}

// IsZero implements ZeroCheckable
func (e ExampleTuning) IsZero() bool {
	return e.Name == "" && e.A4 == 0
}

// Redacted implements Loggable
func (e ExampleTuning) Redacted() string {
	return e.String()
}

// String implements Loggable
func (e ExampleTuning) String() string {
	return "ExampleTuning{Name:" + e.Name + "}"
}

// MarshalJSON implements Serializable
func (e ExampleTuning) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	type alias ExampleTuning
	return json.Marshal((alias)(e))
}

// UnmarshalJSON implements Serializable
func (e *ExampleTuning) UnmarshalJSON(data []byte) error {
	type alias ExampleTuning
	if err := json.Unmarshal(data, (*alias)(e)); err != nil {
		return err
	}
	return e.Validate()
}

// MarshalYAML implements Serializable
func (e ExampleTuning) MarshalYAML() (interface{}, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	type alias ExampleTuning
	return (alias)(e), nil
}

// UnmarshalYAML implements Serializable
func (e *ExampleTuning) UnmarshalYAML(node *yaml.Node) error {
	type alias ExampleTuning
	if err := node.Decode((*alias)(e)); err != nil {
		return err
	}
	return e.Validate()
}

// Verify ExampleTuning implements Model at compile time
var _ model.Model = (*ExampleTuning)(nil)

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name      string
		models    []ExampleTuning
		wantErr   bool
		wantParts []string
	}{
		{"empty", nil, false, nil},
		{"all valid", []ExampleTuning{{"concert", 440}, {"baroque", 415}}, false, nil},
		{
			"two invalid",
			[]ExampleTuning{{"concert", 440}, {"", 440}, {"broken", 0}},
			true,
			[]string{"model[1] (ExampleTuning)", "model[2] (ExampleTuning)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateAll(tt.models)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, part := range tt.wantParts {
				if !strings.Contains(err.Error(), part) {
					t.Errorf("ValidateAll() error %q should mention %q", err, part)
				}
			}
		})
	}
}

func TestFilterZero(t *testing.T) {
	in := []ExampleTuning{{}, {"concert", 440}, {}, {"baroque", 415}}
	got := model.FilterZero(in)
	if len(got) != 2 {
		t.Fatalf("FilterZero() len = %d, want 2", len(got))
	}
	if got[0].Name != "concert" || got[1].Name != "baroque" {
		t.Errorf("FilterZero() = %+v", got)
	}
	if len(in) != 4 {
		t.Errorf("FilterZero() modified its input")
	}
}

func TestMustValidate(t *testing.T) {
	valid := ExampleTuning{"concert", 440}
	if got := model.MustValidate(valid); got != valid {
		t.Errorf("MustValidate() = %+v, want %+v", got, valid)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustValidate() should panic on invalid model")
		}
	}()
	model.MustValidate(ExampleTuning{})
}

func TestSafeString(t *testing.T) {
	m := ExampleTuning{"concert", 440}
	if got := model.SafeString(m, false); got != m.Redacted() {
		t.Errorf("SafeString(false) = %q, want %q", got, m.Redacted())
	}
	if got := model.SafeString(m, true); got != m.String() {
		t.Errorf("SafeString(true) = %q, want %q", got, m.String())
	}
}

func TestToJSON_FromJSON_RoundTrip(t *testing.T) {
	original := ExampleTuning{"concert", 440}

	data, err := model.ToJSON(original)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded ExampleTuning
	if err := model.FromJSON(data, &decoded); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if decoded != original {
		t.Errorf("JSON round-trip failed: got %+v, want %+v", decoded, original)
	}
}

func TestToYAML_FromYAML_RoundTrip(t *testing.T) {
	original := ExampleTuning{"baroque", 415}

	data, err := model.ToYAML(original)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var decoded ExampleTuning
	if err := model.FromYAML(data, &decoded); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if decoded != original {
		t.Errorf("YAML round-trip failed: got %+v, want %+v", decoded, original)
	}
}

func TestToJSON_FailsOnInvalid(t *testing.T) {
	if _, err := model.ToJSON(ExampleTuning{}); err == nil {
		t.Error("ToJSON() should fail on invalid model")
	}
	if _, err := model.ToYAML(ExampleTuning{}); err == nil {
		t.Error("ToYAML() should fail on invalid model")
	}
}

func TestFromYAML_FailsOnInvalid(t *testing.T) {
	var m ExampleTuning
	if err := model.FromYAML([]byte("name: concert\na4: 0\n"), &m); err == nil {
		t.Error("FromYAML() should fail when validation fails")
	}
}

func TestClone(t *testing.T) {
	original := ExampleTuning{"concert", 440}
	clone, err := model.Clone(original)
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if clone != original {
		t.Errorf("Clone() = %+v, want %+v", clone, original)
	}
}

func TestEqual(t *testing.T) {
	a := ExampleTuning{"concert", 440}
	b := ExampleTuning{"concert", 440}
	c := ExampleTuning{"baroque", 415}

	if !model.Equal(a, b) {
		t.Error("Equal() should report identical models as equal")
	}
	if model.Equal(a, c) {
		t.Error("Equal() should report different models as unequal")
	}
	if model.Equal(ExampleTuning{}, ExampleTuning{}) {
		t.Error("Equal() should be false when marshaling fails")
	}
}
