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

// Package errors provides the error types shared by the dxtheory model
// packages.
//
// Every enum-like value in dxtheory (NoteName, Accidental, Quality, Degree,
// Mode, chord Quality and Tension) and every composite value (Interval,
// Pitch, Note, Set, Definition) reports failures through the same small set
// of value carriers so that callers can recognise them with errors.As
// regardless of which package produced them.
//
// # Error Types
//
//   - ParseError
//     Returned when a textual form ("E♭", "P5", "dorian") cannot be
//     interpreted.
//
//   - MarshalError
//     Returned when an out-of-range enum value is about to be serialized.
//
//   - UnmarshalError
//     Returned when JSON, YAML or text input cannot be decoded.
//
//   - ValidationError
//     Returned by Validate methods, for example when an interval set holds
//     two intervals of the same number.
//
//   - OctaveUnderflowError
//     Returned when a Note would step below register 0. Octaves are unsigned
//     registers, so the step is refused rather than wrapped.
//
// The arithmetic itself is total: leaps, falls and scale spelling never
// fail on well-formed input, and the only runtime failure outside this
// package is the panic raised when a diatonic distance is requested from an
// unresolved tritone.
package errors

import "strconv"

// ParseError is returned when parsing a string into a typed theory value
// fails.
//
// Type identifies the logical type being parsed (for example, "Pitch",
// "Interval", "Mode") and Value holds the exact input that could not be
// interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Pitch").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxtheory: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxtheory: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails because it is
// outside the set of valid constants.
//
// In practice a MarshalError points at a numeric cast that was never
// validated, such as interval.Degree(42) or pitch.NoteName(-1).
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "NoteName").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxtheory: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxtheory: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the raw
// payload, and Reason describes what went wrong.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxtheory: cannot unmarshal {Type}: {Reason}"
//
// The Data field is not included in the message.
func (e *UnmarshalError) Error() string {
	return "dxtheory: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Field optionally identifies which field failed validation and Value
// optionally carries the offending value.
//
// # Example
//
//	func (s Set) Validate() error {
//	    if dup := s.duplicate(); dup != nil {
//	        return &errors.ValidationError{
//	            Type:   "Set",
//	            Field:  "Intervals",
//	            Reason: "duplicate interval number " + dup.Degree().String(),
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxtheory: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxtheory: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxtheory: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxtheory: invalid " + e.Type + ": " + e.Reason
}

// OctaveUnderflowError is returned when a Note operation would move below
// register 0.
//
// Note is the textual form of the note the operation started from and Op
// names the operation ("step backward", "fall").
type OctaveUnderflowError struct {
	// Note is the starting note, rendered with its String method.
	Note string

	// Op is the operation that crossed the lower register boundary.
	Op string
}

// Error implements the error interface for OctaveUnderflowError.
//
// The error message format is:
//
//	"dxtheory: octave underflow: cannot {Op} from {Note}"
func (e *OctaveUnderflowError) Error() string {
	return "dxtheory: octave underflow: cannot " + e.Op + " from " + e.Note
}
