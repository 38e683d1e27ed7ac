/*
   Copyright 2025 The DIRPX Authors.

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

package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("prim(scalar): validation failed")
	// ErrValueType is wrapped by a *ValidationError when the supplied value
	// does not have the wrapped type.
	ErrValueType = errors.New("prim(scalar): value has the wrong type")
	// ErrNotScalar is returned by Make for types that do not embed Scalar.
	ErrNotScalar = errors.New("prim(scalar): type does not embed scalar.Scalar")
	// ErrNoCheck is returned by Make for types without a Check(V) bool method.
	ErrNoCheck = errors.New("prim(scalar): type does not declare Check")
)

// ValidationError reports a value rejected while constructing a primitive.
type ValidationError struct {
	// Type is the identifier of the primitive type being constructed.
	Type string
	// Value is the offending value.
	Value any
	// Err is an optional cause, such as ErrValueType.
	Err error
}

// Error returns "<value> is not a valid <type>", followed by the cause if any.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%v is not a valid %s", e.Value, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the cause.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrValidation) true for every *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
