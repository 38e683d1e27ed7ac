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

package prim

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAPrimitive matches every *NotAPrimitiveError via errors.Is.
	ErrNotAPrimitive = errors.New("prim: not a domain primitive")
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("prim: builder returned nil registry")
	// ErrNilClassifier is returned when a builder returns a nil classifier.
	ErrNilClassifier = errors.New("prim: builder returned nil classifier")
	// ErrResultType is returned by the generic helpers when a result does not
	// have the requested type.
	ErrResultType = errors.New("prim: result has an unexpected type")
)

// NotAPrimitiveError reports an operand whose type is not a domain primitive.
type NotAPrimitiveError struct {
	// Type is the identifier of the offending type.
	Type string
	// Reason is the first check that failed, if known.
	Reason error
}

// Error returns "<type> is not a domain primitive", followed by the reason.
func (e *NotAPrimitiveError) Error() string {
	msg := fmt.Sprintf("%s is not a domain primitive", e.Type)
	if e.Reason != nil {
		msg += ": " + e.Reason.Error()
	}
	return msg
}

// Unwrap returns the reason.
func (e *NotAPrimitiveError) Unwrap() error {
	return e.Reason
}

// Is makes errors.Is(err, ErrNotAPrimitive) true for every *NotAPrimitiveError.
func (e *NotAPrimitiveError) Is(target error) bool {
	return target == ErrNotAPrimitive
}
