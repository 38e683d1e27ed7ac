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

package strategy

import "errors"

// Classification failure reasons, in the order the checks run.
var (
	// ErrNotStruct is returned for types that are not structs.
	ErrNotStruct = errors.New("prim(strategy): not a struct")
	// ErrFieldCount is returned when a type does not expose exactly one field.
	ErrFieldCount = errors.New("prim(strategy): want exactly one exported field")
	// ErrFieldName is returned when the sole exported field is not named Value.
	ErrFieldName = errors.New(`prim(strategy): sole exported field is not named "Value"`)
	// ErrSlotType is returned when the value slot is not of a supported scalar kind.
	ErrSlotType = errors.New("prim(strategy): value slot is not a supported scalar type")
	// ErrNoConstructor is returned when a structural type has no registered constructor.
	ErrNoConstructor = errors.New("prim(strategy): no constructor registered")
	// ErrNoParameters is returned when the constructor takes no parameters.
	ErrNoParameters = errors.New("prim(strategy): constructor accepts no parameters")
	// ErrMisalignedParameter is returned when the constructor's first
	// parameter does not take the value slot's type.
	ErrMisalignedParameter = errors.New("prim(strategy): constructor's first parameter does not match the value slot")
	// ErrNoCheck is returned when a nominal type lacks Check(V) bool.
	ErrNoCheck = errors.New("prim(strategy): no Check predicate aligned with the wrapped type")
)
