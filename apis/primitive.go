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

package apis

// Primitive is implemented by every type that embeds scalar.Scalar.
//
// # Overview
//
// Primitive is the nominal side of classification: the wrapped value is
// reachable without reflection over struct fields. Implementations MUST
// return the same value for the lifetime of the instance.
type Primitive interface {
	// PrimitiveValue returns the wrapped value verbatim.
	PrimitiveValue() any
	// String returns the textual form of the wrapped value.
	String() string
}

// Namer supplies the human-readable name of a primitive type.
//
// # Contract
//
// Namer, Exampler and Describer are type-level: the engine calls them on the
// zero value of the type, so implementations MUST NOT depend on instance
// state, and MUST NOT block or perform I/O. An empty result means "not
// declared" and lets lower-priority sources (registration, struct tags) apply.
type Namer interface {
	PrimitiveName() string
}

// Exampler supplies an example of a valid value as text.
type Exampler interface {
	PrimitiveExample() string
}

// Describer supplies a free-text description of a primitive type.
type Describer interface {
	PrimitiveDescription() string
}
