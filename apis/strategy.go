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

import (
	"reflect"

	"dirpx.dev/prim/kind"
)

// Strategy is a pluggable classification step. A Classifier chains multiple
// strategies in order (e.g., Nominal -> Structural).
type Strategy interface {
	// TryClassify inspects the named type t. It returns handled=false to fall
	// through to the next strategy. When handled, err is nil for a domain
	// primitive and otherwise names the first check that failed.
	TryClassify(t reflect.Type, cfg Config) (shape Shape, handled bool, err error)
}

// Origin tells how a type qualified as a domain primitive.
type Origin int

const (
	// Nominal types embed scalar.Scalar and declare a Check predicate.
	Nominal Origin = iota
	// Structural types expose a single Value field and a registered constructor.
	Structural
)

// String returns "nominal" or "structural".
func (o Origin) String() string {
	if o == Structural {
		return "structural"
	}
	return "nominal"
}

// Shape is the reflective handle of a classified domain primitive.
type Shape struct {
	// Type is the classified named type.
	Type reflect.Type
	// Origin tells which strategy accepted the type.
	Origin Origin
	// Field is the value-carrying field; its tag holds declared annotations.
	Field reflect.StructField
	// Value is the type of the wrapped value.
	Value reflect.Type
	// Kind is the scalar kind of Value.
	Kind kind.Kind
	// Constructor is the registered constructor of structural types.
	Constructor reflect.Value
}
