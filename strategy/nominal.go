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

import (
	"fmt"
	"reflect"

	"dirpx.dev/prim/apis"
	"dirpx.dev/prim/kind"
	"dirpx.dev/prim/scalar"
)

// NewNominalStrategy creates an apis.Strategy for types embedding scalar.Scalar.
func NewNominalStrategy() apis.Strategy {
	return nominalStrategy{}
}

// nominalStrategy is the reflection-light fast path: a type that embeds
// scalar.Scalar has opted into the wrapper contract explicitly. Types that
// do not embed it fall through.
type nominalStrategy struct{}

// Ensure nominalStrategy implements apis.Strategy.
var _ apis.Strategy = nominalStrategy{}

// TryClassify checks, in order: the embedded base is the only exported
// field; the wrapped type has a supported kind; the type declares a Check
// predicate over the wrapped type.
func (nominalStrategy) TryClassify(t reflect.Type, _ apis.Config) (apis.Shape, bool, error) {
	f, vt, ok := scalar.Embedded(t)
	if !ok {
		return apis.Shape{}, false, nil
	}
	if n := len(exportedFields(t)); n != 1 {
		return apis.Shape{}, true, fmt.Errorf("%w: %v has %d", ErrFieldCount, t, n)
	}
	k, err := kind.OfType(vt)
	if err != nil {
		return apis.Shape{}, true, fmt.Errorf("%w: %v: %w", ErrSlotType, t, err)
	}
	if !scalar.HasCheck(t, vt) {
		return apis.Shape{}, true, fmt.Errorf("%w: %v lacks Check(%v) bool", ErrNoCheck, t, vt)
	}
	return apis.Shape{
		Type:   t,
		Origin: apis.Nominal,
		Field:  f,
		Value:  vt,
		Kind:   k,
	}, true, nil
}
