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
)

// ValueField is the name a structural primitive's sole exported field must have.
const ValueField = "Value"

// NewStructuralStrategy creates an apis.Strategy that recognizes types by
// shape, consulting reg for their constructors.
func NewStructuralStrategy(reg apis.Registry) apis.Strategy {
	return &structuralStrategy{reg: reg}
}

// structuralStrategy is the reflective fallback for types the caller does
// not control. It handles every type when cfg.Structural is set, so it
// belongs last in a chain.
type structuralStrategy struct {
	reg apis.Registry
}

// Ensure structuralStrategy implements apis.Strategy.
var _ apis.Strategy = (*structuralStrategy)(nil)

// TryClassify checks, in order: a single exported field named Value; a
// concrete value type of a supported kind; a registered constructor whose
// first parameter takes that type.
func (s *structuralStrategy) TryClassify(t reflect.Type, cfg apis.Config) (apis.Shape, bool, error) {
	if !cfg.Structural {
		return apis.Shape{}, false, nil
	}
	if t.Kind() != reflect.Struct {
		return apis.Shape{}, true, fmt.Errorf("%w: %v is a %v", ErrNotStruct, t, t.Kind())
	}

	// 1. Single public value slot.
	fields := exportedFields(t)
	if len(fields) != 1 {
		return apis.Shape{}, true, fmt.Errorf("%w: %v has %d", ErrFieldCount, t, len(fields))
	}
	f := fields[0]
	if f.Name != ValueField {
		return apis.Shape{}, true, fmt.Errorf("%w: %v.%s", ErrFieldName, t, f.Name)
	}

	// 2. Scalar-typed slot.
	k, err := kind.OfType(f.Type)
	if err != nil {
		return apis.Shape{}, true, fmt.Errorf("%w: %v.%s: %w", ErrSlotType, t, f.Name, err)
	}

	// 3. Aligned constructor parameter.
	var reg apis.Registration
	if s.reg != nil {
		reg, _ = s.reg.Lookup(t)
	}
	if !reg.HasConstructor() {
		return apis.Shape{}, true, fmt.Errorf("%w: %v", ErrNoConstructor, t)
	}
	ct := reg.Constructor.Type()
	if ct.NumIn() == 0 {
		return apis.Shape{}, true, fmt.Errorf("%w: %v", ErrNoParameters, ct)
	}
	if ct.In(0) != f.Type {
		return apis.Shape{}, true, fmt.Errorf("%w: %v takes %v, %v.%s is %v", ErrMisalignedParameter, ct, ct.In(0), t, f.Name, f.Type)
	}

	return apis.Shape{
		Type:        t,
		Origin:      apis.Structural,
		Field:       f,
		Value:       f.Type,
		Kind:        k,
		Constructor: reg.Constructor,
	}, true, nil
}

// exportedFields returns t's own exported fields, embedded ones included.
func exportedFields(t reflect.Type) []reflect.StructField {
	var out []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.IsExported() {
			out = append(out, f)
		}
	}
	return out
}
