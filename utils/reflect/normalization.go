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

package reflect

import (
	"errors"
	"reflect"
	"strings"

	"dirpx.dev/prim/apis"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// pointers) is not a named type (e.g., anonymous struct, slice literal type).
	ErrReflectTypeNotNamed = errors.New("reflect: type is not named")
	// ErrReflectTooDeep indicates more pointer levels than Config.MaxDeref allows.
	ErrReflectTooDeep = errors.New("reflect: pointer depth exceeds MaxDeref")
	// ErrReflectNilValue is returned when an instance is nil or a nil pointer.
	ErrReflectNilValue = errors.New("reflect: nil value provided")
)

// Normalize unwraps at most cfg.MaxDeref pointer levels and returns the
// named type underneath.
//
// Unwrapping policy:
//   - ptr -> Elem(), counted against MaxDeref
//   - default: if t.Name() != "", return t; otherwise ErrReflectTypeNotNamed.
//
// Containers (slice/map/chan) are not unwrapped: a []Email is not an Email.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	for depth := 0; t.Kind() == reflect.Pointer; depth++ {
		if depth >= cfg.MaxDeref {
			return nil, ErrReflectTooDeep
		}
		t = t.Elem()
	}
	if t.Name() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	return t, nil
}

// Deref applies the Normalize policy to an instance, following pointers to
// the addressed value. Nil pointers yield ErrReflectNilValue.
func Deref(v reflect.Value, cfg apis.Config) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Value{}, ErrReflectNilValue
	}
	for depth := 0; v.Kind() == reflect.Pointer; depth++ {
		if depth >= cfg.MaxDeref {
			return reflect.Value{}, ErrReflectTooDeep
		}
		if v.IsNil() {
			return reflect.Value{}, ErrReflectNilValue
		}
		v = v.Elem()
	}
	if v.Type().Name() == "" {
		return reflect.Value{}, ErrReflectTypeNotNamed
	}
	return v, nil
}

// TypeName returns the "pkg.Type" form of t with generic instantiation
// parameters stripped, keeping one "*" per unnamed pointer level.
// Unnamed types render as t.String().
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	var prefix strings.Builder
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		prefix.WriteByte('*')
		t = t.Elem()
	}
	if t.Name() == "" {
		return prefix.String() + t.String()
	}
	return prefix.String() + stripTypeParams(t.String())
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
