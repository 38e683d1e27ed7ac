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

// Package scalar provides the validated single-value wrapper every domain
// primitive is built on.
//
// A primitive embeds Scalar[V] and declares a pure predicate:
//
//	type UserID struct {
//	    scalar.Scalar[int] `name:"User ID" example:"123"`
//	}
//
//	func (UserID) Check(v int) bool { return v > 0 }
//
//	id, err := scalar.New[UserID](123)
//
// The wrapped value is unexported and only ever set by New or Make, so a
// constructed primitive is immutable.
package scalar

import (
	"fmt"
	"reflect"

	uref "dirpx.dev/prim/utils/reflect"
)

// Scalar wraps exactly one value of type V.
type Scalar[V any] struct {
	value V
}

// Value returns the wrapped value.
func (s Scalar[V]) Value() V {
	return s.value
}

// PrimitiveValue returns the wrapped value as any. It implements apis.Primitive.
func (s Scalar[V]) PrimitiveValue() any {
	return s.value
}

// String returns the textual form of the wrapped value.
func (s Scalar[V]) String() string {
	if str, ok := any(s.value).(string); ok {
		return str
	}
	return fmt.Sprint(s.value)
}

func (s *Scalar[V]) wrap(v V) {
	s.value = v
}

func (s *Scalar[V]) wrapValue(v reflect.Value) {
	s.value = v.Interface().(V)
}

func (Scalar[V]) valueType() reflect.Type {
	return reflect.TypeFor[V]()
}

// wrapper is the reflective view of an embedded Scalar, reachable through
// promotion from any *T whose T embeds Scalar[V].
type wrapper interface {
	valueType() reflect.Type
	wrapValue(reflect.Value)
}

var wrapperType = reflect.TypeFor[wrapper]()

// Type is the constraint satisfied by *T when T embeds Scalar[V] and
// declares Check(V) bool.
type Type[T any, V any] interface {
	*T
	Check(V) bool
	wrap(V)
}

// New constructs a T wrapping value. It fails with *ValidationError when
// T's Check rejects value.
func New[T any, V any, P Type[T, V]](value V) (T, error) {
	var t T
	p := P(&t)
	if !p.Check(value) {
		return t, &ValidationError{Type: uref.TypeName(reflect.TypeFor[T]()), Value: value}
	}
	p.wrap(value)
	return t, nil
}

// Must returns v or panics with err. Intended for package-level values.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Embedded reports the exported field through which t embeds a Scalar and
// the type of the value it wraps.
func Embedded(t reflect.Type) (reflect.StructField, reflect.Type, bool) {
	if t == nil || t.Kind() != reflect.Struct {
		return reflect.StructField{}, nil, false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous || !f.IsExported() || f.Type.Kind() != reflect.Struct {
			continue
		}
		if !reflect.PointerTo(f.Type).Implements(wrapperType) {
			continue
		}
		w := reflect.New(f.Type).Interface().(wrapper)
		return f, w.valueType(), true
	}
	return reflect.StructField{}, nil, false
}

// HasCheck reports whether *t declares Check(v) bool. A variadic Check is
// rejected: it cannot be called with a single wrapped value.
func HasCheck(t reflect.Type, v reflect.Type) bool {
	if t == nil || v == nil {
		return false
	}
	m, ok := reflect.PointerTo(t).MethodByName("Check")
	if !ok {
		return false
	}
	// In(0) is the receiver.
	mt := m.Type
	return mt.NumIn() == 2 && !mt.IsVariadic() && mt.In(1) == v &&
		mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Bool
}

// Make constructs a value of type t, which must embed Scalar and declare
// Check. value must have the wrapped type, or a type convertible to it with
// the same reflect.Kind; anything else is a *ValidationError wrapping
// ErrValueType. The result is a t, not a *t.
func Make(t reflect.Type, value any) (any, error) {
	_, vt, ok := Embedded(t)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotScalar, t)
	}
	if !HasCheck(t, vt) {
		return nil, fmt.Errorf("%w: %v", ErrNoCheck, t)
	}

	name := uref.TypeName(t)
	rv, err := Conform(value, vt)
	if err != nil {
		return nil, &ValidationError{Type: name, Value: value, Err: err}
	}

	p := reflect.New(t)
	w, ok := p.Interface().(wrapper)
	if !ok {
		// Embedded found a Scalar, but promotion is ambiguous.
		return nil, fmt.Errorf("%w: %v", ErrNotScalar, t)
	}
	if !p.MethodByName("Check").Call([]reflect.Value{rv})[0].Bool() {
		return nil, &ValidationError{Type: name, Value: value}
	}
	w.wrapValue(rv)
	return p.Elem().Interface(), nil
}

// Conform converts value to a reflect.Value of type vt without crossing
// kinds. Failures wrap ErrValueType.
func Conform(value any, vt reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Value{}, fmt.Errorf("%w: got nil, want %v", ErrValueType, vt)
	}
	rv := reflect.ValueOf(value)
	switch {
	case rv.Type() == vt:
		return rv, nil
	case rv.Type().AssignableTo(vt), rv.Kind() == vt.Kind() && rv.Type().ConvertibleTo(vt):
		return rv.Convert(vt), nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: got %v, want %v", ErrValueType, rv.Type(), vt)
	}
}
