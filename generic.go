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
	"fmt"
	"reflect"

	"dirpx.dev/prim/metadata"
)

// Generic helpers take an engine; nil means Default().

func engineOr(e *Engine) *Engine {
	if e == nil {
		return Default()
	}
	return e
}

// Is reports whether T is a domain primitive.
func Is[T any](e *Engine) bool {
	return engineOr(e).IsPrimitive(reflect.TypeFor[T]())
}

// MetadataFor returns the metadata record of T.
func MetadataFor[T any](e *Engine) (metadata.Record, error) {
	return engineOr(e).Metadata(reflect.TypeFor[T]())
}

// CreateAs constructs a T wrapping value. Constructors returning *T are
// dereferenced.
func CreateAs[T any](e *Engine, value any) (T, error) {
	var zero T
	v, err := engineOr(e).Create(reflect.TypeFor[T](), value)
	if err != nil {
		return zero, err
	}
	switch out := v.(type) {
	case T:
		return out, nil
	case *T:
		if out == nil {
			return zero, fmt.Errorf("%w: constructor returned a nil %T", ErrResultType, out)
		}
		return *out, nil
	default:
		return zero, fmt.Errorf("%w: got %T, want %T", ErrResultType, v, zero)
	}
}

// ValueAs returns the value wrapped by instance as a V.
func ValueAs[V any](e *Engine, instance any) (V, error) {
	var zero V
	v, err := engineOr(e).ValueOf(instance)
	if err != nil {
		return zero, err
	}
	out, ok := v.(V)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %v", ErrResultType, v, reflect.TypeFor[V]())
	}
	return out, nil
}
