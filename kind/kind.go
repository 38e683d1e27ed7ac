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

package kind

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrUnsupportedKind is returned when a value or type does not map to any Kind.
var ErrUnsupportedKind = errors.New("prim(kind): unsupported kind")

// Kind is the scalar category of a value wrapped by a domain primitive.
//
// # Overview
//
// Kind is a closed enumeration. Every value a primitive wraps must map to
// exactly one Kind; types that do not (structs, interfaces, pointers, funcs,
// channels, complex numbers) are rejected with ErrUnsupportedKind.
//
// # Values
//
//   - String: string and named string types.
//   - Integer: signed and unsigned integers (uintptr excluded).
//   - Float: float32 and float64.
//   - Boolean: bool.
//   - Array: slices, arrays and maps.
//
// # Contract
//
//   - Existing values MUST NOT change their textual form; String() output
//     appears in catalogs and logs.
//   - Kind values are plain integers and are safe for concurrent use.
type Kind int

const (
	// String wraps textual values.
	String Kind = iota
	// Integer wraps signed or unsigned integers.
	Integer
	// Float wraps floating point numbers.
	Float
	// Boolean wraps bool.
	Boolean
	// Array wraps ordered or keyed collections (slice, array, map).
	Array
)

// String returns the stable lowercase token for k.
// Unknown values render as "Unknown(<n>)" and never panic.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	case Array:
		return "array"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= String && k <= Array
}

// Parse converts a textual kind into a Kind, case-insensitively and ignoring
// surrounding whitespace.
func Parse(s string) (Kind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return String, fmt.Errorf("%w: empty kind", ErrUnsupportedKind)
	}

	switch strings.ToLower(trimmed) {
	case "string":
		return String, nil
	case "integer", "int":
		return Integer, nil
	case "float":
		return Float, nil
	case "boolean", "bool":
		return Boolean, nil
	case "array":
		return Array, nil
	default:
		return String, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: cannot marshal %d", ErrUnsupportedKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// OfType maps a reflect.Type to its Kind. Named types map through their
// underlying kind, so `type Cents int64` is an Integer.
func OfType(t reflect.Type) (Kind, error) {
	if t == nil {
		return String, fmt.Errorf("%w: nil type", ErrUnsupportedKind)
	}
	switch t.Kind() {
	case reflect.String:
		return String, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integer, nil
	case reflect.Float32, reflect.Float64:
		return Float, nil
	case reflect.Bool:
		return Boolean, nil
	case reflect.Slice, reflect.Array, reflect.Map:
		return Array, nil
	default:
		return String, fmt.Errorf("%w: %s", ErrUnsupportedKind, t)
	}
}

// Of maps the dynamic type of v to its Kind. A nil v is unsupported.
func Of(v any) (Kind, error) {
	if v == nil {
		return String, fmt.Errorf("%w: nil value", ErrUnsupportedKind)
	}
	return OfType(reflect.TypeOf(v))
}
