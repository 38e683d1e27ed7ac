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

package scalar_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/prim/apis"
	"dirpx.dev/prim/scalar"
)

type userID struct {
	scalar.Scalar[int]
}

func (userID) Check(v int) bool { return v > 0 }

type tags struct {
	scalar.Scalar[[]string]
}

func (tags) Check(v []string) bool { return len(v) > 0 }

type label string

type title struct {
	scalar.Scalar[label]
}

func (title) Check(v label) bool { return v != "" }

// wrongCheck declares Check over the wrong parameter type.
type wrongCheck struct {
	scalar.Scalar[int]
}

func (wrongCheck) Check(v string) bool { return true }

// variadicCheck declares Check over the wrapped slice's elements.
type variadicCheck struct {
	scalar.Scalar[[]int]
}

func (variadicCheck) Check(v ...int) bool { return true }

type plain struct {
	Value int
}

// Ensure the base satisfies the nominal capability.
var _ apis.Primitive = scalar.Scalar[int]{}

func TestNew(t *testing.T) {
	id, err := scalar.New[userID](123)
	require.NoError(t, err)
	assert.Equal(t, 123, id.Value())
	assert.Equal(t, 123, id.PrimitiveValue())
	assert.Equal(t, "123", id.String())

	_, err = scalar.New[userID](-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, scalar.ErrValidation)
	assert.EqualError(t, err, "-1 is not a valid scalar_test.userID")

	var verr *scalar.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, -1, verr.Value)
	assert.Equal(t, "scalar_test.userID", verr.Type)
}

func TestStringRendering(t *testing.T) {
	tt, err := scalar.New[title](label("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", tt.String())

	tg, err := scalar.New[tags]([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "[a b]", tg.String())
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { scalar.Must(scalar.New[userID](1)) })
	assert.Panics(t, func() { scalar.Must(scalar.New[userID](0)) })
}

func TestEmbedded(t *testing.T) {
	f, vt, ok := scalar.Embedded(reflect.TypeFor[userID]())
	require.True(t, ok)
	assert.Equal(t, "Scalar", f.Name)
	assert.Equal(t, reflect.TypeFor[int](), vt)

	_, vt, ok = scalar.Embedded(reflect.TypeFor[title]())
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[label](), vt)

	_, _, ok = scalar.Embedded(reflect.TypeFor[plain]())
	assert.False(t, ok)

	_, _, ok = scalar.Embedded(reflect.TypeFor[int]())
	assert.False(t, ok)

	_, _, ok = scalar.Embedded(nil)
	assert.False(t, ok)
}

func TestHasCheck(t *testing.T) {
	assert.True(t, scalar.HasCheck(reflect.TypeFor[userID](), reflect.TypeFor[int]()))
	assert.False(t, scalar.HasCheck(reflect.TypeFor[wrongCheck](), reflect.TypeFor[int]()))
	assert.False(t, scalar.HasCheck(reflect.TypeFor[plain](), reflect.TypeFor[int]()))
	assert.False(t, scalar.HasCheck(reflect.TypeFor[variadicCheck](), reflect.TypeFor[[]int]()))
}

func TestMake(t *testing.T) {
	v, err := scalar.Make(reflect.TypeFor[userID](), 123)
	require.NoError(t, err)
	id, ok := v.(userID)
	require.True(t, ok, "Make returned %T", v)
	assert.Equal(t, 123, id.Value())

	// Same kind, convertible: string -> label.
	v, err = scalar.Make(reflect.TypeFor[title](), "hello")
	require.NoError(t, err)
	assert.Equal(t, label("hello"), v.(title).Value())

	_, err = scalar.Make(reflect.TypeFor[userID](), -5)
	assert.ErrorIs(t, err, scalar.ErrValidation)
	assert.NotErrorIs(t, err, scalar.ErrValueType)
}

func TestMakeRejectsOtherKinds(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"string for int", "123"},
		{"float for int", 1.0},
		{"int64 for int", int64(1)},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scalar.Make(reflect.TypeFor[userID](), tt.value)
			assert.ErrorIs(t, err, scalar.ErrValidation)
			assert.ErrorIs(t, err, scalar.ErrValueType)
		})
	}
}

func TestMakeRejectsNonScalars(t *testing.T) {
	_, err := scalar.Make(reflect.TypeFor[plain](), 1)
	assert.ErrorIs(t, err, scalar.ErrNotScalar)

	_, err = scalar.Make(reflect.TypeFor[wrongCheck](), 1)
	assert.ErrorIs(t, err, scalar.ErrNoCheck)

	_, err = scalar.Make(reflect.TypeFor[variadicCheck](), []int{1})
	assert.ErrorIs(t, err, scalar.ErrNoCheck)
}
