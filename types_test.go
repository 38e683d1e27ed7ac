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

package prim_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/prim"
	"dirpx.dev/prim/scalar"
)

// Nominal primitives.

type UserID struct {
	scalar.Scalar[int] `name:"User ID" example:"123" description:"A positive user identifier" name:"Ignored"`
}

func (UserID) Check(v int) bool { return v > 0 }

type OtherID struct {
	scalar.Scalar[int]
}

func (OtherID) Check(v int) bool { return v > 0 }

type Code struct {
	scalar.Scalar[string]
}

func (Code) Check(v string) bool { return v != "" }

type Tags struct {
	scalar.Scalar[[]string] `name:"Tags"`
}

func (Tags) Check(v []string) bool { return len(v) > 0 }

type Active struct {
	scalar.Scalar[bool]
}

func (Active) Check(bool) bool { return true }

type Score struct {
	scalar.Scalar[float64] `name:"Tag name" example:"0.5" description:"Tag description"`
}

func (Score) Check(v float64) bool { return v >= 0 && v <= 1 }

func (Score) PrimitiveName() string { return "Method name" }

type Unchecked struct {
	scalar.Scalar[int]
}

type VariadicCheck struct {
	scalar.Scalar[[]int]
}

func (VariadicCheck) Check(v ...int) bool { return true }

type Label struct {
	scalar.Scalar[string] `prim_name:"Custom" name:"Default" example:"label"`
}

func (Label) Check(v string) bool { return v != "" }

// Structural primitives.

var errBadEmail = errors.New("email must contain @")

type Email struct {
	Value string `name:"Email" example:"a@b.c"`
}

func NewEmail(value string) (*Email, error) {
	if !strings.Contains(value, "@") {
		return nil, errBadEmail
	}
	return &Email{Value: value}, nil
}

type Money struct {
	Value float64
}

func NewMoney(value float64, currency string) Money {
	return Money{Value: value}
}

// Late becomes a primitive once its constructor is registered.
type Late struct {
	Value int
}

func NewLate(value int) Late { return Late{Value: value} }

// Non-primitives.

type Person struct {
	Name string
	Age  int
}

type Data struct {
	Data string
}

type Hidden struct {
	value string
}

type Untyped struct {
	Value any
}

type NoConstructor struct {
	Value string
}

type EmptyConstructor struct {
	Value string
}

type Misaligned struct {
	Value string
}

// newEngine returns an isolated engine with the structural test types'
// constructors registered.
func newEngine(t *testing.T, opts ...prim.Option) *prim.Engine {
	t.Helper()
	e := prim.New(opts...)
	require.NoError(t, e.RegisterConstructor(NewEmail))
	require.NoError(t, e.RegisterConstructor(NewMoney, prim.WithFqcn("acme.Money")))
	require.NoError(t, e.RegisterConstructor(func() EmptyConstructor { return EmptyConstructor{} }))
	require.NoError(t, e.RegisterConstructor(func(data int) Misaligned { return Misaligned{} }))
	return e
}
