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

// Package descriptor defines the string primitives used to describe other
// primitives: a name, an example, a description and a fully-qualified type
// identifier. Each descriptor is itself a domain primitive and declares its
// own metadata as struct tags.
package descriptor

import (
	"reflect"
	"regexp"

	"dirpx.dev/prim/scalar"
	uref "dirpx.dev/prim/utils/reflect"
)

// Name is a human-readable name for a primitive.
type Name struct {
	scalar.Scalar[string] `name:"Name" example:"Primitive metadata" description:"A human-readable name for the primitive"`
}

// Check accepts any text.
func (Name) Check(string) bool { return true }

// NewName wraps value as a Name.
func NewName(value string) (Name, error) {
	return scalar.New[Name](value)
}

// EmptyName is the Name used when none was declared.
func EmptyName() Name {
	return scalar.Must(NewName(""))
}

// Example is an example of valid value(s) for a primitive, as text.
type Example struct {
	scalar.Scalar[string] `name:"Example" example:"Any valid value(s)" description:"Example(s) of valid value(s) for the primitive"`
}

// Check accepts any text.
func (Example) Check(string) bool { return true }

// NewExample wraps value as an Example.
func NewExample(value string) (Example, error) {
	return scalar.New[Example](value)
}

// EmptyExample is the Example used when none was declared.
func EmptyExample() Example {
	return scalar.Must(NewExample(""))
}

// Description is a free-text description of a primitive.
type Description struct {
	scalar.Scalar[string] `name:"Description" example:"This primitive defines a..." description:"The primitive's description"`
}

// Check accepts any text.
func (Description) Check(string) bool { return true }

// NewDescription wraps value as a Description.
func NewDescription(value string) (Description, error) {
	return scalar.New[Description](value)
}

// EmptyDescription is the Description used when none was declared.
func EmptyDescription() Description {
	return scalar.Must(NewDescription(""))
}

// fqcnPattern: optional nullable marker, then dot-separated identifiers.
var fqcnPattern = regexp.MustCompile(`^\*?[A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Fqcn is the fully-qualified identifier of a type, e.g. "descriptor.Fqcn".
type Fqcn struct {
	scalar.Scalar[string] `name:"Fully qualified type name" example:"acme.property.Email" description:"The primitive's fully qualified type name"`
}

// Check accepts dot-separated identifiers with an optional leading "*".
func (Fqcn) Check(value string) bool {
	return fqcnPattern.MatchString(value)
}

// NewFqcn validates and wraps value as an Fqcn.
func NewFqcn(value string) (Fqcn, error) {
	return scalar.New[Fqcn](value)
}

// FqcnOf derives the identifier of t: its "pkg.Type" form with generic
// instantiation parameters stripped.
func FqcnOf(t reflect.Type) (Fqcn, error) {
	return NewFqcn(uref.TypeName(t))
}

// EmptyFqcn is the zero identifier. It does not pass Check and exists only
// so records can be compared against "no identifier".
func EmptyFqcn() Fqcn {
	return Fqcn{}
}

// Types returns the descriptor types, for registration with an engine.
func Types() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[Name](),
		reflect.TypeFor[Example](),
		reflect.TypeFor[Description](),
		reflect.TypeFor[Fqcn](),
	}
}
