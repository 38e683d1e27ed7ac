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

// Config carries read-only classification knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Structural enables the reflective fallback for types that do not embed
	// scalar.Scalar but expose a single exported Value field.
	Structural bool

	// StrictEquality makes Equals also require both operands to be of the
	// same primitive type. When false only the wrapped values are compared.
	StrictEquality bool

	// MaxDeref limits how many pointer levels are unwrapped before a type or
	// instance is classified. Zero accepts only non-pointer types.
	MaxDeref int

	// NameTag, ExampleTag and DescriptionTag are the struct tag keys read from
	// the value-carrying field when no other metadata source is declared.
	NameTag        string
	ExampleTag     string
	DescriptionTag string
}
