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

// Package prim classifies Go types as domain primitives and reflects over
// them.
//
// A domain primitive is a single-value wrapper that validates on
// construction: a UserID wrapping a positive int, an Email wrapping a
// string. prim answers four questions about such types without knowing
// them in advance: is this type a primitive, what does it describe itself
// as, what value does this instance wrap, and how is a new instance built
// from a raw value.
//
// # Primitives
//
// The nominal form embeds scalar.Scalar and declares a predicate:
//
//	type UserID struct {
//	    scalar.Scalar[int] `name:"User ID" example:"123"`
//	}
//
//	func (UserID) Check(v int) bool { return v > 0 }
//
// The structural form is for types the caller does not control. It has a
// single exported field named Value and a constructor registered with the
// engine, whose first parameter receives the value:
//
//	type Email struct{ Value string }
//
//	func NewEmail(value string) (*Email, error) { ... }
//
//	prim.RegisterConstructor(NewEmail, prim.WithName("Email"))
//
// The wrapped value must be a string, integer, float, boolean or
// slice/array/map (see package kind).
//
// # Engine
//
// An Engine holds:
//
//   - Config: classification knobs (pointer unwrapping depth, whether the
//     structural form is recognized, tag keys, equality strictness).
//
//   - Registry: explicit per-type registrations made at startup, carrying
//     identifiers, constructors and descriptive texts.
//
//   - Classifier: an ordered chain of strategies (nominal, then
//     structural). The first strategy that handles a type decides its
//     verdict.
//
//   - Builder: constructs Registry and Classifier for a Config and is
//     allowed to migrate registrations from a previous Registry.
//
// Verdicts are memoized per type. An entry is computed in full before it is
// published, and concurrent first lookups of the same type share a single
// computation. Register forgets memoized verdicts, since a registration can
// turn a structural candidate into a primitive.
//
// # Metadata
//
// For each of name, example and description the first declared source
// wins: a PrimitiveName / PrimitiveExample / PrimitiveDescription method
// (see package apis), then the registered text, then the struct tag on the
// value-carrying field. A repeated tag key resolves to its first occurrence.
// Missing texts render as empty strings.
//
// # Default engine
//
// The package-level functions delegate to a process-wide default engine,
// read lock-free from an atomic pointer. Configure and SetDefault swap it
// under a short build lock; readers always see a consistent engine. Tests
// should prefer their own Engine from New.
package prim
