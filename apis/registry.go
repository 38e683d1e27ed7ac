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

import "reflect"

// Registry holds explicit, per-type registrations made at startup.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Register records r. Re-registering a type with the same identifier is a
	// no-op; conflicting identifiers are rejected.
	Register(r Registration) error
	// Lookup returns the registration for a type if present.
	Lookup(t reflect.Type) (Registration, bool)
	// LookupName returns the registration for a fully-qualified identifier.
	LookupName(fqcn string) (Registration, bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Registration
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Registration describes a single registered type.
type Registration struct {
	// Type is the registered (named, non-pointer) type.
	Type reflect.Type
	// Fqcn is the fully-qualified identifier the type is known by.
	Fqcn string
	// Constructor is an optional func whose first parameter receives the
	// wrapped value and whose first result is Type or *Type. The zero Value
	// means no constructor was supplied.
	Constructor reflect.Value
	// Name, Example and Description are the registered descriptive texts.
	// Empty strings mean "not supplied".
	Name        string
	Example     string
	Description string
}

// HasConstructor reports whether a constructor was supplied.
func (r Registration) HasConstructor() bool {
	return r.Constructor.IsValid()
}
