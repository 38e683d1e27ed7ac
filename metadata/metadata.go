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

// Package metadata holds the descriptive record assembled for a classified
// domain primitive.
package metadata

import (
	"fmt"

	"dirpx.dev/prim/descriptor"
	"dirpx.dev/prim/kind"
)

// Record describes one primitive type. It is a plain value: copies are
// independent and nothing in it can be mutated after construction.
type Record struct {
	// Fqcn is the primitive's fully-qualified identifier.
	Fqcn descriptor.Fqcn
	// Kind is the scalar kind of the wrapped value.
	Kind kind.Kind
	// Name is the declared name, or empty.
	Name descriptor.Name
	// Example is the declared example, or empty.
	Example descriptor.Example
	// Description is the declared description, or empty.
	Description descriptor.Description
}

// New bundles the given descriptors into a Record.
func New(fqcn descriptor.Fqcn, k kind.Kind, name descriptor.Name, example descriptor.Example, description descriptor.Description) Record {
	return Record{
		Fqcn:        fqcn,
		Kind:        k,
		Name:        name,
		Example:     example,
		Description: description,
	}
}

// String renders the record for logs: "fqcn(kind) name".
func (r Record) String() string {
	if n := r.Name.String(); n != "" {
		return fmt.Sprintf("%s(%s) %q", r.Fqcn, r.Kind, n)
	}
	return fmt.Sprintf("%s(%s)", r.Fqcn, r.Kind)
}
