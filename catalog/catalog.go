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

// Package catalog exports the metadata of an engine's registered primitives
// as YAML, for documentation and review.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"dirpx.dev/prim"
	"dirpx.dev/prim/kind"
	"dirpx.dev/prim/metadata"
)

// Catalog lists primitives ordered by identifier.
type Catalog struct {
	Primitives []Entry `yaml:"primitives"`
}

// Entry is the serialized form of a metadata.Record.
type Entry struct {
	Fqcn        string    `yaml:"fqcn"`
	Kind        kind.Kind `yaml:"kind"`
	Name        string    `yaml:"name,omitempty"`
	Example     string    `yaml:"example,omitempty"`
	Description string    `yaml:"description,omitempty"`
}

// FromRecord converts r to an Entry.
func FromRecord(r metadata.Record) Entry {
	return Entry{
		Fqcn:        r.Fqcn.String(),
		Kind:        r.Kind,
		Name:        r.Name.String(),
		Example:     r.Example.String(),
		Description: r.Description.String(),
	}
}

// Build collects the metadata of every type registered with e. Registered
// types that are not primitives are left out.
func Build(e *prim.Engine) (Catalog, error) {
	var c Catalog
	for _, r := range e.Registry().Entries() {
		md, err := e.Metadata(r.Type)
		if errors.Is(err, prim.ErrNotAPrimitive) {
			continue
		}
		if err != nil {
			return Catalog{}, fmt.Errorf("catalog: %s: %w", r.Fqcn, err)
		}
		c.Primitives = append(c.Primitives, FromRecord(md))
	}
	sort.Slice(c.Primitives, func(i, j int) bool {
		return c.Primitives[i].Fqcn < c.Primitives[j].Fqcn
	})
	return c, nil
}

// Find returns the entry with the given identifier.
func (c Catalog) Find(fqcn string) (Entry, bool) {
	i := sort.Search(len(c.Primitives), func(i int) bool {
		return c.Primitives[i].Fqcn >= fqcn
	})
	if i < len(c.Primitives) && c.Primitives[i].Fqcn == fqcn {
		return c.Primitives[i], true
	}
	return Entry{}, false
}

// Write encodes c to w as YAML.
func Write(w io.Writer, c Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("catalog: encode: %w", err)
	}
	return enc.Close()
}

// Read decodes a YAML catalog from r. Entries are re-sorted by identifier.
func Read(r io.Reader) (Catalog, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("catalog: decode: %w", err)
	}
	sort.Slice(c.Primitives, func(i, j int) bool {
		return c.Primitives[i].Fqcn < c.Primitives[j].Fqcn
	})
	return c, nil
}
