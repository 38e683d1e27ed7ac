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
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/prim/descriptor"
	"dirpx.dev/prim/metadata"
)

// init publishes the default engine with the descriptor types registered.
func init() {
	e := New()
	for _, t := range descriptor.Types() {
		if err := e.Register(t); err != nil {
			panic(err)
		}
	}
	def.Store(e)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built engines.
var buildMu sync.Mutex

// def is the process-wide default engine.
var def atomic.Pointer[Engine]

// Default returns the process-wide default engine.
func Default() *Engine {
	return def.Load()
}

// SetDefault replaces the default engine. A nil engine is ignored.
func SetDefault(e *Engine) {
	if e == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()
	def.Store(e)
}

// Configure rebuilds the default engine with opts applied, migrating its
// registrations.
func Configure(opts ...Option) {
	buildMu.Lock()
	defer buildMu.Unlock()
	def.Store(def.Load().With(opts...))
}

// IsPrimitive reports whether t is a domain primitive, using the default engine.
func IsPrimitive(t reflect.Type) bool {
	return Default().IsPrimitive(t)
}

// IsPrimitiveName reports whether the type registered under fqcn is a domain
// primitive, using the default engine.
func IsPrimitiveName(fqcn string) bool {
	return Default().IsPrimitiveName(fqcn)
}

// Lookup returns the type registered under fqcn in the default engine.
func Lookup(fqcn string) (reflect.Type, bool) {
	return Default().Lookup(fqcn)
}

// Explain returns why t is not a domain primitive, using the default engine.
func Explain(t reflect.Type) error {
	return Default().Explain(t)
}

// Metadata returns the metadata record of t, using the default engine.
func Metadata(t reflect.Type) (metadata.Record, error) {
	return Default().Metadata(t)
}

// ValueOf returns the value wrapped by instance, using the default engine.
func ValueOf(instance any) (any, error) {
	return Default().ValueOf(instance)
}

// Create constructs a t wrapping value, using the default engine.
func Create(t reflect.Type, value any) (any, error) {
	return Default().Create(t, value)
}

// Equals compares the wrapped values of a and b, using the default engine.
func Equals(a, b any) (bool, error) {
	return Default().Equals(a, b)
}

// Register records t in the default engine.
func Register(t reflect.Type, opts ...RegisterOption) error {
	return Default().Register(t, opts...)
}

// RegisterConstructor records fn and the type it constructs in the default
// engine.
func RegisterConstructor(fn any, opts ...RegisterOption) error {
	return Default().RegisterConstructor(fn, opts...)
}
