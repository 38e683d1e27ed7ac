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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/prim/apis"
	"dirpx.dev/prim/config"
	"dirpx.dev/prim/descriptor"
	uref "dirpx.dev/prim/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("prim(registry): nil reflect.Type provided")
	// ErrInvalidFqcn is returned when the identifier is not a valid Fqcn.
	ErrInvalidFqcn = errors.New("prim(registry): invalid fully-qualified identifier")
	// ErrInvalidConstructor is returned when the constructor is not a func
	// returning the registered type (optionally followed by an error).
	ErrInvalidConstructor = errors.New("prim(registry): invalid constructor")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type under a different identifier, or to reuse an identifier.
	ErrConflictingRegistration = errors.New("prim(registry): conflicting type registration")
)

var errorType = reflect.TypeFor[error]()

// New constructs a Registry that normalizes types according to cfg.
// Only MaxDeref is used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxDeref < 0 {
		cfg.MaxDeref = config.DefaultMaxDeref
	}
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// types maps reflect.Type to its registration.
	types sync.Map // map[reflect.Type]apis.Registration
	// names maps fqcn to its registration.
	names sync.Map // map[string]apis.Registration
	// count tracks the number of registered entries.
	count int
}

// Register records r under its normalized type and identifier.
// It is idempotent for the same (type, fqcn) pair; the first registration
// is kept.
func (r *registry) Register(reg apis.Registration) error {
	// Validate inputs early.
	if reg.Type == nil {
		return ErrNilType
	}
	t, err := uref.Normalize(reg.Type, r.cfg)
	if err != nil {
		return fmt.Errorf("prim(registry): %v: %w", reg.Type, err)
	}
	reg.Type = t

	if reg.Fqcn == "" {
		f, err := descriptor.FqcnOf(t)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFqcn, err)
		}
		reg.Fqcn = f.String()
	} else if _, err := descriptor.NewFqcn(reg.Fqcn); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFqcn, err)
	}

	if reg.HasConstructor() {
		if err := checkConstructor(reg.Constructor, t); err != nil {
			return err
		}
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.types.Load(t); ok {
		return sameIdentifier(old.(apis.Registration), reg)
	}

	// Write path: guard with a mutex to keep both maps and the counter consistent.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.types.Load(t); ok {
		return sameIdentifier(old.(apis.Registration), reg)
	}
	if old, ok := r.names.Load(reg.Fqcn); ok {
		return fmt.Errorf("%w: %q is taken by %v", ErrConflictingRegistration, reg.Fqcn, old.(apis.Registration).Type)
	}

	r.types.Store(t, reg)
	r.names.Store(reg.Fqcn, reg)
	r.count++
	return nil
}

// Lookup returns the registration of t (after pointer normalization).
func (r *registry) Lookup(t reflect.Type) (apis.Registration, bool) {
	if t == nil {
		return apis.Registration{}, false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return apis.Registration{}, false
	}
	if v, ok := r.types.Load(nt); ok {
		return v.(apis.Registration), true
	}
	return apis.Registration{}, false
}

// LookupName returns the registration known by fqcn.
func (r *registry) LookupName(fqcn string) (apis.Registration, bool) {
	if v, ok := r.names.Load(fqcn); ok {
		return v.(apis.Registration), true
	}
	return apis.Registration{}, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Registration {
	entries := make([]apis.Registration, 0, r.Count())
	r.types.Range(func(_, value any) bool {
		entries = append(entries, value.(apis.Registration))
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries. The maps are cleared in place;
// lookups never take mu.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types.Clear()
	r.names.Clear()
	r.count = 0
}

func sameIdentifier(old, reg apis.Registration) error {
	if old.Fqcn == reg.Fqcn {
		return nil // idempotent re-registration
	}
	return fmt.Errorf("%w: %v is registered as %q, not %q", ErrConflictingRegistration, reg.Type, old.Fqcn, reg.Fqcn)
}

// checkConstructor requires fn to be func(...) T, func(...) *T,
// or either of those followed by an error result.
func checkConstructor(fn reflect.Value, t reflect.Type) error {
	ft := fn.Type()
	if ft.Kind() != reflect.Func || fn.IsNil() {
		return fmt.Errorf("%w: %v is not a func", ErrInvalidConstructor, ft)
	}
	switch ft.NumOut() {
	case 1:
	case 2:
		if ft.Out(1) != errorType {
			return fmt.Errorf("%w: second result of %v must be error", ErrInvalidConstructor, ft)
		}
	default:
		return fmt.Errorf("%w: %v must return %v and optionally error", ErrInvalidConstructor, ft, t)
	}
	if out := ft.Out(0); out != t && out != reflect.PointerTo(t) {
		return fmt.Errorf("%w: %v returns %v, want %v", ErrInvalidConstructor, ft, out, t)
	}
	return nil
}
