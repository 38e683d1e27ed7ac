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

package builder_test

import (
	"errors"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/prim/apis"
	"dirpx.dev/prim/builder"
	"dirpx.dev/prim/config"
	"dirpx.dev/prim/registry"
	"dirpx.dev/prim/scalar"
	"dirpx.dev/prim/strategy"
)

// userID is a nominal primitive.
type userID struct {
	scalar.Scalar[int]
}

func (userID) Check(v int) bool { return v > 0 }

// email is a structural primitive once its constructor is registered.
type email struct {
	Value string
}

func newEmail(v string) email { return email{Value: v} }

// plain is not a primitive at all.
type plain struct {
	A, B int
}

// defaultCfg returns a sane configuration for tests.
func defaultCfg() apis.Config {
	return config.DefaultConfig()
}

func registerEmail(t *testing.T, reg apis.Registry) {
	t.Helper()
	err := reg.Register(apis.Registration{
		Type:        reflect.TypeOf(email{}),
		Constructor: reflect.ValueOf(newEmail),
		Name:        "Email",
	})
	if err != nil {
		t.Fatalf("Register(email) failed: %v", err)
	}
}

// TestBuildRegistry_Basic asserts that BuildRegistry returns a non-nil,
// working Registry that supports Register/Lookup/Entries/Count.
func TestBuildRegistry_Basic(t *testing.T) {
	b := builder.New()

	// prev may be nil; this must still produce a valid registry.
	reg := b.BuildRegistry(defaultCfg(), nil)
	if reg == nil {
		t.Fatal("BuildRegistry returned nil")
	}
	registerEmail(t, reg)

	got, ok := reg.Lookup(reflect.TypeOf(email{}))
	if !ok || got.Fqcn != "builder_test.email" || got.Name != "Email" {
		t.Fatalf("Lookup mismatch: ok=%v got=%+v", ok, got)
	}
	if c := reg.Count(); c != 1 {
		t.Fatalf("Count = %d, want 1", c)
	}
}

// TestBuildRegistry_MigratesPrevious verifies entries survive a rebuild.
func TestBuildRegistry_MigratesPrevious(t *testing.T) {
	b := builder.New()
	prev := b.BuildRegistry(defaultCfg(), nil)
	registerEmail(t, prev)

	next := b.BuildRegistry(defaultCfg(), prev)
	got, ok := next.Lookup(reflect.TypeOf(email{}))
	if !ok {
		t.Fatal("migrated registry lost email")
	}
	if !got.HasConstructor() || got.Name != "Email" {
		t.Fatalf("migrated registration incomplete: %+v", got)
	}

	// The rebuilt registry is independent of its source.
	prev.Reset()
	if next.Count() != 1 {
		t.Fatalf("Reset on previous registry leaked into the rebuilt one")
	}
}

// TestBuildClassifier_NominalThenStructural verifies classification priority.
func TestBuildClassifier_NominalThenStructural(t *testing.T) {
	b := builder.New()
	cfg := defaultCfg()
	reg := b.BuildRegistry(cfg, nil)
	registerEmail(t, reg)

	cls := b.BuildClassifier(cfg, reg)
	if cls == nil {
		t.Fatal("BuildClassifier returned nil")
	}

	shape, err := cls.Classify(reflect.TypeOf(userID{}), cfg)
	if err != nil || shape.Origin != apis.Nominal {
		t.Fatalf("userID: shape=%+v err=%v", shape, err)
	}

	shape, err = cls.Classify(reflect.TypeOf(email{}), cfg)
	if err != nil || shape.Origin != apis.Structural {
		t.Fatalf("email: shape=%+v err=%v", shape, err)
	}

	if _, err := cls.Classify(reflect.TypeOf(plain{}), cfg); !errors.Is(err, strategy.ErrFieldCount) {
		t.Fatalf("plain: error = %v, want ErrFieldCount", err)
	}
}

// TestBuildClassifier_WithExternalRegistry asserts that BuildClassifier will
// accept any apis.Registry implementation, not only the one created by
// this builder.
func TestBuildClassifier_WithExternalRegistry(t *testing.T) {
	r := registry.New(config.DefaultConfig())
	registerEmail(t, r)

	cls := builder.New().BuildClassifier(defaultCfg(), r)
	if _, err := cls.Classify(reflect.TypeOf(email{}), defaultCfg()); err != nil {
		t.Fatalf("classifier did not use registry constructor: %v", err)
	}
}

// TestBuildClassifier_Concurrency_Smoke hammers the classifier in parallel
// to ensure it is safe to call Classify concurrently after being built.
func TestBuildClassifier_Concurrency_Smoke(t *testing.T) {
	b := builder.New()
	cfg := defaultCfg()
	reg := b.BuildRegistry(cfg, nil)
	registerEmail(t, reg)
	cls := b.BuildClassifier(cfg, reg)

	types := []reflect.Type{
		reflect.TypeOf(userID{}),
		reflect.TypeOf(email{}),
		reflect.TypeOf(plain{}),
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				_, _ = cls.Classify(types[(i+id)%len(types)], cfg)
			}
		}(w)
	}

	wg.Wait()
}

// Compile-time check: builder.New() must satisfy apis.Builder.
var _ apis.Builder = builder.New()
