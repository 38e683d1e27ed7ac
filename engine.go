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
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"dirpx.dev/prim/apis"
	"dirpx.dev/prim/builder"
	"dirpx.dev/prim/config"
	"dirpx.dev/prim/descriptor"
	"dirpx.dev/prim/kind"
	"dirpx.dev/prim/metadata"
	"dirpx.dev/prim/registry"
	"dirpx.dev/prim/scalar"
	uref "dirpx.dev/prim/utils/reflect"
)

// Engine classifies types as domain primitives and reflects over them.
// An Engine is safe for concurrent use.
type Engine struct {
	cfg apis.Config
	bld apis.Builder
	reg apis.Registry
	cls apis.Classifier
	log *zap.Logger

	// cache maps a normalized reflect.Type to its *entry. Entries are
	// complete before they are published and never change afterwards.
	cache sync.Map
	group singleflight.Group

	// gen counts registrations. A verdict computed under an older
	// generation is returned to its caller but never published.
	gen atomic.Uint64
	// pubMu orders publishing a verdict against forgetting them.
	pubMu sync.RWMutex
}

// entry is a memoized classification verdict.
type entry struct {
	shape apis.Shape
	err   error
}

// New constructs an Engine. Without options it uses config.DefaultConfig,
// builder.New and a no-op logger.
func New(opts ...Option) *Engine {
	o := options{
		cfg: config.DefaultConfig(),
		bld: builder.New(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return build(o)
}

func build(o options) *Engine {
	cfg := config.Normalize(o.cfg)
	reg := o.reg
	if reg == nil {
		reg = o.bld.BuildRegistry(cfg, o.prev)
	}
	if reg == nil {
		panic(ErrNilRegistry)
	}
	cls := o.bld.BuildClassifier(cfg, reg)
	if cls == nil {
		panic(ErrNilClassifier)
	}
	return &Engine{
		cfg: cfg,
		bld: o.bld,
		reg: reg,
		cls: cls,
		log: o.log,
	}
}

// With returns a new Engine with opts applied on top of e's settings.
// Registrations are migrated into a rebuilt registry unless WithRegistry is
// among opts. The new engine starts with an empty cache.
func (e *Engine) With(opts ...Option) *Engine {
	o := options{
		cfg:  e.cfg,
		bld:  e.bld,
		prev: e.reg,
		log:  e.log,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return build(o)
}

// Config returns the engine's configuration.
func (e *Engine) Config() apis.Config {
	return e.cfg
}

// Registry returns the engine's registry. Registrations or a Reset made on
// it directly are not seen by verdicts the engine already cached; use
// Register and Reset on the engine instead.
func (e *Engine) Registry() apis.Registry {
	return e.reg
}

// Reset drops every registration and forgets cached verdicts.
func (e *Engine) Reset() {
	e.reg.Reset()
	e.forget()
	e.log.Debug("registrations reset")
}

// forget drops cached verdicts and invalidates classifications in flight.
func (e *Engine) forget() {
	e.pubMu.Lock()
	defer e.pubMu.Unlock()
	e.gen.Add(1)
	e.cache.Clear()
}

// Register records t with the given options and forgets cached verdicts.
func (e *Engine) Register(t reflect.Type, opts ...RegisterOption) error {
	return e.register(apis.Registration{Type: t}, opts)
}

// RegisterConstructor records the type fn constructs, together with fn.
// fn must be a func whose first result is T or *T, optionally followed by an
// error; its first parameter receives the wrapped value in Create.
func (e *Engine) RegisterConstructor(fn any, opts ...RegisterOption) error {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() || fv.Type().NumOut() == 0 {
		return fmt.Errorf("%w: %T", registry.ErrInvalidConstructor, fn)
	}
	t := fv.Type().Out(0)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return e.register(apis.Registration{Type: t, Constructor: fv}, opts)
}

func (e *Engine) register(r apis.Registration, opts []RegisterOption) error {
	for _, opt := range opts {
		opt(&r)
	}
	if err := e.reg.Register(r); err != nil {
		e.log.Debug("registration rejected", zap.String("type", uref.TypeName(r.Type)), zap.Error(err))
		return err
	}
	e.forget()
	if got, ok := e.reg.Lookup(r.Type); ok {
		e.log.Debug("registered type",
			zap.String("fqcn", got.Fqcn),
			zap.Stringer("type", got.Type),
			zap.Bool("constructor", got.HasConstructor()),
		)
	}
	return nil
}

// Lookup returns the type registered under fqcn.
func (e *Engine) Lookup(fqcn string) (reflect.Type, bool) {
	r, ok := e.reg.LookupName(fqcn)
	if !ok {
		return nil, false
	}
	return r.Type, true
}

// IsPrimitive reports whether t is a domain primitive. It never fails:
// nil, unnamed and otherwise unresolvable types are not primitives.
// Verdicts are memoized per type.
func (e *Engine) IsPrimitive(t reflect.Type) bool {
	_, err := e.classify(t)
	return err == nil
}

// IsPrimitiveName reports whether the type registered under fqcn is a
// domain primitive. Unknown identifiers are not.
func (e *Engine) IsPrimitiveName(fqcn string) bool {
	t, ok := e.Lookup(fqcn)
	return ok && e.IsPrimitive(t)
}

// Explain returns nil when t is a domain primitive, and otherwise a
// *NotAPrimitiveError wrapping the first check t failed.
func (e *Engine) Explain(t reflect.Type) error {
	_, err := e.shape(t)
	return err
}

// Metadata assembles the descriptive record of t.
func (e *Engine) Metadata(t reflect.Type) (metadata.Record, error) {
	shape, err := e.shape(t)
	if err != nil {
		return metadata.Record{}, err
	}
	reg, _ := e.reg.Lookup(shape.Type)

	var fqcn descriptor.Fqcn
	if reg.Fqcn != "" {
		fqcn, err = descriptor.NewFqcn(reg.Fqcn)
	} else {
		fqcn, err = descriptor.FqcnOf(shape.Type)
	}
	if err != nil {
		return metadata.Record{}, err
	}
	k, err := kind.OfType(shape.Value)
	if err != nil {
		return metadata.Record{}, err
	}

	zero := reflect.New(shape.Type).Interface()
	var nameText, exampleText, descriptionText string
	if v, ok := zero.(apis.Namer); ok {
		nameText = v.PrimitiveName()
	}
	if v, ok := zero.(apis.Exampler); ok {
		exampleText = v.PrimitiveExample()
	}
	if v, ok := zero.(apis.Describer); ok {
		descriptionText = v.PrimitiveDescription()
	}

	name, err := descriptor.NewName(firstText(nameText, reg.Name, tag(shape, e.cfg.NameTag)))
	if err != nil {
		return metadata.Record{}, err
	}
	example, err := descriptor.NewExample(firstText(exampleText, reg.Example, tag(shape, e.cfg.ExampleTag)))
	if err != nil {
		return metadata.Record{}, err
	}
	description, err := descriptor.NewDescription(firstText(descriptionText, reg.Description, tag(shape, e.cfg.DescriptionTag)))
	if err != nil {
		return metadata.Record{}, err
	}
	return metadata.New(fqcn, k, name, example, description), nil
}

// ValueOf returns the value wrapped by instance, verbatim.
func (e *Engine) ValueOf(instance any) (any, error) {
	v, _, err := e.unwrap(instance)
	return v, err
}

// Create constructs a value of type t wrapping value. Nominal types are
// built through their Check predicate; structural types through their
// registered constructor, with zero values for any parameters after the
// first. Errors from either are returned unchanged.
//
// The result is whatever the construction path yields: a nominal type
// always comes back as a T, while a structural type comes back as its
// constructor's first result, which is a *T for constructors returning
// *T. CreateAs dereferences either form.
func (e *Engine) Create(t reflect.Type, value any) (any, error) {
	shape, err := e.shape(t)
	if err != nil {
		return nil, err
	}
	if shape.Origin == apis.Nominal {
		return scalar.Make(shape.Type, value)
	}
	return construct(shape, value)
}

// Equals reports whether a and b wrap equal values. Values of different
// types are unequal; nothing is converted. With Config.StrictEquality the
// operands must also be of the same primitive type.
func (e *Engine) Equals(a, b any) (bool, error) {
	va, ta, err := e.unwrap(a)
	if err != nil {
		return false, err
	}
	vb, tb, err := e.unwrap(b)
	if err != nil {
		return false, err
	}
	if e.cfg.StrictEquality && ta != tb {
		return false, nil
	}
	return reflect.DeepEqual(va, vb), nil
}

// unwrap returns the wrapped value of instance and its primitive type.
func (e *Engine) unwrap(instance any) (any, reflect.Type, error) {
	if instance == nil {
		return nil, nil, &NotAPrimitiveError{Type: uref.TypeName(nil), Reason: uref.ErrReflectNilValue}
	}
	rv, err := uref.Deref(reflect.ValueOf(instance), e.cfg)
	if err != nil {
		return nil, nil, &NotAPrimitiveError{Type: uref.TypeName(reflect.TypeOf(instance)), Reason: err}
	}
	shape, err := e.shape(rv.Type())
	if err != nil {
		return nil, nil, err
	}
	f := rv.FieldByIndex(shape.Field.Index)
	if shape.Origin == apis.Nominal {
		return f.Interface().(apis.Primitive).PrimitiveValue(), shape.Type, nil
	}
	return f.Interface(), shape.Type, nil
}

// shape classifies t, reporting failures as *NotAPrimitiveError.
func (e *Engine) shape(t reflect.Type) (apis.Shape, error) {
	shape, err := e.classify(t)
	if err != nil {
		return apis.Shape{}, &NotAPrimitiveError{Type: uref.TypeName(t), Reason: err}
	}
	return shape, nil
}

// classify returns the memoized verdict for t, computing it at most once
// per type for concurrent first lookups.
func (e *Engine) classify(t reflect.Type) (apis.Shape, error) {
	nt, err := uref.Normalize(t, e.cfg)
	if err != nil {
		return apis.Shape{}, err
	}
	if v, ok := e.cache.Load(nt); ok {
		ent := v.(*entry)
		return ent.shape, ent.err
	}

	gen := e.gen.Load()
	v, _, _ := e.group.Do(typeKey(nt, gen), func() (any, error) {
		if v, ok := e.cache.Load(nt); ok {
			return v, nil
		}
		shape, err := e.cls.Classify(nt, e.cfg)
		e.log.Debug("classified type",
			zap.Stringer("type", nt),
			zap.Bool("primitive", err == nil),
			zap.Error(err),
		)
		ent := &entry{shape: shape, err: err}

		e.pubMu.RLock()
		defer e.pubMu.RUnlock()
		if e.gen.Load() != gen {
			return ent, nil
		}
		v, _ := e.cache.LoadOrStore(nt, ent)
		return v, nil
	})
	ent := v.(*entry)
	return ent.shape, ent.err
}

// typeKey identifies t by its runtime type descriptor within a registration
// generation. Names alone are ambiguous across packages.
func typeKey(t reflect.Type, gen uint64) string {
	return strconv.FormatUint(uint64(reflect.ValueOf(t).Pointer()), 16) + "/" + strconv.FormatUint(gen, 10)
}

// construct calls the registered constructor of a structural primitive.
func construct(shape apis.Shape, value any) (any, error) {
	ct := shape.Constructor.Type()
	args := make([]reflect.Value, ct.NumIn())
	first, err := scalar.Conform(value, ct.In(0))
	if err != nil {
		return nil, &scalar.ValidationError{Type: uref.TypeName(shape.Type), Value: value, Err: err}
	}
	args[0] = first
	for i := 1; i < len(args); i++ {
		args[i] = reflect.Zero(ct.In(i))
	}

	var out []reflect.Value
	if ct.IsVariadic() {
		out = shape.Constructor.CallSlice(args)
	} else {
		out = shape.Constructor.Call(args)
	}
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

// tag returns the first value of key in the value-carrying field's tag.
func tag(shape apis.Shape, key string) string {
	v, _ := shape.Field.Tag.Lookup(key)
	return v
}

// firstText returns the first non-empty text.
func firstText(texts ...string) string {
	for _, s := range texts {
		if s != "" {
			return s
		}
	}
	return ""
}
