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
	"go.uber.org/zap"

	"dirpx.dev/prim/apis"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	cfg  apis.Config
	bld  apis.Builder
	reg  apis.Registry
	prev apis.Registry
	log  *zap.Logger
}

// WithConfig sets the classification configuration. Out-of-range fields are
// reset to their defaults.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithBuilder sets the builder used to construct the registry and the
// classifier. A nil builder is ignored.
func WithBuilder(b apis.Builder) Option {
	return func(o *options) {
		if b != nil {
			o.bld = b
		}
	}
}

// WithRegistry makes the engine use reg as is instead of building one.
func WithRegistry(reg apis.Registry) Option {
	return func(o *options) {
		o.reg = reg
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log == nil {
			log = zap.NewNop()
		}
		o.log = log
	}
}

// RegisterOption sets a field of a registration.
type RegisterOption func(*apis.Registration)

// WithFqcn sets the identifier the type is registered under. By default it
// is derived from the type.
func WithFqcn(fqcn string) RegisterOption {
	return func(r *apis.Registration) {
		r.Fqcn = fqcn
	}
}

// WithName sets the registered name.
func WithName(name string) RegisterOption {
	return func(r *apis.Registration) {
		r.Name = name
	}
}

// WithExample sets the registered example.
func WithExample(example string) RegisterOption {
	return func(r *apis.Registration) {
		r.Example = example
	}
}

// WithDescription sets the registered description.
func WithDescription(description string) RegisterOption {
	return func(r *apis.Registration) {
		r.Description = description
	}
}
