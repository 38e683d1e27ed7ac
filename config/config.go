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

package config

import (
	"dirpx.dev/prim/apis"
)

const (
	// DefaultStructural represents the default for Structural.
	// When true, types exposing a single Value field may qualify reflectively.
	DefaultStructural = true
	// DefaultStrictEquality represents the default for StrictEquality.
	// When false, Equals compares wrapped values only.
	DefaultStrictEquality = false
	// DefaultMaxDeref represents the default for MaxDeref.
	DefaultMaxDeref = 2
	// DefaultNameTag is the default struct tag key for declared names.
	DefaultNameTag = "name"
	// DefaultExampleTag is the default struct tag key for declared examples.
	DefaultExampleTag = "example"
	// DefaultDescriptionTag is the default struct tag key for declared descriptions.
	DefaultDescriptionTag = "description"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Normalize(cfg)
}

// Normalize resets out-of-range fields of cfg to their defaults: a negative
// MaxDeref and empty tag keys.
func Normalize(cfg apis.Config) apis.Config {
	if cfg.MaxDeref < 0 {
		cfg.MaxDeref = DefaultMaxDeref
	}
	if cfg.NameTag == "" {
		cfg.NameTag = DefaultNameTag
	}
	if cfg.ExampleTag == "" {
		cfg.ExampleTag = DefaultExampleTag
	}
	if cfg.DescriptionTag == "" {
		cfg.DescriptionTag = DefaultDescriptionTag
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Structural:     DefaultStructural,
		StrictEquality: DefaultStrictEquality,
		MaxDeref:       DefaultMaxDeref,
		NameTag:        DefaultNameTag,
		ExampleTag:     DefaultExampleTag,
		DescriptionTag: DefaultDescriptionTag,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithStructural sets the Structural option.
func WithStructural(enabled bool) Option {
	return func(c *apis.Config) {
		c.Structural = enabled
	}
}

// WithStrictEquality sets the StrictEquality option.
func WithStrictEquality(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictEquality = strict
	}
}

// WithMaxDeref sets the MaxDeref option.
// A negative value resets to the default.
func WithMaxDeref(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxDeref = DefaultMaxDeref
			return
		}
		c.MaxDeref = max
	}
}

// WithTagKeys sets the struct tag keys read for name, example and description.
// Empty keys keep their current value.
func WithTagKeys(name, example, description string) Option {
	return func(c *apis.Config) {
		if name != "" {
			c.NameTag = name
		}
		if example != "" {
			c.ExampleTag = example
		}
		if description != "" {
			c.DescriptionTag = description
		}
	}
}
