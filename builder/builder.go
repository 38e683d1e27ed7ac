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

package builder

import (
	"dirpx.dev/prim/apis"
	"dirpx.dev/prim/classifier"
	"dirpx.dev/prim/registry"
	"dirpx.dev/prim/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided
// configuration. If a previous registry is provided, its entries are copied
// into the new one; entries the new configuration rejects are dropped.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry) apis.Registry {
	nreg := registry.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = nreg.Register(e)
		}
	}
	return nreg
}

// BuildClassifier builds and returns the default classifier chain:
// nominal first, then the structural fallback backed by reg.
func (b *builder) BuildClassifier(_ apis.Config, reg apis.Registry) apis.Classifier {
	return classifier.New(
		strategy.NewNominalStrategy(),
		strategy.NewStructuralStrategy(reg),
	)
}
