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

package classifier

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/prim/apis"
)

// ErrUnclassified is returned when no strategy handled a type.
var ErrUnclassified = errors.New("prim(classifier): no strategy handled the type")

// New constructs an apis.Classifier that tries the given strategies in order.
// Nil strategies are ignored. The returned classifier is safe for concurrent
// use provided strategies themselves are safe for concurrent TryClassify calls.
func New(strategies ...apis.Strategy) apis.Classifier {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving classifier over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Classify runs strategies in order until one handles the type. The first
// handling strategy decides: later strategies are not consulted even when
// it rejects the type.
func (c chain) Classify(t reflect.Type, cfg apis.Config) (apis.Shape, error) {
	if t == nil {
		return apis.Shape{}, fmt.Errorf("%w: <nil>", ErrUnclassified)
	}
	for _, s := range c.strats {
		if shape, ok, err := s.TryClassify(t, cfg); ok {
			return shape, err
		}
	}
	return apis.Shape{}, fmt.Errorf("%w: %v", ErrUnclassified, t)
}
