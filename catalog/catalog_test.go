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

package catalog_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/prim"
	"dirpx.dev/prim/catalog"
	"dirpx.dev/prim/kind"
	"dirpx.dev/prim/scalar"
)

type userID struct {
	scalar.Scalar[int] `name:"User ID" example:"123"`
}

func (userID) Check(v int) bool { return v > 0 }

type email struct {
	Value string
}

func newEmail(v string) email { return email{Value: v} }

// draft is registered but has no constructor, so it is not a primitive.
type draft struct {
	Value string
}

func newEngine(t *testing.T) *prim.Engine {
	t.Helper()
	e := prim.New()
	require.NoError(t, e.Register(reflect.TypeFor[userID](), prim.WithFqcn("acme.UserID")))
	require.NoError(t, e.RegisterConstructor(newEmail, prim.WithDescription("An email address")))
	require.NoError(t, e.Register(reflect.TypeFor[draft]()))
	return e
}

func TestBuild(t *testing.T) {
	c, err := catalog.Build(newEngine(t))
	require.NoError(t, err)

	want := catalog.Catalog{Primitives: []catalog.Entry{
		{Fqcn: "acme.UserID", Kind: kind.Integer, Name: "User ID", Example: "123"},
		{Fqcn: "catalog_test.email", Kind: kind.String, Description: "An email address"},
	}}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("Build mismatch (-want +got):\n%s", diff)
	}

	got, ok := c.Find("catalog_test.email")
	require.True(t, ok)
	assert.Equal(t, "An email address", got.Description)
	_, ok = c.Find("catalog_test.draft")
	assert.False(t, ok)
}

func TestWriteRead(t *testing.T) {
	c, err := catalog.Build(newEngine(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, catalog.Write(&buf, c))
	out := buf.String()
	assert.Contains(t, out, "fqcn: acme.UserID")
	assert.Contains(t, out, "kind: integer")
	assert.NotContains(t, out, "example: \"\"")

	back, err := catalog.Read(strings.NewReader(out))
	require.NoError(t, err)
	if diff := cmp.Diff(c, back); diff != "" {
		t.Fatalf("Read(Write(c)) mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_Errors(t *testing.T) {
	_, err := catalog.Read(strings.NewReader("primitives:\n  - fqcn: a.B\n    kind: object\n"))
	assert.ErrorIs(t, err, kind.ErrUnsupportedKind)

	c, err := catalog.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, c.Primitives)
}
