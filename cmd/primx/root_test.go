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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/prim/catalog"
	"dirpx.dev/prim/kind"
)

// run executes the root command with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)

	c, err := catalog.Read(strings.NewReader(out))
	require.NoError(t, err)
	e, ok := c.Find("descriptor.Fqcn")
	require.True(t, ok, "catalog:\n%s", out)
	assert.Equal(t, kind.String, e.Kind)
	assert.Equal(t, "Fully qualified type name", e.Name)
}

func TestCatalogCommand_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	_, err := run(t, "catalog", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fqcn: descriptor.Name")
}

func TestDescribeCommand(t *testing.T) {
	out, err := run(t, "describe", "descriptor.Example")
	require.NoError(t, err)
	assert.Contains(t, out, "descriptor.Example")
	assert.Contains(t, out, "kind:        string")
	assert.Contains(t, out, "example:     Any valid value(s)")

	_, err = run(t, "describe", "acme.Unknown")
	assert.ErrorContains(t, err, "acme.Unknown is not registered")
}

func TestCheckFqcnCommand(t *testing.T) {
	out, err := run(t, "check-fqcn", "acme.property.Email", "Email")
	require.NoError(t, err)
	assert.Contains(t, out, "ok       acme.property.Email")

	out, err = run(t, "check-fqcn", "acme.Email", "123Bad", "has space")
	assert.ErrorIs(t, err, errInvalid)
	assert.ErrorContains(t, err, "2 of 3")
	assert.Contains(t, out, `invalid  "123Bad"`)
	assert.Contains(t, out, `invalid  "has space"`)

	_, err = run(t, "check-fqcn")
	assert.Error(t, err)
}

func TestDebugFlag(t *testing.T) {
	_, err := run(t, "--debug", "check-fqcn", "acme.Email")
	require.NoError(t, err)
}
