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
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/prim"
	"dirpx.dev/prim/catalog"
	"dirpx.dev/prim/descriptor"
)

// errInvalid is returned by check-fqcn when any identifier is rejected.
var errInvalid = errors.New("invalid identifiers")

// app carries the state shared by subcommands.
type app struct {
	debug  bool
	log    *zap.Logger
	engine *prim.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "primx",
		Short:         "Inspect domain primitives",
		Long:          "primx lists, describes and validates the domain primitives registered with the default engine.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log classification decisions to stderr")

	root.AddCommand(a.catalogCmd())
	root.AddCommand(a.describeCmd())
	root.AddCommand(a.checkFqcnCmd())
	return root
}

func (a *app) init() error {
	a.log = zap.NewNop()
	if a.debug {
		log, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		a.log = log
	}
	a.engine = prim.Default().With(prim.WithLogger(a.log))
	return nil
}

func (a *app) catalogCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Write the catalog of registered primitives as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Build(a.engine)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return catalog.Write(cmd.OutOrStdout(), c)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := catalog.Write(f, c); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe FQCN",
		Short: "Show the metadata of a registered primitive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := a.engine.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%s is not registered", args[0])
			}
			md, err := a.engine.Metadata(t)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			bold := color.New(color.Bold, color.FgCyan)
			bold.Fprintln(out, md.Fqcn)
			fmt.Fprintf(out, "  kind:        %s\n", md.Kind)
			fmt.Fprintf(out, "  name:        %s\n", md.Name)
			fmt.Fprintf(out, "  example:     %s\n", md.Example)
			fmt.Fprintf(out, "  description: %s\n", md.Description)
			return nil
		},
	}
}

func (a *app) checkFqcnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-fqcn NAME...",
		Short: "Validate fully-qualified type identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			green := color.New(color.FgGreen)
			red := color.New(color.FgRed)

			bad := 0
			for _, name := range args {
				if _, err := descriptor.NewFqcn(name); err != nil {
					bad++
					red.Fprintf(out, "invalid  %q\n", name)
					continue
				}
				green.Fprintf(out, "ok       %s\n", name)
			}
			if bad > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalid, bad, len(args))
			}
			return nil
		},
	}
}
