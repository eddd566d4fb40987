// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/go-highway/lanes/hwy"
)

// verifyOptions holds the flags of the verify command.
type verifyOptions struct {
	trials   int
	seed     uint64
	format   string
	backends []string
	verbose  bool
}

func newVerifyCmd() *cobra.Command {
	opts := &verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every backend against the reference evaluator",
		Long: `verify runs every operation on every backend with random vectors of
several shapes and compares the results with the element-wise reference
evaluator. All backends are built into every binary, so this works on any
host. It exits non-zero if any backend diverges.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.trials, "trials", 1000, "Random trials per backend")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "Random seed")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text or yaml")
	cmd.Flags().StringSliceVar(&opts.backends, "backends", nil, "Backends to check (default: all)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log each backend as it finishes")
	return cmd
}

func runVerify(cmd *cobra.Command, opts *verifyOptions) error {
	if opts.trials <= 0 {
		return fmt.Errorf("--trials must be positive, got %d", opts.trials)
	}
	if opts.format != "text" && opts.format != "yaml" {
		return fmt.Errorf("unknown --format %q (want text or yaml)", opts.format)
	}
	levels, err := selectBackends(opts.backends)
	if err != nil {
		return err
	}

	reports := make([]hwy.BackendReport, len(levels))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, level := range levels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = hwy.CheckBackend(level, opts.trials, opts.seed)
			if opts.verbose {
				log.Printf("%s: %d checks, %d failures", level, reports[i].Checks, len(reports[i].Failures))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	if err := writeReports(cmd.OutOrStdout(), opts.format, reports); err != nil {
		return err
	}

	failed := lo.Filter(reports, func(r hwy.BackendReport, _ int) bool { return !r.OK() })
	if len(failed) > 0 {
		names := lo.Map(failed, func(r hwy.BackendReport, _ int) string { return r.Level })
		return fmt.Errorf("%d of %d backends diverge from the reference: %s",
			len(failed), len(reports), strings.Join(names, ", "))
	}
	return nil
}

// selectBackends parses --backends; an empty list selects every backend.
func selectBackends(names []string) ([]hwy.DispatchLevel, error) {
	if len(names) == 0 {
		return hwy.AllBackends(), nil
	}
	levels := make([]hwy.DispatchLevel, 0, len(names))
	for _, name := range names {
		level, err := hwy.ParseDispatchLevel(name)
		if err != nil {
			return nil, fmt.Errorf("--backends: %w", err)
		}
		levels = append(levels, level)
	}
	return lo.Uniq(levels), nil
}

func writeReports(w io.Writer, format string, reports []hwy.BackendReport) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	for _, r := range reports {
		status := "ok"
		if !r.OK() {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%-8s %3d-bit  %7d checks  %s\n", r.Level, 8*r.Width, r.Checks, status)
		for _, f := range r.Failures {
			fmt.Fprintf(w, "    %s %s arg=%d\n      got  %s\n      want %s\n", f.Op, f.Shape, f.Arg, f.Got, f.Want)
		}
	}
	return nil
}
