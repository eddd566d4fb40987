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

// Command hwyinfo prints the compiled-in SIMD backend and verifies every
// backend against the reference evaluator.
//
// Usage:
//
//	hwyinfo                                  # backend, register width, lanes per type
//	hwyinfo verify --trials 1000 --seed 7    # cross-backend equivalence check
//	hwyinfo verify --format yaml --backends sse2,avx2
//	hwyinfo cpu                              # features reported by golang.org/x/sys/cpu
//
// Build with -tags hwy_avx2 for the AVX2 backend on amd64, or -tags noasm
// for the null backend on any architecture.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hwyinfo: ")

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hwyinfo",
		Short: "Print the compiled-in SIMD backend",
		Long: `hwyinfo reports which lane-operation backend this binary was built with
(selected by GOARCH and the noasm / hwy_avx2 build tags), whether the host
CPU implements it, and how many lanes of each type fit in one register.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInfo,
	}
	rootCmd.AddCommand(newVerifyCmd(), newCPUCmd())
	return rootCmd
}
