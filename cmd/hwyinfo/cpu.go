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
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/go-highway/lanes/hwy"
)

func newCPUCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Print CPU features detected by golang.org/x/sys/cpu",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "GOARCH: %s\n", runtime.GOARCH)
			fmt.Fprintf(out, "NumCPU: %d\n", runtime.NumCPU())
			fmt.Fprintf(out, "Compiled-in backend: %s (host supported: %v)\n", hwy.CurrentName(), hwy.HostSupported())
			fmt.Fprintln(out)

			switch runtime.GOARCH {
			case "amd64":
				printAMD64Features(out)
			case "arm64":
				printARM64Features(out)
			case "ppc64", "ppc64le":
				printPPC64Features(out)
			default:
				fmt.Fprintln(out, "No SIMD backend for this architecture; the null backend is used.")
			}
		},
	}
}

func printAMD64Features(out io.Writer) {
	fmt.Fprintln(out, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(out, "  HasSSE2:    %v (sse2 backend)\n", cpu.X86.HasSSE2)
	fmt.Fprintf(out, "  HasSSE3:    %v\n", cpu.X86.HasSSE3)
	fmt.Fprintf(out, "  HasSSSE3:   %v\n", cpu.X86.HasSSSE3)
	fmt.Fprintf(out, "  HasSSE41:   %v\n", cpu.X86.HasSSE41)
	fmt.Fprintf(out, "  HasSSE42:   %v\n", cpu.X86.HasSSE42)
	fmt.Fprintf(out, "  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Fprintf(out, "  HasAVX2:    %v (avx2 backend, -tags hwy_avx2)\n", cpu.X86.HasAVX2)
	fmt.Fprintf(out, "  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(out, "  HasFMA:     %v\n", cpu.X86.HasFMA)
}

func printARM64Features(out io.Writer) {
	fmt.Fprintln(out, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(out, "  HasASIMD:   %v (neon backend)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(out, "  HasFP:      %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Fprintf(out, "  HasASIMDHP: %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Fprintf(out, "  HasSVE:     %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(out, "  HasSVE2:    %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printPPC64Features(out io.Writer) {
	fmt.Fprintln(out, "=== golang.org/x/sys/cpu.PPC64 ===")
	fmt.Fprintf(out, "  IsPOWER8:   %v (altivec backend)\n", cpu.PPC64.IsPOWER8)
	fmt.Fprintf(out, "  IsPOWER9:   %v\n", cpu.PPC64.IsPOWER9)
	fmt.Fprintf(out, "  HasDARN:    %v\n", cpu.PPC64.HasDARN)
	fmt.Fprintf(out, "  HasSCV:     %v\n", cpu.PPC64.HasSCV)
}
