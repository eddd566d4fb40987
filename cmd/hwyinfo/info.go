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
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-highway/lanes/hwy"
)

// laneCount is one row of the lanes-per-register table.
type laneCount struct {
	name  string
	lanes int
	block int
}

func laneCounts() []laneCount {
	return []laneCount{
		{"int8/uint8", hwy.ChunkLanes[uint8](), hwy.BlockLanes[uint8]()},
		{"int16/uint16", hwy.ChunkLanes[uint16](), hwy.BlockLanes[uint16]()},
		{"int32/uint32/float32", hwy.ChunkLanes[uint32](), hwy.BlockLanes[uint32]()},
		{"int64/uint64/float64", hwy.ChunkLanes[uint64](), hwy.BlockLanes[uint64]()},
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(out, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Highway dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(out, "Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(out, "Host supported: %v\n", hwy.HostSupported())
	fmt.Fprintf(out, "Hardware instructions: %v\n", hwy.HardwareInstructions())
	fmt.Fprintf(out, "Backends: %s\n", strings.Join(lo.Map(hwy.AllBackends(), func(l hwy.DispatchLevel, _ int) string {
		return l.String()
	}), ", "))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Lanes per register (per 128-bit block):")
	for _, c := range laneCounts() {
		fmt.Fprintf(out, "  %-22s %2d (%d)\n", c.name, c.lanes, c.block)
	}
	return nil
}
