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

// Package lanecheck defines an analyzer that reports constant shift counts
// and lane indices that are out of range for the vector they are applied
// to.
//
// Package hwy checks these parameters at run time and panics. When the
// argument is a constant expression, the lane type and lane count are known
// from the vector's type arguments, so the mistake is reported at build time
// instead:
//
//	v := hwy.New[uint8]([16]uint8{})
//	hwy.ShiftLConst(v, 9)  // ShiftLConst count 9 exceeds the 8-bit lane width
//	hwy.MoveL(v, 17)       // MoveL shift 17 out of range [0, 16] for uint8 lanes
//	hwy.BroadcastW(v, 16)  // BroadcastW lane 16 out of range [0, 16)
package lanecheck

import (
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `report out-of-range constant lane parameters of hwy operations

Checks the count of ShiftLConst (at most the lane width in bits), the shift
of MoveL (at most the lanes in a 128-bit block) and the lane of BroadcastW
(below the vector's lane count), including their *On variants.`

// Analyzer is the lanecheck analyzer.
var Analyzer = &analysis.Analyzer{
	Name:     "lanecheck",
	Doc:      doc,
	URL:      "https://pkg.go.dev/github.com/go-highway/lanes/analysis/lanecheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// HwyPath is the import path of the checked package.
const HwyPath = "github.com/go-highway/lanes/hwy"

const blockBytes = 16

type checkKind int

const (
	checkShiftCount checkKind = iota
	checkMoveShift
	checkBroadcastLane
)

// target describes one checked function: which argument is the lane
// parameter and how it is bounded.
type target struct {
	kind checkKind
	arg  int
}

var targets = map[string]target{
	"ShiftLConst":   {checkShiftCount, 1},
	"ShiftLConstOn": {checkShiftCount, 2},
	"MoveL":         {checkMoveShift, 1},
	"MoveLOn":       {checkMoveShift, 2},
	"BroadcastW":    {checkBroadcastLane, 1},
	"BroadcastWOn":  {checkBroadcastLane, 2},
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{(*ast.CallExpr)(nil)}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		id := calleeIdent(call.Fun)
		if id == nil {
			return
		}
		fn, ok := pass.TypesInfo.Uses[id].(*types.Func)
		if !ok || fn.Pkg() == nil || fn.Pkg().Path() != HwyPath {
			return
		}
		tgt, ok := targets[fn.Name()]
		if !ok || tgt.arg >= len(call.Args) {
			return
		}
		inst, ok := pass.TypesInfo.Instances[id]
		if !ok || inst.TypeArgs.Len() < 2 {
			return
		}
		arg := call.Args[tgt.arg]
		value, ok := constArg(pass, arg)
		if !ok {
			return
		}
		laneType := inst.TypeArgs.At(0)
		size := pass.TypesSizes.Sizeof(laneType)
		arr, ok := inst.TypeArgs.At(1).Underlying().(*types.Array)
		if !ok || size <= 0 {
			return
		}
		lane := types.TypeString(laneType, types.RelativeTo(pass.Pkg))

		switch tgt.kind {
		case checkShiftCount:
			if bits := 8 * size; value > bits {
				pass.ReportRangef(arg, "%s count %d exceeds the %d-bit lane width", fn.Name(), value, bits)
			}
		case checkMoveShift:
			if limit := blockBytes / size; value < 0 || value > limit {
				pass.ReportRangef(arg, "%s shift %d out of range [0, %d] for %s lanes", fn.Name(), value, limit, lane)
			}
		case checkBroadcastLane:
			if n := arr.Len(); value < 0 || value >= n {
				pass.ReportRangef(arg, "%s lane %d out of range [0, %d)", fn.Name(), value, n)
			}
		}
	})
	return nil, nil
}

// calleeIdent returns the identifier naming the called function, looking
// through parentheses, package qualifiers and explicit instantiation.
func calleeIdent(fun ast.Expr) *ast.Ident {
	fun = ast.Unparen(fun)
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f
	case *ast.SelectorExpr:
		return f.Sel
	}
	return nil
}

// constArg returns the value of a constant integer argument.
func constArg(pass *analysis.Pass, arg ast.Expr) (int64, bool) {
	tv, ok := pass.TypesInfo.Types[arg]
	if !ok || tv.Value == nil {
		return 0, false
	}
	v := constant.ToInt(tv.Value)
	if v.Kind() != constant.Int {
		return 0, false
	}
	return constant.Int64Val(v)
}
