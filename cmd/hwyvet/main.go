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

// Command hwyvet reports out-of-range constant lane parameters of hwy
// operations.
//
// Usage:
//
//	hwyvet ./...
//	go vet -vettool=$(which hwyvet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/go-highway/lanes/analysis/lanecheck"
)

func main() {
	singlechecker.Main(lanecheck.Analyzer)
}
