// Copyright 2025 go-vgi Authors
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

// Command vgigen generates the catalog registry of an index package from
// the //vgi: directives on its functions.
//
// Usage:
//
//	vgigen -dir catalog/vgi -catalog vgi
//
// Or via go:generate:
//
//	//go:generate go run ../../cmd/vgigen -dir . -catalog vgi
//
// Each exported generic index function carries an index directive and,
// for tunable coefficients, one default directive per trailing parameter:
//
//	// SAVIRRE is the ...
//	//
//	//vgi:index savirre polynomial
//	//vgi:default a=DefaultSAVIRREA
//	//vgi:default L=0.5
//	func SAVIRRE[T hwy.Floats](b4, b5, b8, a, l T) T
//
// Functions over whole bands ([]T arguments, ([]T, error) result) become
// array-only entries. A scalar function Foo with a sibling FooArray gets
// FooArray as its entry's Array function.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	dirFlag     = flag.String("dir", ".", "Package directory to scan")
	catalogFlag = flag.String("catalog", "", "Registry name (default: package name)")
	outputFlag  = flag.String("output", "registry_gen.go", "Output file, relative to -dir")
	catalogPkg  = flag.String("catalog_import", "github.com/sr2vgi/go-vgi/catalog", "Import path of the catalog package")
)

func main() {
	flag.Parse()

	gen := &Generator{
		Dir:           *dirFlag,
		Catalog:       *catalogFlag,
		Output:        *outputFlag,
		CatalogImport: *catalogPkg,
	}
	n, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d entries into %s\n", n, gen.Output)
}
