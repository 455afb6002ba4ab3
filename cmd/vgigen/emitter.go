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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"
)

// Generator writes the registry table for one index package.
type Generator struct {
	Dir           string
	Catalog       string
	Output        string
	CatalogImport string
}

// Run parses g.Dir and writes the generated file. It returns the number of
// entries written.
func (g *Generator) Run() (int, error) {
	pkgName, funcs, err := ParsePackage(g.Dir, filepath.Base(g.Output))
	if err != nil {
		return 0, err
	}
	if len(funcs) == 0 {
		return 0, fmt.Errorf("no //vgi:index functions in %s", g.Dir)
	}
	name := g.Catalog
	if name == "" {
		name = pkgName
	}

	outPath := filepath.Join(g.Dir, g.Output)
	src, err := Emit(pkgName, name, g.CatalogImport, funcs, outPath)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return 0, err
	}
	return len(funcs), nil
}

// Emit renders the registry source for funcs. filename is only used by the
// formatter for error messages and import grouping.
func Emit(pkgName, catalogName, catalogImport string, funcs []IndexFunc, filename string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by vgigen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	fmt.Fprintf(&buf, "import %q\n\n", catalogImport)

	fmt.Fprintf(&buf, "var entries = []catalog.Entry{\n")
	for _, f := range funcs {
		emitEntry(&buf, f)
	}
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "var registry = catalog.New(%q, entries)\n\n", catalogName)
	fmt.Fprintf(&buf, "// Registry returns the %s index catalog.\n", catalogName)
	fmt.Fprintf(&buf, "func Registry() *catalog.Registry { return registry }\n")

	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}

func emitEntry(buf *bytes.Buffer, f IndexFunc) {
	quoted := make([]string, len(f.Bands))
	for i, b := range f.Bands {
		quoted[i] = strconv.Quote(b)
	}

	fmt.Fprintf(buf, "\t{\n")
	fmt.Fprintf(buf, "\t\tKey: %q,\n", f.Key)
	fmt.Fprintf(buf, "\t\tName: %q,\n", f.Name)
	fmt.Fprintf(buf, "\t\tTitle: %q,\n", f.Title)
	fmt.Fprintf(buf, "\t\tFamily: catalog.%s,\n", families[f.Family])
	fmt.Fprintf(buf, "\t\tBands: []string{%s},\n", strings.Join(quoted, ", "))

	if len(f.Params) > 0 {
		params := make([]string, len(f.Params))
		for i, p := range f.Params {
			params[i] = fmt.Sprintf("{Name: %q, Default: %s}", p.Name, p.Value)
		}
		fmt.Fprintf(buf, "\t\tParams: []catalog.Param{%s},\n", strings.Join(params, ", "))
	}

	if !f.IsArray {
		args := make([]string, len(f.Bands)+len(f.Params))
		for i := range args {
			args[i] = fmt.Sprintf("x[%d]", i)
		}
		fmt.Fprintf(buf, "\t\tEval: func(x []float64) float64 { return %s(%s) },\n", f.Name, strings.Join(args, ", "))
	}

	arrayFn := f.ArrayOf
	if f.IsArray {
		arrayFn = f.Name
	}
	if arrayFn != "" {
		args := make([]string, len(f.Bands))
		for i := range args {
			args[i] = fmt.Sprintf("b[%d]", i)
		}
		fmt.Fprintf(buf, "\t\tArray: func(b [][]float64, _ []float64) ([]float64, error) { return %s(%s) },\n",
			arrayFn, strings.Join(args, ", "))
	}
	fmt.Fprintf(buf, "\t},\n")
}
