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
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// IndexFunc is one annotated index function.
type IndexFunc struct {
	Key      string
	Name     string
	Title    string
	Family   string
	Bands    []string
	Params   []ParamDefault
	ArrayOf  string // sibling whole-band function, if any
	IsArray  bool   // the function itself takes whole bands
	Position token.Position
}

// ParamDefault is a parsed //vgi:default directive. Value is either a
// float literal or an identifier in the scanned package.
type ParamDefault struct {
	Name  string
	Value string
}

var families = map[string]string{
	"normalized-difference": "NormalizedDifference",
	"ratio":                 "Ratio",
	"polynomial":            "Polynomial",
	"root":                  "Root",
}

// ParsePackage scans every non-test Go file in dir except skip and returns
// the package name and annotated functions in key order.
func ParsePackage(dir, skip string) (string, []IndexFunc, error) {
	fset := token.NewFileSet()
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return "", nil, err
	}

	var pkgName string
	var funcs []IndexFunc
	declared := make(map[string]*ast.FuncDecl)

	for _, path := range matches {
		base := filepath.Base(path)
		if strings.HasSuffix(base, "_test.go") || base == skip {
			continue
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return "", nil, err
		}
		file, err := parser.ParseFile(fset, path, src, parser.ParseComments)
		if err != nil {
			return "", nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if pkgName == "" {
			pkgName = file.Name.Name
		}

		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Recv != nil {
				continue
			}
			declared[fd.Name.Name] = fd
			f, ok, err := parseIndexFunc(fset, fd)
			if err != nil {
				return "", nil, err
			}
			if ok {
				funcs = append(funcs, f)
			}
		}
	}

	seen := make(map[string]token.Position)
	for i := range funcs {
		f := &funcs[i]
		if prev, dup := seen[f.Key]; dup {
			return "", nil, fmt.Errorf("%s: key %q already used at %s", f.Position, f.Key, prev)
		}
		seen[f.Key] = f.Position
		if !f.IsArray {
			if sib, ok := declared[f.Name+"Array"]; ok && isArrayFunc(sib) {
				f.ArrayOf = sib.Name.Name
			}
		}
	}

	sort.Slice(funcs, func(i, j int) bool { return funcs[i].Key < funcs[j].Key })
	return pkgName, funcs, nil
}

func parseIndexFunc(fset *token.FileSet, fd *ast.FuncDecl) (IndexFunc, bool, error) {
	if fd.Doc == nil {
		return IndexFunc{}, false, nil
	}
	pos := fset.Position(fd.Pos())
	f := IndexFunc{Name: fd.Name.Name, Position: pos}

	found := false
	for _, c := range fd.Doc.List {
		text := strings.TrimPrefix(c.Text, "//")
		if after, ok := strings.CutPrefix(text, "vgi:index "); ok {
			fields := strings.Fields(after)
			if len(fields) != 2 {
				return f, false, fmt.Errorf("%s: want //vgi:index <key> <family>, got %q", pos, c.Text)
			}
			if _, ok := families[fields[1]]; !ok {
				return f, false, fmt.Errorf("%s: unknown family %q", pos, fields[1])
			}
			f.Key, f.Family = fields[0], fields[1]
			found = true
		} else if after, ok := strings.CutPrefix(text, "vgi:default "); ok {
			name, value, ok := strings.Cut(strings.TrimSpace(after), "=")
			if !ok || name == "" || value == "" {
				return f, false, fmt.Errorf("%s: want //vgi:default <param>=<value>, got %q", pos, c.Text)
			}
			if _, err := strconv.ParseFloat(value, 64); err != nil && !token.IsIdentifier(value) {
				return f, false, fmt.Errorf("%s: default %q is neither a number nor an identifier", pos, value)
			}
			f.Params = append(f.Params, ParamDefault{Name: name, Value: value})
		}
	}
	if !found {
		if len(f.Params) > 0 {
			return f, false, fmt.Errorf("%s: //vgi:default without //vgi:index on %s", pos, f.Name)
		}
		return f, false, nil
	}

	var names []string
	for _, field := range fd.Type.Params.List {
		for _, n := range field.Names {
			names = append(names, n.Name)
		}
	}
	if len(f.Params) > len(names) {
		return f, false, fmt.Errorf("%s: %s has %d defaults but %d parameters", pos, f.Name, len(f.Params), len(names))
	}
	f.Bands = names[:len(names)-len(f.Params)]
	f.IsArray = isArrayFunc(fd)
	if f.IsArray && len(f.Params) > 0 {
		return f, false, fmt.Errorf("%s: whole-band function %s cannot take defaults", pos, f.Name)
	}
	f.Title = titleFromDoc(f.Name, fd.Doc.Text())
	return f, true, nil
}

// isArrayFunc reports whether fd takes slices and returns ([]T, error).
func isArrayFunc(fd *ast.FuncDecl) bool {
	params := fd.Type.Params.List
	if len(params) == 0 {
		return false
	}
	if _, ok := params[0].Type.(*ast.ArrayType); !ok {
		return false
	}
	res := fd.Type.Results
	if res == nil || len(res.List) != 2 {
		return false
	}
	_, isSlice := res.List[0].Type.(*ast.ArrayType)
	errIdent, isIdent := res.List[1].Type.(*ast.Ident)
	return isSlice && isIdent && errIdent.Name == "error"
}

// titleFromDoc turns "NDVI is the Normalized Difference Vegetation Index
// (Rouse et al., 1974).\n\n..." into the first sentence after "is the".
func titleFromDoc(name, doc string) string {
	para, _, _ := strings.Cut(doc, "\n\n")
	title := strings.Join(strings.Fields(para), " ")
	title, _, _ = strings.Cut(title, ". ")
	for _, prefix := range []string{name + " is the ", name + " is ", name + " computes the "} {
		if after, ok := strings.CutPrefix(title, prefix); ok {
			title = after
			break
		}
	}
	title = strings.TrimSuffix(title, ".")
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	return title
}
