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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const sampleSrc = `package sample

const DefaultW = 0.25

// NDVI is the Normalized Difference Vegetation Index (Rouse et al., 1974).
// Values lie in [-1, 1].
//
//vgi:index ndvi normalized-difference
func NDVI[T ~float64](red, nir T) T { return (nir - red) / (nir + red) }

// Blend computes the weighted mix of two bands.
//
//vgi:index blend ratio
//vgi:default w=DefaultW
func Blend[T ~float64](a, b, w T) T { return w*a + (1-w)*b }

// GEMI is the Global Environment Monitoring Index.
//
//vgi:index gemi polynomial
func GEMI[T ~float64](red, nir T) T { return red * nir }

// GEMIArray is GEMI over whole bands.
func GEMIArray[T ~float64](red, nir []T) ([]T, error) { return nil, nil }

// Span is the range of the band.
//
//vgi:index span ratio
func Span[T ~float64](x []T) ([]T, error) { return x, nil }

func helper() {}
`

func writePackage(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestParsePackage(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"sample.go":       sampleSrc,
		"sample_test.go":  "package sample\n\n// X is.\n//\n//vgi:index ndvi ratio\nfunc X(a float64) float64 { return a }\n",
		"registry_gen.go": "package sample\n\n// Y is.\n//\n//vgi:index ndvi ratio\nfunc Y(a float64) float64 { return a }\n",
	})

	pkg, funcs, err := ParsePackage(dir, "registry_gen.go")
	if err != nil {
		t.Fatal(err)
	}
	if pkg != "sample" {
		t.Errorf("package = %q, want sample", pkg)
	}

	want := []IndexFunc{
		{Key: "blend", Name: "Blend", Title: "Weighted mix of two bands", Family: "ratio",
			Bands: []string{"a", "b"}, Params: []ParamDefault{{Name: "w", Value: "DefaultW"}}},
		{Key: "gemi", Name: "GEMI", Title: "Global Environment Monitoring Index", Family: "polynomial",
			Bands: []string{"red", "nir"}, ArrayOf: "GEMIArray"},
		{Key: "ndvi", Name: "NDVI", Title: "Normalized Difference Vegetation Index (Rouse et al., 1974)",
			Family: "normalized-difference", Bands: []string{"red", "nir"}},
		{Key: "span", Name: "Span", Title: "Range of the band", Family: "ratio",
			Bands: []string{"x"}, IsArray: true},
	}
	if diff := cmp.Diff(want, funcs, cmpopts.IgnoreFields(IndexFunc{}, "Position")); diff != "" {
		t.Errorf("ParsePackage mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePackageErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"UnknownFamily", "//vgi:index a linear\nfunc A(x float64) float64 { return x }", "unknown family"},
		{"MissingFamily", "//vgi:index a\nfunc A(x float64) float64 { return x }", "want //vgi:index"},
		{"DefaultWithoutIndex", "//vgi:default w=1\nfunc A(x, w float64) float64 { return x }", "without //vgi:index"},
		{"TooManyDefaults", "//vgi:index a ratio\n//vgi:default v=1\n//vgi:default w=2\nfunc A(x float64) float64 { return x }", "has 2 defaults"},
		{"BadDefault", "//vgi:index a ratio\n//vgi:default w=1.5.2\nfunc A(x, w float64) float64 { return x }", "neither a number"},
		{"MalformedDefault", "//vgi:index a ratio\n//vgi:default w\nfunc A(x, w float64) float64 { return x }", "want //vgi:default"},
		{"ArrayWithDefault", "//vgi:index a ratio\n//vgi:default w=1\nfunc A(x, w []float64) ([]float64, error) { return x, nil }", "cannot take defaults"},
		{"DuplicateKey", "//vgi:index a ratio\nfunc A(x float64) float64 { return x }\n\n//vgi:index a ratio\nfunc B(x float64) float64 { return x }", "already used"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writePackage(t, map[string]string{"p.go": "package p\n\n" + tt.src + "\n"})
			_, _, err := ParsePackage(dir, "registry_gen.go")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParsePackage error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestTitleFromDoc(t *testing.T) {
	tests := []struct {
		name, doc, want string
	}{
		{"NDVI", "NDVI is the Normalized Difference\nVegetation Index.\n\nMore text.", "Normalized Difference Vegetation Index"},
		{"MSR", "MSR is a modified simple ratio. It saturates later.", "A modified simple ratio"},
		{"TVI", "TVI computes the triangular vegetation index.", "Triangular vegetation index"},
		{"X", "Reduced Simple Ratio (Brown et al., 2000).", "Reduced Simple Ratio (Brown et al., 2000)"},
		{"Y", "", ""},
	}
	for _, tt := range tests {
		if got := titleFromDoc(tt.name, tt.doc); got != tt.want {
			t.Errorf("titleFromDoc(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGeneratorRun(t *testing.T) {
	dir := writePackage(t, map[string]string{"sample.go": sampleSrc})
	gen := &Generator{
		Dir:           dir,
		Catalog:       "demo",
		Output:        "registry_gen.go",
		CatalogImport: "github.com/sr2vgi/go-vgi/catalog",
	}
	n, err := gen.Run()
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("Run wrote %d entries, want 4", n)
	}

	out, err := os.ReadFile(filepath.Join(dir, "registry_gen.go"))
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)
	for _, want := range []string{
		"// Code generated by vgigen. DO NOT EDIT.",
		`"github.com/sr2vgi/go-vgi/catalog"`,
		"return NDVI(x[0], x[1])",
		"return Blend(x[0], x[1], x[2])",
		"{Name: \"w\", Default: DefaultW}",
		"return GEMIArray(b[0], b[1])",
		"return Span(b[0])",
		`catalog.New("demo", entries)`,
		"func Registry() *catalog.Registry",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
	if strings.Contains(src, "Span(x[0])") {
		t.Error("array-only Span got an Eval function")
	}

	// A second run skips the file it generated.
	if n, err := gen.Run(); err != nil || n != 4 {
		t.Errorf("second Run = %d, %v; want 4, nil", n, err)
	}
}

func TestGeneratorRunEmpty(t *testing.T) {
	dir := writePackage(t, map[string]string{"p.go": "package p\n\nfunc A() {}\n"})
	gen := &Generator{Dir: dir, Output: "registry_gen.go", CatalogImport: "github.com/sr2vgi/go-vgi/catalog"}
	if _, err := gen.Run(); err == nil {
		t.Error("Run on a package without directives succeeded")
	}
}
