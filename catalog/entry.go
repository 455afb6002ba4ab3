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

package catalog

import (
	"errors"
	"fmt"

	"github.com/sr2vgi/go-vgi/hwy/contrib/algo"
	"github.com/sr2vgi/go-vgi/hwy/contrib/workerpool"
)

var (
	// ErrUnknownIndex is returned when no entry matches a key.
	ErrUnknownIndex = errors.New("catalog: unknown index")

	// ErrAmbiguousIndex is returned when a key only matches case-insensitively
	// and more than one entry qualifies.
	ErrAmbiguousIndex = errors.New("catalog: ambiguous index")

	// ErrArity is returned when the number of arguments does not match the
	// entry's bands and parameters.
	ErrArity = errors.New("catalog: wrong number of arguments")

	// ErrMissingBand is returned when Input lacks one of the entry's bands.
	ErrMissingBand = errors.New("catalog: missing band")

	// ErrUnknownBand is returned when Input names a band the entry does not use.
	ErrUnknownBand = errors.New("catalog: unknown band")

	// ErrUnknownParam is returned when Input names a parameter the entry lacks.
	ErrUnknownParam = errors.New("catalog: unknown parameter")
)

// Family groups entries by formula shape.
type Family string

const (
	// NormalizedDifference covers (A-B)/(A+B) and its modified forms.
	NormalizedDifference Family = "normalized-difference"

	// Ratio covers simple and modified ratios, including blended ones.
	Ratio Family = "ratio"

	// Polynomial covers multi-term expressions with literal coefficients.
	Polynomial Family = "polynomial"

	// Root covers formulas with a square root or power term.
	Root Family = "root"
)

// Param is a tunable coefficient of an entry.
type Param struct {
	Name    string
	Default float64
}

// ArrayFunc evaluates an entry over whole bands. bands are in the entry's
// band order, params in its parameter order.
type ArrayFunc func(bands [][]float64, params []float64) ([]float64, error)

// Entry describes one index function.
type Entry struct {
	// Key is the catalog name, e.g. "ndwi_gao".
	Key string
	// Name is the Go function name, e.g. "NDWIGao".
	Name string
	// Title is the human-readable index name with its reference.
	Title  string
	Family Family
	// Bands lists band parameter names in argument order.
	Bands []string
	// Params lists tunable coefficients following the bands.
	Params []Param

	// Eval computes one pixel; args holds bands then params. Nil for
	// entries that only make sense over whole arrays.
	Eval func(args []float64) float64

	// Array, when set, replaces element-wise evaluation through Eval.
	Array ArrayFunc
}

// Arity returns the number of arguments Eval expects.
func (e *Entry) Arity() int {
	return len(e.Bands) + len(e.Params)
}

// Defaults returns the default parameter values in order.
func (e *Entry) Defaults() []float64 {
	params := make([]float64, len(e.Params))
	for i, p := range e.Params {
		params[i] = p.Default
	}
	return params
}

// EvaluateScalar computes the index for a single pixel. args holds the band
// values followed by zero or all parameter values; with zero parameter
// values the defaults apply.
func (e *Entry) EvaluateScalar(args ...float64) (float64, error) {
	switch len(args) {
	case e.Arity():
	case len(e.Bands):
		args = append(append([]float64(nil), args...), e.Defaults()...)
	default:
		return 0, fmt.Errorf("%w: %s takes %d bands and %d params, got %d values",
			ErrArity, e.Key, len(e.Bands), len(e.Params), len(args))
	}

	if e.Eval != nil {
		return e.Eval(args), nil
	}

	bands := make([][]float64, len(e.Bands))
	for i := range bands {
		bands[i] = []float64{args[i]}
	}
	out, err := e.Array(bands, args[len(e.Bands):])
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

// Evaluate computes the index over co-registered bands. params must hold
// either zero values (use defaults) or one value per parameter.
func (e *Entry) Evaluate(bands [][]float64, params []float64) ([]float64, error) {
	return e.evaluate(nil, bands, params)
}

// EvaluateParallel is Evaluate with the element-wise work split across pool.
// Entries with an Array function run whole on the calling goroutine.
func (e *Entry) EvaluateParallel(pool *workerpool.Pool, bands [][]float64, params []float64) ([]float64, error) {
	return e.evaluate(pool, bands, params)
}

func (e *Entry) evaluate(pool *workerpool.Pool, bands [][]float64, params []float64) ([]float64, error) {
	if len(bands) != len(e.Bands) {
		return nil, fmt.Errorf("%w: %s takes %d bands, got %d", ErrArity, e.Key, len(e.Bands), len(bands))
	}
	switch len(params) {
	case len(e.Params):
	case 0:
		params = e.Defaults()
	default:
		return nil, fmt.Errorf("%w: %s takes %d params, got %d", ErrArity, e.Key, len(e.Params), len(params))
	}

	if e.Array != nil {
		return e.Array(bands, params)
	}

	n := 0
	if len(bands) > 0 {
		n = len(bands[0])
	}
	lengths := make([]int, len(bands))
	for i, band := range bands {
		lengths[i] = len(band)
	}
	if err := algo.CheckShape(lengths...); err != nil {
		return nil, fmt.Errorf("%s: %w", e.Key, err)
	}

	out := make([]float64, n)
	run := func(start, end int) {
		args := make([]float64, len(bands)+len(params))
		copy(args[len(bands):], params)
		for i := start; i < end; i++ {
			for j, band := range bands {
				args[j] = band[i]
			}
			out[i] = e.Eval(args)
		}
	}

	if pool == nil {
		run(0, n)
	} else {
		pool.ParallelFor(n, run)
	}
	return out, nil
}

// Input carries named bands and parameter overrides for an evaluation.
type Input struct {
	Bands  map[string][]float64
	Params map[string]float64
}

// Resolve orders in's bands and parameters to match e, filling defaults.
func (e *Entry) Resolve(in Input) (bands [][]float64, params []float64, err error) {
	bands = make([][]float64, len(e.Bands))
	for i, name := range e.Bands {
		band, ok := in.Bands[name]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s needs %q", ErrMissingBand, e.Key, name)
		}
		bands[i] = band
	}
	if len(in.Bands) != len(e.Bands) {
		for name := range in.Bands {
			if !e.hasBand(name) {
				return nil, nil, fmt.Errorf("%w: %s does not use %q", ErrUnknownBand, e.Key, name)
			}
		}
	}

	params = e.Defaults()
	for name, v := range in.Params {
		i := e.paramIndex(name)
		if i < 0 {
			return nil, nil, fmt.Errorf("%w: %s has no parameter %q", ErrUnknownParam, e.Key, name)
		}
		params[i] = v
	}
	return bands, params, nil
}

func (e *Entry) hasBand(name string) bool {
	for _, b := range e.Bands {
		if b == name {
			return true
		}
	}
	return false
}

func (e *Entry) paramIndex(name string) int {
	for i, p := range e.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}
