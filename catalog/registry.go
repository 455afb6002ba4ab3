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
	"sort"
	"strings"

	"github.com/sr2vgi/go-vgi/hwy/contrib/workerpool"
)

// Registry is an immutable, named set of entries. It is safe for
// concurrent use.
type Registry struct {
	name    string
	entries []*Entry
	byKey   map[string]*Entry
	byFold  map[string][]*Entry
}

// New builds a registry. It panics on duplicate keys or malformed entries,
// since registries are built from generated tables at init time.
func New(name string, entries []Entry) *Registry {
	r := &Registry{
		name:   name,
		byKey:  make(map[string]*Entry, len(entries)),
		byFold: make(map[string][]*Entry, len(entries)),
	}
	for i := range entries {
		e := &entries[i]
		if e.Eval == nil && e.Array == nil {
			panic(fmt.Sprintf("catalog: %s entry %q has neither Eval nor Array", name, e.Key))
		}
		if _, dup := r.byKey[e.Key]; dup {
			panic(fmt.Sprintf("catalog: %s has duplicate key %q", name, e.Key))
		}
		r.entries = append(r.entries, e)
		r.byKey[e.Key] = e
		fold := strings.ToLower(e.Key)
		r.byFold[fold] = append(r.byFold[fold], e)
	}
	sort.Slice(r.entries, func(i, j int) bool {
		a, b := strings.ToLower(r.entries[i].Key), strings.ToLower(r.entries[j].Key)
		if a != b {
			return a < b
		}
		return r.entries[i].Key < r.entries[j].Key
	})
	return r
}

// Name returns the registry name, e.g. "vgi".
func (r *Registry) Name() string { return r.name }

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.entries) }

// Entries returns all entries ordered case-insensitively by key. The slice
// is shared; callers must not modify it.
func (r *Registry) Entries() []*Entry { return r.entries }

// Family returns the entries of family f in key order.
func (r *Registry) Family(f Family) []*Entry {
	var out []*Entry
	for _, e := range r.entries {
		if e.Family == f {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds an entry by exact key, falling back to a case-insensitive
// match when exactly one entry qualifies.
func (r *Registry) Lookup(key string) (*Entry, error) {
	if e, ok := r.byKey[key]; ok {
		return e, nil
	}
	switch matches := r.byFold[strings.ToLower(key)]; len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownIndex, key, r.name)
	case 1:
		return matches[0], nil
	default:
		keys := make([]string, len(matches))
		for i, e := range matches {
			keys[i] = e.Key
		}
		return nil, fmt.Errorf("%w: %q in %s matches %s", ErrAmbiguousIndex, key, r.name, strings.Join(keys, ", "))
	}
}

// Evaluate looks up key and evaluates it over the bands in in.
func (r *Registry) Evaluate(key string, in Input) ([]float64, error) {
	return r.EvaluateParallel(nil, key, in)
}

// EvaluateParallel is Evaluate using pool for element-wise work. A nil pool
// evaluates on the calling goroutine.
func (r *Registry) EvaluateParallel(pool *workerpool.Pool, key string, in Input) ([]float64, error) {
	e, err := r.Lookup(key)
	if err != nil {
		return nil, err
	}
	bands, params, err := e.Resolve(in)
	if err != nil {
		return nil, err
	}
	return e.evaluate(pool, bands, params)
}

// Set is an ordered collection of registries addressed by name.
type Set struct {
	regs []*Registry
}

// NewSet returns a set over regs. The first registry is the default for
// unqualified keys.
func NewSet(regs ...*Registry) *Set {
	return &Set{regs: regs}
}

// Registries returns the registries in order.
func (s *Set) Registries() []*Registry { return s.regs }

// Get returns the registry called name.
func (s *Set) Get(name string) (*Registry, bool) {
	for _, r := range s.regs {
		if r.name == name {
			return r, true
		}
	}
	return nil, false
}

// Lookup resolves "catalog:key" or a bare key. Bare keys are tried in each
// registry in order.
func (s *Set) Lookup(ref string) (*Registry, *Entry, error) {
	if name, key, ok := strings.Cut(ref, ":"); ok {
		r, found := s.Get(name)
		if !found {
			return nil, nil, fmt.Errorf("%w: no catalog %q", ErrUnknownIndex, name)
		}
		e, err := r.Lookup(key)
		return r, e, err
	}
	for _, r := range s.regs {
		e, err := r.Lookup(ref)
		if err == nil {
			return r, e, nil
		}
		if !errors.Is(err, ErrUnknownIndex) {
			return nil, nil, err
		}
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownIndex, ref)
}

// Prefer returns a Set that searches the registry called name before the
// others, which keep their order. An unknown name leaves the order as is.
func (s *Set) Prefer(name string) *Set {
	regs := make([]*Registry, 0, len(s.regs))
	for _, r := range s.regs {
		if r.name == name {
			regs = append(regs, r)
		}
	}
	for _, r := range s.regs {
		if r.name != name {
			regs = append(regs, r)
		}
	}
	return &Set{regs: regs}
}
