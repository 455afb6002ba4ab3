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
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sr2vgi/go-vgi/catalog"
	"github.com/sr2vgi/go-vgi/hwy/contrib/workerpool"
	"github.com/sr2vgi/go-vgi/internal/config"
)

// preferredCatalogs returns the catalogs with name searched first. An empty
// name falls back to eval.catalog from the config file, if one is given.
func preferredCatalogs(name, configPath string) (*catalog.Set, error) {
	if name == "" && configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		name = cfg.Eval.Catalog
	}
	set := catalogs()
	if name == "" {
		return set, nil
	}
	if _, ok := set.Get(name); !ok {
		return nil, fmt.Errorf("%w: no catalog %q", catalog.ErrUnknownIndex, name)
	}
	return set.Prefer(name), nil
}

func runList(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	only := fs.String("catalog", "", "only list this catalog")
	family := fs.String("family", "", "only list this family")
	if err := fs.Parse(args); err != nil {
		return err
	}

	set := catalogs()
	regs := set.Registries()
	if *only != "" {
		reg, ok := set.Get(*only)
		if !ok {
			return fmt.Errorf("%w: no catalog %q", catalog.ErrUnknownIndex, *only)
		}
		regs = []*catalog.Registry{reg}
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CATALOG\tKEY\tFAMILY\tBANDS\tTITLE")
	for _, reg := range regs {
		entries := reg.Entries()
		if *family != "" {
			entries = reg.Family(catalog.Family(*family))
		}
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				reg.Name(), e.Key, e.Family, strings.Join(e.Bands, ","), e.Title)
		}
	}
	return tw.Flush()
}

func runDescribe(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	prefer := fs.String("catalog", "", "catalog searched first for unqualified keys")
	configPath := fs.String("config", "", "config file whose eval.catalog sets the preferred catalog")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("describe takes exactly one index key")
	}
	set, err := preferredCatalogs(*prefer, *configPath)
	if err != nil {
		return err
	}
	reg, e, err := set.Lookup(fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s:%s (%s)\n", reg.Name(), e.Key, e.Name)
	fmt.Fprintf(w, "  %s\n", e.Title)
	fmt.Fprintf(w, "  family: %s\n", e.Family)
	fmt.Fprintf(w, "  bands:  %s\n", strings.Join(e.Bands, ", "))
	for _, p := range e.Params {
		fmt.Fprintf(w, "  param:  %s = %s\n", p.Name, formatValue(p.Default))
	}
	if e.Eval == nil {
		fmt.Fprintln(w, "  whole-band only: values depend on the entire input")
	}
	return nil
}

// bandFlag collects repeated -band name=v1,v2,... values.
type bandFlag map[string][]float64

func (b bandFlag) String() string { return fmt.Sprint(map[string][]float64(b)) }

func (b bandFlag) Set(s string) error {
	name, list, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=v1,v2,..., got %q", s)
	}
	if _, dup := b[name]; dup {
		return fmt.Errorf("band %q given twice", name)
	}
	var values []float64
	for _, field := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return fmt.Errorf("band %s: %w", name, err)
		}
		values = append(values, v)
	}
	b[name] = values
	return nil
}

// paramFlag collects repeated -param name=v values.
type paramFlag map[string]float64

func (p paramFlag) String() string { return fmt.Sprint(map[string]float64(p)) }

func (p paramFlag) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=v, got %q", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("param %s: %w", name, err)
	}
	p[name] = v
	return nil
}

func runEval(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	index := fs.String("index", "", "index key, optionally catalog:key")
	workers := fs.Int("workers", 0, "worker pool size; 0 evaluates sequentially")
	prefer := fs.String("catalog", "", "catalog searched first for unqualified keys")
	configPath := fs.String("config", "", "config file whose eval.catalog sets the preferred catalog")
	bands := bandFlag{}
	params := paramFlag{}
	fs.Var(bands, "band", "band values as name=v1,v2,...; repeat per band")
	fs.Var(params, "param", "parameter override as name=v; repeat per parameter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *index == "" {
		return errors.New("eval needs -index")
	}

	set, err := preferredCatalogs(*prefer, *configPath)
	if err != nil {
		return err
	}
	reg, e, err := set.Lookup(*index)
	if err != nil {
		return err
	}

	var pool *workerpool.Pool
	if *workers > 0 {
		pool = workerpool.New(*workers)
		defer pool.Close()
	}
	out, err := reg.EvaluateParallel(pool, e.Key, catalog.Input{Bands: bands, Params: params})
	if err != nil {
		return err
	}
	for _, v := range out {
		fmt.Fprintln(w, formatValue(v))
	}
	return nil
}

func runInit(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	out := fs.String("o", "vgi.yaml", "config file to write")
	force := fs.Bool("force", false, "overwrite an existing file")
	prefer := fs.String("catalog", "", "preferred catalog for unqualified keys")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !*force {
		if _, err := os.Stat(*out); err == nil {
			return fmt.Errorf("%s already exists, use -force to overwrite", *out)
		}
	}
	cfg := config.Default()
	if *prefer != "" {
		cfg.Eval.Catalog = *prefer
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(*out, cfg); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", *out)
	return nil
}

// formatValue prints the shortest representation that parses back to v.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
