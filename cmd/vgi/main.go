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

// Command vgi lists, describes and evaluates spectral vegetation indices,
// and serves them over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sr2vgi/go-vgi/catalog"
	"github.com/sr2vgi/go-vgi/catalog/indices"
	"github.com/sr2vgi/go-vgi/catalog/vgi"
	"github.com/sr2vgi/go-vgi/hwy"
	"github.com/sr2vgi/go-vgi/hwy/contrib/workerpool"
	"github.com/sr2vgi/go-vgi/internal/config"
	"github.com/sr2vgi/go-vgi/internal/logging"
	"github.com/sr2vgi/go-vgi/internal/server"
)

var version = "dev"

func catalogs() *catalog.Set {
	return catalog.NewSet(vgi.Registry(), indices.Registry())
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	var err error
	switch command := os.Args[1]; command {
	case "list":
		err = runList(os.Stdout, os.Args[2:])
	case "describe":
		err = runDescribe(os.Stdout, os.Args[2:])
	case "eval":
		err = runEval(os.Stdout, os.Args[2:])
	case "init":
		err = runInit(os.Stdout, os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Printf("vgi version %s (%s)\n", version, hwy.CurrentName())
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path (defaults apply when empty)")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(args)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	debugMode := cfg.Debug || *debug
	logger, err := logging.New(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", *configPath),
		zap.Bool("debug", debugMode),
		zap.String("simd", hwy.CurrentName()),
		zap.String("catalog", cfg.Eval.Catalog),
	)

	pool := workerpool.New(cfg.Eval.Workers)
	defer pool.Close()

	srv := server.NewServer(catalogs(), pool, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func printUsage() {
	fmt.Println(`vgi - spectral vegetation index catalog

Usage:
  vgi list [flags]              List indices
  vgi describe [flags] <key>    Show one index
  vgi eval [flags]              Evaluate an index over comma-separated bands
  vgi init [flags]              Write a default config file
  vgi serve [flags]             Start the HTTP server
  vgi version                   Show version
  vgi help                      Show this help

Keys may be qualified with a catalog, e.g. indices:savi. Unqualified keys
are looked up in vgi first, then indices, unless -catalog or the config's
eval.catalog names another catalog to search first.

Describe Flags:
  -catalog string    Catalog searched first for unqualified keys
  -config string     Config file supplying eval.catalog

List Flags:
  -catalog string    Only list this catalog (vgi or indices)
  -family string     Only list this family

Eval Flags:
  -index string      Index key
  -band name=v,...   Band values; repeat per band
  -param name=v      Parameter override; repeat per parameter
  -workers int       Evaluate on a worker pool of this size (0: sequential)
  -catalog string    Catalog searched first for unqualified keys
  -config string     Config file supplying eval.catalog

Init Flags:
  -o string          Output path (default vgi.yaml)
  -force             Overwrite an existing file
  -catalog string    Preferred catalog written to eval.catalog

Serve Flags:
  -config string     Config file path
  -debug             Enable debug logging`)
}
