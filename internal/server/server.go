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

// Package server provides the HTTP API over the index catalogs.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/sr2vgi/go-vgi/catalog"
	"github.com/sr2vgi/go-vgi/hwy/contrib/workerpool"
	"github.com/sr2vgi/go-vgi/internal/config"
)

// maxBodyBytes bounds an evaluate request body.
const maxBodyBytes = 256 << 20

// Server is the HTTP server for the catalog API.
type Server struct {
	catalogs *catalog.Set
	pool     *workerpool.Pool
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	maxBody  int64
}

// NewServer creates a server. pool may be nil, in which case every
// evaluation runs on the request goroutine.
func NewServer(catalogs *catalog.Set, pool *workerpool.Pool, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		catalogs: catalogs.Prefer(cfg.Eval.Catalog),
		pool:     pool,
		config:   cfg,
		logger:   logger,
		maxBody:  maxBodyBytes,
	}
}

// Routes returns the API handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalogs", s.handleCatalogs)
		r.Get("/indices/{ref}", s.handleResolve)
		r.Route("/catalogs/{catalog}/indices", func(r chi.Router) {
			r.Get("/", s.handleIndices)
			r.Get("/{key}", s.handleIndex)
			r.Post("/{key}/evaluate", s.handleEvaluate)
		})
	})
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := s.config.Server.Addr()
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("Starting server",
		zap.String("addr", addr),
		zap.Int("catalogs", len(s.catalogs.Registries())),
	)
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
