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

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sr2vgi/go-vgi/catalog"
	"github.com/sr2vgi/go-vgi/hwy"
	"github.com/sr2vgi/go-vgi/hwy/contrib/algo"
)

type paramSummary struct {
	Name    string  `json:"name"`
	Default float64 `json:"default"`
}

type entrySummary struct {
	Catalog   string         `json:"catalog"`
	Key       string         `json:"key"`
	Name      string         `json:"name"`
	Title     string         `json:"title"`
	Family    string         `json:"family"`
	Bands     []string       `json:"bands"`
	Params    []paramSummary `json:"params,omitempty"`
	ArrayOnly bool           `json:"array_only,omitempty"`
}

func summarize(catalogName string, e *catalog.Entry) entrySummary {
	sum := entrySummary{
		Catalog:   catalogName,
		Key:       e.Key,
		Name:      e.Name,
		Title:     e.Title,
		Family:    string(e.Family),
		Bands:     e.Bands,
		ArrayOnly: e.Eval == nil,
	}
	for _, p := range e.Params {
		sum.Params = append(sum.Params, paramSummary{Name: p.Name, Default: p.Default})
	}
	return sum
}

type evaluateRequest struct {
	Bands  map[string]Values  `json:"bands"`
	Params map[string]float64 `json:"params,omitempty"`
}

type evaluateResponse struct {
	ID      string `json:"id"`
	Catalog string `json:"catalog"`
	Key     string `json:"key"`
	N       int    `json:"n"`
	Values  Values `json:"values"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"simd":   hwy.CurrentName(),
	})
}

func (s *Server) handleCatalogs(w http.ResponseWriter, r *http.Request) {
	type catalogInfo struct {
		Name    string `json:"name"`
		Indices int    `json:"indices"`
	}
	var out []catalogInfo
	for _, reg := range s.catalogs.Registries() {
		out = append(out, catalogInfo{Name: reg.Name(), Indices: reg.Len()})
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"catalogs": out})
}

func (s *Server) handleIndices(w http.ResponseWriter, r *http.Request) {
	reg, ok := s.catalogs.Get(chi.URLParam(r, "catalog"))
	if !ok {
		s.respondError(w, http.StatusNotFound, "catalog not found")
		return
	}
	entries := reg.Entries()
	if family := r.URL.Query().Get("family"); family != "" {
		entries = reg.Family(catalog.Family(family))
	}
	out := make([]entrySummary, len(entries))
	for i, e := range entries {
		out[i] = summarize(reg.Name(), e)
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"indices": out})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	reg, ok := s.catalogs.Get(chi.URLParam(r, "catalog"))
	if !ok {
		s.respondError(w, http.StatusNotFound, "catalog not found")
		return
	}
	e, err := reg.Lookup(chi.URLParam(r, "key"))
	if err != nil {
		s.respondCatalogError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, summarize(reg.Name(), e))
}

// handleResolve looks a key up across catalogs, honouring "catalog:key".
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	reg, e, err := s.catalogs.Lookup(chi.URLParam(r, "ref"))
	if err != nil {
		s.respondCatalogError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, summarize(reg.Name(), e))
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	reg, ok := s.catalogs.Get(chi.URLParam(r, "catalog"))
	if !ok {
		s.respondError(w, http.StatusNotFound, "catalog not found")
		return
	}
	e, err := reg.Lookup(chi.URLParam(r, "key"))
	if err != nil {
		s.respondCatalogError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	n := 0
	bands := make(map[string][]float64, len(req.Bands))
	for name, band := range req.Bands {
		bands[name] = band
		n = max(n, len(band))
	}
	if limit := s.config.Eval.MaxPixels; limit > 0 && n > limit {
		s.respondError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("band length %d exceeds limit %d", n, limit))
		return
	}

	pool := s.pool
	if n < s.config.Eval.ParallelThreshold {
		pool = nil
	}
	id := uuid.NewString()
	s.logger.Debug("evaluate",
		zap.String("id", id),
		zap.String("catalog", reg.Name()),
		zap.String("index", e.Key),
		zap.Int("n", n),
		zap.Bool("parallel", pool != nil),
	)

	values, err := reg.EvaluateParallel(pool, e.Key, catalog.Input{Bands: bands, Params: req.Params})
	if err != nil {
		s.logger.Debug("evaluate failed", zap.String("id", id), zap.Error(err))
		s.respondCatalogError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, evaluateResponse{
		ID:      id,
		Catalog: reg.Name(),
		Key:     e.Key,
		N:       len(values),
		Values:  values,
	})
}

// respondCatalogError maps catalog and shape errors to status codes.
func (s *Server) respondCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownIndex):
		s.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrAmbiguousIndex),
		errors.Is(err, catalog.ErrArity),
		errors.Is(err, catalog.ErrMissingBand),
		errors.Is(err, catalog.ErrUnknownBand),
		errors.Is(err, catalog.ErrUnknownParam),
		errors.Is(err, algo.ErrShapeMismatch):
		s.respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("evaluation failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
