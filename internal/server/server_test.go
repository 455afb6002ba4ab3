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
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sr2vgi/go-vgi/catalog"
	"github.com/sr2vgi/go-vgi/catalog/indices"
	"github.com/sr2vgi/go-vgi/catalog/vgi"
	"github.com/sr2vgi/go-vgi/hwy/contrib/workerpool"
	"github.com/sr2vgi/go-vgi/internal/config"
)

func newTestServer(t *testing.T, pool *workerpool.Pool) http.Handler {
	t.Helper()
	cfg := config.Default()
	cfg.Eval.ParallelThreshold = 4
	cfg.Eval.MaxPixels = 1000
	set := catalog.NewSet(vgi.Registry(), indices.Registry())
	return NewServer(set, pool, cfg, zap.NewNop()).Routes()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHealth(t *testing.T) {
	w := do(t, newTestServer(t, nil), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var out map[string]string
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out["status"] != "ok" || out["simd"] == "" {
		t.Errorf("health = %v", out)
	}
}

func TestCatalogs(t *testing.T) {
	w := do(t, newTestServer(t, nil), http.MethodGet, "/api/v1/catalogs", "")
	var out struct {
		Catalogs []struct {
			Name    string `json:"name"`
			Indices int    `json:"indices"`
		} `json:"catalogs"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Catalogs) != 2 || out.Catalogs[0].Name != "vgi" || out.Catalogs[0].Indices != 94 ||
		out.Catalogs[1].Name != "indices" || out.Catalogs[1].Indices != 70 {
		t.Errorf("catalogs = %+v", out.Catalogs)
	}
}

func TestIndices(t *testing.T) {
	h := newTestServer(t, nil)

	w := do(t, h, http.MethodGet, "/api/v1/catalogs/indices/indices?family=root", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d: %s", w.Code, w.Body)
	}
	var out struct {
		Indices []entrySummary `json:"indices"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if want := len(indices.Registry().Family(catalog.Root)); len(out.Indices) != want {
		t.Errorf("got %d root indices, want %d", len(out.Indices), want)
	}
	for _, e := range out.Indices {
		if e.Family != "root" || e.Catalog != "indices" {
			t.Errorf("unexpected entry %+v", e)
		}
	}

	if w := do(t, h, http.MethodGet, "/api/v1/catalogs/landsat/indices", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown catalog status = %d, want 404", w.Code)
	}
}

func TestIndex(t *testing.T) {
	h := newTestServer(t, nil)

	w := do(t, h, http.MethodGet, "/api/v1/catalogs/vgi/indices/cired_re", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d: %s", w.Code, w.Body)
	}
	var got entrySummary
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Key != "cired_re" || len(got.Params) != 1 || got.Params[0].Name != "a" || got.Params[0].Default != 0.7 {
		t.Errorf("cired_re summary = %+v", got)
	}

	w = do(t, h, http.MethodGet, "/api/v1/catalogs/indices/indices/rsr", "")
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if !got.ArrayOnly {
		t.Error("rsr should be reported as array-only")
	}

	if w := do(t, h, http.MethodGet, "/api/v1/catalogs/vgi/indices/nope", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown index status = %d, want 404", w.Code)
	}
}

func TestResolve(t *testing.T) {
	h := newTestServer(t, nil)
	for ref, wantCatalog := range map[string]string{
		"savi":         "vgi",
		"indices:savi": "indices",
		"rsr":          "indices",
	} {
		w := do(t, h, http.MethodGet, "/api/v1/indices/"+ref, "")
		var got entrySummary
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		if w.Code != http.StatusOK || got.Catalog != wantCatalog {
			t.Errorf("resolve %q = %d %+v, want catalog %s", ref, w.Code, got, wantCatalog)
		}
	}
}

func TestEvaluate(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()
	pool.SetMinChunk(2)

	for _, tc := range []struct {
		name string
		pool *workerpool.Pool
	}{{"sequential", nil}, {"parallel", pool}} {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestServer(t, tc.pool)
			body := `{"bands":{"b4":[0.1,0.2,0,0.3,"NaN"],"b8":[0.5,0.2,0,-0.3,0.4]}}`
			w := do(t, h, http.MethodPost, "/api/v1/catalogs/vgi/indices/ndvi/evaluate", body)
			if w.Code != http.StatusOK {
				t.Fatalf("status: got %d: %s", w.Code, w.Body)
			}
			raw := w.Body.Bytes()
			if !bytes.Contains(raw, []byte(`"NaN"`)) || !bytes.Contains(raw, []byte(`"-Inf"`)) {
				t.Errorf("non-finite values not encoded as strings: %s", raw)
			}

			var got evaluateResponse
			if err := json.Unmarshal(raw, &got); err != nil {
				t.Fatal(err)
			}
			if _, err := uuid.Parse(got.ID); err != nil {
				t.Errorf("id %q is not a UUID: %v", got.ID, err)
			}
			want := Values{0.4 / 0.6, 0, math.NaN(), math.Inf(-1), math.NaN()}
			if diff := cmp.Diff(want, got.Values, cmpopts.EquateNaNs(), cmpopts.EquateApprox(1e-12, 0)); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
			if got.N != 5 || got.Key != "ndvi" || got.Catalog != "vgi" {
				t.Errorf("response = %+v", got)
			}
		})
	}
}

func TestEvaluateParams(t *testing.T) {
	h := newTestServer(t, nil)
	body := `{"bands":{"b4":[0.1],"b5":[0.2],"b8":[0.6]},"params":{"a":0.5}}`
	w := do(t, h, http.MethodPost, "/api/v1/catalogs/vgi/indices/cired_re/evaluate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d: %s", w.Code, w.Body)
	}
	var got evaluateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	e, err := vgi.Registry().Lookup("cired_re")
	if err != nil {
		t.Fatal(err)
	}
	want, err := e.EvaluateScalar(0.1, 0.2, 0.6, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Values) != 1 || got.Values[0] != want {
		t.Errorf("cired_re(a=0.5) = %v, want [%v]", got.Values, want)
	}
}

func TestEvaluateErrors(t *testing.T) {
	h := newTestServer(t, nil)
	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"UnknownIndex", "/api/v1/catalogs/vgi/indices/nope/evaluate", `{"bands":{}}`, http.StatusNotFound},
		{"UnknownCatalog", "/api/v1/catalogs/x/indices/ndvi/evaluate", `{"bands":{}}`, http.StatusNotFound},
		{"BadBody", "/api/v1/catalogs/vgi/indices/ndvi/evaluate", `{"bands":`, http.StatusBadRequest},
		{"BadValue", "/api/v1/catalogs/vgi/indices/ndvi/evaluate", `{"bands":{"b4":["x"],"b8":[1]}}`, http.StatusBadRequest},
		{"MissingBand", "/api/v1/catalogs/vgi/indices/ndvi/evaluate", `{"bands":{"b4":[1]}}`, http.StatusBadRequest},
		{"UnknownBand", "/api/v1/catalogs/vgi/indices/ndvi/evaluate", `{"bands":{"b4":[1],"b8":[1],"b2":[1]}}`, http.StatusBadRequest},
		{"ShapeMismatch", "/api/v1/catalogs/vgi/indices/ndvi/evaluate", `{"bands":{"b4":[1,2],"b8":[1]}}`, http.StatusBadRequest},
		{"UnknownParam", "/api/v1/catalogs/vgi/indices/ndvi/evaluate", `{"bands":{"b4":[1],"b8":[1]},"params":{"a":1}}`, http.StatusBadRequest},
		{"TooLarge", "/api/v1/catalogs/vgi/indices/ndvi/evaluate",
			`{"bands":{"b4":[` + strings.Repeat("1,", 1000) + `1],"b8":[1]}}`, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, tt.path, tt.body)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.status, w.Body)
			}
			var out map[string]string
			if err := json.NewDecoder(w.Body).Decode(&out); err != nil || out["error"] == "" {
				t.Errorf("error body = %v, %v", out, err)
			}
		})
	}
}

func TestEvaluateBodyLimit(t *testing.T) {
	cfg := config.Default()
	s := NewServer(catalog.NewSet(vgi.Registry()), nil, cfg, zap.NewNop())
	s.maxBody = 64
	h := s.Routes()

	body := `{"bands":{"b4":[` + strings.Repeat("0.1,", 40) + `0.1],"b8":[0.5]}}`
	w := do(t, h, http.MethodPost, "/api/v1/catalogs/vgi/indices/ndvi/evaluate", body)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d: %s", w.Code, http.StatusRequestEntityTooLarge, w.Body)
	}

	w = do(t, h, http.MethodPost, "/api/v1/catalogs/vgi/indices/ndvi/evaluate", `{"bands":{"b4":[0.1],"b8":[0.5]}}`)
	if w.Code != http.StatusOK {
		t.Errorf("small body status = %d: %s", w.Code, w.Body)
	}
}

func TestEvaluateReportsCanonicalKey(t *testing.T) {
	h := newTestServer(t, nil)
	w := do(t, h, http.MethodPost, "/api/v1/catalogs/vgi/indices/NDVI/evaluate", `{"bands":{"b4":[0.1],"b8":[0.5]}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d: %s", w.Code, w.Body)
	}
	var got evaluateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Key != "ndvi" {
		t.Errorf("key = %q, want %q", got.Key, "ndvi")
	}
}

func TestValuesJSON(t *testing.T) {
	in := Values{1.5, math.NaN(), math.Inf(1), math.Inf(-1), -0.25}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `[1.5,"NaN","+Inf","-Inf",-0.25]`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
	var out Values
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if err := json.Unmarshal([]byte(`["Infinity"]`), &out); err == nil {
		t.Error("Unmarshal accepted an unknown string")
	}
}
