package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/KaramelBytes/dataexplorer-cli/internal/analysis"
	"github.com/KaramelBytes/dataexplorer-cli/internal/datasets"
	"github.com/KaramelBytes/dataexplorer-cli/internal/render"
	"github.com/go-chi/chi/v5"
)

// DatasetSummary is one entry of the dataset listing.
type DatasetSummary struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Overview    analysis.Overview `json:"overview"`
}

// ProfileResponse describes the columns of a dataset.
type ProfileResponse struct {
	Name     string                `json:"name"`
	Overview analysis.Overview     `json:"overview"`
	Columns  []analysis.ColumnInfo `json:"columns"`
}

// ChartResponse carries one chart series for a column.
type ChartResponse struct {
	Column string             `json:"column"`
	Chart  analysis.ChartData `json:"chart"`
}

// CorrelationResponse is the coefficient for one column pair.
type CorrelationResponse struct {
	A        string            `json:"a"`
	B        string            `json:"b"`
	R        float64           `json:"r"`
	Strength analysis.Strength `json:"strength"`
}

// OutliersResponse lists the rows outside a column's fence.
type OutliersResponse struct {
	Column   string             `json:"column"`
	Fence    *analysis.Fence    `json:"fence,omitempty"`
	Outliers []analysis.Outlier `json:"outliers"`
}

// InsightsResponse holds insight sentences and the static tips.
type InsightsResponse struct {
	Kind     string   `json:"kind,omitempty"`
	Text     string   `json:"text,omitempty"`
	Insights []string `json:"insights"`
	Tips     []string `json:"tips"`
}

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Name string           `json:"name"`
	Rows analysis.Dataset `json:"rows"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v before touching the response so a failed encode
// becomes a 500 instead of a truncated 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("encode response: %v", err)
		b = []byte(`{"error":"failed to encode response"}`)
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

var errUnknownColumn = errors.New("unknown column")

// loadSample resolves the {name} parameter; it writes the error response itself.
func (s *Server) loadSample(w http.ResponseWriter, r *http.Request) (datasets.Sample, bool) {
	smp, err := datasets.Get(chi.URLParam(r, "name"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, datasets.ErrUnknownDataset) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return datasets.Sample{}, false
	}
	return smp, true
}

// columnParam rejects columns missing from a non-empty dataset's schema.
func columnParam(w http.ResponseWriter, ds analysis.Dataset, name string) bool {
	if len(ds) == 0 || ds[0].Has(name) {
		return true
	}
	writeError(w, http.StatusNotFound, fmt.Errorf("%w: %s", errUnknownColumn, name))
	return false
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listDatasets(w http.ResponseWriter, r *http.Request) {
	all := datasets.All()
	out := make([]DatasetSummary, 0, len(all))
	for _, smp := range all {
		out = append(out, DatasetSummary{
			Name:        smp.Name,
			Description: smp.Description,
			Overview:    analysis.Summarize(smp.Rows, s.an.Classify(smp.Rows)),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	smp, ok := s.loadSample(w, r)
	if !ok {
		return
	}
	cols := s.an.Classify(smp.Rows)
	writeJSON(w, http.StatusOK, ProfileResponse{
		Name:     smp.Name,
		Overview: analysis.Summarize(smp.Rows, cols),
		Columns:  cols,
	})
}

func (s *Server) distribution(w http.ResponseWriter, r *http.Request) {
	smp, ok := s.loadSample(w, r)
	if !ok {
		return
	}
	col := chi.URLParam(r, "column")
	if !columnParam(w, smp.Rows, col) {
		return
	}
	bins := 0
	if v := r.URL.Query().Get("bins"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > analysis.MaxBins {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid bins: %q (must be 1..%d)", v, analysis.MaxBins))
			return
		}
		bins = n
	}
	writeJSON(w, http.StatusOK, ChartResponse{
		Column: col,
		Chart:  render.Colorize(s.an.Distribution(smp.Rows, col, bins)),
	})
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	smp, ok := s.loadSample(w, r)
	if !ok {
		return
	}
	col := chi.URLParam(r, "column")
	if !columnParam(w, smp.Rows, col) {
		return
	}
	writeJSON(w, http.StatusOK, ChartResponse{
		Column: col,
		Chart:  render.Colorize(s.an.CountCategories(smp.Rows, col)),
	})
}

func (s *Server) correlation(w http.ResponseWriter, r *http.Request) {
	smp, ok := s.loadSample(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	a, b := q.Get("a"), q.Get("b")
	if a == "" || b == "" {
		writeError(w, http.StatusBadRequest, errors.New("query parameters a and b are required"))
		return
	}
	if !columnParam(w, smp.Rows, a) || !columnParam(w, smp.Rows, b) {
		return
	}
	rv := analysis.Correlate(smp.Rows, a, b)
	writeJSON(w, http.StatusOK, CorrelationResponse{A: a, B: b, R: rv, Strength: analysis.StrengthOf(rv)})
}

func (s *Server) correlationMatrix(w http.ResponseWriter, r *http.Request) {
	smp, ok := s.loadSample(w, r)
	if !ok {
		return
	}
	num := analysis.NumericalColumns(s.an.Classify(smp.Rows))
	writeJSON(w, http.StatusOK, s.an.CorrelationMatrix(smp.Rows, num))
}

func (s *Server) outliers(w http.ResponseWriter, r *http.Request) {
	smp, ok := s.loadSample(w, r)
	if !ok {
		return
	}
	col := chi.URLParam(r, "column")
	if !columnParam(w, smp.Rows, col) {
		return
	}
	resp := OutliersResponse{Column: col, Outliers: s.an.DetectOutliers(smp.Rows, col)}
	if f, ok := s.an.OutlierFence(smp.Rows, col); ok {
		resp.Fence = &f
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) insights(w http.ResponseWriter, r *http.Request) {
	smp, ok := s.loadSample(w, r)
	if !ok {
		return
	}
	cols := s.an.Classify(smp.Rows)
	resp := InsightsResponse{Tips: analysis.Tips()}

	raw := strings.TrimSpace(r.URL.Query().Get("kind"))
	if raw == "" || strings.EqualFold(raw, "all") {
		resp.Insights = s.an.AllInsights(smp.Rows, cols)
	} else {
		kind, err := analysis.ParseKind(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		resp.Kind = string(kind)
		resp.Text = s.an.GenerateInsights(smp.Rows, cols, kind)
		resp.Insights = analysis.SplitInsights(resp.Text)
	}
	if resp.Insights == nil {
		resp.Insights = []string{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	smp, ok := s.loadSample(w, r)
	if !ok {
		return
	}
	rep := s.an.Analyze(smp.Name, smp.Rows)
	switch format := r.URL.Query().Get("format"); format {
	case "", render.FormatJSON:
		writeJSON(w, http.StatusOK, rep)
	default:
		b, err := render.EncodeReport(rep, format)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write(b)
	}
}

func (s *Server) analyzeUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid JSON body: %w", err))
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "upload"
	}
	writeJSON(w, http.StatusOK, s.an.Analyze(name, req.Rows))
}
