package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/castcolor/pkg/buildinfo"
	"github.com/matzehuels/castcolor/pkg/demo"
	cerrors "github.com/matzehuels/castcolor/pkg/errors"
	cio "github.com/matzehuels/castcolor/pkg/io"
	"github.com/matzehuels/castcolor/pkg/pipeline"
)

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// SolveResponse is returned by POST /v1/solve.
type SolveResponse struct {
	RunID     string `json:"run_id"`
	RequestID string `json:"request_id"`
	CacheHit  bool   `json:"cache_hit"`
	cio.Report
}

// DemoInfo describes one demo in GET /v1/demos.
type DemoInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	info := buildinfo.Get()
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: info.Version, Commit: info.Commit})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	leadsApart := s.opts.LeadsApart
	if v := r.URL.Query().Get("leads_apart"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, string(cerrors.ErrCodeInvalidInput), "leads_apart must be true or false")
			return
		}
		leadsApart = b
	}

	body, ok := readBody(w, r)
	if !ok {
		return
	}

	res, err := s.runner.Solve(r.Context(), pipeline.SolveOptions{
		Instance:   body,
		LeadsApart: leadsApart,
		MaxNodes:   s.opts.MaxNodes,
		Logger:     loggerFrom(r.Context()),
	})
	if err != nil {
		writeCodedError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SolveResponse{
		RunID:     res.RunID,
		RequestID: RequestID(r.Context()),
		CacheHit:  res.CacheHit,
		Report:    res.Report,
	})
}

func (s *Server) handleReduce(w http.ResponseWriter, r *http.Request) {
	direction := chi.URLParam(r, "direction")
	if err := pipeline.ValidateDirection(direction); err != nil {
		writeError(w, r, http.StatusNotFound, string(cerrors.ErrCodeInvalidDirection), cerrors.UserMessage(err))
		return
	}
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	res, err := s.runner.Reduce(r.Context(), direction, body)
	if err != nil {
		writeCodedError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, res.Output)
}

func (s *Server) handleDemos(w http.ResponseWriter, r *http.Request) {
	names := demo.Names()
	out := make([]DemoInfo, len(names))
	for i, n := range names {
		out[i] = DemoInfo{Name: n, Description: demo.Describe(n)}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	text, err := demo.Text(chi.URLParam(r, "name"))
	if err != nil {
		writeCodedError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, text)
}

func readBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, string(cerrors.ErrCodeInvalidInput), "instance exceeds 1 MiB")
			return "", false
		}
		writeError(w, r, http.StatusBadRequest, string(cerrors.ErrCodeInvalidInput), "read body: "+err.Error())
		return "", false
	}
	return string(data), true
}
