package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/btracey/rootfind/common"
	"github.com/btracey/rootfind/config"
	"github.com/btracey/rootfind/univariate"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server answers solve requests over HTTP. Every request runs its own solve;
// nothing is shared between requests apart from the metrics.
type Server struct {
	Function univariate.Function
	Defaults univariate.Params
	Logger   *slog.Logger
	Metrics  *Metrics
}

// SolveResponse is the body of a /solve reply.
type SolveResponse struct {
	Params univariate.Params `json:"params"`
	*univariate.Result
	Error string `json:"error,omitempty"`
}

// New creates a Server whose metrics are registered with reg.
func New(f univariate.Function, logger *slog.Logger, reg prometheus.Registerer) *Server {
	return &Server{
		Function: f,
		Defaults: univariate.DefaultParams(),
		Logger:   logger,
		Metrics:  NewMetrics(reg),
	}
}

// NewHandler creates the HTTP handler. Metrics are registered with reg and
// served from the same registry at /metrics.
func NewHandler(f univariate.Function, logger *slog.Logger, reg *prometheus.Registry) http.Handler {
	return New(f, logger, reg).Routes(reg)
}

// Routes mounts the endpoints, serving metrics gathered from g.
func (s *Server) Routes(g prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Get("/solve", s.handleSolve)
	r.Get("/function", s.handleFunction)
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	p, err := config.FromValues(r.URL.Query(), s.Defaults)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := univariate.SolveParams(s.Function, p, nil)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrDiverged) && result != nil:
		s.Metrics.Observe(p.Method, result)
		s.Logger.Warn("solve diverged", "method", p.Method, "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, SolveResponse{Params: p, Result: result, Error: err.Error()})
		return
	default:
		s.Logger.Debug("rejected solve", "method", p.Method, "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.Metrics.Observe(p.Method, result)
	s.Logger.Debug("solved",
		"method", p.Method,
		"status", result.Status,
		"iterations", result.Iterations,
		"runtime", result.Runtime,
	)
	writeJSON(w, http.StatusOK, SolveResponse{Params: p, Result: result})
}

// handleFunction samples the curve for plotting.
func (s *Server) handleFunction(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lo, err := floatParam(q.Get("lo"), -5)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	hi, err := floatParam(q.Get("hi"), 5)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	n := 101
	if v := q.Get("n"); v != "" {
		n, err = strconv.Atoi(v)
		if err != nil || n > 10000 {
			writeError(w, http.StatusBadRequest, errors.New("n must be an integer no larger than 10000"))
			return
		}
	}
	tr, err := univariate.Sample(s.Function, lo, hi, n)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"points": tr})
}

func floatParam(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
