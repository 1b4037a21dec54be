package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alexiusacademia/gorcw/internal/aci"
	"github.com/alexiusacademia/gorcw/internal/log"
	"github.com/alexiusacademia/gorcw/internal/shear"
	"github.com/alexiusacademia/gorcw/internal/version"
	"github.com/alexiusacademia/gorcw/internal/wall"
	"github.com/gorilla/mux"
)

// maxBatchRows bounds a single /api/batch request
const maxBatchRows = 10000

// Handler serves the capacity calculator over HTTP
type Handler struct {
	DefaultLambda float64
}

// CapacityResponse is the JSON form of one evaluated wall
type CapacityResponse struct {
	Tag                 string  `json:"tag"`
	DesignStandard      float64 `json:"design_capacity_standard"`
	DesignAnnex         float64 `json:"design_capacity_annex"`
	NominalStandard     float64 `json:"nominal_capacity_standard"`
	PhiAnnex            float64 `json:"phi_annex"`
	NominalAnnex        float64 `json:"nominal_capacity_annex"`
	SectionArea         float64 `json:"section_area"`
	MomentOfInertia     float64 `json:"moment_of_inertia"`
	HeightToLengthRatio float64 `json:"height_to_length_ratio"`
	Rho                 float64 `json:"rho"`
	AlphaC              float64 `json:"alpha_c"`
	TotalOverstrength   float64 `json:"total_overstrength"`
}

// BatchItem is one entry of a batch response; exactly one of Result or Error is set
type BatchItem struct {
	Tag    string            `json:"tag"`
	Result *CapacityResponse `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

type healthResponse struct {
	Status string       `json:"status"`
	Build  version.Info `json:"build"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// NewRouter registers every route on a new mux router
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/capacity", h.Capacity).Methods(http.MethodPost)
	api.HandleFunc("/batch", h.Batch).Methods(http.MethodPost)
	api.HandleFunc("/alpha", h.Alpha).Methods(http.MethodGet).Queries("r", "{r}")

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: version.Get()})
	}).Methods(http.MethodGet)

	return r
}

// Capacity evaluates a single wall row
func (h *Handler) Capacity(w http.ResponseWriter, r *http.Request) {
	var in shear.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	ev, err := shear.Evaluate(h.withDefaults(in))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCapacityResponse(ev))
}

// Batch evaluates an array of rows, reporting failures per row
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var rows []shear.Input
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}
	if len(rows) > maxBatchRows {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "too many rows"})
		return
	}

	items := make([]BatchItem, len(rows))
	for i, in := range rows {
		items[i].Tag = in.Tag
		ev, err := shear.Evaluate(h.withDefaults(in))
		if err != nil {
			items[i].Error = err.Error()
			continue
		}
		res := newCapacityResponse(ev)
		items[i].Result = &res
	}
	writeJSON(w, http.StatusOK, items)
}

// Alpha returns αc for the height-to-length ratio in the r query parameter
func (h *Handler) Alpha(w http.ResponseWriter, r *http.Request) {
	ratio, err := strconv.ParseFloat(mux.Vars(r)["r"], 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "r must be a number"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"ratio": ratio, "alpha_c": aci.AlphaC(ratio)})
}

func (h *Handler) withDefaults(in shear.Input) shear.Input {
	if in.Lambda == nil && h.DefaultLambda != 0 {
		lambda := h.DefaultLambda
		in.Lambda = &lambda
	}
	return in
}

func newCapacityResponse(ev *shear.Evaluation) CapacityResponse {
	return CapacityResponse{
		Tag:                 ev.Section.Tag(),
		DesignStandard:      ev.Result.DesignStandard,
		DesignAnnex:         ev.Result.DesignAnnex,
		NominalStandard:     ev.Result.NominalStandard,
		PhiAnnex:            ev.Result.PhiAnnex,
		NominalAnnex:        ev.Result.NominalAnnex,
		SectionArea:         ev.Section.SectionArea(),
		MomentOfInertia:     ev.Section.MomentOfInertia(),
		HeightToLengthRatio: ev.Section.HeightToLengthRatio(),
		Rho:                 ev.Section.Rho(),
		AlphaC:              ev.Section.AlphaC(),
		TotalOverstrength:   ev.Material.TotalOverstrength(),
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	var de *wall.DomainError
	if errors.As(err, &de) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: de.Error(), Field: de.Field})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encode response: %v", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Infow("request", "method", r.Method, "path", r.URL.Path,
			"status", rec.status, "duration", time.Since(start))
	})
}
