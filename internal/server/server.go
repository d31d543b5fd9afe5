// Package server exposes the schedule engine and the plan store over an
// HTTP JSON API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/finsim/loan-recast/internal/comparison"
	"github.com/finsim/loan-recast/internal/config"
	"github.com/finsim/loan-recast/internal/schedule"
	"github.com/finsim/loan-recast/internal/store"
	"github.com/finsim/loan-recast/pkg/constants"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	store       store.Store
}

// NewHandler constructs the HTTP handler that serves the schedule API. A nil
// plan store disables the /api/plans endpoints with 503 responses.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string, planStore store.Store) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion, store: planStore}

	mux := http.NewServeMux()

	// Full schedule for one plan
	mux.HandleFunc("/api/schedule", h.handleSchedule)

	// Baseline-vs-modified savings summary
	mux.HandleFunc("/api/compare", h.handleCompare)

	// Named plan persistence (inputs only)
	mux.HandleFunc("/api/plans", h.handlePlanList)
	mux.HandleFunc("/api/plans/", h.handlePlan)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type scheduleResponse struct {
	Result   schedule.Result `json:"result"`
	Warnings []string        `json:"warnings,omitempty"`
	Duration string          `json:"duration"`
}

type compareResponse struct {
	Comparison comparison.Comparison `json:"comparison"`
	Warnings   []string              `json:"warnings,omitempty"`
	Duration   string                `json:"duration"`
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	plan, warnings, ok := h.decodePlan(w, r)
	if !ok {
		return
	}

	started := time.Now()
	params, err := plan.Configuration().ToParams()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid plan: %v", err))
		return
	}
	result := schedule.NewBuilder(h.logger).Build(params)

	h.writeJSON(w, http.StatusOK, scheduleResponse{
		Result:   result,
		Warnings: warnings,
		Duration: time.Since(started).String(),
	})
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	plan, warnings, ok := h.decodePlan(w, r)
	if !ok {
		return
	}

	started := time.Now()
	params, err := plan.Configuration().ToParams()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid plan: %v", err))
		return
	}
	comp := comparison.Compare(h.logger, params)

	h.writeJSON(w, http.StatusOK, compareResponse{
		Comparison: comp,
		Warnings:   warnings,
		Duration:   time.Since(started).String(),
	})
}

// decodePlan reads and validates the JSON plan body shared by the schedule
// and compare endpoints.
func (h *handler) decodePlan(w http.ResponseWriter, r *http.Request) (config.Plan, []string, bool) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return config.Plan{}, nil, false
	}

	var plan config.Plan
	body := http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(body).Decode(&plan); err != nil {
		h.logger.Debug("rejected plan payload", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid plan payload: %v", err))
		return config.Plan{}, nil, false
	}

	return plan, plan.Configuration().ValidateConfiguration(), true
}

func (h *handler) handlePlanList(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.writeError(w, http.StatusServiceUnavailable, "plan storage is not configured")
		return
	}
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	names, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list plans", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to list plans")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]string{"plans": names})
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.writeError(w, http.StatusServiceUnavailable, "plan storage is not configured")
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/api/plans/")
	if name == "" || strings.Contains(name, "/") {
		h.writeError(w, http.StatusNotFound, "plan not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		plan, err := h.store.Load(r.Context(), name)
		if errors.Is(err, store.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "plan not found")
			return
		}
		if err != nil {
			h.logger.Error("failed to load plan", zap.String("name", name), zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, "failed to load plan")
			return
		}
		h.writeJSON(w, http.StatusOK, plan)

	case http.MethodPut:
		var plan config.Plan
		body := http.MaxBytesReader(w, r.Body, h.maxBodySize)
		if err := json.NewDecoder(body).Decode(&plan); err != nil {
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid plan payload: %v", err))
			return
		}
		if err := h.store.Save(r.Context(), name, plan); err != nil {
			h.logger.Error("failed to save plan", zap.String("name", name), zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, "failed to save plan")
			return
		}
		h.logger.Info("saved plan", zap.String("name", name))
		h.writeJSON(w, http.StatusOK, map[string]string{"saved": name})

	case http.MethodDelete:
		err := h.store.Delete(r.Context(), name)
		if errors.Is(err, store.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "plan not found")
			return
		}
		if err != nil {
			h.logger.Error("failed to delete plan", zap.String("name", name), zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, "failed to delete plan")
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]string{"deleted": name})

	default:
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
