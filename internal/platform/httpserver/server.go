package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	forecastengine "financeos/contexts/finance-core/forecast-engine"
	workspacedomainerrors "financeos/contexts/finance-core/forecast-engine/domain/errors"
	workspacehttp "financeos/contexts/finance-core/forecast-engine/transport/http"

	_ "financeos/internal/platform/httpserver/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	addr         string
	workspace    forecastengine.Module
	baseCurrency string
}

func New(
	workspace forecastengine.Module,
	logger *slog.Logger,
	addr string,
	baseCurrency string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		addr:         addr,
		workspace:    workspace,
		baseCurrency: baseCurrency,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/workspace/v1/forecast", s.handleWorkspaceForecast)
	s.mux.HandleFunc("POST /api/workspace/v1/planning-versions", s.handleSavePlanningVersion)
	s.mux.HandleFunc("POST /api/workspace/v1/goals/{goal_id}/events", s.handleRecordGoalEvent)
	s.mux.HandleFunc("PUT /api/workspace/v1/envelopes", s.handleUpsertEnvelope)
	s.mux.HandleFunc("POST /api/workspace/v1/finance-states", s.handleSaveFinanceState)
}

func (s *Server) handleWorkspaceForecast(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := workspacehttp.WorkspaceForecastRequest{
		CycleKey:        query.Get("cycle_key"),
		DisplayCurrency: query.Get("display_currency"),
		Locale:          query.Get("locale"),
	}

	// No user header means a pre-login client; it gets the default payload
	// in the authenticated shape instead of an auth error.
	userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if userID == "" {
		writeJSON(w, http.StatusOK, s.workspace.Handler.DefaultWorkspaceHandler(r.Context(), s.baseCurrency))
		return
	}

	resp, err := s.workspace.Handler.WorkspaceForecastHandler(r.Context(), userID, req)
	if err != nil {
		writeWorkspaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSavePlanningVersion(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeWorkspaceError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req workspacehttp.SavePlanningVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWorkspaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.workspace.Handler.SavePlanningVersionHandler(r.Context(), userID, req)
	if err != nil {
		writeWorkspaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecordGoalEvent(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeWorkspaceError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req workspacehttp.RecordGoalEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWorkspaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	goalID := r.PathValue("goal_id")
	idempotencyKey := r.Header.Get("Idempotency-Key")

	resp, err := s.workspace.Handler.RecordGoalEventHandler(
		r.Context(),
		userID,
		goalID,
		idempotencyKey,
		req,
	)
	if err != nil {
		writeWorkspaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpsertEnvelope(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeWorkspaceError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req workspacehttp.UpsertEnvelopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWorkspaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.workspace.Handler.UpsertEnvelopeHandler(r.Context(), userID, req)
	if err != nil {
		writeWorkspaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSaveFinanceState(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeWorkspaceError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req workspacehttp.SaveFinanceStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWorkspaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.workspace.Handler.SaveFinanceStateHandler(r.Context(), userID, req)
	if err != nil {
		writeWorkspaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeWorkspaceDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, workspacedomainerrors.ErrInvalidCycleKey):
		writeWorkspaceError(w, http.StatusBadRequest, "invalid_cycle_key", err.Error())
	case errors.Is(err, workspacedomainerrors.ErrInvalidInput):
		writeWorkspaceError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, workspacedomainerrors.ErrIdempotencyKeyRequired):
		writeWorkspaceError(w, http.StatusBadRequest, "idempotency_key_required", err.Error())
	case errors.Is(err, workspacedomainerrors.ErrGoalNotFound):
		writeWorkspaceError(w, http.StatusNotFound, "goal_not_found", err.Error())
	case errors.Is(err, workspacedomainerrors.ErrIdempotencyConflict):
		writeWorkspaceError(w, http.StatusConflict, "idempotency_conflict", err.Error())
	case errors.Is(err, workspacedomainerrors.ErrConflict):
		writeWorkspaceError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeWorkspaceError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeWorkspaceError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, workspacehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
