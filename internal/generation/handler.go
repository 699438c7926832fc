package generation

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/typemitr/typemitr/internal/documents"
	"github.com/typemitr/typemitr/pkg/handlers"
	"github.com/typemitr/typemitr/pkg/routes"
)

// Handler provides HTTP endpoints for the generation pipeline.
type Handler struct {
	sys            System
	logger         *slog.Logger
	maxRequestSize int64
}

// GenerateRequest is the generate endpoint body: the raw generation command
// plus an optional session identifier. A missing or malformed session id
// starts a new session.
type GenerateRequest struct {
	SessionID string `json:"session_id"`
	GenerateCommand
}

// GenerateResponse pairs the created document with the session it was
// generated under.
type GenerateResponse struct {
	SessionID uuid.UUID           `json:"session_id"`
	Document  *documents.Document `json:"document"`
}

// NewHandler creates a Handler with the given system, logger, and request size limit.
func NewHandler(sys System, logger *slog.Logger, maxRequestSize int64) *Handler {
	return &Handler{
		sys:            sys,
		logger:         logger.With("handler", "generation"),
		maxRequestSize: maxRequestSize,
	}
}

// Routes returns the route group definition for generation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/generate",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Generate},
			{Method: "GET", Pattern: "/recent/{session_id}", Handler: h.Recent},
		},
	}
}

// Generate runs the generation pipeline for a JSON command and responds with
// the created document and session id.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	session, err := uuid.Parse(req.SessionID)
	if err != nil {
		session = uuid.New()
	}

	doc, err := h.sys.Generate(r.Context(), session, req.GenerateCommand)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, GenerateResponse{
		SessionID: session,
		Document:  doc,
	})
}

// Recent returns the most recent draft generated under the session, if it
// is still cached.
func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	session, err := uuid.Parse(r.PathValue("session_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	draft, err := h.sys.Recent(session)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draft)
}
