package catalog

import (
	"log/slog"
	"net/http"

	"github.com/typemitr/typemitr/pkg/handlers"
	"github.com/typemitr/typemitr/pkg/routes"
)

// Handler provides read-only HTTP endpoints for the catalog.
type Handler struct {
	logger *slog.Logger
}

// LanguageOption is the wire representation of a supported language.
type LanguageOption struct {
	Key         Language `json:"key"`
	DisplayName string   `json:"display_name"`
}

// ToneOption is the wire representation of a supported tone.
type ToneOption struct {
	Key         Tone   `json:"key"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

// NewHandler creates a catalog Handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger.With("handler", "catalog")}
}

// Routes returns the route group definition for catalog endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/catalog",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/types", Handler: h.Types},
			{Method: "GET", Pattern: "/categories", Handler: h.Categories},
			{Method: "GET", Pattern: "/categories/{category}/types", Handler: h.TypesByCategory},
			{Method: "GET", Pattern: "/languages", Handler: h.Languages},
			{Method: "GET", Pattern: "/tones", Handler: h.Tones},
		},
	}
}

// Types returns all document type descriptors.
func (h *Handler) Types(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Types())
}

// Categories returns all document categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Categories())
}

// TypesByCategory returns the descriptors for a single category.
func (h *Handler) TypesByCategory(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("category")
	if _, ok := CategoryByKey(key); !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrUnknownCategory)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, TypesByCategory(key))
}

// Languages returns the supported output languages.
func (h *Handler) Languages(w http.ResponseWriter, r *http.Request) {
	langs := Languages()
	options := make([]LanguageOption, len(langs))
	for i, l := range langs {
		options[i] = LanguageOption{Key: l, DisplayName: l.DisplayName()}
	}

	handlers.RespondJSON(w, http.StatusOK, options)
}

// Tones returns the supported writing tones.
func (h *Handler) Tones(w http.ResponseWriter, r *http.Request) {
	tones := Tones()
	options := make([]ToneOption, len(tones))
	for i, t := range tones {
		options[i] = ToneOption{Key: t, DisplayName: t.DisplayName(), Description: t.Description()}
	}

	handlers.RespondJSON(w, http.StatusOK, options)
}
