package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"training-courses/internal/core/port"
	"training-courses/internal/requestctx"
)

// Handler is the inbound HTTP adapter. It translates requests into calls on
// the TrainingUseCase and maps sentinel errors onto status codes.
type Handler struct {
	svc    port.TrainingUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured under /api/v1.
func NewHandler(svc port.TrainingUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthcheck", h.handleHealthcheck)

		r.Group(func(r chi.Router) {
			r.Use(h.withCaller)
			r.Get("/training-course-scenario", h.handleScenarios)
			r.Post("/training-course", h.handleGenerate)
			r.Delete("/campaign/{id}", h.handleDeleteCampaign)
			r.Get("/training-courses", h.handleTrainingCourses)
			r.Get("/user/organisationUnit", h.handleUserOrganisationUnit)
			r.Get("/organisation-units", h.handleOrganisationUnits)
			r.Get("/training-runs", h.handleRuns)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// withCaller reads the bearer token once per request and stores the caller
// in the request context. Backend clients forward the token from there.
func (h *Handler) withCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := requestctx.FromAuthorization(r.Header.Get("Authorization"))
		ctx := requestctx.WithCaller(r.Context(), caller)
		h.logger.Info("inbound request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("requester", requestctx.RequesterID(ctx)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, success bool, message string) {
	h.writeJSON(w, status, messageResponse{Success: success, Message: message})
}
