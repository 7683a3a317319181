package consultations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"neuralink-backend/internal/httpx"
	"neuralink-backend/internal/metrics"
	"neuralink-backend/internal/middleware"
	"neuralink-backend/internal/transport"
)

const defaultBodyLimit = 100 * 1024

type Handler struct {
	service   *Service
	log       *slog.Logger
	metrics   *metrics.Metrics
	bodyLimit int64
}

func NewHandler(service *Service, log *slog.Logger, m *metrics.Metrics, bodyLimit int64) *Handler {
	if bodyLimit <= 0 {
		bodyLimit = defaultBodyLimit
	}
	return &Handler{
		service:   service,
		log:       log,
		metrics:   m,
		bodyLimit: bodyLimit,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req SubmitRequest
	if err := httpx.DecodeJSON(w, r, h.bodyLimit, &req); err != nil {
		h.metrics.ObserveConsultation("invalid_body")
		if errors.Is(err, httpx.ErrBodyTooLarge) {
			log.Warn("consultation create: body too large")
			transport.WriteError(w, http.StatusRequestEntityTooLarge, "Payload Too Large", fmt.Sprintf("Request body exceeds the %dkb limit", h.bodyLimit/1024))
			return
		}
		log.Warn("consultation create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "Invalid JSON", "Request body must be a valid JSON object")
		return
	}

	created, err := h.service.Submit(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			h.metrics.ObserveConsultation("missing_fields")
			log.Warn("consultation create: missing fields")
			transport.WriteError(w, http.StatusBadRequest, "Missing required fields", "Name, email, and message are required")
		case errors.Is(err, ErrInvalidEmail):
			h.metrics.ObserveConsultation("invalid_email")
			log.Warn("consultation create: invalid email")
			transport.WriteError(w, http.StatusBadRequest, "Invalid email", "Please provide a valid email address")
		default:
			log.Error("consultation create: unexpected error", slog.String("error", err.Error()))
			transport.WriteInternalError(w)
		}
		return
	}

	if h.service.notifier != nil {
		go func(created Request) {
			notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 8*time.Second)
			defer notifyCancel()
			if err := h.service.NotifyNewRequest(notifyCtx, created); err != nil {
				h.log.Warn("consultation create: notification failed",
					slog.Int("consultation_id", created.ID),
					slog.String("error", err.Error()),
				)
			}
		}(created)
	}

	h.metrics.ObserveConsultation("accepted")
	log.Info("consultation create: ok", slog.Int("consultation_id", created.ID))
	transport.WriteJSON(w, http.StatusCreated, SubmitResponse{
		Message:               SubmittedMessage,
		RequestID:             created.ID,
		EstimatedResponseTime: EstimatedResponseTime,
	})
}

// List is an unauthenticated demo view of every submission.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	resp, err := h.service.List(r.Context())
	if err != nil {
		log.Error("consultation list: unexpected error", slog.String("error", err.Error()))
		transport.WriteInternalError(w)
		return
	}

	log.Info("consultation list: ok", slog.Int("count", resp.Total))
	transport.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	raw := httpx.PathParam(r, "id")

	var req Request
	err := ErrNotFound
	if id, ok := httpx.ParseID(raw); ok {
		req, err = h.service.GetByID(r.Context(), id)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Info("consultation get: not found", slog.String("consultation_id", raw))
			transport.WriteError(w, http.StatusNotFound, "Request not found", fmt.Sprintf("Consultation request with ID %s does not exist", raw))
			return
		}
		log.Error("consultation get: unexpected error", slog.String("error", err.Error()))
		transport.WriteInternalError(w)
		return
	}

	transport.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
