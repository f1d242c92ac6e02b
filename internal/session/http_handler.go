package session

import (
	"errors"
	"net/http"

	"bookbrowser/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Create handles POST /v1/sessions
// @Summary Start a browsing session
// @Description Open a session with the default query and return its first view
// @Tags sessions
// @Produce json
// @Success 201 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/sessions [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Start(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, snap)
}

// Get handles GET /v1/sessions/{id}
// @Summary Get session view
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/sessions/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid session ID", nil)
		return
	}

	snap, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, snap, nil)
}

// Dispatch handles POST /v1/sessions/{id}/actions
// @Summary Apply an action
// @Description Apply one action to the session's query and return the recomputed view
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param action body ActionRequest true "Action"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/sessions/{id}/actions [post]
func (h *HTTPHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid session ID", nil)
		return
	}

	var req ActionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}

	action, details := req.ToAction()
	if details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid action payload", details)
		return
	}

	snap, err := h.service.Dispatch(r.Context(), id, action)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, snap, nil)
}

// Delete handles DELETE /v1/sessions/{id}
// @Summary End a session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/sessions/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid session ID", nil)
		return
	}

	if err := h.service.End(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Session not found", nil)
		return
	}
	httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
