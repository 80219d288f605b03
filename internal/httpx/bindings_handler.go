package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vitacare/commerce/internal/commerce"
)

type BindingsHandler struct {
	Repo *commerce.BindingRepo
}

type SubmitBindingReq struct {
	UserID       string `json:"user_id"`
	EnterpriseID string `json:"enterprise_id"`
}

func (h *BindingsHandler) Register(r *chi.Mux) {
	r.Post("/bindings", h.submit)
	r.Get("/bindings", h.history)
}

func (h *BindingsHandler) submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitBindingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.UserID == "" || req.EnterpriseID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}

	ctx, cancel := contextWithTimeout(r, 5*time.Second)
	defer cancel()

	id, ok, err := h.Repo.Submit(ctx, req.UserID, req.EnterpriseID)
	if err != nil {
		writeErr(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error_code": "BINDING_NOT_ALLOWED"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"binding_id": id, "status": string(commerce.BindingPending)})
}

func (h *BindingsHandler) history(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing user_id"})
		return
	}

	ctx, cancel := contextWithTimeout(r, 3*time.Second)
	defer cancel()

	statuses, err := h.Repo.ListStatuses(ctx, userID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id":    userID,
		"statuses":   statuses,
		"can_submit": commerce.CanSubmitBinding(statuses),
	})
}
