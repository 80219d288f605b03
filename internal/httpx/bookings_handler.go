package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vitacare/commerce/internal/commerce"
)

type BookingsHandler struct {
	Repo *commerce.BookingRepo
}

type CreateBookingReq struct {
	EntitlementID string `json:"entitlement_id"`
	SlotID        string `json:"slot_id"`
}

func (h *BookingsHandler) Register(r *chi.Mux) {
	r.Post("/bookings", h.create)
	r.Get("/bookings/{id}", h.get)
	r.Post("/bookings/{id}/confirm", h.confirm)
	r.Post("/bookings/{id}/cancel", h.cancel)
	r.Post("/bookings/{id}/complete", h.complete)
}

func (h *BookingsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.EntitlementID == "" || req.SlotID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}

	ctx, cancel := contextWithTimeout(r, 5*time.Second)
	defer cancel()

	id, err := h.Repo.Create(ctx, req.EntitlementID, req.SlotID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"booking_id": id, "status": string(commerce.BookingPending)})
}

func (h *BookingsHandler) get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, 3*time.Second)
	defer cancel()

	b, err := h.Repo.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// confirm reserves one unit of the slot's capacity; a full slot is an
// expected outcome reported as 422, not a server error.
func (h *BookingsHandler) confirm(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	ctx, cancel := contextWithTimeout(r, 5*time.Second)
	defer cancel()

	ok, err := h.Repo.Confirm(ctx, bookingID)
	if err != nil {
		writeErr(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error_code": "SLOT_FULL"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"booking_id": bookingID, "status": string(commerce.BookingConfirmed)})
}

func (h *BookingsHandler) cancel(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	ctx, cancel := contextWithTimeout(r, 5*time.Second)
	defer cancel()

	if err := h.Repo.Cancel(ctx, bookingID); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"booking_id": bookingID, "status": string(commerce.BookingCancelled)})
}

func (h *BookingsHandler) complete(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	ctx, cancel := contextWithTimeout(r, 5*time.Second)
	defer cancel()

	if err := h.Repo.Complete(ctx, bookingID); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"booking_id": bookingID, "status": string(commerce.BookingCompleted)})
}
