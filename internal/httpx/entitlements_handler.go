package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/vitacare/commerce/internal/commerce"
	kafkax "github.com/vitacare/commerce/internal/kafka"
	"github.com/vitacare/commerce/internal/redisx"
)

type EntitlementsHandler struct {
	Repo     *commerce.EntitlementRepo
	Bookings *commerce.BookingRepo
	Redis    *redis.Client
	Producer *kafkax.Producer // publishes entitlement.transferred
	Service  string
}

type RedeemReq struct {
	AttemptID string `json:"attempt_id"`
}

type RedeemResp struct {
	EntitlementID  string                     `json:"entitlement_id"`
	Outcome        commerce.RedemptionOutcome `json:"outcome"`
	RemainingCount int                        `json:"remaining_count"`
	Status         commerce.EntitlementStatus `json:"status"`
}

type ActivateReq struct {
	ActivatorID string `json:"activator_id"`
}

type TransferReq struct {
	ToOwnerID string `json:"to_owner_id"`
}

func (h *EntitlementsHandler) Register(r *chi.Mux) {
	r.Get("/entitlements/{id}", h.get)
	r.Post("/entitlements/{id}/redeem", h.redeem)
	r.Post("/entitlements/{id}/activate", h.activate)
	r.Post("/packages/{id}/transfer", h.transfer)
	r.Get("/packages/{id}/display", h.display)
}

func (h *EntitlementsHandler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := contextWithTimeout(r, 3*time.Second)
	defer cancel()

	key := fmt.Sprintf(redisx.KeyEntitlementStatus, id)
	if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
		writeJSON(w, http.StatusOK, json.RawMessage(s))
		return
	}

	e, err := h.Repo.Get(ctx, id)
	if err != nil {
		writeErr(w, err)
		return
	}
	body := map[string]any{
		"status":          e.Status,
		"remaining_count": e.RemainingCount,
		"total_count":     e.TotalCount,
		"voucher_code":    e.VoucherCode,
	}
	b, _ := json.Marshal(body)
	_ = h.Redis.Set(ctx, key, b, redisx.TTLStatusCache).Err()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// redeem runs one consumption attempt: the booking-requirement gate decides
// the outcome, a failed gate still records a FAILED attempt. Retries with
// the same attempt id short-circuit on the idempotency key.
func (h *EntitlementsHandler) redeem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req RedeemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.AttemptID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing attempt_id"})
		return
	}

	ctx, cancel := contextWithTimeout(r, 5*time.Second)
	defer cancel()

	idemKey := fmt.Sprintf(redisx.KeyIdemRedeem, req.AttemptID)
	if s, err := h.Redis.Get(ctx, idemKey).Result(); err == nil && s != "" {
		writeJSON(w, http.StatusOK, json.RawMessage(s))
		return
	}

	e, err := h.Repo.Get(ctx, id)
	if err != nil {
		writeErr(w, err)
		return
	}

	hasConfirmed := false
	if e.BookingRequired {
		hasConfirmed, err = h.Bookings.HasConfirmed(ctx, id)
		if err != nil {
			writeErr(w, err)
			return
		}
	}
	allowed := commerce.CanRedeem(e.BookingRequired, hasConfirmed)

	remaining, status, err := h.Repo.RedeemTx(ctx, id, req.AttemptID, allowed)
	if err != nil {
		writeErr(w, err)
		return
	}

	outcome := commerce.RedemptionFailed
	code := http.StatusUnprocessableEntity
	if allowed {
		outcome = commerce.RedemptionSuccess
		code = http.StatusOK
	}
	resp := RedeemResp{EntitlementID: id, Outcome: outcome, RemainingCount: remaining, Status: status}
	b, _ := json.Marshal(resp)
	_ = h.Redis.Set(ctx, idemKey, b, redisx.TTLIdempotency).Err()
	_ = h.Redis.Del(ctx, fmt.Sprintf(redisx.KeyEntitlementStatus, id)).Err()

	writeJSON(w, code, resp)
}

// activate applies the write-once marker; the handler compares the recorded
// activator with the requested one so a client can tell "already activated
// by you" from "already activated by someone else".
func (h *EntitlementsHandler) activate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req ActivateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := contextWithTimeout(r, 5*time.Second)
	defer cancel()

	final, err := h.Repo.ActivateTx(ctx, id, req.ActivatorID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entitlement_id":    id,
		"activator_id":      final,
		"already_activated": final != req.ActivatorID,
	})
}

func (h *EntitlementsHandler) transfer(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "id")
	var req TransferReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := contextWithTimeout(r, 5*time.Second)
	defer cancel()

	ok, fromOwnerID, newIDs, err := h.Repo.TransferPackageTx(ctx, packageID, req.ToOwnerID)
	if err != nil {
		writeErr(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error_code": "TRANSFER_NOT_ALLOWED"})
		return
	}

	ev := commerce.Envelope{
		EventID:       uuid.NewString(),
		EventType:     commerce.EventEntitlementTransferred,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: packageID,
		Payload: kafkax.MustMarshal(commerce.EntitlementTransferredPayload{
			PackageID: packageID, FromOwnerID: fromOwnerID, ToOwnerID: req.ToOwnerID, NewIDs: newIDs,
		}),
	}
	h.Producer.Publish(commerce.PartitionKey(packageID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(commerce.EventEntitlementTransferred)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)

	writeJSON(w, http.StatusOK, map[string]any{
		"package_id":          packageID,
		"to_owner_id":         req.ToOwnerID,
		"new_entitlement_ids": newIDs,
	})
}

func (h *EntitlementsHandler) display(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "id")

	ctx, cancel := contextWithTimeout(r, 3*time.Second)
	defer cancel()

	region, tier, services, err := h.Repo.PackageDisplay(ctx, packageID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"package_id": packageID,
		"display":    commerce.FormatPackageDisplay(region, tier, services),
	})
}
