package commerce

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepo struct{ DB *pgxpool.Pool }

func (r *BookingRepo) Create(ctx context.Context, entitlementID, slotID string) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.Exec(ctx, `
		INSERT INTO bookings(id, entitlement_id, slot_id, status)
		VALUES ($1, $2, $3, 'PENDING')`, id, entitlementID, slotID)
	return id, err
}

func (r *BookingRepo) Get(ctx context.Context, bookingID string) (Booking, error) {
	var b Booking
	err := r.DB.QueryRow(ctx, `
		SELECT id, entitlement_id, slot_id, status, created_at, updated_at
		FROM bookings WHERE id=$1`, bookingID).
		Scan(&b.ID, &b.EntitlementID, &b.SlotID, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// Confirm locks the capacity slot row, reserves one unit and moves the
// booking PENDING -> CONFIRMED, all in one transaction. ok=false means the
// slot is full; nothing is committed in that case.
func (r *BookingRepo) Confirm(ctx context.Context, bookingID string) (ok bool, err error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var cur BookingStatus
	var slotID string
	if err := tx.QueryRow(ctx, `SELECT status, slot_id FROM bookings WHERE id=$1 FOR UPDATE`, bookingID).
		Scan(&cur, &slotID); err != nil {
		return false, err
	}
	next, err := TransitionBooking(cur, BookingConfirmed)
	if err != nil {
		return false, err
	}

	var remaining int
	if err := tx.QueryRow(ctx, `SELECT remaining_capacity FROM capacity_slots WHERE id=$1 FOR UPDATE`, slotID).
		Scan(&remaining); err != nil {
		return false, err
	}
	if !CanReserve(remaining) {
		return false, nil // slot full, rollback via defer
	}
	if _, err := tx.Exec(ctx, `UPDATE capacity_slots SET remaining_capacity=$2 WHERE id=$1`,
		slotID, Reserve(remaining)); err != nil {
		return false, err
	}
	if _, err := tx.Exec(ctx, `UPDATE bookings SET status=$2, updated_at=now() WHERE id=$1`,
		bookingID, next); err != nil {
		return false, err
	}
	return true, tx.Commit(ctx)
}

// Cancel moves the booking to CANCELLED and, when it was CONFIRMED, returns
// the reserved unit to the slot (clamped at the slot's capacity).
func (r *BookingRepo) Cancel(ctx context.Context, bookingID string) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var cur BookingStatus
	var slotID string
	if err := tx.QueryRow(ctx, `SELECT status, slot_id FROM bookings WHERE id=$1 FOR UPDATE`, bookingID).
		Scan(&cur, &slotID); err != nil {
		return err
	}
	next, err := TransitionBooking(cur, BookingCancelled)
	if err != nil {
		return err
	}

	if cur == BookingConfirmed {
		var remaining, capacity int
		if err := tx.QueryRow(ctx, `SELECT remaining_capacity, capacity FROM capacity_slots WHERE id=$1 FOR UPDATE`, slotID).
			Scan(&remaining, &capacity); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE capacity_slots SET remaining_capacity=$2 WHERE id=$1`,
			slotID, Release(remaining, capacity)); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(ctx, `UPDATE bookings SET status=$2, updated_at=now() WHERE id=$1`,
		bookingID, next); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *BookingRepo) Complete(ctx context.Context, bookingID string) error {
	var cur BookingStatus
	if err := r.DB.QueryRow(ctx, `SELECT status FROM bookings WHERE id=$1`, bookingID).Scan(&cur); err != nil {
		return err
	}
	next, err := TransitionBooking(cur, BookingCompleted)
	if err != nil {
		return err
	}
	ct, err := r.DB.Exec(ctx, `UPDATE bookings SET status=$3, updated_at=now() WHERE id=$1 AND status=$2`,
		bookingID, cur, next)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrStaleStatus
	}
	return nil
}

// HasConfirmed reports whether the entitlement has a CONFIRMED booking —
// the redemption gate's second input when a booking is required.
func (r *BookingRepo) HasConfirmed(ctx context.Context, entitlementID string) (bool, error) {
	var n int
	err := r.DB.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE entitlement_id = $1 AND status = 'CONFIRMED'`, entitlementID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
