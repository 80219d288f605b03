package commerce

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EntitlementRepo struct{ DB *pgxpool.Pool }

// IssueForOrder materializes entitlements for a paid order, one per item.
// Service-package items share the package id (the purchasing order); both
// codes are generated here and shape-validated before anything is written.
func (r *EntitlementRepo) IssueForOrder(ctx context.Context, orderID, ownerID string, flow FulfillmentFlow, items []PaidItem) ([]string, error) {
	packageID := ""
	if flow == FlowServicePackage {
		packageID = orderID
	}

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var ids []string
	for _, it := range items {
		total := it.Qty
		if total < 1 {
			total = 1
		}
		id := uuid.NewString()
		qr := "QR-" + uuid.NewString()
		voucher := "V-" + uuid.NewString()
		if err := ValidateEntitlementShape(ownerID, qr, voucher); err != nil {
			return nil, err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO entitlements(id, order_id, package_id, owner_id, status, qr_code, voucher_code,
			                         remaining_count, total_count, activator_id, booking_required)
			VALUES ($1, $2, $3, $4, 'ACTIVE', $5, $6, $7, $7, '', $8)
			ON CONFLICT (order_id, qr_code) DO NOTHING
		`, id, orderID, packageID, ownerID, qr, voucher, total, flow != FlowVoucher)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *EntitlementRepo) Get(ctx context.Context, id string) (Entitlement, error) {
	var e Entitlement
	err := r.DB.QueryRow(ctx, `
		SELECT id, order_id, package_id, owner_id, status, qr_code, voucher_code,
		       remaining_count, total_count, activator_id, booking_required, created_at, updated_at
		FROM entitlements WHERE id=$1`, id).
		Scan(&e.ID, &e.OrderID, &e.PackageID, &e.OwnerID, &e.Status, &e.QRCode, &e.VoucherCode,
			&e.RemainingCount, &e.TotalCount, &e.ActivatorID, &e.BookingRequired, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// RedeemTx records one consumption attempt and applies its effect on the
// remaining-use counter. The attempt id makes retries idempotent: a repeat
// insert is a no-op and the current counter is returned unchanged. A
// successful redemption that drains the counter moves the entitlement to
// USED through the transition table.
func (r *EntitlementRepo) RedeemTx(ctx context.Context, entitlementID, attemptID string, success bool) (remaining int, status EntitlementStatus, err error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.QueryRow(ctx, `
		SELECT status, remaining_count FROM entitlements WHERE id=$1 FOR UPDATE`, entitlementID).
		Scan(&status, &remaining); err != nil {
		return 0, "", err
	}
	if status != EntitlementActive {
		return remaining, status, fmt.Errorf("%w: entitlement is %s, not ACTIVE", ErrStateConflict, status)
	}

	outcome := RedemptionFailed
	if success {
		outcome = RedemptionSuccess
	}
	ct, err := tx.Exec(ctx, `
		INSERT INTO redemptions(id, entitlement_id, attempt_id, outcome)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (attempt_id) DO NOTHING
	`, uuid.NewString(), entitlementID, attemptID, outcome)
	if err != nil {
		return 0, "", err
	}
	if ct.RowsAffected() == 0 {
		// attempt already recorded: idempotent short-circuit
		return remaining, status, tx.Commit(ctx)
	}

	newRemaining := ApplyRedeem(remaining, success)
	if _, err := tx.Exec(ctx, `UPDATE entitlements SET remaining_count=$2, updated_at=now() WHERE id=$1`,
		entitlementID, newRemaining); err != nil {
		return 0, "", err
	}

	if success && newRemaining == 0 {
		next, err := TransitionEntitlement(status, EntitlementUsed)
		if err != nil {
			return 0, "", err
		}
		if _, err := tx.Exec(ctx, `UPDATE entitlements SET status=$2, updated_at=now() WHERE id=$1`,
			entitlementID, next); err != nil {
			return 0, "", err
		}
		status = next
	}
	return newRemaining, status, tx.Commit(ctx)
}

// ActivateTx applies the write-once activation marker under a row lock and
// returns whatever activator ends up recorded.
func (r *EntitlementRepo) ActivateTx(ctx context.Context, entitlementID, activatorID string) (string, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current string
	if err := tx.QueryRow(ctx, `SELECT activator_id FROM entitlements WHERE id=$1 FOR UPDATE`, entitlementID).
		Scan(&current); err != nil {
		return "", err
	}
	final, err := ApplyActivation(current, activatorID)
	if err != nil {
		return "", err
	}
	if final != current {
		if _, err := tx.Exec(ctx, `UPDATE entitlements SET activator_id=$2, updated_at=now() WHERE id=$1`,
			entitlementID, final); err != nil {
			return "", err
		}
	}
	return final, tx.Commit(ctx)
}

// TransferPackageTx moves a whole service-package instance to a new owner:
// old entitlements go to TRANSFERRED, fresh ACTIVE ones with new codes are
// issued for the new owner, and the ownership change is recorded per
// entitlement. ok=false means the transfer gate rejected; nothing committed.
func (r *EntitlementRepo) TransferPackageTx(ctx context.Context, packageID, toOwnerID string) (ok bool, fromOwnerID string, newIDs []string, err error) {
	if toOwnerID == "" {
		return false, "", nil, fmt.Errorf("%w: target owner id is empty", ErrInvalidArgument)
	}

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, "", nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
		SELECT id, order_id, owner_id, status, remaining_count, total_count, booking_required
		FROM entitlements WHERE package_id=$1 FOR UPDATE`, packageID)
	if err != nil {
		return false, "", nil, err
	}
	var ents []Entitlement
	for rows.Next() {
		var e Entitlement
		if err := rows.Scan(&e.ID, &e.OrderID, &e.OwnerID, &e.Status, &e.RemainingCount, &e.TotalCount, &e.BookingRequired); err != nil {
			rows.Close()
			return false, "", nil, err
		}
		ents = append(ents, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return false, "", nil, err
	}

	var successCount int
	if err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM redemptions rd
		JOIN entitlements e ON e.id = rd.entitlement_id
		WHERE e.package_id = $1 AND rd.outcome = 'SUCCESS'`, packageID).Scan(&successCount); err != nil {
		return false, "", nil, err
	}

	if !CanTransferPackage(ents, successCount) {
		return false, "", nil, nil // rejected, rollback via defer
	}
	fromOwnerID = ents[0].OwnerID

	for _, e := range ents {
		next, err := TransitionEntitlement(e.Status, EntitlementTransferred)
		if err != nil {
			return false, "", nil, err
		}
		if _, err := tx.Exec(ctx, `UPDATE entitlements SET status=$2, updated_at=now() WHERE id=$1`,
			e.ID, next); err != nil {
			return false, "", nil, err
		}

		newID := uuid.NewString()
		qr := "QR-" + uuid.NewString()
		voucher := "V-" + uuid.NewString()
		if err := ValidateEntitlementShape(toOwnerID, qr, voucher); err != nil {
			return false, "", nil, err
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO entitlements(id, order_id, package_id, owner_id, status, qr_code, voucher_code,
			                         remaining_count, total_count, activator_id, booking_required)
			VALUES ($1, $2, $3, $4, 'ACTIVE', $5, $6, $7, $8, '', $9)
		`, newID, e.OrderID, packageID, toOwnerID, qr, voucher, e.RemainingCount, e.TotalCount, e.BookingRequired); err != nil {
			return false, "", nil, err
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO entitlement_transfers(id, package_id, entitlement_id, from_owner_id, to_owner_id)
			VALUES ($1, $2, $3, $4, $5)
		`, uuid.NewString(), packageID, e.ID, e.OwnerID, toOwnerID); err != nil {
			return false, "", nil, err
		}
		newIDs = append(newIDs, newID)
	}
	return true, fromOwnerID, newIDs, tx.Commit(ctx)
}

// PackageDisplay loads the display inputs of a service package: region
// level, tier, and the service pairs in catalog order.
func (r *EntitlementRepo) PackageDisplay(ctx context.Context, packageID string) (regionLevel, tier string, services []ServiceCount, err error) {
	err = r.DB.QueryRow(ctx, `SELECT region_level, tier FROM service_packages WHERE id=$1`, packageID).
		Scan(&regionLevel, &tier)
	if err != nil {
		return "", "", nil, err
	}
	rows, err := r.DB.Query(ctx, `
		SELECT service_type, service_count FROM package_services
		WHERE package_id=$1 ORDER BY position`, packageID)
	if err != nil {
		return "", "", nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s ServiceCount
		if err := rows.Scan(&s.ServiceType, &s.Count); err != nil {
			return "", "", nil, err
		}
		services = append(services, s)
	}
	return regionLevel, tier, services, rows.Err()
}
