package commerce

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemInput struct {
	ItemType      OrderType     `json:"item_type"`
	UnitPriceType UnitPriceType `json:"unit_price_type"`
	ServiceID     string        `json:"service_id,omitempty"`
	PriceCents    int           `json:"price_cents"`
	Qty           int           `json:"qty"`
}

type Repo struct{ DB *pgxpool.Pool }

var ErrAlreadyExists = errors.New("order already exists")

// CreateOrderTx: idempotent via external_id — an already-known external id
// returns the existing order (existed=true) instead of creating a second one.
// Every item type must equal the order type before anything is written.
func (r *Repo) CreateOrderTx(ctx context.Context, externalID, userID string, orderType OrderType, items []ItemInput) (orderID string, total int, existed bool, err error) {
	row := r.DB.QueryRow(ctx, `SELECT id, total_cents FROM orders WHERE external_id=$1`, externalID)
	if err = row.Scan(&orderID, &total); err == nil {
		return orderID, total, true, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return "", 0, false, err
	}

	itemTypes := make([]OrderType, 0, len(items))
	for _, it := range items {
		itemTypes = append(itemTypes, it.ItemType)
	}
	if !ItemsMatchOrderType(orderType, itemTypes) {
		return "", 0, false, fmt.Errorf("%w: item type does not match order type %s", ErrInvalidArgument, orderType)
	}

	total = 0
	for _, it := range items {
		if it.Qty <= 0 {
			return "", 0, false, fmt.Errorf("%w: qty must be positive", ErrInvalidArgument)
		}
		total += it.PriceCents * it.Qty
	}

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", 0, false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderID = uuid.NewString()
	_, err = tx.Exec(ctx, `
		INSERT INTO orders(id, external_id, user_id, order_type, payment_status, total_cents)
		VALUES ($1, $2, $3, $4, 'PENDING', $5)
	`, orderID, externalID, userID, orderType, total)
	if err != nil {
		return "", 0, false, err
	}

	for _, it := range items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items(id, order_id, item_type, unit_price_type, service_id, price_cents, qty)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.NewString(), orderID, it.ItemType, it.UnitPriceType, it.ServiceID, it.PriceCents, it.Qty,
		)
		if err != nil {
			return "", 0, false, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", 0, false, err
	}
	return orderID, total, false, nil
}

func (r *Repo) GetOrder(ctx context.Context, orderID string) (Order, error) {
	var o Order
	err := r.DB.QueryRow(ctx, `
		SELECT id, external_id, user_id, order_type, payment_status, total_cents, created_at, updated_at
		FROM orders WHERE id=$1`, orderID).
		Scan(&o.ID, &o.ExternalID, &o.UserID, &o.OrderType, &o.PaymentStatus, &o.TotalCents, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func (r *Repo) ListItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, order_id, item_type, unit_price_type, price_cents, qty
		FROM order_items WHERE order_id=$1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ItemType, &it.UnitPriceType, &it.PriceCents, &it.Qty); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// UpdatePaymentStatus runs the read-decide-write sequence as one conditional
// update: the transition table decides, then the write only lands if the
// stored status still equals the snapshot the decision was made against.
func (r *Repo) UpdatePaymentStatus(ctx context.Context, orderID string, from, to PaymentStatus) error {
	if _, err := TransitionPayment(from, to); err != nil {
		return err
	}
	ct, err := r.DB.Exec(ctx, `
		UPDATE orders SET payment_status=$3, updated_at=now()
		WHERE id=$1 AND payment_status=$2`, orderID, from, to)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		var cur PaymentStatus
		if err := r.DB.QueryRow(ctx, `SELECT payment_status FROM orders WHERE id=$1`, orderID).Scan(&cur); err != nil {
			return err
		}
		return fmt.Errorf("%w: payment is %s, expected %s", ErrStaleStatus, cur, from)
	}
	return nil
}

// CountSuccessRedemptions aggregates SUCCESS redemptions across every
// entitlement issued for the order — the refund gate's single input.
func (r *Repo) CountSuccessRedemptions(ctx context.Context, orderID string) (int, error) {
	var n int
	err := r.DB.QueryRow(ctx, `
		SELECT COUNT(*) FROM redemptions rd
		JOIN entitlements e ON e.id = rd.entitlement_id
		WHERE e.order_id = $1 AND rd.outcome = 'SUCCESS'`, orderID).Scan(&n)
	return n, err
}

// SetFulfillment records the resolved flow once the fulfillment worker has
// processed the paid order.
func (r *Repo) SetFulfillment(ctx context.Context, orderID string, flow FulfillmentFlow) error {
	_, err := r.DB.Exec(ctx, `UPDATE orders SET fulfillment_flow=$2, updated_at=now() WHERE id=$1`, orderID, flow)
	return err
}

// InsertSettlement writes one settlement record per (dealer, cycle); the
// unique index makes a repeat run a no-op (inserted=false).
func (r *Repo) InsertSettlement(ctx context.Context, dealerID, cycle string, amountCents int) (inserted bool, err error) {
	ct, err := r.DB.Exec(ctx, `
		INSERT INTO settlement_records(id, dealer_id, cycle, amount_cents)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (dealer_id, cycle) DO NOTHING
	`, uuid.NewString(), dealerID, cycle, amountCents)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}
