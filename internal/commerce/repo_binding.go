package commerce

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BindingRepo struct{ DB *pgxpool.Pool }

func (r *BindingRepo) ListStatuses(ctx context.Context, userID string) ([]BindingStatus, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT status FROM enterprise_bindings WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BindingStatus
	for rows.Next() {
		var s BindingStatus
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Submit files a new binding application unless the gate rejects it. The
// history read and the insert share one transaction so a concurrent approval
// cannot slip between them.
func (r *BindingRepo) Submit(ctx context.Context, userID, enterpriseID string) (bindingID string, ok bool, err error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
		SELECT status FROM enterprise_bindings WHERE user_id=$1 FOR UPDATE`, userID)
	if err != nil {
		return "", false, err
	}
	var history []BindingStatus
	for rows.Next() {
		var s BindingStatus
		if err := rows.Scan(&s); err != nil {
			rows.Close()
			return "", false, err
		}
		history = append(history, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return "", false, err
	}

	if !CanSubmitBinding(history) {
		return "", false, nil
	}

	bindingID = uuid.NewString()
	if _, err := tx.Exec(ctx, `
		INSERT INTO enterprise_bindings(id, user_id, enterprise_id, status)
		VALUES ($1, $2, $3, 'PENDING')`, bindingID, userID, enterpriseID); err != nil {
		return "", false, err
	}
	return bindingID, true, tx.Commit(ctx)
}
