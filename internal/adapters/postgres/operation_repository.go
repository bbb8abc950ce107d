package postgres

import (
	"context"
	"fmt"

	"cambio/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultOperationsLimit = 20

type OperationRepository struct {
	pool *pgxpool.Pool
}

const operationColumns = `
	id::text, user_id::text, source_currency, target_currency,
	source_amount::text, target_amount::text, exchange_rate::text,
	coalesce(source_account_id::text, ''), coalesce(target_account_id::text, ''),
	coalesce(transfer_number, ''), status, created_at, completed_at`

func scanOperation(row rowScanner) (domain.Operation, error) {
	var (
		op                         domain.Operation
		sourceAmount, targetAmount string
		rate                       string
	)
	if err := row.Scan(
		&op.ID, &op.UserID, &op.SourceCurrency, &op.TargetCurrency,
		&sourceAmount, &targetAmount, &rate,
		&op.SourceAccountID, &op.TargetAccountID,
		&op.TransferNumber, &op.Status, &op.CreatedAt, &op.CompletedAt,
	); err != nil {
		return domain.Operation{}, err
	}

	var err error
	if op.SourceAmount, err = parseNumeric(sourceAmount, "source_amount"); err != nil {
		return domain.Operation{}, err
	}
	if op.TargetAmount, err = parseNumeric(targetAmount, "target_amount"); err != nil {
		return domain.Operation{}, err
	}
	if op.ExchangeRate, err = parseNumeric(rate, "exchange_rate"); err != nil {
		return domain.Operation{}, err
	}
	return op, nil
}

func (r *OperationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Operation, error) {
	if limit <= 0 {
		limit = defaultOperationsLimit
	}
	q := `select ` + operationColumns + ` from exchange_operations where user_id = $1 order by created_at desc limit $2;`

	rows, err := r.pool.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations of user %q: %w", userID, err)
	}
	defer rows.Close()

	ops := make([]domain.Operation, 0, limit)
	for rows.Next() {
		op, scanErr := scanOperation(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", scanErr)
		}
		ops = append(ops, op)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operations: %w", err)
	}
	return ops, nil
}

// Create inserts the operation as submitted. Nothing here deduplicates
// repeated submissions.
func (r *OperationRepository) Create(ctx context.Context, op domain.Operation) (domain.Operation, error) {
	q := `
		insert into exchange_operations (
			user_id, source_currency, target_currency, source_amount, target_amount, exchange_rate,
			source_account_id, target_account_id, transfer_number, status
		)
		values ($1, $2, $3, $4::numeric, $5::numeric, $6::numeric, nullif($7, '')::uuid, nullif($8, '')::uuid, nullif($9, ''), $10)
		returning ` + operationColumns + `;`

	created, err := scanOperation(r.pool.QueryRow(ctx, q,
		op.UserID, op.SourceCurrency, op.TargetCurrency,
		op.SourceAmount.String(), op.TargetAmount.String(), op.ExchangeRate.String(),
		op.SourceAccountID, op.TargetAccountID, op.TransferNumber, op.Status,
	))
	if err != nil {
		return domain.Operation{}, fmt.Errorf("failed to insert operation for user %q: %w", op.UserID, err)
	}
	return created, nil
}

func NewOperationRepository(pool *pgxpool.Pool) *OperationRepository {
	return &OperationRepository{pool: pool}
}
