package postgres

import (
	"context"
	"fmt"

	"cambio/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountRepository struct {
	pool *pgxpool.Pool
}

const accountColumns = `id::text, user_id::text, bank_name, account_number, currency, account_type, created_at`

func scanAccount(row rowScanner) (domain.BankAccount, error) {
	var acc domain.BankAccount
	err := row.Scan(&acc.ID, &acc.UserID, &acc.BankName, &acc.AccountNumber, &acc.Currency, &acc.AccountType, &acc.CreatedAt)
	return acc, err
}

func (r *AccountRepository) ListByUser(ctx context.Context, userID string) ([]domain.BankAccount, error) {
	q := `select ` + accountColumns + ` from bank_accounts where user_id = $1 order by created_at desc;`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts of user %q: %w", userID, err)
	}
	defer rows.Close()

	accounts := make([]domain.BankAccount, 0, 8)
	for rows.Next() {
		acc, scanErr := scanAccount(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan account: %w", scanErr)
		}
		accounts = append(accounts, acc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) Create(ctx context.Context, acc domain.BankAccount) (domain.BankAccount, error) {
	q := `
		insert into bank_accounts (user_id, bank_name, account_number, currency, account_type)
		values ($1, $2, $3, $4, $5)
		returning ` + accountColumns + `;`

	created, err := scanAccount(r.pool.QueryRow(ctx, q, acc.UserID, acc.BankName, acc.AccountNumber, acc.Currency, acc.AccountType))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.BankAccount{}, domain.ErrDuplicateAccount
		}
		return domain.BankAccount{}, fmt.Errorf("failed to insert account for user %q: %w", acc.UserID, err)
	}
	return created, nil
}

func (r *AccountRepository) Delete(ctx context.Context, userID string, id string) error {
	const q = `delete from bank_accounts where id = $1 and user_id = $2;`

	tag, err := r.pool.Exec(ctx, q, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete account %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}
