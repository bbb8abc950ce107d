package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cambio/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertRepository struct {
	pool *pgxpool.Pool
}

const alertColumns = `id::text, user_id::text, target_rate::text, direction, is_active, notified_at, created_at`

func scanAlert(row rowScanner) (domain.Alert, error) {
	var (
		a    domain.Alert
		rate string
	)
	if err := row.Scan(&a.ID, &a.UserID, &rate, &a.Direction, &a.IsActive, &a.NotifiedAt, &a.CreatedAt); err != nil {
		return domain.Alert{}, err
	}
	target, err := parseNumeric(rate, "target_rate")
	if err != nil {
		return domain.Alert{}, err
	}
	a.TargetRate = target
	return a, nil
}

func (r *AlertRepository) list(ctx context.Context, q string, args ...any) ([]domain.Alert, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]domain.Alert, 0, 8)
	for rows.Next() {
		a, scanErr := scanAlert(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", scanErr)
		}
		alerts = append(alerts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alerts: %w", err)
	}
	return alerts, nil
}

func (r *AlertRepository) ListByUser(ctx context.Context, userID string) ([]domain.Alert, error) {
	return r.list(ctx, `select `+alertColumns+` from exchange_alerts where user_id = $1 order by created_at desc;`, userID)
}

// ListWatching returns active alerts that have not fired yet.
func (r *AlertRepository) ListWatching(ctx context.Context) ([]domain.Alert, error) {
	return r.list(ctx, `select `+alertColumns+` from exchange_alerts where is_active and notified_at is null;`)
}

func (r *AlertRepository) Create(ctx context.Context, a domain.Alert) (domain.Alert, error) {
	q := `
		insert into exchange_alerts (user_id, target_rate, direction, is_active)
		values ($1, $2, $3, $4)
		returning ` + alertColumns + `;`

	created, err := scanAlert(r.pool.QueryRow(ctx, q, a.UserID, a.TargetRate.String(), a.Direction, a.IsActive))
	if err != nil {
		return domain.Alert{}, fmt.Errorf("failed to insert alert for user %q: %w", a.UserID, err)
	}
	return created, nil
}

func (r *AlertRepository) ToggleActive(ctx context.Context, userID string, id string) (domain.Alert, error) {
	q := `
		update exchange_alerts set is_active = not is_active
		where id = $1 and user_id = $2
		returning ` + alertColumns + `;`

	a, err := scanAlert(r.pool.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Alert{}, domain.ErrNotFound
		}
		return domain.Alert{}, fmt.Errorf("failed to toggle alert %q: %w", id, err)
	}
	return a, nil
}

func (r *AlertRepository) Delete(ctx context.Context, userID string, id string) error {
	const q = `delete from exchange_alerts where id = $1 and user_id = $2;`

	tag, err := r.pool.Exec(ctx, q, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete alert %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AlertRepository) MarkNotified(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	const q = `update exchange_alerts set notified_at = $2 where id = any($1::uuid[]) and notified_at is null;`

	if _, err := r.pool.Exec(ctx, q, ids, at); err != nil {
		return fmt.Errorf("failed to mark %d alerts notified: %w", len(ids), err)
	}
	return nil
}

func NewAlertRepository(pool *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{pool: pool}
}
