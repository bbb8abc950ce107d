package postgres

import (
	"context"
	"errors"
	"fmt"

	"cambio/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

const profileColumns = `id::text, user_id::text, full_name, dni, phone, created_at, updated_at`

func scanProfile(row rowScanner) (domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.FullName, &p.DNI, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *ProfileRepository) GetByUser(ctx context.Context, userID string) (domain.Profile, error) {
	q := `select ` + profileColumns + ` from profiles where user_id = $1;`

	p, err := scanProfile(r.pool.QueryRow(ctx, q, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, domain.ErrNotFound
		}
		return domain.Profile{}, fmt.Errorf("failed to select profile of user %q: %w", userID, err)
	}
	return p, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	q := `
		insert into profiles (user_id, full_name, dni, phone)
		values ($1, $2, $3, $4)
		on conflict (user_id) do update
		  set full_name = excluded.full_name, dni = excluded.dni, phone = excluded.phone, updated_at = now()
		returning ` + profileColumns + `;`

	saved, err := scanProfile(r.pool.QueryRow(ctx, q, p.UserID, p.FullName, p.DNI, p.Phone))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to upsert profile of user %q: %w", p.UserID, err)
	}
	return saved, nil
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}
