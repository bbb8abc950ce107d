package adapters

import (
	"context"
	"time"

	"cambio/internal/domain"
)

// AccountRepository stores bank accounts scoped by user id.
type AccountRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.BankAccount, error)
	Create(ctx context.Context, acc domain.BankAccount) (domain.BankAccount, error)
	Delete(ctx context.Context, userID string, id string) error
}

type AlertRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Alert, error)
	Create(ctx context.Context, alert domain.Alert) (domain.Alert, error)
	ToggleActive(ctx context.Context, userID string, id string) (domain.Alert, error)
	Delete(ctx context.Context, userID string, id string) error
	ListWatching(ctx context.Context) ([]domain.Alert, error)
	MarkNotified(ctx context.Context, ids []string, at time.Time) error
}

type OperationRepository interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Operation, error)
	Create(ctx context.Context, op domain.Operation) (domain.Operation, error)
}

type ProfileRepository interface {
	GetByUser(ctx context.Context, userID string) (domain.Profile, error)
	Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error)
}
