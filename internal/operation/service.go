package operation

import (
	"context"
	"fmt"

	"cambio/internal/adapters"
	"cambio/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Service struct {
	repo adapters.OperationRepository
}

// Recent lists the user's operations newest first. limit is clamped to
// [1, MaxLimit]; zero means DefaultLimit.
func (s *Service) Recent(ctx context.Context, session domain.Session, limit int) ([]domain.Operation, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	ops, err := s.repo.ListByUser(ctx, session.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	return ops, nil
}

func NewService(repo adapters.OperationRepository) *Service {
	return &Service{repo: repo}
}
