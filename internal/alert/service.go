package alert

import (
	"context"
	"errors"
	"fmt"

	"cambio/internal/adapters"
	"cambio/internal/domain"

	"github.com/shopspring/decimal"
)

const ratePlaces = 4

var (
	ErrInvalidTargetRate = errors.New("target rate must be greater than zero")
	ErrInvalidDirection  = errors.New("direction must be above or below")
)

type CreateInput struct {
	TargetRate decimal.Decimal
	Direction  domain.AlertDirection
}

type Service struct {
	repo adapters.AlertRepository
}

// List returns the user's alerts, newest first.
func (s *Service) List(ctx context.Context, session domain.Session) ([]domain.Alert, error) {
	alerts, err := s.repo.ListByUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// Create registers an active alert. An empty direction means above.
func (s *Service) Create(ctx context.Context, session domain.Session, in CreateInput) (domain.Alert, error) {
	if !in.TargetRate.IsPositive() {
		return domain.Alert{}, ErrInvalidTargetRate
	}
	switch in.Direction {
	case "":
		in.Direction = domain.DirectionAbove
	case domain.DirectionAbove, domain.DirectionBelow:
	default:
		return domain.Alert{}, ErrInvalidDirection
	}

	created, err := s.repo.Create(ctx, domain.Alert{
		UserID:     session.UserID,
		TargetRate: in.TargetRate.Round(ratePlaces),
		Direction:  in.Direction,
		IsActive:   true,
	})
	if err != nil {
		return domain.Alert{}, fmt.Errorf("failed to create alert: %w", err)
	}
	return created, nil
}

// Toggle flips the active flag of one of the user's alerts.
func (s *Service) Toggle(ctx context.Context, session domain.Session, id string) (domain.Alert, error) {
	return s.repo.ToggleActive(ctx, session.UserID, id)
}

func (s *Service) Delete(ctx context.Context, session domain.Session, id string) error {
	return s.repo.Delete(ctx, session.UserID, id)
}

func NewService(repo adapters.AlertRepository) *Service {
	return &Service{repo: repo}
}
