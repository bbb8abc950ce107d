package handler

import (
	"context"
	"time"

	"cambio/internal/alert"
	"cambio/internal/domain"
)

const maxBodyBytes = 1 << 10

type AlertService interface {
	List(ctx context.Context, session domain.Session) ([]domain.Alert, error)
	Create(ctx context.Context, session domain.Session, in alert.CreateInput) (domain.Alert, error)
	Toggle(ctx context.Context, session domain.Session, id string) (domain.Alert, error)
	Delete(ctx context.Context, session domain.Session, id string) error
}

type Handler struct {
	service AlertService
}

type AlertResponse struct {
	ID         string     `json:"id" example:"0b6f3c8e-3c36-4d0c-9e55-7c1c0e0b1f10"`
	TargetRate float64    `json:"target_rate" example:"3.75"`
	Direction  string     `json:"direction" example:"above"`
	IsActive   bool       `json:"is_active" example:"true"`
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at" example:"2025-01-02T15:04:05Z"`
}

func toResponse(a domain.Alert) AlertResponse {
	return AlertResponse{
		ID:         a.ID,
		TargetRate: a.TargetRate.InexactFloat64(),
		Direction:  string(a.Direction),
		IsActive:   a.IsActive,
		NotifiedAt: a.NotifiedAt,
		CreatedAt:  a.CreatedAt,
	}
}

func NewAlertHandler(service AlertService) *Handler {
	return &Handler{service: service}
}
