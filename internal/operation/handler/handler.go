package handler

import (
	"context"
	"time"

	"cambio/internal/domain"
)

type OperationService interface {
	Recent(ctx context.Context, session domain.Session, limit int) ([]domain.Operation, error)
}

type Handler struct {
	service OperationService
}

type OperationResponse struct {
	ID              string     `json:"id" example:"9d2c7a55-0b1e-4f4e-8f3e-3b2a1c0d9e8f"`
	SourceCurrency  string     `json:"source_currency" example:"PEN"`
	TargetCurrency  string     `json:"target_currency" example:"USD"`
	SourceAmount    float64    `json:"source_amount" example:"1000"`
	TargetAmount    float64    `json:"target_amount" example:"264.55"`
	ExchangeRate    float64    `json:"exchange_rate" example:"3.78"`
	SourceAccountID string     `json:"source_account_id,omitempty"`
	TargetAccountID string     `json:"target_account_id,omitempty"`
	TransferNumber  string     `json:"transfer_number,omitempty" example:"OP-123456"`
	Status          string     `json:"status" example:"pending"`
	CreatedAt       time.Time  `json:"created_at" example:"2025-01-02T15:04:05Z"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// ToResponse is shared with the exchange handler, which renders the
// operation created by a completed wizard.
func ToResponse(op domain.Operation) OperationResponse {
	return OperationResponse{
		ID:              op.ID,
		SourceCurrency:  string(op.SourceCurrency),
		TargetCurrency:  string(op.TargetCurrency),
		SourceAmount:    op.SourceAmount.InexactFloat64(),
		TargetAmount:    op.TargetAmount.InexactFloat64(),
		ExchangeRate:    op.ExchangeRate.InexactFloat64(),
		SourceAccountID: op.SourceAccountID,
		TargetAccountID: op.TargetAccountID,
		TransferNumber:  op.TransferNumber,
		Status:          string(op.Status),
		CreatedAt:       op.CreatedAt,
		CompletedAt:     op.CompletedAt,
	}
}

func NewOperationHandler(service OperationService) *Handler {
	return &Handler{service: service}
}
