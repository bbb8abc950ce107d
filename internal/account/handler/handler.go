package handler

import (
	"context"

	"cambio/internal/account"
	"cambio/internal/domain"
)

const maxBodyBytes = 1 << 10

type AccountService interface {
	List(ctx context.Context, session domain.Session) ([]domain.BankAccount, error)
	Create(ctx context.Context, session domain.Session, in account.CreateInput) (domain.BankAccount, error)
	Delete(ctx context.Context, session domain.Session, id string) error
}

type Handler struct {
	service AccountService
}

func NewAccountHandler(service AccountService) *Handler {
	return &Handler{service: service}
}
