package handler

import (
	"context"

	"cambio/internal/domain"
	"cambio/internal/profile"
)

const maxBodyBytes = 1 << 10

type ProfileService interface {
	Get(ctx context.Context, session domain.Session) (domain.Profile, error)
	Upsert(ctx context.Context, session domain.Session, in profile.UpsertInput) (domain.Profile, error)
}

type Handler struct {
	service ProfileService
}

func NewProfileHandler(service ProfileService) *Handler {
	return &Handler{service: service}
}
