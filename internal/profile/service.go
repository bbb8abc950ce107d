package profile

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"cambio/internal/adapters"
	"cambio/internal/domain"
)

var (
	ErrFullNameRequired = errors.New("full name is required")
	ErrInvalidDNI       = errors.New("DNI must have exactly 8 digits")
)

var dniPattern = regexp.MustCompile(`^\d{8}$`)

type UpsertInput struct {
	FullName string
	DNI      string
	Phone    *string
}

type Service struct {
	repo adapters.ProfileRepository
}

// Get returns domain.ErrNotFound until the user saves a profile.
func (s *Service) Get(ctx context.Context, session domain.Session) (domain.Profile, error) {
	return s.repo.GetByUser(ctx, session.UserID)
}

// Upsert saves the user's profile. A blank full name falls back to the name
// carried by the session.
func (s *Service) Upsert(ctx context.Context, session domain.Session, in UpsertInput) (domain.Profile, error) {
	p := domain.Profile{
		UserID:   session.UserID,
		FullName: strings.TrimSpace(in.FullName),
		DNI:      strings.TrimSpace(in.DNI),
	}
	if p.FullName == "" {
		p.FullName = session.FullName
	}
	if p.FullName == "" {
		return domain.Profile{}, ErrFullNameRequired
	}
	if !dniPattern.MatchString(p.DNI) {
		return domain.Profile{}, ErrInvalidDNI
	}
	if in.Phone != nil {
		if phone := strings.TrimSpace(*in.Phone); phone != "" {
			p.Phone = &phone
		}
	}

	saved, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}
	return saved, nil
}

func NewService(repo adapters.ProfileRepository) *Service {
	return &Service{repo: repo}
}
