package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cambio/internal/adapters"
	"cambio/internal/domain"
)

var (
	ErrBankNameRequired      = errors.New("bank name is required")
	ErrAccountNumberRequired = errors.New("account number is required")
	ErrInvalidAccountType    = errors.New("account type must be savings or checking")
)

type CreateInput struct {
	BankName      string
	AccountNumber string
	Currency      string
	AccountType   string
}

type Service struct {
	repo adapters.AccountRepository
}

func (s *Service) List(ctx context.Context, session domain.Session) ([]domain.BankAccount, error) {
	accounts, err := s.repo.ListByUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Create registers a bank account for the session user. The same bank name
// and account number can only be registered once per user.
func (s *Service) Create(ctx context.Context, session domain.Session, in CreateInput) (domain.BankAccount, error) {
	acc, err := validate(in)
	if err != nil {
		return domain.BankAccount{}, err
	}
	acc.UserID = session.UserID

	created, err := s.repo.Create(ctx, acc)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateAccount) {
			return domain.BankAccount{}, err
		}
		return domain.BankAccount{}, fmt.Errorf("failed to create account: %w", err)
	}
	return created, nil
}

func (s *Service) Delete(ctx context.Context, session domain.Session, id string) error {
	return s.repo.Delete(ctx, session.UserID, id)
}

func validate(in CreateInput) (domain.BankAccount, error) {
	acc := domain.BankAccount{
		BankName:      strings.TrimSpace(in.BankName),
		AccountNumber: strings.TrimSpace(in.AccountNumber),
	}
	if acc.BankName == "" {
		return domain.BankAccount{}, ErrBankNameRequired
	}
	if acc.AccountNumber == "" {
		return domain.BankAccount{}, ErrAccountNumberRequired
	}

	currency, err := domain.ParseCurrency(in.Currency)
	if err != nil {
		return domain.BankAccount{}, err
	}
	acc.Currency = currency

	switch t := domain.AccountType(strings.ToLower(strings.TrimSpace(in.AccountType))); t {
	case "":
		acc.AccountType = domain.AccountSavings
	case domain.AccountSavings, domain.AccountChecking:
		acc.AccountType = t
	default:
		return domain.BankAccount{}, ErrInvalidAccountType
	}
	return acc, nil
}

func NewService(repo adapters.AccountRepository) *Service {
	return &Service{repo: repo}
}
