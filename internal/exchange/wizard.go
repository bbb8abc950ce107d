package exchange

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"cambio/internal/domain"

	"github.com/shopspring/decimal"
)

type Step string

const (
	StepSimulate Step = "simulate"
	StepConfirm  Step = "confirm"
	StepTransfer Step = "transfer"
	StepComplete Step = "complete"
)

var (
	ErrInvalidTransition      = errors.New("transition not allowed from current step")
	ErrAccountsRequired       = errors.New("source and destination accounts are required")
	ErrTransferNumberRequired = errors.New("bank transfer number is required")
	ErrSubmissionInFlight     = errors.New("operation submission already in progress")
	ErrSubmissionFailed       = errors.New("operation could not be registered, try again")
)

var defaultAmount = decimal.NewFromInt(1000)

// Submitter persists the operation created when the wizard completes.
type Submitter interface {
	Create(ctx context.Context, op domain.Operation) (domain.Operation, error)
}

// Form is the editable part of the simulate step.
type Form struct {
	Amount          decimal.Decimal
	Source          domain.Currency
	SourceAccountID string
	TargetAccountID string
}

// Wizard walks one exchange through simulate, confirm, transfer and complete.
// All methods are safe for concurrent use.
type Wizard struct {
	mu sync.Mutex

	id        string
	userID    string
	calc      *Calculator
	accounts  []domain.BankAccount
	createdAt time.Time

	step           Step
	form           Form
	transferNumber string
	operation      *domain.Operation
	submitting     bool
}

// View is a point-in-time copy of the wizard for rendering.
type View struct {
	ID             string
	Step           Step
	Form           Form
	Result         Result
	TransferNumber string
	Operation      *domain.Operation
	Submitting     bool
	SourceAccounts []domain.BankAccount
	TargetAccounts []domain.BankAccount
	// Message carries the below-minimum hint for the current amount.
	Message   string
	CreatedAt time.Time
}

func (w *Wizard) ID() string { return w.id }

func (w *Wizard) UserID() string { return w.userID }

func (w *Wizard) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.view()
}

func (w *Wizard) view() View {
	res := w.calc.Convert(w.form.Amount, w.form.Source)
	v := View{
		ID:             w.id,
		Step:           w.step,
		Form:           w.form,
		Result:         res,
		TransferNumber: w.transferNumber,
		Submitting:     w.submitting,
		SourceAccounts: domain.FilterByCurrency(w.accounts, res.Source),
		TargetAccounts: domain.FilterByCurrency(w.accounts, res.Target),
		CreatedAt:      w.createdAt,
	}
	if w.operation != nil {
		op := *w.operation
		v.Operation = &op
	}
	if err := CheckAmount(res.Amount, res.Source, res.Minimum); err != nil {
		v.Message = err.Error()
	}
	return v
}

// Simulate replaces the form. Only allowed while simulating.
func (w *Wizard) Simulate(f Form) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepSimulate {
		return ErrInvalidTransition
	}
	if f.Source != domain.PEN && f.Source != domain.USD {
		return domain.ErrUnsupportedCurrency
	}
	if f.Amount.IsNegative() {
		f.Amount = decimal.Zero
	}
	f.Amount = f.Amount.Round(amountPlaces)
	w.form = f
	return nil
}

// Confirm moves simulate -> confirm once the amount is within limits and
// both accounts are picked from the lists matching the pair.
func (w *Wizard) Confirm() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepSimulate {
		return ErrInvalidTransition
	}
	source := w.form.Source
	minimum := w.calc.Minimum(source)
	if !IsValid(w.form.Amount, minimum) {
		return belowMinimum(source, minimum)
	}
	if ExceedsMaximum(w.form.Amount) {
		return aboveMaximum(source)
	}
	if !hasAccount(w.accounts, w.form.SourceAccountID, source) ||
		!hasAccount(w.accounts, w.form.TargetAccountID, source.Counter()) {
		return ErrAccountsRequired
	}
	w.step = StepConfirm
	return nil
}

// Proceed moves confirm -> transfer.
func (w *Wizard) Proceed() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepConfirm {
		return ErrInvalidTransition
	}
	w.step = StepTransfer
	return nil
}

// Back undoes one step: confirm -> simulate or transfer -> confirm.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.submitting {
		return ErrSubmissionInFlight
	}
	switch w.step {
	case StepConfirm:
		w.step = StepSimulate
	case StepTransfer:
		w.step = StepConfirm
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Complete records the bank transfer reference and submits one pending
// operation. A failed submission leaves the wizard in transfer so the user
// can retry. The submit call runs without holding the lock.
func (w *Wizard) Complete(ctx context.Context, sub Submitter, transferNumber string) (domain.Operation, error) {
	transferNumber = strings.TrimSpace(transferNumber)

	w.mu.Lock()
	if w.step != StepTransfer {
		w.mu.Unlock()
		return domain.Operation{}, ErrInvalidTransition
	}
	if w.submitting {
		w.mu.Unlock()
		return domain.Operation{}, ErrSubmissionInFlight
	}
	if transferNumber == "" {
		w.mu.Unlock()
		return domain.Operation{}, ErrTransferNumberRequired
	}
	w.submitting = true
	w.transferNumber = transferNumber
	op := w.operationDraft()
	w.mu.Unlock()

	created, err := sub.Create(ctx, op)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	if err != nil {
		return domain.Operation{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	w.operation = &created
	w.step = StepComplete
	return created, nil
}

func (w *Wizard) operationDraft() domain.Operation {
	res := w.calc.Convert(w.form.Amount, w.form.Source)
	return domain.Operation{
		UserID:          w.userID,
		SourceCurrency:  res.Source,
		TargetCurrency:  res.Target,
		SourceAmount:    res.Amount,
		TargetAmount:    res.Converted,
		ExchangeRate:    res.EffectiveRate,
		SourceAccountID: w.form.SourceAccountID,
		TargetAccountID: w.form.TargetAccountID,
		TransferNumber:  w.transferNumber,
		Status:          domain.OperationPending,
	}
}

func hasAccount(accounts []domain.BankAccount, id string, c domain.Currency) bool {
	if id == "" {
		return false
	}
	for _, acc := range accounts {
		if acc.ID == id && acc.Currency == c {
			return true
		}
	}
	return false
}

// NewWizard starts in simulate with the default 1000 PEN form. accounts is
// the session user's account list; it is copied.
func NewWizard(id string, session domain.Session, calc *Calculator, accounts []domain.BankAccount) *Wizard {
	return &Wizard{
		id:        id,
		userID:    session.UserID,
		calc:      calc,
		accounts:  append([]domain.BankAccount(nil), accounts...),
		createdAt: time.Now().UTC(),
		step:      StepSimulate,
		form:      Form{Amount: defaultAmount, Source: domain.PEN},
	}
}
