package exchange

import (
	"context"
	"errors"
	"fmt"

	"cambio/internal/adapters"
	"cambio/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrWizardNotFound    = errors.New("exchange not found or expired")
	ErrWizardUnavailable = errors.New("exchange could not be started, try again")
)

// Store keeps live wizards in memory. Entries may expire. Set reports
// whether the wizard was stored.
type Store interface {
	Get(id string) (*Wizard, bool)
	Set(w *Wizard) bool
	Delete(id string)
}

// Recorder receives wizard and quote events for metrics.
type Recorder interface {
	QuoteServed(source string)
	Transition(from, to string, ok bool)
	Submission(source string, amount float64, ok bool)
}

type nopRecorder struct{}

func (nopRecorder) QuoteServed(string)               {}
func (nopRecorder) Transition(string, string, bool)  {}
func (nopRecorder) Submission(string, float64, bool) {}

type Service struct {
	calc       *Calculator
	store      Store
	accounts   adapters.AccountRepository
	operations adapters.OperationRepository
	recorder   Recorder
}

func (s *Service) Calculator() *Calculator { return s.calc }

// Quote parses raw input and returns the calculator result for it.
func (s *Service) Quote(rawAmount string, source domain.Currency) Quote {
	s.recorder.QuoteServed(string(source))
	return s.calc.Quote(ParseAmount(rawAmount), source)
}

// Start opens a wizard for the session user with their current accounts.
func (s *Service) Start(ctx context.Context, session domain.Session) (View, error) {
	accounts, err := s.accounts.ListByUser(ctx, session.UserID)
	if err != nil {
		return View{}, fmt.Errorf("failed to load accounts for user %q: %w", session.UserID, err)
	}
	w := NewWizard(uuid.NewString(), session, s.calc, accounts)
	if !s.store.Set(w) {
		return View{}, ErrWizardUnavailable
	}
	return w.View(), nil
}

func (s *Service) Get(session domain.Session, id string) (View, error) {
	w, err := s.lookup(session, id)
	if err != nil {
		return View{}, err
	}
	return w.View(), nil
}

func (s *Service) Simulate(session domain.Session, id string, f Form) (View, error) {
	w, err := s.lookup(session, id)
	if err != nil {
		return View{}, err
	}
	if err = w.Simulate(f); err != nil {
		return View{}, err
	}
	return w.View(), nil
}

func (s *Service) Confirm(session domain.Session, id string) (View, error) {
	return s.transition(session, id, StepConfirm, (*Wizard).Confirm)
}

func (s *Service) Proceed(session domain.Session, id string) (View, error) {
	return s.transition(session, id, StepTransfer, (*Wizard).Proceed)
}

func (s *Service) Back(session domain.Session, id string) (View, error) {
	w, err := s.lookup(session, id)
	if err != nil {
		return View{}, err
	}
	from := w.View().Step
	err = w.Back()
	view := w.View()
	s.recorder.Transition(string(from), string(view.Step), err == nil)
	if err != nil {
		return View{}, err
	}
	return view, nil
}

// Complete submits the operation. On failure the wizard stays in transfer.
func (s *Service) Complete(ctx context.Context, session domain.Session, id string, transferNumber string) (View, error) {
	w, err := s.lookup(session, id)
	if err != nil {
		return View{}, err
	}
	from := w.View().Step
	op, err := w.Complete(ctx, s.operations, transferNumber)
	s.recorder.Transition(string(from), string(StepComplete), err == nil)
	if err != nil {
		if errors.Is(err, ErrSubmissionFailed) {
			draft := w.View().Result
			s.recorder.Submission(string(draft.Source), draft.Amount.InexactFloat64(), false)
		}
		return View{}, err
	}
	s.recorder.Submission(string(op.SourceCurrency), op.SourceAmount.InexactFloat64(), true)
	return w.View(), nil
}

// Discard drops the wizard, e.g. when the user leaves the flow.
func (s *Service) Discard(session domain.Session, id string) error {
	if _, err := s.lookup(session, id); err != nil {
		return err
	}
	s.store.Delete(id)
	return nil
}

func (s *Service) transition(session domain.Session, id string, to Step, fn func(*Wizard) error) (View, error) {
	w, err := s.lookup(session, id)
	if err != nil {
		return View{}, err
	}
	from := w.View().Step
	err = fn(w)
	s.recorder.Transition(string(from), string(to), err == nil)
	if err != nil {
		return View{}, err
	}
	return w.View(), nil
}

// lookup hides wizards owned by other users behind ErrWizardNotFound.
func (s *Service) lookup(session domain.Session, id string) (*Wizard, error) {
	w, ok := s.store.Get(id)
	if !ok || w.UserID() != session.UserID {
		return nil, ErrWizardNotFound
	}
	return w, nil
}

func NewService(calc *Calculator, store Store, accounts adapters.AccountRepository, operations adapters.OperationRepository, recorder Recorder) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{calc: calc, store: store, accounts: accounts, operations: operations, recorder: recorder}
}

// FormFromInput builds a Form from raw request values.
func FormFromInput(rawAmount, rawSource, sourceAccountID, targetAccountID string) (Form, error) {
	source, err := domain.ParseCurrency(rawSource)
	if err != nil {
		return Form{}, err
	}
	return Form{
		Amount:          ParseAmount(rawAmount),
		Source:          source,
		SourceAccountID: sourceAccountID,
		TargetAccountID: targetAccountID,
	}, nil
}

