package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domainLoan "prestamos-backend/internal/domain/loan"
	"prestamos-backend/internal/domain/uow"
	"prestamos-backend/pkg/id"
	"prestamos-backend/pkg/money"
)

// ErrInvalidInput wraps every caller-input failure; nothing is persisted when
// it is returned.
var ErrInvalidInput = errors.New("invalid input")

const (
	minInstallments = 1
	maxInstallments = 120
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type CreateLoanInput struct {
	ClientID     string
	RateID       string
	Principal    decimal.Decimal
	Installments int
	Frequency    domainLoan.Frequency
	IssueDate    time.Time
	FirstDueDate time.Time
	Guarantee    string
	CreatedBy    string
}

func (in *CreateLoanInput) validate() error {
	if !in.Principal.IsPositive() {
		return fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	}
	if in.Installments < minInstallments || in.Installments > maxInstallments {
		return fmt.Errorf("%w: installments must be between %d and %d", ErrInvalidInput, minInstallments, maxInstallments)
	}
	if !domainLoan.ValidFrequency(in.Frequency) {
		return fmt.Errorf("%w: unknown payment frequency %q", ErrInvalidInput, in.Frequency)
	}
	if !money.DateOnly(in.FirstDueDate).After(money.DateOnly(in.IssueDate)) {
		return fmt.Errorf("%w: first due date must be after issue date", ErrInvalidInput)
	}
	return nil
}

// Create validates the request, resolves the rate, generates the schedule and
// persists loan plus installments in one transaction. The sequence number is
// assigned inside the same transaction as max(sequence)+1.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cl, err := r.Clients.GetByClientID(ctx, in.ClientID)
		if err != nil {
			return fmt.Errorf("%w: unknown client %s", ErrInvalidInput, in.ClientID)
		}
		rt, err := r.Rates.GetByRateID(ctx, in.RateID)
		if err != nil {
			return fmt.Errorf("%w: unknown rate %s", ErrInvalidInput, in.RateID)
		}

		seq, err := r.Loans.MaxSequence(ctx)
		if err != nil {
			return err
		}

		l := &domainLoan.Loan{
			LoanID:       id.NewID32(),
			Sequence:     seq + 1,
			ClientRef:    cl.ID,
			RateRef:      rt.ID,
			Principal:    money.Cents(in.Principal),
			Installments: in.Installments,
			Frequency:    in.Frequency,
			IssueDate:    money.DateOnly(in.IssueDate),
			FirstDueDate: money.DateOnly(in.FirstDueDate),
			Guarantee:    in.Guarantee,
			Status:       domainLoan.StatusActive,
			CreatedBy:    in.CreatedBy,
		}

		// Aborts before anything is written on unsupported rate kinds.
		items, err := BuildSchedule(l, rt)
		if err != nil {
			return err
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		for _, c := range items {
			c.LoanRef = l.ID
		}
		if err := r.Loans.CreateInstallments(ctx, items); err != nil {
			return err
		}
		dto = toLoanDTO(l, items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return domainLoan.ErrNotFound
		}
		items, err := r.Loans.ListInstallments(ctx, l.ID)
		if err != nil {
			return err
		}
		dto = toLoanDTO(l, items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Detail adds the running aggregates shown on the loan page: paid totals,
// outstanding balance and accrued late fees as of the given date.
func (u *Usecase) Detail(ctx context.Context, loanID string, asOf time.Time) (*LoanDetailDTO, error) {
	var out *LoanDetailDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return domainLoan.ErrNotFound
		}
		items, err := r.Loans.ListInstallments(ctx, l.ID)
		if err != nil {
			return err
		}
		out = &LoanDetailDTO{Loan: *toLoanDTO(l, items)}
		totalPaid := decimal.Zero
		lateFees := decimal.Zero
		for _, c := range items {
			totalPaid = totalPaid.Add(c.Paid)
			lateFees = lateFees.Add(c.AccruedLateFee(asOf))
			if c.Status == domainLoan.InstallmentPaid {
				out.InstallmentsPaid++
			}
		}
		out.TotalPaid = totalPaid
		out.Outstanding = l.TotalPayable.Sub(totalPaid)
		out.AccruedLateFees = lateFees
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
