package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row until the surrounding
	// transaction commits. Payment allocation runs under this lock.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// MaxSequence returns the highest assigned sequence number, 0 if none.
	MaxSequence(ctx context.Context) (uint64, error)
	ExistsByClientRef(ctx context.Context, clientRef uint64) (bool, error)
	ExistsByRateRef(ctx context.Context, rateRef uint64) (bool, error)

	CreateInstallments(ctx context.Context, items []*Installment) error
	SaveInstallment(ctx context.Context, c *Installment) error
	// ListInstallments returns every installment of a loan ordered by number.
	ListInstallments(ctx context.Context, loanRef uint64) ([]*Installment, error)
	// GetInstallmentsByIDs returns the loan's installments matching the given
	// public ids, ordered by number. Missing ids are simply absent.
	GetInstallmentsByIDs(ctx context.Context, loanRef uint64, installmentIDs []string) ([]*Installment, error)
	// ListPendingDueBefore returns pending installments whose due date is
	// strictly before the given day, across all loans.
	ListPendingDueBefore(ctx context.Context, day time.Time) ([]*Installment, error)
	// ListActiveLoansWithOverdue returns active loans holding at least one
	// overdue installment.
	ListActiveLoansWithOverdue(ctx context.Context) ([]*Loan, error)
}
