package uow

import (
	"context"

	"prestamos-backend/internal/domain/client"
	"prestamos-backend/internal/domain/loan"
	"prestamos-backend/internal/domain/method"
	"prestamos-backend/internal/domain/payment"
	"prestamos-backend/internal/domain/rate"
)

type Repos struct {
	Loans    loan.Repository
	Payments payment.Repository
	Rates    rate.Repository
	Methods  method.Repository
	Clients  client.Repository
}

// UnitOfWork groups every repository write of one business operation into a
// single transaction: either all of it commits or none of it does.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then runs fn. This is the
	// per-loan exclusive lock that serializes payment allocation.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
