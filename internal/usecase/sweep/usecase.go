package sweep

import (
	"context"
	"log"
	"time"

	domainLoan "prestamos-backend/internal/domain/loan"
	"prestamos-backend/internal/domain/uow"
	"prestamos-backend/pkg/money"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type Result struct {
	InstallmentsMarkedOverdue int `json:"installments_marked_overdue"`
	LoansMarkedPastDue        int `json:"loans_marked_past_due"`
}

// Run marks pending installments past their due date as overdue, then moves
// any active loan holding an overdue installment to past_due. One transaction.
func (u *Usecase) Run(ctx context.Context, asOf time.Time) (*Result, error) {
	day := money.DateOnly(asOf)
	var res Result
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		due, err := r.Loans.ListPendingDueBefore(ctx, day)
		if err != nil {
			return err
		}
		for _, c := range due {
			c.Status = domainLoan.InstallmentOverdue
			if err := r.Loans.SaveInstallment(ctx, c); err != nil {
				return err
			}
			res.InstallmentsMarkedOverdue++
		}

		loans, err := r.Loans.ListActiveLoansWithOverdue(ctx)
		if err != nil {
			return err
		}
		for _, l := range loans {
			l.Status = domainLoan.StatusPastDue
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
			res.LoansMarkedPastDue++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("sweep: %d installments overdue, %d loans past due", res.InstallmentsMarkedOverdue, res.LoansMarkedPastDue)
	return &res, nil
}
