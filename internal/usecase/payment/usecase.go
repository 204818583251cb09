package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	domainLoan "prestamos-backend/internal/domain/loan"
	domainPayment "prestamos-backend/internal/domain/payment"
	"prestamos-backend/internal/domain/uow"
	"prestamos-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type RegisterInput struct {
	LoanID         string
	InstallmentIDs []string // caller-selected targets, ascending installment number
	MethodID       string
	Reference      string
	RecordedBy     string
	PaidAt         time.Time // zero value means now
}

// Register creates a payment against the caller-selected installments and
// allocates it in the same transaction. The amount is computed from the
// targets' current remaining balances; the early-payment interest reduction
// may lower it before distribution. Runs under the per-loan row lock.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*PaymentDTO, error) {
	if in.LoanID == "" || in.MethodID == "" {
		return nil, fmt.Errorf("%w: loan and payment method are required", ErrInvalidInput)
	}
	if len(in.InstallmentIDs) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, domainPayment.ErrNoTargets)
	}
	paidAt := in.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	var dto *PaymentDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if !l.Payable() {
			return domainLoan.ErrNotPayable
		}
		m, err := r.Methods.GetByMethodID(ctx, in.MethodID)
		if err != nil {
			return fmt.Errorf("%w: unknown payment method %s", ErrInvalidInput, in.MethodID)
		}
		if !m.Active {
			return fmt.Errorf("%w: payment method %s is inactive", ErrInvalidInput, m.Name)
		}

		targets, byNumber, err := loadTargets(ctx, r, l, in.InstallmentIDs)
		if err != nil {
			return err
		}

		// The UI previews the sum of the targets' current remaining
		// balances; that is the amount the payment starts with.
		amount := decimal.Zero
		for _, t := range targets {
			amount = amount.Add(t.Remaining)
		}

		p := &domainPayment.Payment{
			PaymentID:  id.NewID32(),
			LoanRef:    l.ID,
			Amount:     amount,
			PaidAt:     paidAt,
			MethodRef:  m.ID,
			Reference:  in.Reference,
			RecordedBy: in.RecordedBy,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		allocs, err := u.apply(ctx, r, l, p, targets, byNumber)
		if err != nil {
			return err
		}
		dto = toPaymentDTO(l, p, allocs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Allocate distributes a previously created, not yet applied payment. A
// payment already marked applied is never reprocessed: the guard hit is
// logged and the stored result returned unchanged.
func (u *Usecase) Allocate(ctx context.Context, loanID, paymentID string, installmentIDs []string) (*PaymentDTO, error) {
	var dto *PaymentDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		p, err := r.Payments.GetByPaymentID(ctx, paymentID)
		if err != nil {
			return domainPayment.ErrNotFound
		}
		if p.LoanRef != l.ID {
			return fmt.Errorf("%w: payment %s does not belong to loan %s", ErrInvalidInput, paymentID, loanID)
		}
		if p.Applied {
			log.Printf("payment %s already allocated, skipping", p.PaymentID)
			existing, err := u.existingAllocations(ctx, r, l, p)
			if err != nil {
				return err
			}
			dto = toPaymentDTO(l, p, existing)
			return nil
		}

		targets, byNumber, err := loadTargets(ctx, r, l, installmentIDs)
		if err != nil {
			return err
		}
		allocs, err := u.apply(ctx, r, l, p, targets, byNumber)
		if err != nil {
			return err
		}
		dto = toPaymentDTO(l, p, allocs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID, paymentID string) (*PaymentDTO, error) {
	var dto *PaymentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return domainLoan.ErrNotFound
		}
		p, err := r.Payments.GetByPaymentID(ctx, paymentID)
		if err != nil || p.LoanRef != l.ID {
			return domainPayment.ErrNotFound
		}
		existing, err := u.existingAllocations(ctx, r, l, p)
		if err != nil {
			return err
		}
		dto = toPaymentDTO(l, p, existing)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// loadTargets resolves the caller-selected installment ids against the loan's
// schedule. Targets must be outstanding; a shortfall against what the caller
// asked for fails the whole request.
func loadTargets(ctx context.Context, r uow.Repos, l *domainLoan.Loan, installmentIDs []string) ([]*domainLoan.Installment, map[int]*domainLoan.Installment, error) {
	if len(installmentIDs) == 0 {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, domainPayment.ErrNoTargets)
	}
	all, err := r.Loans.ListInstallments(ctx, l.ID)
	if err != nil {
		return nil, nil, err
	}
	byNumber := make(map[int]*domainLoan.Installment, len(all))
	for _, c := range all {
		byNumber[c.Number] = c
	}
	wanted := make(map[string]bool, len(installmentIDs))
	for _, cid := range installmentIDs {
		wanted[cid] = true
	}
	var targets []*domainLoan.Installment
	for _, c := range all { // ascending number order
		if wanted[c.InstallmentID] && c.Outstanding() {
			targets = append(targets, c)
		}
	}
	if len(targets) < len(wanted) {
		return nil, nil, domainPayment.ErrInsufficientInstallments
	}
	return targets, byNumber, nil
}

func (u *Usecase) existingAllocations(ctx context.Context, r uow.Repos, l *domainLoan.Loan, p *domainPayment.Payment) ([]AllocationDTO, error) {
	rows, err := r.Payments.ListAllocations(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	all, err := r.Loans.ListInstallments(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	byRef := make(map[uint64]*domainLoan.Installment, len(all))
	for _, c := range all {
		byRef[c.ID] = c
	}
	out := make([]AllocationDTO, 0, len(rows))
	for _, a := range rows {
		dto := AllocationDTO{Amount: a.Amount}
		if c, ok := byRef[a.InstallmentRef]; ok {
			dto.InstallmentID = c.InstallmentID
			dto.Number = c.Number
		}
		out = append(out, dto)
	}
	return out, nil
}
