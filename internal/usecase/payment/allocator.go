package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainLoan "prestamos-backend/internal/domain/loan"
	domainPayment "prestamos-backend/internal/domain/payment"
	"prestamos-backend/internal/domain/uow"
	"prestamos-backend/pkg/money"
)

// apply distributes a payment across its target installments, ascending by
// number, honoring the statutory early-payment interest reduction. Every
// write happens on the transaction-bound repos, so a failure anywhere rolls
// the whole unit back.
func (u *Usecase) apply(ctx context.Context, r uow.Repos, l *domainLoan.Loan, p *domainPayment.Payment, targets []*domainLoan.Installment, byNumber map[int]*domainLoan.Installment) ([]AllocationDTO, error) {
	// Pass 1: early-payment reduction. Paying strictly before an
	// installment's due date re-accrues its interest over the elapsed part
	// of the window only. The reduction rewrites the installment's
	// contractual interest and total and sticks even if the rest of the
	// payment never materializes.
	for _, t := range targets {
		if !money.DateOnly(p.PaidAt).Before(t.DueDate) || !t.Interest.IsPositive() {
			continue
		}
		windowStart := l.IssueDate
		if prev, ok := byNumber[t.Number-1]; ok {
			windowStart = prev.DueDate
		}
		accrued := accruedInterest(t.Interest, windowStart, t.DueDate, p.PaidAt)
		if accrued.Equal(t.Interest) {
			continue
		}
		t.Interest = accrued
		t.Total = t.Capital.Add(accrued)
		t.Rederive()
		if err := r.Loans.SaveInstallment(ctx, t); err != nil {
			return nil, err
		}
	}

	// Pass 2: the borrower cannot be forced to overpay. If the reductions
	// brought the total owed under the payment amount, shrink the stored
	// amount once, before distributing.
	required := decimal.Zero
	for _, t := range targets {
		required = required.Add(t.Remaining)
	}
	if required.LessThan(p.Amount) {
		p.Amount = required
		if err := r.Payments.Save(ctx, p); err != nil {
			return nil, err
		}
	}

	// Pass 3: distribute over the target subset only. A surplus is never
	// spilled onto installments outside the subset.
	var allocs []AllocationDTO
	toDistribute := p.Amount
	for _, t := range targets {
		if !toDistribute.IsPositive() {
			break
		}
		if !t.Remaining.IsPositive() {
			continue
		}
		applied := decimal.Min(toDistribute, t.Remaining)
		if err := r.Payments.CreateAllocation(ctx, &domainPayment.Allocation{
			PaymentRef:     p.ID,
			InstallmentRef: t.ID,
			Amount:         applied,
		}); err != nil {
			return nil, err
		}
		t.Paid = t.Paid.Add(applied)
		t.Rederive()
		if err := r.Loans.SaveInstallment(ctx, t); err != nil {
			return nil, err
		}
		allocs = append(allocs, AllocationDTO{InstallmentID: t.InstallmentID, Number: t.Number, Amount: applied})
		toDistribute = toDistribute.Sub(applied)
	}

	p.Applied = true
	if err := r.Payments.Save(ctx, p); err != nil {
		return nil, err
	}

	// The loan pays off when its whole schedule is settled.
	if err := u.settleLoanIfPaid(ctx, r, l); err != nil {
		return nil, err
	}
	return allocs, nil
}

func (u *Usecase) settleLoanIfPaid(ctx context.Context, r uow.Repos, l *domainLoan.Loan) error {
	all, err := r.Loans.ListInstallments(ctx, l.ID)
	if err != nil {
		return err
	}
	for _, c := range all {
		if c.Status != domainLoan.InstallmentPaid {
			return nil
		}
	}
	l.Status = domainLoan.StatusPaidOff
	return r.Loans.Save(ctx, l)
}

// accruedInterest prorates the original interest over the days elapsed in
// the accrual window. On the due date itself the full interest stands; on or
// before the window start nothing has accrued. A degenerate window
// (days_total <= 0) leaves the interest untouched.
func accruedInterest(original decimal.Decimal, windowStart, dueDate, paidAt time.Time) decimal.Decimal {
	daysTotal := money.DaysBetween(windowStart, dueDate)
	if daysTotal <= 0 {
		return original
	}
	daysElapsed := money.DaysBetween(windowStart, paidAt)
	if daysElapsed <= 0 {
		return decimal.Zero
	}
	if daysElapsed >= daysTotal {
		return original
	}
	return money.Cents(original.
		Mul(decimal.NewFromInt(int64(daysElapsed))).
		Div(decimal.NewFromInt(int64(daysTotal))))
}
