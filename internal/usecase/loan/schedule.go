package loan

import (
	"time"

	"github.com/shopspring/decimal"

	domainLoan "prestamos-backend/internal/domain/loan"
	domainRate "prestamos-backend/internal/domain/rate"
	"prestamos-backend/pkg/id"
	"prestamos-backend/pkg/money"
)

var oneHundred = decimal.NewFromInt(100)

// PerInstallmentRate converts a nominal rate into a per-installment fraction
// for the given payment frequency. Only simple rates are supported.
//
// Divisors: annual nominal → 12/24/52 for monthly/biweekly/weekly payments;
// monthly nominal → 1/2/4. Any other combination falls through with divisor 1,
// matching the historical behavior (questionable for daily/weekly/biweekly
// nominal periods, kept as-is on purpose).
func PerInstallmentRate(r *domainRate.Rate, freq domainLoan.Frequency) (decimal.Decimal, error) {
	if r.Kind != domainRate.KindSimple {
		return decimal.Zero, domainRate.ErrUnsupportedKind
	}
	fraction := r.Percent.Div(oneHundred)
	divisor := int64(1)
	switch r.Period {
	case domainRate.PeriodAnnual:
		switch freq {
		case domainLoan.FrequencyMonthly:
			divisor = 12
		case domainLoan.FrequencyBiweekly:
			divisor = 24
		case domainLoan.FrequencyWeekly:
			divisor = 52
		}
	case domainRate.PeriodMonthly:
		switch freq {
		case domainLoan.FrequencyBiweekly:
			divisor = 2
		case domainLoan.FrequencyWeekly:
			divisor = 4
		}
	}
	return fraction.Div(decimal.NewFromInt(divisor)), nil
}

// nextDueDate steps a due date forward by one payment period.
func nextDueDate(freq domainLoan.Frequency, d time.Time) time.Time {
	switch freq {
	case domainLoan.FrequencyMonthly:
		return d.AddDate(0, 1, 0)
	case domainLoan.FrequencyBiweekly:
		return d.AddDate(0, 0, 14)
	default:
		return d.AddDate(0, 0, 7)
	}
}

// BuildSchedule fills the loan's derived totals and returns its installments.
// The per-installment interest is rounded first; the totals are derived from
// that rounded value, then capital and interest are re-rounded against the
// aggregates so cumulative drift stays bounded. The last installment absorbs
// whatever residue remains, which forces the schedule to sum exactly to
// principal and total interest.
func BuildSchedule(l *domainLoan.Loan, r *domainRate.Rate) ([]*domainLoan.Installment, error) {
	perRate, err := PerInstallmentRate(r, l.Frequency)
	if err != nil {
		return nil, err
	}
	n := int64(l.Installments)

	interestPer := money.Cents(l.Principal.Mul(perRate))
	l.TotalInterest = interestPer.Mul(decimal.NewFromInt(n))
	l.TotalPayable = l.Principal.Add(l.TotalInterest)
	l.Status = domainLoan.StatusActive

	capitalPer := money.Cents(l.Principal.Div(decimal.NewFromInt(n)))
	interestPer = money.Cents(l.TotalInterest.Div(decimal.NewFromInt(n)))

	items := make([]*domainLoan.Installment, 0, l.Installments)
	capitalAssigned := decimal.Zero
	interestAssigned := decimal.Zero
	due := money.DateOnly(l.FirstDueDate)

	for i := 1; i <= l.Installments; i++ {
		capital := capitalPer
		interest := interestPer
		if i == l.Installments {
			capital = l.Principal.Sub(capitalAssigned)
			interest = l.TotalInterest.Sub(interestAssigned)
		} else {
			capitalAssigned = capitalAssigned.Add(capital)
			interestAssigned = interestAssigned.Add(interest)
		}
		total := capital.Add(interest)
		items = append(items, &domainLoan.Installment{
			InstallmentID: id.NewID32(),
			Number:        i,
			DueDate:       due,
			Capital:       capital,
			Interest:      interest,
			Total:         total,
			Paid:          decimal.Zero,
			Remaining:     total,
			Status:        domainLoan.InstallmentPending,
		})
		due = nextDueDate(l.Frequency, due)
	}
	return items, nil
}
