package loan

import (
	"time"

	"github.com/shopspring/decimal"

	domainLoan "prestamos-backend/internal/domain/loan"
)

type InstallmentDTO struct {
	InstallmentID string          `json:"installment_id"`
	Number        int             `json:"number"`
	DueDate       time.Time       `json:"due_date"`
	Capital       decimal.Decimal `json:"capital"`
	Interest      decimal.Decimal `json:"interest"`
	Total         decimal.Decimal `json:"total"`
	Paid          decimal.Decimal `json:"paid"`
	Remaining     decimal.Decimal `json:"remaining"`
	Status        string          `json:"status"`
}

type LoanDTO struct {
	LoanID        string           `json:"loan_id"`
	Sequence      uint64           `json:"sequence"`
	Principal     decimal.Decimal  `json:"principal"`
	Installments  int              `json:"installments"`
	Frequency     string           `json:"frequency"`
	IssueDate     time.Time        `json:"issue_date"`
	FirstDueDate  time.Time        `json:"first_due_date"`
	TotalInterest decimal.Decimal  `json:"total_interest"`
	TotalPayable  decimal.Decimal  `json:"total_payable"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	Schedule      []InstallmentDTO `json:"schedule"`
}

type LoanDetailDTO struct {
	Loan             LoanDTO         `json:"loan"`
	InstallmentsPaid int             `json:"installments_paid"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	Outstanding      decimal.Decimal `json:"outstanding"`
	AccruedLateFees  decimal.Decimal `json:"accrued_late_fees"`
}

func toLoanDTO(l *domainLoan.Loan, items []*domainLoan.Installment) *LoanDTO {
	dto := &LoanDTO{
		LoanID:        l.LoanID,
		Sequence:      l.Sequence,
		Principal:     l.Principal,
		Installments:  l.Installments,
		Frequency:     string(l.Frequency),
		IssueDate:     l.IssueDate,
		FirstDueDate:  l.FirstDueDate,
		TotalInterest: l.TotalInterest,
		TotalPayable:  l.TotalPayable,
		Status:        string(l.Status),
		CreatedAt:     l.CreatedAt,
	}
	for _, c := range items {
		dto.Schedule = append(dto.Schedule, InstallmentDTO{
			InstallmentID: c.InstallmentID,
			Number:        c.Number,
			DueDate:       c.DueDate,
			Capital:       c.Capital,
			Interest:      c.Interest,
			Total:         c.Total,
			Paid:          c.Paid,
			Remaining:     c.Remaining,
			Status:        string(c.Status),
		})
	}
	return dto
}
