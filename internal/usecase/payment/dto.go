package payment

import (
	"time"

	"github.com/shopspring/decimal"

	domainLoan "prestamos-backend/internal/domain/loan"
	domainPayment "prestamos-backend/internal/domain/payment"
)

type AllocationDTO struct {
	InstallmentID string          `json:"installment_id"`
	Number        int             `json:"number"`
	Amount        decimal.Decimal `json:"amount"`
}

type PaymentDTO struct {
	PaymentID   string          `json:"payment_id"`
	LoanID      string          `json:"loan_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaidAt      time.Time       `json:"paid_at"`
	Reference   string          `json:"reference,omitempty"`
	RecordedBy  string          `json:"recorded_by"`
	Applied     bool            `json:"applied"`
	LoanStatus  string          `json:"loan_status"`
	Allocations []AllocationDTO `json:"allocations"`
}

func toPaymentDTO(l *domainLoan.Loan, p *domainPayment.Payment, allocs []AllocationDTO) *PaymentDTO {
	return &PaymentDTO{
		PaymentID:   p.PaymentID,
		LoanID:      l.LoanID,
		Amount:      p.Amount,
		PaidAt:      p.PaidAt,
		Reference:   p.Reference,
		RecordedBy:  p.RecordedBy,
		Applied:     p.Applied,
		LoanStatus:  string(l.Status),
		Allocations: allocs,
	}
}
