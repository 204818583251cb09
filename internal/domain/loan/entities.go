package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrNotPayable        = errors.New("loan does not accept payments in its current state")
	ErrInvalidTransition = errors.New("invalid loan state transition")
)

type Status string

const (
	StatusPendingDisbursement Status = "pending_disbursement"
	StatusActive              Status = "active"
	StatusPastDue             Status = "past_due"
	StatusPaidOff             Status = "paid_off"
	StatusCancelled           Status = "cancelled"
)

type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

// Loan is the contract granted to a client. Totals and the installment
// schedule are computed once at creation and never recomputed wholesale;
// only individual installments mutate afterwards.
type Loan struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID        string          `gorm:"column:loan_id;size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	Sequence      uint64          `gorm:"column:sequence;uniqueIndex:ux_loans_sequence" json:"sequence"`
	ClientRef     uint64          `gorm:"column:client_ref;index" json:"-"`
	RateRef       uint64          `gorm:"column:rate_ref;index" json:"-"`
	Principal     decimal.Decimal `gorm:"column:principal;type:decimal(12,2)" json:"principal"`
	Installments  int             `gorm:"column:installments" json:"installments"`
	Frequency     Frequency       `gorm:"column:frequency;size:10;default:'monthly'" json:"frequency"`
	IssueDate     time.Time       `gorm:"column:issue_date;type:date" json:"issue_date"`
	FirstDueDate  time.Time       `gorm:"column:first_due_date;type:date" json:"first_due_date"`
	TotalInterest decimal.Decimal `gorm:"column:total_interest;type:decimal(12,2)" json:"total_interest"`
	TotalPayable  decimal.Decimal `gorm:"column:total_payable;type:decimal(12,2)" json:"total_payable"`
	Guarantee     string          `gorm:"column:guarantee;type:text" json:"guarantee,omitempty"`
	Status        Status          `gorm:"column:status;size:24;default:'active'" json:"status"`
	CreatedBy     string          `gorm:"column:created_by;size:32" json:"created_by"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Payable reports whether payments may be registered against the loan.
func (l *Loan) Payable() bool {
	return l.Status == StatusActive || l.Status == StatusPastDue
}
