package loan

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"prestamos-backend/pkg/money"
)

type InstallmentStatus string

const (
	InstallmentPending       InstallmentStatus = "pending"
	InstallmentPartiallyPaid InstallmentStatus = "partially_paid"
	InstallmentOverdue       InstallmentStatus = "overdue"
	InstallmentPaid          InstallmentStatus = "paid"
	InstallmentCancelled     InstallmentStatus = "cancelled"
)

// lateFeeMonthlyRate is the surcharge applied per month overdue.
var lateFeeMonthlyRate = decimal.RequireFromString("0.05")

// Installment is one capital+interest obligation of a loan's schedule,
// numbered 1..N, unique per (loan, number).
type Installment struct {
	ID            uint64            `gorm:"primaryKey;column:id" json:"-"`
	InstallmentID string            `gorm:"column:installment_id;size:32;uniqueIndex:ux_installments_installment_id" json:"installment_id"`
	LoanRef       uint64            `gorm:"column:loan_ref;index;uniqueIndex:ux_installments_loan_number,priority:1" json:"-"`
	Number        int               `gorm:"column:number;uniqueIndex:ux_installments_loan_number,priority:2" json:"number"`
	DueDate       time.Time         `gorm:"column:due_date;type:date" json:"due_date"`
	Capital       decimal.Decimal   `gorm:"column:capital;type:decimal(12,2)" json:"capital"`
	Interest      decimal.Decimal   `gorm:"column:interest;type:decimal(12,2)" json:"interest"`
	Total         decimal.Decimal   `gorm:"column:total;type:decimal(12,2)" json:"total"`
	Paid          decimal.Decimal   `gorm:"column:paid;type:decimal(12,2)" json:"paid"`
	Remaining     decimal.Decimal   `gorm:"column:remaining;type:decimal(12,2)" json:"remaining"`
	Status        InstallmentStatus `gorm:"column:status;size:20;default:'pending'" json:"status"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`
}

func (Installment) TableName() string { return "installments" }

// Rederive recomputes the remaining balance and status from total and paid.
// Must be called after every mutation of Paid or Total. Cancelled is sticky.
// Overdue is never set here; the periodic sweep owns that transition.
func (c *Installment) Rederive() {
	if c.Status == InstallmentCancelled {
		return
	}
	remaining := c.Total.Sub(c.Paid)
	if remaining.Cmp(decimal.Zero) <= 0 {
		c.Remaining = decimal.Zero
		c.Status = InstallmentPaid
		return
	}
	c.Remaining = remaining
	if c.Paid.IsPositive() {
		c.Status = InstallmentPartiallyPaid
		return
	}
	if c.Status != InstallmentPending && c.Status != InstallmentOverdue {
		c.Status = InstallmentPending
	}
}

// Outstanding reports whether the installment can still receive payments.
func (c *Installment) Outstanding() bool {
	switch c.Status {
	case InstallmentPending, InstallmentOverdue, InstallmentPartiallyPaid:
		return true
	}
	return false
}

// AccruedLateFee returns the surcharge owed on an overdue installment as of
// the given date: 5% of the remaining balance per month overdue, prorated by
// days. Zero unless the installment is overdue with a positive balance.
func (c *Installment) AccruedLateFee(asOf time.Time) decimal.Decimal {
	if c.Status != InstallmentOverdue || !c.Remaining.IsPositive() {
		return decimal.Zero
	}
	days := money.DaysBetween(c.DueDate, asOf)
	if days <= 0 {
		return decimal.Zero
	}
	monthsOverdue := decimal.NewFromInt(int64(days)).Div(decimal.NewFromInt(30))
	return money.Cents(c.Remaining.Mul(lateFeeMonthlyRate).Mul(monthsOverdue))
}
