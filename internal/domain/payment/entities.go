package payment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("payment not found")
	// ErrAlreadyAllocated marks the idempotency guard: a payment is allocated
	// at most once. Callers treat a second attempt as a no-op.
	ErrAlreadyAllocated = errors.New("payment already allocated")
	// ErrInsufficientInstallments: fewer outstanding installments exist than
	// the caller targeted.
	ErrInsufficientInstallments = errors.New("not enough outstanding installments for the requested targets")
	ErrNoTargets                = errors.New("no target installments given")
)

// Payment records one payment event against a loan. Amount may be reduced in
// place exactly once during allocation, when the early-payment interest
// reduction lowers what is actually owed.
type Payment struct {
	ID         uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID  string          `gorm:"column:payment_id;size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanRef    uint64          `gorm:"column:loan_ref;index" json:"-"`
	Amount     decimal.Decimal `gorm:"column:amount;type:decimal(12,2)" json:"amount"`
	PaidAt     time.Time       `gorm:"column:paid_at" json:"paid_at"`
	MethodRef  uint64          `gorm:"column:method_ref;index" json:"-"`
	Reference  string          `gorm:"column:reference;size:100" json:"reference,omitempty"`
	RecordedBy string          `gorm:"column:recorded_by;size:32" json:"recorded_by"`
	Applied    bool            `gorm:"column:applied;default:false" json:"applied"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Payment) TableName() string { return "payments" }

// Allocation records how much of a payment was applied to one installment.
// Created during allocation, never mutated afterwards. An installment cannot
// be deleted while allocations reference it.
type Allocation struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentRef     uint64          `gorm:"column:payment_ref;uniqueIndex:ux_allocations_payment_installment,priority:1" json:"-"`
	InstallmentRef uint64          `gorm:"column:installment_ref;index;uniqueIndex:ux_allocations_payment_installment,priority:2" json:"-"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(12,2)" json:"amount"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Allocation) TableName() string { return "payment_allocations" }
