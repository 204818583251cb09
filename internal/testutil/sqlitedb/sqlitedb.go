// Package sqlitedb provides an in-memory database for repository and usecase
// tests. It migrates sqlite-safe shadow models (no MySQL column types,
// decimals as text) under the same table and column names the domain models
// map to.
package sqlitedb

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type loanSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	LoanID        string         `gorm:"column:loan_id;size:32"`
	Sequence      uint64         `gorm:"column:sequence"`
	ClientRef     uint64         `gorm:"column:client_ref"`
	RateRef       uint64         `gorm:"column:rate_ref"`
	Principal     string         `gorm:"column:principal"`
	Installments  int            `gorm:"column:installments"`
	Frequency     string         `gorm:"column:frequency"`
	IssueDate     time.Time      `gorm:"column:issue_date"`
	FirstDueDate  time.Time      `gorm:"column:first_due_date"`
	TotalInterest string         `gorm:"column:total_interest"`
	TotalPayable  string         `gorm:"column:total_payable"`
	Guarantee     string         `gorm:"column:guarantee"`
	Status        string         `gorm:"column:status"`
	CreatedBy     string         `gorm:"column:created_by"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type installmentSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	InstallmentID string         `gorm:"column:installment_id;size:32"`
	LoanRef       uint64         `gorm:"column:loan_ref"`
	Number        int            `gorm:"column:number"`
	DueDate       time.Time      `gorm:"column:due_date"`
	Capital       string         `gorm:"column:capital"`
	Interest      string         `gorm:"column:interest"`
	Total         string         `gorm:"column:total"`
	Paid          string         `gorm:"column:paid"`
	Remaining     string         `gorm:"column:remaining"`
	Status        string         `gorm:"column:status"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (installmentSQLite) TableName() string { return "installments" }

type paymentSQLite struct {
	ID         uint64         `gorm:"primaryKey;column:id"`
	PaymentID  string         `gorm:"column:payment_id;size:32"`
	LoanRef    uint64         `gorm:"column:loan_ref"`
	Amount     string         `gorm:"column:amount"`
	PaidAt     time.Time      `gorm:"column:paid_at"`
	MethodRef  uint64         `gorm:"column:method_ref"`
	Reference  string         `gorm:"column:reference"`
	RecordedBy string         `gorm:"column:recorded_by"`
	Applied    bool           `gorm:"column:applied"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (paymentSQLite) TableName() string { return "payments" }

type allocationSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	PaymentRef     uint64    `gorm:"column:payment_ref"`
	InstallmentRef uint64    `gorm:"column:installment_ref"`
	Amount         string    `gorm:"column:amount"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (allocationSQLite) TableName() string { return "payment_allocations" }

type rateSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	RateID    string         `gorm:"column:rate_id;size:32"`
	Name      string         `gorm:"column:name"`
	Kind      string         `gorm:"column:kind"`
	Percent   string         `gorm:"column:percent"`
	Period    string         `gorm:"column:period"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (rateSQLite) TableName() string { return "rates" }

type methodSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	MethodID  string         `gorm:"column:method_id;size:32"`
	Name      string         `gorm:"column:name"`
	Active    bool           `gorm:"column:active"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (methodSQLite) TableName() string { return "payment_methods" }

type clientSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	ClientID  string         `gorm:"column:client_id;size:32"`
	FullName  string         `gorm:"column:full_name"`
	Document  string         `gorm:"column:document"`
	Phone     string         `gorm:"column:phone"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (clientSQLite) TableName() string { return "clients" }

// Open creates an in-memory sqlite DB with every table migrated.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&loanSQLite{}, &installmentSQLite{},
		&paymentSQLite{}, &allocationSQLite{},
		&rateSQLite{}, &methodSQLite{}, &clientSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
