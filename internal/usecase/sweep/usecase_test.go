package sweep

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"prestamos-backend/internal/adapter/repository/mysql"
	domainClient "prestamos-backend/internal/domain/client"
	domainLoan "prestamos-backend/internal/domain/loan"
	domainRate "prestamos-backend/internal/domain/rate"
	usecaseLoan "prestamos-backend/internal/usecase/loan"
	"prestamos-backend/internal/testutil/sqlitedb"
	"prestamos-backend/pkg/id"

	"gorm.io/gorm"
)

// seedLoan creates a 3-installment monthly loan first due 2026-02-01.
func seedLoan(t *testing.T, db *gorm.DB) string {
	t.Helper()
	ctx := context.Background()

	cl := &domainClient.Client{ClientID: id.NewID32(), FullName: "Ana Ruiz", Document: id.NewID32()[:10]}
	if err := mysql.NewClientRepository(db).Create(ctx, cl); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	rt := &domainRate.Rate{RateID: id.NewID32(), Name: "sweep " + id.NewID32()[:8], Kind: domainRate.KindSimple, Percent: decimal.RequireFromString("12"), Period: domainRate.PeriodAnnual}
	if err := mysql.NewRateRepository(db).Create(ctx, rt); err != nil {
		t.Fatalf("seed rate: %v", err)
	}

	dto, err := usecaseLoan.NewUsecase(mysql.NewGormUoW(db)).Create(ctx, usecaseLoan.CreateLoanInput{
		ClientID:     cl.ClientID,
		RateID:       rt.RateID,
		Principal:    decimal.RequireFromString("300.00"),
		Installments: 3,
		Frequency:    domainLoan.FrequencyMonthly,
		IssueDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		FirstDueDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		CreatedBy:    id.NewID32(),
	})
	if err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	return dto.LoanID
}

func TestRun_MarksOverdueAndPastDue(t *testing.T) {
	db := sqlitedb.Open(t)
	loanID := seedLoan(t, db)
	uc := NewUsecase(mysql.NewGormUoW(db))
	ctx := context.Background()

	// Feb 1 and Mar 1 are behind the reference date, Apr 1 is not
	res, err := uc.Run(ctx, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.InstallmentsMarkedOverdue != 2 {
		t.Errorf("installments marked=%d want 2", res.InstallmentsMarkedOverdue)
	}
	if res.LoansMarkedPastDue != 1 {
		t.Errorf("loans marked=%d want 1", res.LoansMarkedPastDue)
	}

	repo := mysql.NewLoanRepository(db)
	l, err := repo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if l.Status != domainLoan.StatusPastDue {
		t.Errorf("loan status=%s want past_due", l.Status)
	}
	items, err := repo.ListInstallments(ctx, l.ID)
	if err != nil {
		t.Fatalf("ListInstallments: %v", err)
	}
	want := []domainLoan.InstallmentStatus{
		domainLoan.InstallmentOverdue,
		domainLoan.InstallmentOverdue,
		domainLoan.InstallmentPending,
	}
	for i, c := range items {
		if c.Status != want[i] {
			t.Errorf("installment %d status=%s want %s", c.Number, c.Status, want[i])
		}
	}
}

func TestRun_SecondPassIsQuiet(t *testing.T) {
	db := sqlitedb.Open(t)
	seedLoan(t, db)
	uc := NewUsecase(mysql.NewGormUoW(db))
	ctx := context.Background()
	asOf := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	if _, err := uc.Run(ctx, asOf); err != nil {
		t.Fatalf("first run: %v", err)
	}
	res, err := uc.Run(ctx, asOf)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if res.InstallmentsMarkedOverdue != 0 || res.LoansMarkedPastDue != 0 {
		t.Errorf("second pass not idempotent: %+v", res)
	}
}

func TestRun_NothingDueYet(t *testing.T) {
	db := sqlitedb.Open(t)
	seedLoan(t, db)
	uc := NewUsecase(mysql.NewGormUoW(db))

	res, err := uc.Run(context.Background(), time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.InstallmentsMarkedOverdue != 0 || res.LoansMarkedPastDue != 0 {
		t.Errorf("nothing should be due: %+v", res)
	}
}

func TestRun_DueDateItselfIsNotOverdue(t *testing.T) {
	db := sqlitedb.Open(t)
	seedLoan(t, db)
	uc := NewUsecase(mysql.NewGormUoW(db))

	// grace runs through the whole due day
	res, err := uc.Run(context.Background(), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.InstallmentsMarkedOverdue != 0 {
		t.Errorf("due-day installment marked overdue: %+v", res)
	}
}
