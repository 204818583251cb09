package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	loanDomain "prestamos-backend/internal/domain/loan"
	paymentDomain "prestamos-backend/internal/domain/payment"
	"prestamos-backend/internal/domain/uow"
	"prestamos-backend/internal/testutil/sqlitedb"
	"prestamos-backend/pkg/id"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := sqlitedb.Open(t)
	guow := NewGormUoW(db)
	ctx := context.Background()

	l := makeLoan(1)
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		return r.Loans.CreateInstallments(ctx, []*loanDomain.Installment{
			makeInstallment(l.ID, 1, l.FirstDueDate),
		})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	// visible through a fresh, non-transactional repo
	repo := NewLoanRepository(db)
	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("loan not visible after commit: %v", err)
	}
	items, err := repo.ListInstallments(ctx, got.ID)
	if err != nil || len(items) != 1 {
		t.Fatalf("installments not visible after commit: %v len=%d", err, len(items))
	}
}

func TestGormUoW_WithinTx_RollsBackEverything(t *testing.T) {
	db := sqlitedb.Open(t)
	guow := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("boom")
	l := makeLoan(1)
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if err := r.Payments.Create(ctx, &paymentDomain.Payment{
			PaymentID: id.NewID32(),
			LoanRef:   l.ID,
			Amount:    dec("10.00"),
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped boom, got %v", err)
	}

	var loans, payments int64
	if err := db.Model(&loanDomain.Loan{}).Count(&loans).Error; err != nil {
		t.Fatalf("count loans: %v", err)
	}
	if err := db.Model(&paymentDomain.Payment{}).Count(&payments).Error; err != nil {
		t.Fatalf("count payments: %v", err)
	}
	if loans != 0 || payments != 0 {
		t.Errorf("rollback incomplete: loans=%d payments=%d", loans, payments)
	}
}

func TestGormUoW_WithinLoanTx_LoadsLockedLoan(t *testing.T) {
	db := sqlitedb.Open(t)
	guow := NewGormUoW(db)
	ctx := context.Background()

	l := makeLoan(9)
	if err := NewLoanRepository(db).Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	var seen uint64
	err := guow.WithinLoanTx(ctx, l.LoanID, func(r uow.Repos, locked *loanDomain.Loan) error {
		seen = locked.Sequence
		locked.Status = loanDomain.StatusPastDue
		return r.Loans.Save(ctx, locked)
	})
	if err != nil {
		t.Fatalf("WithinLoanTx: %v", err)
	}
	if seen != 9 {
		t.Errorf("callback saw sequence %d want 9", seen)
	}
	got, err := NewLoanRepository(db).GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != loanDomain.StatusPastDue {
		t.Errorf("status=%s want past_due", got.Status)
	}
}

func TestGormUoW_WithinLoanTx_UnknownLoan(t *testing.T) {
	guow := NewGormUoW(sqlitedb.Open(t))
	err := guow.WithinLoanTx(context.Background(), id.NewID32(), func(r uow.Repos, l *loanDomain.Loan) error {
		t.Fatal("callback must not run for an unknown loan")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}
