package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "prestamos-backend/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) MaxSequence(ctx context.Context) (uint64, error) {
	var max *uint64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Select("MAX(sequence)").Scan(&max)
	if res.Error != nil {
		return 0, res.Error
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *LoanRepository) ExistsByClientRef(ctx context.Context, clientRef uint64) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Where("client_ref = ?", clientRef).Count(&n)
	return n > 0, res.Error
}

func (r *LoanRepository) ExistsByRateRef(ctx context.Context, rateRef uint64) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Where("rate_ref = ?", rateRef).Count(&n)
	return n > 0, res.Error
}

func (r *LoanRepository) CreateInstallments(ctx context.Context, items []*loanDomain.Installment) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(items).Error
}

func (r *LoanRepository) SaveInstallment(ctx context.Context, c *loanDomain.Installment) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *LoanRepository) ListInstallments(ctx context.Context, loanRef uint64) ([]*loanDomain.Installment, error) {
	var out []*loanDomain.Installment
	res := r.db.WithContext(ctx).
		Where("loan_ref = ?", loanRef).
		Order("number ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) GetInstallmentsByIDs(ctx context.Context, loanRef uint64, installmentIDs []string) ([]*loanDomain.Installment, error) {
	var out []*loanDomain.Installment
	res := r.db.WithContext(ctx).
		Where("loan_ref = ? AND installment_id IN ?", loanRef, installmentIDs).
		Order("number ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListPendingDueBefore(ctx context.Context, day time.Time) ([]*loanDomain.Installment, error) {
	var out []*loanDomain.Installment
	res := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", loanDomain.InstallmentPending, day).
		Order("loan_ref ASC, number ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListActiveLoansWithOverdue(ctx context.Context) ([]*loanDomain.Loan, error) {
	var out []*loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("status = ?", loanDomain.StatusActive).
		Where("id IN (?)", r.db.Model(&loanDomain.Installment{}).
			Select("loan_ref").
			Where("status = ?", loanDomain.InstallmentOverdue)).
		Find(&out)
	return out, res.Error
}
