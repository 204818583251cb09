package loan

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRederive_StateTable(t *testing.T) {
	cases := []struct {
		name       string
		total      string
		paid       string
		start      InstallmentStatus
		wantStatus InstallmentStatus
		wantRem    string
	}{
		{"untouched pending", "112.00", "0", InstallmentPending, InstallmentPending, "112.00"},
		{"partial payment", "112.00", "50.00", InstallmentPending, InstallmentPartiallyPaid, "62.00"},
		{"full payment", "112.00", "112.00", InstallmentPartiallyPaid, InstallmentPaid, "0"},
		{"overpaid clamps to zero", "112.00", "120.00", InstallmentPending, InstallmentPaid, "0"},
		{"overdue stays overdue while unpaid", "112.00", "0", InstallmentOverdue, InstallmentOverdue, "112.00"},
		{"overdue becomes partially paid", "112.00", "10.00", InstallmentOverdue, InstallmentPartiallyPaid, "102.00"},
		{"overdue settles to paid", "112.00", "112.00", InstallmentOverdue, InstallmentPaid, "0"},
		{"total reduced below paid settles", "106.00", "106.00", InstallmentPending, InstallmentPaid, "0"},
		{"cancelled is sticky", "112.00", "112.00", InstallmentCancelled, InstallmentCancelled, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Installment{
				Total:  dec(tc.total),
				Paid:   dec(tc.paid),
				Status: tc.start,
			}
			c.Rederive()
			if c.Status != tc.wantStatus {
				t.Errorf("status=%s want=%s", c.Status, tc.wantStatus)
			}
			if tc.start != InstallmentCancelled && !c.Remaining.Equal(dec(tc.wantRem)) {
				t.Errorf("remaining=%s want=%s", c.Remaining, tc.wantRem)
			}
		})
	}
}

func TestOutstanding(t *testing.T) {
	payable := []InstallmentStatus{InstallmentPending, InstallmentOverdue, InstallmentPartiallyPaid}
	for _, s := range payable {
		if !(&Installment{Status: s}).Outstanding() {
			t.Errorf("%s should be outstanding", s)
		}
	}
	for _, s := range []InstallmentStatus{InstallmentPaid, InstallmentCancelled} {
		if (&Installment{Status: s}).Outstanding() {
			t.Errorf("%s should not be outstanding", s)
		}
	}
}

func TestAccruedLateFee(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	c := &Installment{
		DueDate:   due,
		Remaining: dec("100.00"),
		Status:    InstallmentOverdue,
	}

	// 15 days overdue: 100 * 0.05 * 15/30 = 2.50
	if got := c.AccruedLateFee(due.AddDate(0, 0, 15)); !got.Equal(dec("2.50")) {
		t.Errorf("15 days: got %s want 2.50", got)
	}
	// 30 days overdue is one full month: 5.00
	if got := c.AccruedLateFee(due.AddDate(0, 0, 30)); !got.Equal(dec("5.00")) {
		t.Errorf("30 days: got %s want 5.00", got)
	}
	// 45 days overdue: 7.50
	if got := c.AccruedLateFee(due.AddDate(0, 0, 45)); !got.Equal(dec("7.50")) {
		t.Errorf("45 days: got %s want 7.50", got)
	}
	// on the due date itself nothing has accrued yet
	if got := c.AccruedLateFee(due); !got.IsZero() {
		t.Errorf("due date: got %s want 0", got)
	}

	// a pending installment never accrues a fee, no matter how old
	p := &Installment{DueDate: due, Remaining: dec("100.00"), Status: InstallmentPending}
	if got := p.AccruedLateFee(due.AddDate(0, 2, 0)); !got.IsZero() {
		t.Errorf("pending: got %s want 0", got)
	}
	// neither does a settled one
	s := &Installment{DueDate: due, Remaining: decimal.Zero, Status: InstallmentOverdue}
	if got := s.AccruedLateFee(due.AddDate(0, 2, 0)); !got.IsZero() {
		t.Errorf("settled: got %s want 0", got)
	}
}
