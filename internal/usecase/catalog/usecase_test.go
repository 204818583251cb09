package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"prestamos-backend/internal/adapter/repository/mysql"
	"prestamos-backend/internal/domain/client"
	domainLoan "prestamos-backend/internal/domain/loan"
	domainPayment "prestamos-backend/internal/domain/payment"
	"prestamos-backend/internal/domain/method"
	"prestamos-backend/internal/domain/rate"
	usecaseLoan "prestamos-backend/internal/usecase/loan"
	"prestamos-backend/internal/testutil/sqlitedb"
	"prestamos-backend/pkg/id"

	"gorm.io/gorm"
)

func newUsecase(t *testing.T) (*Usecase, *gorm.DB) {
	t.Helper()
	db := sqlitedb.Open(t)
	return NewUsecase(mysql.NewGormUoW(db)), db
}

func TestRates_CreateGetListDelete(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	r, err := uc.CreateRate(ctx, CreateRateInput{
		Name:    "consumer annual",
		Kind:    rate.KindSimple,
		Percent: decimal.RequireFromString("12"),
		Period:  rate.PeriodAnnual,
	})
	if err != nil {
		t.Fatalf("CreateRate: %v", err)
	}
	if len(r.RateID) != 32 {
		t.Errorf("rate id %q not 32 chars", r.RateID)
	}

	got, err := uc.GetRate(ctx, r.RateID)
	if err != nil {
		t.Fatalf("GetRate: %v", err)
	}
	if got.Name != "consumer annual" || got.Kind != rate.KindSimple {
		t.Errorf("got %+v", got)
	}

	list, err := uc.ListRates(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListRates: %v, len=%d", err, len(list))
	}

	if err := uc.DeleteRate(ctx, r.RateID); err != nil {
		t.Fatalf("DeleteRate: %v", err)
	}
	if _, err := uc.GetRate(ctx, r.RateID); !errors.Is(err, rate.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
}

func TestCreateRate_Validation(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	bad := []CreateRateInput{
		{Name: "", Kind: rate.KindSimple, Percent: decimal.RequireFromString("12"), Period: rate.PeriodAnnual},
		{Name: "zero", Kind: rate.KindSimple, Percent: decimal.Zero, Period: rate.PeriodAnnual},
		{Name: "kind", Kind: "mystery", Percent: decimal.RequireFromString("12"), Period: rate.PeriodAnnual},
		{Name: "period", Kind: rate.KindSimple, Percent: decimal.RequireFromString("12"), Period: "century"},
	}
	for _, in := range bad {
		if _, err := uc.CreateRate(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("input %+v: want ErrInvalidInput, got %v", in, err)
		}
	}
}

// seedLoanFor creates a loan referencing the given client and rate ids.
func seedLoanFor(t *testing.T, db *gorm.DB, clientID, rateID string) *usecaseLoan.LoanDTO {
	t.Helper()
	dto, err := usecaseLoan.NewUsecase(mysql.NewGormUoW(db)).Create(context.Background(), usecaseLoan.CreateLoanInput{
		ClientID:     clientID,
		RateID:       rateID,
		Principal:    decimal.RequireFromString("600.00"),
		Installments: 6,
		Frequency:    domainLoan.FrequencyMonthly,
		IssueDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		FirstDueDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		CreatedBy:    id.NewID32(),
	})
	if err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	return dto
}

func TestDeleteRate_InUse(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := context.Background()

	r, err := uc.CreateRate(ctx, CreateRateInput{Name: "held", Kind: rate.KindSimple, Percent: decimal.RequireFromString("12"), Period: rate.PeriodAnnual})
	if err != nil {
		t.Fatalf("CreateRate: %v", err)
	}
	c, err := uc.CreateClient(ctx, CreateClientInput{FullName: "Luis Mora", Document: "40212345678"})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	seedLoanFor(t, db, c.ClientID, r.RateID)

	if err := uc.DeleteRate(ctx, r.RateID); !errors.Is(err, rate.ErrInUse) {
		t.Fatalf("want ErrInUse, got %v", err)
	}
	if err := uc.DeleteClient(ctx, c.ClientID); !errors.Is(err, client.ErrInUse) {
		t.Fatalf("want client ErrInUse, got %v", err)
	}
}

func TestMethods_Lifecycle(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	m, err := uc.CreateMethod(ctx, CreateMethodInput{Name: "transfer", Active: true})
	if err != nil {
		t.Fatalf("CreateMethod: %v", err)
	}
	if _, err := uc.CreateMethod(ctx, CreateMethodInput{Name: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput for empty name, got %v", err)
	}

	if _, err := uc.UpdateMethod(ctx, m.MethodID, "wire transfer", false); err != nil {
		t.Fatalf("UpdateMethod: %v", err)
	}

	active, err := uc.ListMethods(ctx, true)
	if err != nil {
		t.Fatalf("ListMethods(active): %v", err)
	}
	if len(active) != 0 {
		t.Errorf("deactivated method still listed as active")
	}
	all, err := uc.ListMethods(ctx, false)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListMethods(all): %v len=%d", err, len(all))
	}
	if all[0].Name != "wire transfer" || all[0].Active {
		t.Errorf("update not persisted: %+v", all[0])
	}

	if err := uc.DeleteMethod(ctx, m.MethodID); err != nil {
		t.Fatalf("DeleteMethod: %v", err)
	}
	if _, err := uc.UpdateMethod(ctx, m.MethodID, "", true); !errors.Is(err, method.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteMethod_InUse(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := context.Background()

	m, err := uc.CreateMethod(ctx, CreateMethodInput{Name: "cash", Active: true})
	if err != nil {
		t.Fatalf("CreateMethod: %v", err)
	}
	mm, err := mysql.NewMethodRepository(db).GetByMethodID(ctx, m.MethodID)
	if err != nil {
		t.Fatalf("GetByMethodID: %v", err)
	}
	p := &domainPayment.Payment{PaymentID: id.NewID32(), LoanRef: 1, Amount: decimal.RequireFromString("10.00"), PaidAt: time.Now().UTC(), MethodRef: mm.ID}
	if err := mysql.NewPaymentRepository(db).Create(ctx, p); err != nil {
		t.Fatalf("create payment: %v", err)
	}

	if err := uc.DeleteMethod(ctx, m.MethodID); !errors.Is(err, method.ErrInUse) {
		t.Fatalf("want ErrInUse, got %v", err)
	}
}

func TestClients_CreateGetDelete(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	if _, err := uc.CreateClient(ctx, CreateClientInput{FullName: "", Document: "123"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}

	c, err := uc.CreateClient(ctx, CreateClientInput{FullName: "Rosa Diaz", Document: "40298765432", Phone: "809-555-0101"})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	got, err := uc.GetClient(ctx, c.ClientID)
	if err != nil {
		t.Fatalf("GetClient: %v", err)
	}
	if got.FullName != "Rosa Diaz" || got.Phone != "809-555-0101" {
		t.Errorf("got %+v", got)
	}

	list, err := uc.ListClients(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListClients: %v len=%d", err, len(list))
	}

	if err := uc.DeleteClient(ctx, c.ClientID); err != nil {
		t.Fatalf("DeleteClient: %v", err)
	}
	if _, err := uc.GetClient(ctx, c.ClientID); !errors.Is(err, client.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
