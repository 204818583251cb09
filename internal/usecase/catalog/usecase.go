package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"prestamos-backend/internal/domain/client"
	"prestamos-backend/internal/domain/method"
	"prestamos-backend/internal/domain/rate"
	"prestamos-backend/internal/domain/uow"
	"prestamos-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

// Usecase manages the reference records loans and payments point at: rates,
// payment methods and clients. Deletes are rejected while anything still
// references the record.
type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// ---- rates ----

type CreateRateInput struct {
	Name    string
	Kind    rate.Kind
	Percent decimal.Decimal
	Period  rate.Period
}

func (u *Usecase) CreateRate(ctx context.Context, in CreateRateInput) (*rate.Rate, error) {
	if in.Name == "" || !in.Percent.IsPositive() {
		return nil, fmt.Errorf("%w: rate needs a name and a positive percent", ErrInvalidInput)
	}
	if !rate.ValidKind(in.Kind) {
		return nil, fmt.Errorf("%w: unknown rate kind %q", ErrInvalidInput, in.Kind)
	}
	if !rate.ValidPeriod(in.Period) {
		return nil, fmt.Errorf("%w: unknown rate period %q", ErrInvalidInput, in.Period)
	}
	r := &rate.Rate{
		RateID:  id.NewID32(),
		Name:    in.Name,
		Kind:    in.Kind,
		Percent: in.Percent,
		Period:  in.Period,
	}
	var err error
	txErr := u.uow.WithinTx(ctx, func(repos uow.Repos) error {
		err = repos.Rates.Create(ctx, r)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return r, nil
}

func (u *Usecase) GetRate(ctx context.Context, rateID string) (*rate.Rate, error) {
	var out *rate.Rate
	err := u.uow.WithinTx(ctx, func(repos uow.Repos) error {
		r, err := repos.Rates.GetByRateID(ctx, rateID)
		if err != nil {
			return rate.ErrNotFound
		}
		out = r
		return nil
	})
	return out, err
}

func (u *Usecase) ListRates(ctx context.Context) ([]*rate.Rate, error) {
	var out []*rate.Rate
	err := u.uow.WithinTx(ctx, func(repos uow.Repos) error {
		var err error
		out, err = repos.Rates.List(ctx)
		return err
	})
	return out, err
}

// DeleteRate refuses while any loan references the rate.
func (u *Usecase) DeleteRate(ctx context.Context, rateID string) error {
	return u.uow.WithinTx(ctx, func(repos uow.Repos) error {
		r, err := repos.Rates.GetByRateID(ctx, rateID)
		if err != nil {
			return rate.ErrNotFound
		}
		used, err := repos.Loans.ExistsByRateRef(ctx, r.ID)
		if err != nil {
			return err
		}
		if used {
			return rate.ErrInUse
		}
		return repos.Rates.Delete(ctx, r)
	})
}

// ---- payment methods ----

type CreateMethodInput struct {
	Name   string
	Active bool
}

func (u *Usecase) CreateMethod(ctx context.Context, in CreateMethodInput) (*method.Method, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: method name is required", ErrInvalidInput)
	}
	m := &method.Method{MethodID: id.NewID32(), Name: in.Name, Active: in.Active}
	err := u.uow.WithinTx(ctx, func(repos uow.Repos) error {
		return repos.Methods.Create(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (u *Usecase) UpdateMethod(ctx context.Context, methodID, name string, active bool) (*method.Method, error) {
	var out *method.Method
	err := u.uow.WithinTx(ctx, func(repos uow.Repos) error {
		m, err := repos.Methods.GetByMethodID(ctx, methodID)
		if err != nil {
			return method.ErrNotFound
		}
		if name != "" {
			m.Name = name
		}
		m.Active = active
		if err := repos.Methods.Save(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	return out, err
}

func (u *Usecase) ListMethods(ctx context.Context, activeOnly bool) ([]*method.Method, error) {
	var out []*method.Method
	err := u.uow.WithinTx(ctx, func(repos uow.Repos) error {
		var err error
		out, err = repos.Methods.List(ctx, activeOnly)
		return err
	})
	return out, err
}

// DeleteMethod refuses while any payment references the method.
func (u *Usecase) DeleteMethod(ctx context.Context, methodID string) error {
	return u.uow.WithinTx(ctx, func(repos uow.Repos) error {
		m, err := repos.Methods.GetByMethodID(ctx, methodID)
		if err != nil {
			return method.ErrNotFound
		}
		used, err := repos.Payments.ExistsByMethodRef(ctx, m.ID)
		if err != nil {
			return err
		}
		if used {
			return method.ErrInUse
		}
		return repos.Methods.Delete(ctx, m)
	})
}

// ---- clients ----

type CreateClientInput struct {
	FullName string
	Document string
	Phone    string
}

func (u *Usecase) CreateClient(ctx context.Context, in CreateClientInput) (*client.Client, error) {
	if in.FullName == "" || in.Document == "" {
		return nil, fmt.Errorf("%w: client needs a full name and a document", ErrInvalidInput)
	}
	c := &client.Client{ClientID: id.NewID32(), FullName: in.FullName, Document: in.Document, Phone: in.Phone}
	err := u.uow.WithinTx(ctx, func(repos uow.Repos) error {
		return repos.Clients.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Usecase) ListClients(ctx context.Context) ([]*client.Client, error) {
	var out []*client.Client
	err := u.uow.WithinTx(ctx, func(repos uow.Repos) error {
		var err error
		out, err = repos.Clients.List(ctx)
		return err
	})
	return out, err
}

func (u *Usecase) GetClient(ctx context.Context, clientID string) (*client.Client, error) {
	var out *client.Client
	err := u.uow.WithinTx(ctx, func(repos uow.Repos) error {
		c, err := repos.Clients.GetByClientID(ctx, clientID)
		if err != nil {
			return client.ErrNotFound
		}
		out = c
		return nil
	})
	return out, err
}

// DeleteClient refuses while any loan references the client.
func (u *Usecase) DeleteClient(ctx context.Context, clientID string) error {
	return u.uow.WithinTx(ctx, func(repos uow.Repos) error {
		c, err := repos.Clients.GetByClientID(ctx, clientID)
		if err != nil {
			return client.ErrNotFound
		}
		used, err := repos.Loans.ExistsByClientRef(ctx, c.ID)
		if err != nil {
			return err
		}
		if used {
			return client.ErrInUse
		}
		return repos.Clients.Delete(ctx, c)
	})
}
