package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"prestamos-backend/internal/domain/client"
	"prestamos-backend/internal/domain/loan"
	"prestamos-backend/internal/domain/method"
	"prestamos-backend/internal/domain/payment"
	"prestamos-backend/internal/domain/rate"
	usecaseCatalog "prestamos-backend/internal/usecase/catalog"
	usecaseLoan "prestamos-backend/internal/usecase/loan"
	usecasePayment "prestamos-backend/internal/usecase/payment"
)

// writeDomainError maps business errors to HTTP codes. Anything unmapped is a 500.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecaseLoan.ErrInvalidInput),
		errors.Is(err, usecasePayment.ErrInvalidInput),
		errors.Is(err, usecaseCatalog.ErrInvalidInput),
		errors.Is(err, rate.ErrUnsupportedKind),
		errors.Is(err, loan.ErrNotPayable),
		errors.Is(err, payment.ErrInsufficientInstallments):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, rate.ErrInUse),
		errors.Is(err, method.ErrInUse),
		errors.Is(err, client.ErrInUse):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, payment.ErrNotFound),
		errors.Is(err, rate.ErrNotFound),
		errors.Is(err, method.ErrNotFound),
		errors.Is(err, client.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
