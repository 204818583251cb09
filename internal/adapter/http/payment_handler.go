package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"prestamos-backend/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type registerPaymentReq struct {
	InstallmentIDs []string `json:"installment_ids" validate:"required,min=1,dive,hex32"`
	MethodID       string   `json:"method_id"       validate:"required,hex32"`
	Reference      string   `json:"reference"       validate:"omitempty,max=100"`
	// Optional payment timestamp, RFC3339. Defaults to now.
	PaidAt string `json:"paid_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (h *PaymentHandler) RegisterPayment(c echo.Context) error {
	var req registerPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	var paidAt time.Time
	if req.PaidAt != "" {
		paidAt, _ = time.Parse(time.RFC3339, req.PaidAt)
	}
	dto, err := h.uc.Register(c.Request().Context(), payment.RegisterInput{
		LoanID:         c.Param("loan_id"),
		InstallmentIDs: req.InstallmentIDs,
		MethodID:       req.MethodID,
		Reference:      req.Reference,
		RecordedBy:     actorID(c),
		PaidAt:         paidAt,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type allocatePaymentReq struct {
	InstallmentIDs []string `json:"installment_ids" validate:"required,min=1,dive,hex32"`
}

// AllocatePayment distributes a payment that was stored without being
// applied, typically a retry after a crash mid-registration. Replaying an
// already applied payment returns the stored result unchanged.
func (h *PaymentHandler) AllocatePayment(c echo.Context) error {
	var req allocatePaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Allocate(c.Request().Context(), c.Param("loan_id"), c.Param("payment_id"), req.InstallmentIDs)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"), c.Param("payment_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
