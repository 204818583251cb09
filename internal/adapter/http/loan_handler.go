package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	domainLoan "prestamos-backend/internal/domain/loan"
	"prestamos-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	ClientID     string  `json:"client_id"      validate:"required,hex32"`
	RateID       string  `json:"rate_id"        validate:"required,hex32"`
	Principal    float64 `json:"principal"      validate:"required,gt=0,dec2"`
	Installments int     `json:"installments"   validate:"required,gte=1,lte=120"`
	Frequency    string  `json:"frequency"      validate:"required,oneof=weekly biweekly monthly"`
	IssueDate    string  `json:"issue_date"     validate:"required,datetime=2006-01-02"`
	FirstDueDate string  `json:"first_due_date" validate:"required,datetime=2006-01-02"`
	Guarantee    string  `json:"guarantee"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	issue, _ := time.Parse("2006-01-02", req.IssueDate)
	firstDue, _ := time.Parse("2006-01-02", req.FirstDueDate)

	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		ClientID:     req.ClientID,
		RateID:       req.RateID,
		Principal:    decimal.NewFromFloat(req.Principal),
		Installments: req.Installments,
		Frequency:    domainLoan.Frequency(req.Frequency),
		IssueDate:    issue,
		FirstDueDate: firstDue,
		Guarantee:    req.Guarantee,
		CreatedBy:    actorID(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) GetLoanDetail(c echo.Context) error {
	dto, err := h.uc.Detail(c.Request().Context(), c.Param("loan_id"), time.Now().UTC())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// actorID pulls the acting employee id from the Ax-Actor-Id header; the auth
// layer in front of this service guarantees it for mutating routes.
func actorID(c echo.Context) string {
	return c.Request().Header.Get("Ax-Actor-Id")
}
