package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"prestamos-backend/internal/domain/rate"
	"prestamos-backend/internal/usecase/catalog"
)

type CatalogHandler struct{ uc *catalog.Usecase }

func NewCatalogHandler(uc *catalog.Usecase) *CatalogHandler { return &CatalogHandler{uc: uc} }

// ---- rates ----

type createRateReq struct {
	Name    string  `json:"name"    validate:"required,max=100"`
	Kind    string  `json:"kind"    validate:"required,oneof=simple compound"`
	Percent float64 `json:"percent" validate:"required,gt=0,dec2"`
	Period  string  `json:"period"  validate:"required,oneof=daily weekly biweekly monthly annual"`
}

func (h *CatalogHandler) CreateRate(c echo.Context) error {
	var req createRateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.CreateRate(c.Request().Context(), catalog.CreateRateInput{
		Name:    req.Name,
		Kind:    rate.Kind(req.Kind),
		Percent: decimal.NewFromFloat(req.Percent),
		Period:  rate.Period(req.Period),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CatalogHandler) GetRate(c echo.Context) error {
	out, err := h.uc.GetRate(c.Request().Context(), c.Param("rate_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) ListRates(c echo.Context) error {
	out, err := h.uc.ListRates(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) DeleteRate(c echo.Context) error {
	if err := h.uc.DeleteRate(c.Request().Context(), c.Param("rate_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ---- payment methods ----

type methodReq struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Active bool   `json:"active"`
}

func (h *CatalogHandler) CreateMethod(c echo.Context) error {
	var req methodReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.CreateMethod(c.Request().Context(), catalog.CreateMethodInput{Name: req.Name, Active: req.Active})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CatalogHandler) UpdateMethod(c echo.Context) error {
	var req methodReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.UpdateMethod(c.Request().Context(), c.Param("method_id"), req.Name, req.Active)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) ListMethods(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"
	out, err := h.uc.ListMethods(c.Request().Context(), activeOnly)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) DeleteMethod(c echo.Context) error {
	if err := h.uc.DeleteMethod(c.Request().Context(), c.Param("method_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ---- clients ----

type createClientReq struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Document string `json:"document"  validate:"required,max=20"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
}

func (h *CatalogHandler) CreateClient(c echo.Context) error {
	var req createClientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.CreateClient(c.Request().Context(), catalog.CreateClientInput{
		FullName: req.FullName,
		Document: req.Document,
		Phone:    req.Phone,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CatalogHandler) ListClients(c echo.Context) error {
	out, err := h.uc.ListClients(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) GetClient(c echo.Context) error {
	out, err := h.uc.GetClient(c.Request().Context(), c.Param("client_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) DeleteClient(c echo.Context) error {
	if err := h.uc.DeleteClient(c.Request().Context(), c.Param("client_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
