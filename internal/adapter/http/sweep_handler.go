package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"prestamos-backend/internal/usecase/sweep"
)

type SweepHandler struct{ uc *sweep.Usecase }

func NewSweepHandler(uc *sweep.Usecase) *SweepHandler { return &SweepHandler{uc: uc} }

// RunSweep is the external trigger for the overdue scan. An optional
// ?as_of=YYYY-MM-DD pins the reference date, mostly for backfills.
func (h *SweepHandler) RunSweep(c echo.Context) error {
	asOf := time.Now().UTC()
	if v := c.QueryParam("as_of"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "as_of must be YYYY-MM-DD"})
		}
		asOf = parsed
	}
	res, err := h.uc.Run(c.Request().Context(), asOf)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
