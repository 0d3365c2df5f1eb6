package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hskpro/warehouse-api/internal/api/handler/v1/response"
)

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleDaily godoc
// @Summary      Today's scan totals per direction
// @Tags         reports
// @Produce      json
// @Success      200 {array} domain.DailyReport
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /reports/daily [get]
// @Security     BearerAuth
func (h *ReportHandler) HandleDaily(ctx *gin.Context) {
	reports, err := h.svc.Daily(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleDaily -> h.svc.Daily -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reports)
}

// HandleMonthly godoc
// @Summary      Scan totals grouped by month
// @Tags         reports
// @Produce      json
// @Success      200 {array} domain.MonthlyReport
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /reports/monthly [get]
// @Security     BearerAuth
func (h *ReportHandler) HandleMonthly(ctx *gin.Context) {
	reports, err := h.svc.Monthly(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleMonthly -> h.svc.Monthly -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reports)
}
