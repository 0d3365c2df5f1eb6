package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hskpro/warehouse-api/internal/api/handler/v1/response"
	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/service"
)

type StockService interface {
	GetSummary(ctx context.Context, barcode string) (domain.StockSummary, error)
}

type StockHandler struct {
	svc StockService
}

func NewStockHandler(svc StockService) *StockHandler {
	return &StockHandler{
		svc: svc,
	}
}

// HandleGetSummary godoc
// @Summary      Rolling on-hand total for a barcode
// @Tags         stocks
// @Produce      json
// @Param        barcode path string true "barcode"
// @Success      200 {object} domain.StockSummary
// @Failure      401 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /stocks/{barcode} [get]
// @Security     BearerAuth
func (h *StockHandler) HandleGetSummary(ctx *gin.Context) {
	summary, err := h.svc.GetSummary(ctx.Request.Context(), ctx.Param("barcode"))
	if err != nil {
		if errors.Is(err, service.ErrStockSummaryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("No stock summary for this barcode"))

			return
		}

		err = fmt.Errorf("v1.HandleGetSummary -> h.svc.GetSummary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, summary)
}
