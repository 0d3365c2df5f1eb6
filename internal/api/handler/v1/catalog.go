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

type CatalogService interface {
	Resolve(ctx context.Context, barcode string) (domain.CatalogEntry, error)
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleGetEntry godoc
// @Summary      Resolve a barcode against the master catalog
// @Tags         catalog
// @Produce      json
// @Param        barcode path string true "barcode"
// @Success      200 {object} domain.CatalogEntry
// @Failure      401 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /catalog/{barcode} [get]
// @Security     BearerAuth
func (h *CatalogHandler) HandleGetEntry(ctx *gin.Context) {
	entry, err := h.svc.Resolve(ctx.Request.Context(), ctx.Param("barcode"))
	if err != nil {
		if errors.Is(err, service.ErrBarcodeNotFound) {
			response.RenderErr(ctx, response.ErrBarcodeNotFound())

			return
		}

		err = fmt.Errorf("v1.HandleGetEntry -> h.svc.Resolve -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, entry)
}
