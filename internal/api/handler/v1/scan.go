package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hskpro/warehouse-api/internal/api/handler/v1/request"
	"github.com/hskpro/warehouse-api/internal/api/handler/v1/response"
	"github.com/hskpro/warehouse-api/internal/api/middleware"
	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/service"
)

type ScanService interface {
	SubmitScan(ctx context.Context, direction domain.Direction, barcode string, actor domain.Actor) (domain.ScanEvent, error)
	History(ctx context.Context, direction domain.Direction, username string) ([]domain.ScanEvent, error)
	Today(ctx context.Context, direction domain.Direction, page, limit int) ([]domain.ScanEvent, int64, error)
}

type ScanHandler struct {
	svc ScanService
}

func NewScanHandler(svc ScanService) *ScanHandler {
	return &ScanHandler{
		svc: svc,
	}
}

// HandleReceivingScan godoc
// @Summary      Record a receiving scan
// @Tags         receiving
// @Produce      json
// @Param        request   body      request.ScanRequest true "request body"
// @Success      201      {object}   response.ScanResponse
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Failure      503      {object}   response.Err
// @Router       /receiving/scan [post]
// @Security     BearerAuth
func (h *ScanHandler) HandleReceivingScan(ctx *gin.Context) {
	h.handleScan(ctx, domain.DirectionReceiving)
}

// HandleShippingScan godoc
// @Summary      Record a shipping scan
// @Tags         shipping
// @Produce      json
// @Param        request   body      request.ScanRequest true "request body"
// @Success      201      {object}   response.ScanResponse
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Failure      503      {object}   response.Err
// @Router       /shipping/scan [post]
// @Security     BearerAuth
func (h *ScanHandler) HandleShippingScan(ctx *gin.Context) {
	h.handleScan(ctx, domain.DirectionShipping)
}

// handleScan is shared by both endpoints; the direction comes from the
// route, never from the body.
func (h *ScanHandler) handleScan(ctx *gin.Context, direction domain.Direction) {
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrMissingToken())

		return
	}

	var req request.ScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.SubmitScan(ctx.Request.Context(), direction, req.Barcode, actor)
	if err != nil {
		response.RenderErr(ctx, scanErr(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewScanResponse(event))
}

func scanErr(err error) *response.Err {
	switch {
	case errors.Is(err, service.ErrMaintenanceWindow):
		return response.ErrSystemMaintenance()
	case errors.Is(err, service.ErrInvalidPosition):
		return response.ErrInvalidPosition()
	case errors.Is(err, service.ErrBarcodeRequired):
		return response.ErrBarcodeRequired()
	case errors.Is(err, service.ErrBarcodeNotFound):
		return response.ErrBarcodeNotFound()
	case errors.Is(err, service.ErrScanFailed):
		return response.ErrScanFailed()
	default:
		return response.ErrInternalServerError(fmt.Errorf("v1.handleScan -> h.svc.SubmitScan -> %w", err))
	}
}

// HandleReceivingHistory godoc
// @Summary      Last 10 receiving scans of the calling user
// @Tags         receiving
// @Produce      json
// @Success      200 {array} domain.ScanEvent
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /receiving/history [get]
// @Security     BearerAuth
func (h *ScanHandler) HandleReceivingHistory(ctx *gin.Context) {
	h.handleHistory(ctx, domain.DirectionReceiving)
}

// HandleShippingHistory godoc
// @Summary      Last 10 shipping scans of the calling user
// @Tags         shipping
// @Produce      json
// @Success      200 {array} domain.ScanEvent
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /shipping/history [get]
// @Security     BearerAuth
func (h *ScanHandler) HandleShippingHistory(ctx *gin.Context) {
	h.handleHistory(ctx, domain.DirectionShipping)
}

func (h *ScanHandler) handleHistory(ctx *gin.Context, direction domain.Direction) {
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrMissingToken())

		return
	}

	events, err := h.svc.History(ctx.Request.Context(), direction, actor.Username)
	if err != nil {
		err = fmt.Errorf("v1.handleHistory -> h.svc.History -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleReceivingToday godoc
// @Summary      Today's receiving scans, paginated
// @Tags         receiving
// @Produce      json
// @Param        page  query int false "page number (default 1)"
// @Param        limit query int false "page size (default 100, max 1000)"
// @Success      200 {object} response.PagedScansResponse
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /receiving/today [get]
// @Security     BearerAuth
func (h *ScanHandler) HandleReceivingToday(ctx *gin.Context) {
	h.handleToday(ctx, domain.DirectionReceiving)
}

// HandleShippingToday godoc
// @Summary      Today's shipping scans, paginated
// @Tags         shipping
// @Produce      json
// @Param        page  query int false "page number (default 1)"
// @Param        limit query int false "page size (default 100, max 1000)"
// @Success      200 {object} response.PagedScansResponse
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /shipping/today [get]
// @Security     BearerAuth
func (h *ScanHandler) HandleShippingToday(ctx *gin.Context) {
	h.handleToday(ctx, domain.DirectionShipping)
}

func (h *ScanHandler) handleToday(ctx *gin.Context, direction domain.Direction) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 1000 {
		limit = 1000
	}

	events, total, err := h.svc.Today(ctx.Request.Context(), direction, page, limit)
	if err != nil {
		err = fmt.Errorf("v1.handleToday -> h.svc.Today -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewPagedScansResponse(events, page, limit, total))
}
