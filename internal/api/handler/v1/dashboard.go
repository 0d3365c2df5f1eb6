package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hskpro/warehouse-api/internal/api/handler/v1/response"
	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/hub"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production!
	},
}

type ReportService interface {
	Daily(ctx context.Context) ([]domain.DailyReport, error)
	Monthly(ctx context.Context) ([]domain.MonthlyReport, error)
	Stats(ctx context.Context) (domain.DashboardStats, error)
	Chart(ctx context.Context) ([]domain.ChartPoint, error)
}

type DashboardHandler struct {
	svc ReportService
	hub *hub.Hub
}

func NewDashboardHandler(svc ReportService, h *hub.Hub) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
		hub: h,
	}
}

// HandleStats godoc
// @Summary      Today's scan counts and total on-hand stock
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} domain.DashboardStats
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /dashboard/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) HandleStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleChart godoc
// @Summary      Receiving/shipping counts per day for the last 7 days
// @Tags         dashboard
// @Produce      json
// @Success      200 {array} domain.ChartPoint
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /dashboard/chart [get]
// @Security     BearerAuth
func (h *DashboardHandler) HandleChart(ctx *gin.Context) {
	points, err := h.svc.Chart(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleChart -> h.svc.Chart -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, points)
}

// HandleLive godoc
// @Summary      Subscribe to the live scan feed
// @Description  Upgrades to a WebSocket; each completed scan is pushed as JSON
// @Tags         dashboard
// @Produce      json
// @Success      101 {string} string "Switching Protocols to WebSocket"
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Router       /dashboard/live [get]
// @Security     BearerAuth
func (h *DashboardHandler) HandleLive(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Register(conn)
}
