package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hskpro/warehouse-api/docs"
	v1 "github.com/hskpro/warehouse-api/internal/api/handler/v1"
	"github.com/hskpro/warehouse-api/internal/api/middleware"
	"github.com/hskpro/warehouse-api/internal/config"
	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/hub"
	"github.com/hskpro/warehouse-api/internal/repository"
	"github.com/hskpro/warehouse-api/internal/repository/dao"
	"github.com/hskpro/warehouse-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

// hubPublisher adapts *hub.Hub to the service.ScanPublisher interface.
type hubPublisher struct {
	hub *hub.Hub
}

func (p hubPublisher) Publish(update domain.ScanUpdate) {
	p.hub.Publish(update)
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	liveHub := hub.NewHub()
	go liveHub.Run()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	scanHandler := s.initScanHandler(db, liveHub)
	catalogHandler := s.initCatalogHandler(db)
	stockHandler := s.initStockHandler(db)
	dashboardHandler := s.initDashboardHandler(db, liveHub)
	reportHandler := s.initReportHandler(db)
	s.MountHandlers(authHandler, userHandler, scanHandler, catalogHandler, stockHandler, dashboardHandler, reportHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initScanHandler(db *gorm.DB, liveHub *hub.Hub) *v1.ScanHandler {
	window, err := service.NewMaintenanceWindow(s.Config.Scan.MaintenanceStart, s.Config.Scan.MaintenanceSeconds)
	if err != nil {
		zap.L().Fatal("invalid maintenance window config", zap.Error(err))
	}

	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	scanRepo := repository.NewScanRepository(dao.NewScanDAO(db))
	stockRepo := repository.NewStockRepository(dao.NewStockDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))

	svc := service.NewScanService(
		service.NewScanGate(window),
		catalogRepo,
		scanRepo,
		stockRepo,
		userRepo,
		hubPublisher{hub: liveHub},
		s.Config.Scan.MaxSequenceRetries,
	)
	handler := v1.NewScanHandler(svc)

	return handler
}

func (s *Server) initCatalogHandler(db *gorm.DB) *v1.CatalogHandler {
	repo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	svc := service.NewCatalogService(repo)
	handler := v1.NewCatalogHandler(svc)

	return handler
}

func (s *Server) initStockHandler(db *gorm.DB) *v1.StockHandler {
	repo := repository.NewStockRepository(dao.NewStockDAO(db))
	svc := service.NewStockService(repo)
	handler := v1.NewStockHandler(svc)

	return handler
}

func (s *Server) initDashboardHandler(db *gorm.DB, liveHub *hub.Hub) *v1.DashboardHandler {
	repo := repository.NewReportRepository(dao.NewReportDAO(db))
	svc := service.NewReportService(repo)
	handler := v1.NewDashboardHandler(svc, liveHub)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	repo := repository.NewReportRepository(dao.NewReportDAO(db))
	svc := service.NewReportService(repo)
	handler := v1.NewReportHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	scanHandler *v1.ScanHandler,
	catalogHandler *v1.CatalogHandler,
	stockHandler *v1.StockHandler,
	dashboardHandler *v1.DashboardHandler,
	reportHandler *v1.ReportHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.POST("/users", userHandler.HandleCreateUser)

		authenticated.POST("/receiving/scan", scanHandler.HandleReceivingScan)
		authenticated.GET("/receiving/history", scanHandler.HandleReceivingHistory)
		authenticated.GET("/receiving/today", scanHandler.HandleReceivingToday)

		authenticated.POST("/shipping/scan", scanHandler.HandleShippingScan)
		authenticated.GET("/shipping/history", scanHandler.HandleShippingHistory)
		authenticated.GET("/shipping/today", scanHandler.HandleShippingToday)

		authenticated.GET("/catalog/:barcode", catalogHandler.HandleGetEntry)
		authenticated.GET("/stocks/:barcode", stockHandler.HandleGetSummary)

		authenticated.GET("/dashboard/stats", dashboardHandler.HandleStats)
		authenticated.GET("/dashboard/chart", dashboardHandler.HandleChart)
		authenticated.GET("/dashboard/live", dashboardHandler.HandleLive)

		authenticated.GET("/reports/daily", reportHandler.HandleDaily)
		authenticated.GET("/reports/monthly", reportHandler.HandleMonthly)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Warehouse Scan Tracking API"
	docs.SwaggerInfo.Description = "Inbound/outbound barcode scan tracking."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
