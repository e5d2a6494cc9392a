package routes

import (
	"time"

	"equipment-tracker/internal/controllers"
	"equipment-tracker/internal/repositories"
	"equipment-tracker/internal/services"
	"equipment-tracker/pkg/config"
	"equipment-tracker/pkg/middleware"
	jwtservice "equipment-tracker/pkg/service"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InitRouter собирает все зависимости приложения и навешивает маршруты.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc jwtservice.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) {
	txManager := repositories.NewTxManager(dbConn)

	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn)
	eventRepo := repositories.NewEventRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	equipmentService := services.NewEquipmentService(txManager, equipmentRepo, maintenanceRepo, eventRepo, logger)
	importService := services.NewEquipmentImportService(equipmentService, logger)
	dashboardService := services.NewDashboardService(equipmentService, cacheRepo, cfg.Cache.DashboardTTL, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)

	equipmentController := controllers.NewEquipmentController(equipmentService, importService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, logger)
	authController := controllers.NewAuthController(authService, logger)

	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	apiGroup := e.Group("/api")

	secureGroup := apiGroup.Group("")
	secureGroup.Use(authMW.Auth)

	runAuthRouter(apiGroup, authController)
	runEquipmentRouter(secureGroup, equipmentController)
	runDashboardRouter(secureGroup, dashboardController)

	// Redis прогревается при первом запросе сводки; здесь только
	// фиксируем, что сборка маршрутов завершена.
	logger.Info("Маршруты инициализированы", zap.Time("at", time.Now()))
}
