package main

import (
	"log/slog"
	"os"

	"bengkel/internal/config"
	"bengkel/internal/domain/model"
	"bengkel/internal/handler"
	"bengkel/internal/infra/db"
	infraRepo "bengkel/internal/infra/repository"
	"bengkel/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

func main() {
	// .env opsional, env asli menang
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		slog.Error("db connect", "error", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Order{},
		&model.OrderItem{},
		&model.Product{},
		&model.Service{},
	); err != nil {
		slog.Error("db migrate", "error", err)
		os.Exit(1)
	}

	// repository (implementasi GORM)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	serviceRepo := infraRepo.NewServiceGormRepository(gormDB)
	reportRepo := infraRepo.NewReportGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	idGen := &uuidGenerator{}

	// usecase
	authUC := usecase.NewAuthUsecase(cfg, userRepo, idGen)
	orderUC := usecase.NewOrderUsecase(txManager)
	orderItemUC := usecase.NewOrderItemUsecase(txManager)
	userAdminUC := usecase.NewUserAdminUsecase(userRepo, idGen)
	catalogUC := usecase.NewCatalogUsecase(productRepo, serviceRepo)
	reportUC := usecase.NewReportUsecase(reportRepo)

	// handler + routes
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	handler.NewAuthHandler(authUC).RegisterRoutes(e, cfg)
	handler.NewOrderHandler(orderUC, orderItemUC).RegisterRoutes(e, cfg, userRepo)
	handler.NewUserHandler(userAdminUC).RegisterRoutes(e, cfg, userRepo)
	handler.NewCatalogHandler(catalogUC).RegisterRoutes(e, cfg, userRepo)
	handler.NewReportHandler(reportUC).RegisterRoutes(e, cfg, userRepo)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := e.Start(addr); err != nil {
		slog.Error("server", "error", err)
		os.Exit(1)
	}
}
