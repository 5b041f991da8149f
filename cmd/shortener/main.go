package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/MoodinAhmed1/classicet/internal/auth"
	"github.com/MoodinAhmed1/classicet/internal/config"
	"github.com/MoodinAhmed1/classicet/internal/database"
	"github.com/MoodinAhmed1/classicet/internal/handlers"
	"github.com/MoodinAhmed1/classicet/internal/repositories"
	"github.com/MoodinAhmed1/classicet/internal/router"
	"github.com/MoodinAhmed1/classicet/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Инициализация конфигурации
	cfg := config.NewConfig()

	db, err := database.NewDB(cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Fatal("Ошибка подключения к БД: ", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseDSN, cfg.PgMigrationsPath, logger); err != nil {
		logger.Fatal("Ошибка применения миграций: ", zap.Error(err))
	}

	linkRepo := repositories.NewLinkRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)
	userRepo := repositories.NewUserRepository(db)
	domainRepo := repositories.NewDomainRepository(db)

	authService := auth.New(cfg.JWTSecret)

	shortener := service.NewLinkService(linkRepo, logger, cfg.BaseURL, cfg.TitleFetch)
	redirects := service.NewRedirectService(linkRepo, analyticsRepo, logger)
	analytics := service.NewAnalyticsService(linkRepo, analyticsRepo, logger)
	users := service.NewUserService(userRepo, authService, logger)
	domains := service.NewDomainService(domainRepo, logger)
	admin := service.NewAdminService(userRepo, linkRepo, analyticsRepo, logger)

	handler := handlers.NewHandler(
		shortener, redirects, analytics, users, domains, admin,
		linkRepo, logger,
		cfg.NotFoundURL, cfg.ExpiredURL, cfg.ErrorURL,
	)

	r := router.NewRouter(handler, authService, logger)

	logger.Info("Сервер запущен на ", zap.String("address", cfg.ServerAddress))
	if cfg.EnableHTTPS {
		if err := http.ListenAndServeTLS(cfg.ServerAddress, cfg.TLSCertPath, cfg.TLSKeyPath, r); err != nil {
			logger.Fatal("Ошибка при запуске сервера: ", zap.Error(err))
		}
		return
	}
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		logger.Fatal("Ошибка при запуске сервера: ", zap.Error(err))
	}
}
