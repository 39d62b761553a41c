package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/cipherstack/cipher-auth/internal/cache"
	"github.com/cipherstack/cipher-auth/internal/config"
	"github.com/cipherstack/cipher-auth/internal/events"
	"github.com/cipherstack/cipher-auth/internal/httpserver"
	"github.com/cipherstack/cipher-auth/internal/middleware"
	"github.com/cipherstack/cipher-auth/internal/models"
	"github.com/cipherstack/cipher-auth/internal/repo"
	"github.com/cipherstack/cipher-auth/internal/service"
	"github.com/cipherstack/cipher-auth/internal/tokens"
	"github.com/cipherstack/cipher-auth/pkg/db"
	"github.com/cipherstack/cipher-auth/pkg/logging"
	loggingmw "github.com/cipherstack/cipher-auth/pkg/middleware/logging"
)

func main() {
	cfg := config.Load()
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echomw.Secure())
	e.Use(echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(rate.Limit(20))))

	initCtx, cancel := context.WithTimeout(logging.IntoContext(context.Background(), logger), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := gdb.AutoMigrate(models.All()...); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	gormRepo := repo.GormRepo{DB: gdb}
	if err := gormRepo.EnsureSuperAdmin(initCtx, cfg.SuperAdminEmail, cfg.SuperAdminPassword); err != nil {
		log.Fatalf("super admin bootstrap error: %v", err)
	}
	cancel()

	var tokenCache cache.TokenCache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisFromURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis init error: %v", err)
		}
		defer redisCache.Close()
		tokenCache = redisCache
	} else {
		logger.Warn("REDIS_URL is empty, falling back to in-process cache")
		tokenCache = cache.NewMemory()
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	tokenSvc := &service.TokenService{
		Signer:     tokens.NewHS256Signer(cfg.JWTSecret),
		Cache:      tokenCache,
		Repo:       gormRepo,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	}
	authzSvc := &service.AuthzService{Tokens: tokenSvc, Repo: gormRepo}
	keySvc := &service.APIKeyService{Repo: gormRepo}

	httpserver.Register(e, &httpserver.Deps{
		Auth: &httpserver.AuthHTTP{
			Auth:   &service.AuthService{Repo: gormRepo, Tokens: tokenSvc, Events: producer},
			Tokens: tokenSvc,
			Reset:  &service.ResetService{Repo: gormRepo, Cache: tokenCache, Events: producer},
		},
		Users:       &httpserver.UserHTTP{Repo: gormRepo},
		Roles:       &httpserver.RoleHTTP{Roles: &service.RoleService{Repo: gormRepo}},
		Permissions: &httpserver.PermissionHTTP{Permissions: &service.PermissionService{Repo: gormRepo}},
		APIKeys:     &httpserver.APIKeyHTTP{Keys: keySvc},
		Service:     &httpserver.ServiceHTTP{Authz: authzSvc, Repo: gormRepo},
		AuthMW:      middleware.NewAuth(authzSvc),
		KeyMW:       middleware.NewAPIKeys(keySvc),
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}
}
