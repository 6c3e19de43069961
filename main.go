package main

import (
	"crypto/sha256"
	"encoding/base64"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"repuestos-web/config"
	"repuestos-web/controllers"
	"repuestos-web/database"
	"repuestos-web/middlewares"
	"repuestos-web/routes"
	"repuestos-web/services"
	"repuestos-web/utils"
)

// cookieKey derives the base64 32-byte key the cookie encryption middleware
// expects from the configured session secret.
func cookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	// ---- Database (local SQLite file)
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("could not open database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("could not migrate database", zap.Error(err))
	}

	// ---- Services
	exporter := services.NewExporter(db, cfg.ExcelPath(), logger)
	images := services.NewImageStore(cfg.ImagesDir, logger)
	parts := services.NewPartService(db, images, exporter, logger)

	// ---- Sessions (server-side store, encrypted cookie ID)
	store := session.New(session.Config{
		KeyLookup:      "cookie:repuestos_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	// ---- Fiber app with HTML views + global error handler + body limit
	engine := html.New(cfg.ViewsDir, ".html")
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: middlewares.NewErrorHandler(logger),
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
	})

	app.Use(fiberlogger.New())
	app.Use(encryptcookie.New(encryptcookie.Config{Key: cookieKey(cfg.SecretKey)}))

	// Uploaded part images are served as static assets.
	app.Static("/images", cfg.ImagesDir)

	// ---- Login rate limiter (tune via env)
	loginLimiter := limiter.New(limiter.Config{
		Max:        cfg.LoginRateMax,
		Expiration: time.Duration(cfg.LoginRateWindowSeconds) * time.Second,
	})

	// ---- Routes
	routes.Register(app, store,
		controllers.NewAuthController(cfg, store),
		controllers.NewPartController(parts, store),
		controllers.NewExcelController(exporter),
		loginLimiter)

	// ---- Start
	logger.Info("repuestos-web listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
