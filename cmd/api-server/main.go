package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/nrednav/cuid2"

	"github.com/docnest/docnest/internal/boot"
	"github.com/docnest/docnest/internal/handlers"
	"github.com/docnest/docnest/internal/mailer"
	"github.com/docnest/docnest/internal/service/account"
	"github.com/docnest/docnest/internal/service/catalog"
	"github.com/docnest/docnest/internal/service/token"
	"github.com/docnest/docnest/internal/store"
)

func main() {
	config, err := boot.Load()
	if err != nil {
		log.Fatalf("boot: %+v", err)
	}

	logger := log.New("docnest")
	logger.SetLevel(log.INFO)
	if config.IsDevelopment() {
		logger.SetLevel(log.DEBUG)
	}

	ctx := context.Background()

	db, err := store.Connect(ctx, config.Mongo.URL, config.Mongo.DBName, logger)
	if err != nil {
		log.Fatalf("connecting to store: %+v", err)
	}
	defer db.Close()

	notifier, err := mailer.New(config, logger)
	if err != nil {
		log.Fatalf("creating mailer: %+v", err)
	}
	defer notifier.Close()

	tokens := token.New(config.Auth.SessionSecret, config.Auth.ActionSecret)
	accountService := account.New(db.Users, notifier, tokens, logger)
	catalogService := catalog.New(db.Files, db.Categories, logger)

	server := echo.New()
	server.Logger = logger
	server.Validator = handlers.NewRequestValidator()
	server.Use(middleware.BodyLimit("10M"))
	server.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return cuid2.Generate()
		},
	}))
	server.Use(echoprometheus.NewMiddleware("docnest"))
	server.Use(middleware.Recover())

	headers := []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, handlers.AuthHeader}
	server.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     strings.Split(config.Server.Origins, ","),
		AllowHeaders:     headers,
		AllowCredentials: true,
	}))

	authRequired := handlers.Auth(tokens)

	users := server.Group("/api/users")
	users.POST("/signup", handlers.Signup(accountService))
	users.POST("/verify", handlers.VerifyEmail(accountService))
	users.POST("/signin", handlers.Signin(accountService))
	users.POST("/forgotPassword", handlers.ForgotPassword(accountService))
	users.POST("/resetPassword", handlers.ResetPassword(accountService))
	users.POST("/profile", handlers.UpdateProfile(accountService), authRequired)
	users.GET("", handlers.CurrentUser(accountService), authRequired)
	users.GET("/username", handlers.UsernameAvailable(accountService))

	files := server.Group("/api/files")
	files.POST("/newUpload", handlers.UploadFile(catalogService))
	files.GET("/list", handlers.ListFiles(catalogService), authRequired)
	files.DELETE("/:id", handlers.DeleteFile(catalogService), authRequired)

	categories := server.Group("/api/category", authRequired)
	categories.POST("/newCategory", handlers.CreateCategory(catalogService))
	categories.GET("/getCategories", handlers.ListCategories(catalogService))
	categories.POST("/editCategory", handlers.EditCategory(catalogService))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(":" + config.Server.MetricsPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	go func() {
		if err := server.Start(":" + config.Server.Port); err != nil && err != http.ErrServerClosed {
			server.Logger.Fatal("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		server.Logger.Fatal(err)
	}
}
