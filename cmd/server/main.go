package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/linuskmr/cloud/internal/config"
	"github.com/linuskmr/cloud/internal/handlers"
	customMiddleware "github.com/linuskmr/cloud/internal/middleware"
	"github.com/linuskmr/cloud/internal/renderer"
	"github.com/linuskmr/cloud/internal/services"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Missing subcommand. Use 'dev' or 'production'")
	}
	command := os.Args[1]

	flags := flag.NewFlagSet(command, flag.ExitOnError)
	port := flags.Int("port", 8192, "Port on which the server should run")
	flags.Parse(os.Args[2:])

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	switch command {
	case "dev":
		runServer(cfg, *port, true)
	case "production":
		runServer(cfg, *port, false)
	default:
		log.Fatalf("Command %q unknown. Use 'dev' or 'production'", command)
	}
}

func runServer(cfg *config.Config, port int, dev bool) {
	e, r, err := newServer(cfg)
	if err != nil {
		log.Fatalf("Failed to set up server: %v", err)
	}

	if dev {
		log.Printf("Starting development server on port %d", port)
		if err := r.Watch(context.Background()); err != nil {
			log.Printf("Warning: template auto-reload unavailable: %v", err)
		}
	} else {
		log.Printf("Starting production server on port %d", port)
	}

	// 0.0.0.0 makes the server reachable from other hosts, necessary
	// when running inside docker
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%d", port)))
}

func newServer(cfg *config.Config) (*echo.Echo, *renderer.TemplateRenderer, error) {
	e := echo.New()

	// Services
	authService := services.NewAuthService(cfg.AuthUser, cfg.AuthPassword)
	previewService := services.NewPreviewService()
	browseHandler := handlers.NewBrowseHandler(cfg, previewService)

	// Middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("REQUEST: uri: %v, status: %v\n", v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(customMiddleware.SecurityHeaders())
	e.Use(customMiddleware.BasicAuth(authService))

	// Template Renderer
	r, err := renderer.New(cfg.TemplateDir)
	if err != nil {
		return nil, nil, err
	}
	e.Renderer = r

	// Routes
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/*", browseHandler.Serve)

	return e, r, nil
}
