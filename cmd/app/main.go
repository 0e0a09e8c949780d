// The dispatch service ingests orders from the upstream shop feeds, admits
// them to delivery days under capacity and blackout rules, and serves the
// dispatcher dashboard API.
package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
	echoswagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dispatch/cmd"
	_ "dispatch/docs"
	"dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/blackoutrepo"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/generated/servers"
	"dispatch/internal/jobs"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config, err := getConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(config.PostgresDSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&blackoutrepo.BlackoutDTO{},
		&courierrepo.CourierDTO{},
	); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		logger.Error("failed to build composition root", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(
		root.CreateIngestOrdersCommandHandler(),
		root.CreateMarkOverdueDelayedCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e, err := buildWebServer(root)
	if err != nil {
		logger.Error("failed to build web server", "error", err)
		os.Exit(1)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); startErr != nil &&
			startErr != nethttp.ErrServerClosed {
			logger.Error("web server stopped", "error", startErr)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
}

// getConfig reads settings from .env and the environment; the port and the
// scheduling knobs can be overridden on the command line.
func getConfig() (cmd.Config, error) {
	// Missing .env is fine in containers where settings come from the
	// environment directly.
	_ = godotenv.Load(".env")

	windowDays, err := cmd.IntFromEnv(os.Getenv("DELIVERY_WINDOW_DAYS"), cmd.DefaultDeliveryWindowDays)
	if err != nil {
		return cmd.Config{}, err
	}
	maxPerDay, err := cmd.IntFromEnv(os.Getenv("MAX_DELIVERIES_PER_DAY"), cmd.DefaultMaxDeliveriesPerDay)
	if err != nil {
		return cmd.Config{}, err
	}

	config := cmd.Config{
		HTTPPort:            os.Getenv("HTTP_PORT"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              os.Getenv("DB_PORT"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           os.Getenv("DB_SSLMODE"),
		DeliveryWindowDays:  windowDays,
		MaxDeliveriesPerDay: maxPerDay,
	}

	pflag.StringVar(&config.HTTPPort, "http-port", config.HTTPPort, "port for the dashboard API")
	pflag.IntVar(&config.DeliveryWindowDays, "delivery-window-days", config.DeliveryWindowDays,
		"days after order creation a delivery is promised within")
	pflag.IntVar(&config.MaxDeliveriesPerDay, "max-deliveries-per-day", config.MaxDeliveriesPerDay,
		"booking capacity of one delivery day")
	pflag.Parse()

	if err = config.Validate(); err != nil {
		return cmd.Config{}, err
	}
	return config, nil
}

func buildWebServer(root cmd.CompositionRoot) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := http.NewServer(
		root.CreateScheduleDeliveryCommandHandler(),
		root.CreateUpdateDeliveryStatusCommandHandler(),
		root.CreateToggleBlackoutCommandHandler(),
		root.CreateIngestOrdersCommandHandler(),
		root.CreateGetPriorityQueueQueryHandler(),
		root.CreateGetCalendarQueryHandler(),
		root.CreateGetDeliveryStatsQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	if err := http.RegisterOpenAPIRoute(e); err != nil {
		return nil, err
	}
	e.GET("/swagger/*", echoswagger.WrapHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	return e, nil
}
