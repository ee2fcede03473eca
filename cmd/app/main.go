package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"printstream/cmd"
	httpadapter "printstream/internal/adapters/in/http"
	"printstream/internal/adapters/out/postgres/orderrepo"
	"printstream/internal/adapters/out/postgres/workorderrepo"
	"printstream/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; production uses real environment variables
	_ = godotenv.Load(".env")

	configs, err := cmd.NewConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := newLogger(configs.LogLevel)

	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&workorderrepo.WorkOrderDTO{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)
	startWebServer(&app, logger, configs.HTTPPort)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func startWebServer(app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	server := httpadapter.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateChangeWorkOrderStatusCommandHandler(),
		app.CreateEnhanceDesignCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetAllWorkOrdersQueryHandler(),
		app.CreateGetMaterialRequirementsQueryHandler(),
		app.CreateGetSubcontractWorklistQueryHandler(),
		logger,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
