package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"packing/cmd"
	packinghttp "packing/internal/adapters/in/http"
	"packing/internal/adapters/out/oes"
	"packing/internal/adapters/out/postgres/cartonrepo"
	"packing/internal/adapters/out/postgres/orderrepo"
	"packing/internal/adapters/out/postgres/packrepo"
	"packing/internal/jobs"
	"packing/internal/pkg/logging"
	"packing/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logging.Init(configs.LogLevel, configs.LogPretty)

	gormDB := mustConnectDB(configs)

	orderSource, err := oes.Connect(configs.OESDSN)
	if err != nil {
		log.Fatalf("Failed to connect to order entry system: %v", err)
	}
	defer orderSource.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, orderSource)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	config := cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            envOrDefault("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         envOrDefault("DB_SSLMODE", "disable"),
		OESDSN:            os.Getenv("OES_DSN"),
		LogLevel:          envOrDefault("LOG_LEVEL", "info"),
		LogPretty:         os.Getenv("LOG_PRETTY") == "true",
		StalePackSchedule: envOrDefault("STALE_PACK_SCHEDULE", "*/5 * * * *"),
		StalePackAge:      envOrDefault("STALE_PACK_AGE", "4h"),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&cartonrepo.CartonDTO{},
		&packrepo.PackDTO{},
		&packrepo.BoxDTO{},
		&packrepo.BoxItemDTO{},
		&packrepo.PairGuardDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	stalePackAge, err := time.ParseDuration(configs.StalePackAge)
	if err != nil {
		log.Fatalf("Invalid STALE_PACK_AGE %q: %v", configs.StalePackAge, err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateGetStalePacksQueryHandler(),
		configs.StalePackSchedule,
		stalePackAge,
		slog.New(slog.NewJSONHandler(os.Stderr, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(logging.RequestLoggerMiddleware())
	e.Use(metrics.PrometheusMiddleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server := packinghttp.NewServer(
		app.CreateStartPackCommandHandler(),
		app.CreateAddBoxCommandHandler(),
		app.CreateRemoveBoxCommandHandler(),
		app.CreateDuplicateBoxCommandHandler(),
		app.CreateAssignOneCommandHandler(),
		app.CreateAssignAllRemainingCommandHandler(),
		app.CreateSetQtyCommandHandler(),
		app.CreateRemoveItemCommandHandler(),
		app.CreateRemoveAllPackedCommandHandler(),
		app.CreateSetBoxWeightCommandHandler(),
		app.CreateCompletePackCommandHandler(),
		app.CreateReopenPackCommandHandler(),
		app.CreateGetPackSnapshotQueryHandler(),
		app.CreateGetCartonsQueryHandler(),
	)
	server.RegisterRoutes(e)

	appLogger := logging.Logger()
	appLogger.Info().Str("port", port).Msg("Starting HTTP server")
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
