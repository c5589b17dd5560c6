package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"entrega/cmd"
	httpadapter "entrega/internal/adapters/in/http"
	"entrega/internal/adapters/out/postgres"
	"entrega/internal/jobs"
	"entrega/internal/pkg/auth"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	tokens, err := auth.NewTokenService(configs.JWTSecret, mustParseDuration(configs.JWTTTL))
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateExpireStaleOrdersCommandHandler(),
		mustParseDuration(configs.OrderMaxPendingAge),
		configs.OrderExpireCron,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, tokens, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:          goDotEnvVariable("JWT_SECRET"),
		JWTTTL:             goDotEnvVariable("JWT_TTL"),
		OrderMaxPendingAge: goDotEnvVariable("ORDER_MAX_PENDING_AGE"),
		OrderExpireCron:    goDotEnvVariable("ORDER_EXPIRE_CRON"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustParseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Invalid duration %q: %v", s, err)
	}
	return d
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, tokens *auth.TokenService, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		tokens,
		app.CreateRegisterAccountCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateClaimOrderCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateAuthenticateAccountQueryHandler(),
		app.CreateListProductsQueryHandler(),
		app.CreateGetAvailableOrdersQueryHandler(),
		app.CreateGetClientOrdersQueryHandler(),
		app.CreateGetCourierOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
