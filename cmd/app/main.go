package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"freightgate/cmd"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Missing .env is fine in containerized deploys; variables come from the
	// environment directly.
	_ = godotenv.Load(".env")

	dimFactor, _ := strconv.ParseFloat(os.Getenv("DIM_FACTOR"), 64)

	return cmd.Config{
		HTTPPort: envOr("HTTP_PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		RedisAddr:   os.Getenv("REDIS_ADDR"),
		CORSOrigins: os.Getenv("CORS_ORIGINS"),
		APIKey:      os.Getenv("API_KEY"),
		Rules:       os.Getenv("SHIP_RULES"),
		DimFactor:   dimFactor,

		NZPostMode:            os.Getenv("NZPOST_MODE"),
		NZPostBase:            envOr("NZPOST_BASE", "https://ship.nzpost.co.nz/api/v1"),
		NZPostAPIKey:          os.Getenv("NZPOST_API_KEY"),
		NZPostSubscriptionKey: os.Getenv("NZPOST_SUBSCRIPTION_KEY"),

		NZCMode:          os.Getenv("NZC_MODE"),
		NZCBase:          envOr("NZC_BASE", "https://api.nzcouriers.co.nz/v1"),
		NZCGSSToken:      os.Getenv("NZC_GSS_TOKEN"),
		NZCAccountNumber: os.Getenv("NZC_ACCOUNT_NUMBER"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true

	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
