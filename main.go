package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/DevLoom-Space/Expense-Tracker/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//	@title			Expense Tracker API
//	@description	The backend for the Expense Tracker, a personal finance tracker with per-user wallets, categories, budgets and monthly analytics.

//	@contact.name	GitHub
//	@contact.url	https://github.com/DevLoom-Space/Expense-Tracker

//	@license.name	MIT

func main() {
	// Load configuration from a .env file if there is one
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// The API URL is the URL under which clients reach the API. It is
	// used to build the absolute links in responses.
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://localhost:8080"
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Str("API_URL", apiURL).Msg("environment variable API_URL must be a valid URL")
	}

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err = os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate the schema
	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		dsn = filepath.Join(dataDir, "gorm.db")
	}

	err = models.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(u)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group(u.Path))

	// The port can be configured with the PORT environment variable,
	// gin defaults to 8080
	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
