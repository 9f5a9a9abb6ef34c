package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/Farhad030619/UniWallet/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load the .env file if there is one. Variables that are already
	// set in the environment take precedence.
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

	// The base URL clients use to reach the API, used to generate
	// resource links
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://localhost:8080"
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err = os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	dsn, ok := os.LookupEnv("DB_FILE")
	if !ok {
		dsn = filepath.Join(dataDir, "gorm.db")
	}

	// Connect to the database and migrate all models
	err = models.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Seed the default profile, badges, deals and sample posts
	err = models.Seed()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(url)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
