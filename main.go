package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sandeeph2706/portfolio-backend/api"
	"github.com/sandeeph2706/portfolio-backend/config"
	"github.com/sandeeph2706/portfolio-backend/database"
	"github.com/sandeeph2706/portfolio-backend/seed"
	"github.com/sandeeph2706/portfolio-backend/tracker"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	appEnv := config.GetString(c, "APP_ENV", "development")
	if appEnv == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Info().Str("env", appEnv).Msg("Initializing app...")

	if config.GetString(c, "SECRET_KEY", "") == "" {
		log.Warn().Msg("SECRET_KEY not set, using insecure default")
	}

	dbType := config.GetString(c, "DB_TYPE", "sqlite")
	databaseURL := config.GetString(c, "DATABASE_URL", "")

	db, err := database.Open(dbType, databaseURL)
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to database")
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Error migrating database schema")
		os.Exit(1)
	}

	// Seed reference data unless disabled. A failed pass is logged and
	// the app keeps serving against whatever state the database is in.
	if config.GetBool(c, "SEED_ON_STARTUP", true) {
		fixtures, err := seed.Load(config.GetString(c, "SEED_FILE", ""))
		if err != nil {
			log.Error().Err(err).Msg("Error loading seed fixtures")
		} else if err := seed.Run(db, fixtures, log.Logger); err != nil {
			log.Error().Err(err).Msg("Error seeding database")
		}
	} else {
		log.Info().Msg("Startup seeding disabled")
	}

	currentDB := database.New(db)

	visitTracker := tracker.New(currentDB.VisitorRepo(), config.GetInt(c, "TRACKER_QUEUE_SIZE", 256))

	// Never closed: both the server goroutine and the signal listener
	// send on it, and the process exits right after the first receive.
	errChannel := make(chan error)

	server, err := api.NewServer(currentDB, visitTracker)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
	visitTracker.Close()
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
