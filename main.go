package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/vedanta-tech/team-site-backend/api"
	"github.com/vedanta-tech/team-site-backend/config"
	"github.com/vedanta-tech/team-site-backend/database"
	"github.com/vedanta-tech/team-site-backend/metrics"
	"github.com/vedanta-tech/team-site-backend/services"
	"github.com/vedanta-tech/team-site-backend/storage"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	c := config.New()

	projectID := config.GetString(c, "GCP_PROJECT_ID", "")
	if projectID == "" {
		log.Fatal().Msg("GCP_PROJECT_ID must be set")
	}
	bucket := config.GetString(c, "GCS_BUCKET", "")
	if bucket == "" {
		log.Fatal().Msg("GCS_BUCKET must be set")
	}

	var clientOpts []option.ClientOption
	if credsFile := config.GetString(c, "GOOGLE_APPLICATION_CREDENTIALS", ""); credsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credsFile))
	}

	ctx := context.Background()

	fsClient, err := firestore.NewClient(ctx, projectID, clientOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to Firestore")
	}
	defer fsClient.Close()

	gcsClient, err := gcs.NewClient(ctx, clientOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to Cloud Storage")
	}
	defer gcsClient.Close()

	db := database.New(fsClient)
	assets := storage.New(gcsClient, bucket)
	mailer := services.NewMailer(c)

	metrics.Register()

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(db, assets, mailer)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
