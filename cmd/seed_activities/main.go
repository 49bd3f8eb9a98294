package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/2beens/fittrack/internal/activities"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

// seed_activities fills the catalog of one owner with the default activities,
// or prints the bcrypt hash of an api key for FITTRACK_API_KEY_HASH.
func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run keeps all the work out of main, so deferred cleanups run before the process exits.
func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("seed_activities", flag.ContinueOnError)
	env := flags.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flags.String("config", "./config.toml", "path for the TOML config file")
	owner := flags.String("owner", "", "owner (user name) to seed the default activities for")
	migrate := flags.Bool("migrate", false, "create the db tables first if missing")
	hashAPIKey := flags.String("hash-api-key", "", "print the bcrypt hash of the given api key and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *hashAPIKey != "" {
		hash, err := pkg.HashAPIKey(*hashAPIKey)
		if err != nil {
			return fmt.Errorf("hash api key: %w", err)
		}
		_, err = fmt.Fprintln(stdout, hash)
		return err
	}

	if !activities.Owner(*owner).Valid() {
		return errors.New("owner not set, use -owner")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FITTRACK_POSTGRES_PASSWORD"),
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	if *migrate {
		if err := db.Migrate(ctx, dbPool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	service := activities.NewService(activities.NewRepo(dbPool), nil)
	count, err := service.SeedDefaults(ctx, activities.Owner(*owner))
	if errors.Is(err, activities.ErrConflict) {
		log.Warnf("owner [%s] already has activities, nothing to do", *owner)
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	log.Infof("Initialized %d activities for %s", count, *owner)
	return nil
}
