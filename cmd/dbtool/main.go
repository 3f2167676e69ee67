package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	appMigrations "classfinder/internal/app/migrations"
	"classfinder/internal/app/models"
	"classfinder/internal/app/repositories"
	"classfinder/internal/config"
	"classfinder/internal/db"
	"classfinder/internal/loader"
	"classfinder/internal/pkg/logger"
)

// dbtool performs offline database tasks: loading scraped building,
// class, and room data, deleting a building, and checking connectivity.
// One task per invocation.
func main() {
	var (
		buildingsFile  = flag.String("buildings", "", "JSON file with building data to load")
		classesFile    = flag.String("classes", "", "JSON file with class data to load (requires -term)")
		roomsFile      = flag.String("rooms", "", "JSON file with room data for a term's meeting places (requires -term)")
		term           = flag.String("term", "", "term the data belongs to, e.g. fall2022")
		deleteBuilding = flag.String("delete-building", "", "building number to delete (rooms cascade)")
		checkConn      = flag.Bool("check-conn", false, "check database connectivity and exit")
		verbose        = flag.Bool("v", false, "verbose output")
	)
	flag.Parse()

	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	if *verbose {
		level = logger.DebugLevel
	}
	logger.Configure(logger.Config{Level: level, Pretty: true})
	lgr := log.Logger

	registry, err := models.NewTermRegistry(cfg.Terms)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Failed to build term registry")
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	if *checkConn {
		lgr.Info().Str("host", cfg.Database.Host).Msg("Database connection successful")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	switch {
	case *buildingsFile != "":
		l := loader.New(database, registry, lgr)
		if err := l.LoadBuildings(ctx, *buildingsFile); err != nil {
			lgr.Fatal().Err(err).Str("file", *buildingsFile).Msg("Failed to load building data")
		}
		lgr.Info().Str("file", *buildingsFile).Msg("Building data loaded")

	case *classesFile != "":
		if *term == "" {
			lgr.Error().Msg("-classes requires -term")
			os.Exit(1)
		}

		t := models.Term(*term)
		tables, err := registry.Tables(t)
		if err != nil {
			lgr.Fatal().Err(err).Str("term", *term).Msg("Term is not in the allow-list")
		}
		if err := appMigrations.EnsureTermSchema(ctx, database.Pool, tables); err != nil {
			lgr.Fatal().Err(err).Str("term", *term).Msg("Failed to ensure term schema")
		}

		l := loader.New(database, registry, lgr)
		if err := l.LoadClasses(ctx, *classesFile, t); err != nil {
			lgr.Fatal().Err(err).Str("file", *classesFile).Msg("Failed to load class data")
		}
		lgr.Info().Str("file", *classesFile).Str("term", *term).Msg("Class data loaded")

	case *roomsFile != "":
		if *term == "" {
			lgr.Error().Msg("-rooms requires -term")
			os.Exit(1)
		}

		l := loader.New(database, registry, lgr)
		if err := l.LoadRooms(ctx, *roomsFile, models.Term(*term)); err != nil {
			lgr.Fatal().Err(err).Str("file", *roomsFile).Msg("Failed to load room data")
		}
		lgr.Info().Str("file", *roomsFile).Str("term", *term).Msg("Room data loaded")

	case *deleteBuilding != "":
		number, err := parseBuildingNumber(*deleteBuilding)
		if err != nil {
			lgr.Fatal().Err(err).Str("number", *deleteBuilding).Msg("Invalid -delete-building value")
		}

		buildingRepo := repositories.NewBuildingRepository(database.Pool)
		if err := buildingRepo.Delete(ctx, number); err != nil {
			lgr.Fatal().Err(err).Int64("number", number).Msg("Failed to delete building")
		}
		lgr.Info().Int64("number", number).Msg("Building deleted")

	default:
		flag.Usage()
		os.Exit(1)
	}
}

// parseBuildingNumber parses the -delete-building argument. Zero is a real
// building number, so flag presence is signaled by a non-empty value
// rather than a numeric sentinel.
func parseBuildingNumber(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("building number must be an integer: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("building number must not be negative: %d", n)
	}
	return n, nil
}
