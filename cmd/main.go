package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/saeidalz13/battleship-validator/api"
	"github.com/saeidalz13/battleship-validator/db"
	"github.com/saeidalz13/battleship-validator/db/sqlc"
)

func newLogger(stage string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if stage == api.StageProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func main() {
	if os.Getenv("STAGE") != api.StageProd {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage != api.StageDev && stage != api.StageProd {
		panic("stage must be either dev or prod")
	}

	logger := newLogger(stage)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		zap.S().Fatalf("invalid PORT: %s", err)
	}

	opts := []api.Option{api.WithPort(port), api.WithStage(stage)}

	// Analytics are optional; without a database the server
	// still validates boards.
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		conn := db.MustConnectToDb(psqlUrl, db.DefaultMigrationDir)
		defer conn.Close()
		opts = append(opts, api.WithQuerier(sqlc.New(conn)))
	} else {
		zap.S().Warn("DATABASE_URL is not set, analytics disabled")
	}

	server, err := api.NewServer(opts...)
	if err != nil {
		zap.S().Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		zap.S().Fatal(err)
	}
	zap.S().Info("server stopped")
}
