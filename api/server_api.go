package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/saeidalz13/battleship-validator/db/sqlc"
	mc "github.com/saeidalz13/battleship-validator/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultPort     int           = 9191
	shutdownTimeout time.Duration = time.Second * 10

	RouteValidate = "/battleship"
	RouteMetrics  = "/metrics"
	RouteHealth   = "/healthz"
)

type Server struct {
	port           int
	stage          string
	querier        sqlc.Querier
	DbManager      sqlc.DbManager
	SessionManager *mc.BattleshipSessionManager
}

type Option func(*Server) error

func NewServer(optFuncs ...Option) (*Server, error) {
	server := Server{
		port:  defaultPort,
		stage: StageDev,
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			return nil, err
		}
	}

	if server.SessionManager == nil {
		server.SessionManager = mc.NewBattleshipSessionManager()
	}
	server.DbManager = sqlc.NewDbManager(server.querier)

	return &server, nil
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port < 1 || port > 65535 {
			return fmt.Errorf("port out of range: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func WithQuerier(q sqlc.Querier) Option {
	return func(s *Server) error {
		s.querier = q
		return nil
	}
}

func WithSessionManager(bsm *mc.BattleshipSessionManager) Option {
	return func(s *Server) error {
		s.SessionManager = bsm
		return nil
	}
}

func (s *Server) Stage() string {
	return s.stage
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET "+RouteValidate, NewRequestProcessor(s.SessionManager, s.DbManager))
	mux.Handle("GET "+RouteMetrics, promhttp.Handler())
	mux.HandleFunc("GET "+RouteHealth, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Serves until ctx is done, then shuts the http server down
// and stops the session cleanup.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: time.Second * 5,
	}

	go s.SessionManager.CleanupPeriodically(ctx)

	errCh := make(chan error, 1)
	go func() {
		zap.S().Infof("listening to port %d", s.port)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
