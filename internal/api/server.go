package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cash-position-api/internal/api/handler"
	"github.com/vfg2006/cash-position-api/internal/api/handler/router"
	"github.com/vfg2006/cash-position-api/internal/config"
	"github.com/vfg2006/cash-position-api/internal/usecases/authenticating"
	"github.com/vfg2006/cash-position-api/internal/usecases/importing"
	"github.com/vfg2006/cash-position-api/internal/usecases/ledger"
	"github.com/vfg2006/cash-position-api/internal/usecases/registry"
	"github.com/vfg2006/cash-position-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa as dependências expostas pela API
type Services struct {
	Ledger        ledger.LedgerService
	Registry      registry.CounterpartyService
	Importer      importing.Importer
	ImportSync    handler.ImportSync
	Authenticator authenticating.Authenticator
	Database      handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Ledger == nil || services.Registry == nil || services.Importer == nil ||
		services.ImportSync == nil || services.Authenticator == nil {
		return nil, errors.New("serviços obrigatórios da API não informados")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Entries(services.Ledger)...),
		router.WithRoutes(handler.CashFlow(services.Ledger)...),
		router.WithRoutes(handler.Results(services.Ledger)...),
		router.WithRoutes(handler.Dashboard(services.Ledger)...),
		router.WithRoutes(handler.Counterparties(services.Registry)...),
		router.WithRoutes(handler.Imports(services.Importer, services.ImportSync)...),
	)

	logrus.WithField("routes", len(rt.Routes())).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// Handler retorna a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serverErr:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
