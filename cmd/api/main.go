package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cash-position-api/infrastructure/database/postgres"
	"github.com/vfg2006/cash-position-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/cash-position-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/cash-position-api/infrastructure/migration"
	"github.com/vfg2006/cash-position-api/infrastructure/repository"
	"github.com/vfg2006/cash-position-api/internal/api"
	"github.com/vfg2006/cash-position-api/internal/config"
	"github.com/vfg2006/cash-position-api/internal/scheduler"
	"github.com/vfg2006/cash-position-api/internal/usecases/authenticating"
	"github.com/vfg2006/cash-position-api/internal/usecases/importing"
	"github.com/vfg2006/cash-position-api/internal/usecases/ledger"
	"github.com/vfg2006/cash-position-api/internal/usecases/registry"
)

func main() {
	configureLogger()

	// Valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.RunMigrations {
		if err := migration.Up(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	entryRepo := repository.NewEntryRepository(pgConn)
	counterpartyRepo := repository.NewCounterpartyRepository(pgConn)
	importedRepo := repository.NewImportedEntryRepository(pgConn)

	sheetsClient := newSheetsClient(ctx, cfg.Sheets)
	sheetsIntegrator := sheets.New(cfg.Sheets, sheetsClient)

	ledgerService := ledger.NewService(entryRepo, cfg.Ledger)
	registryService := registry.NewService(counterpartyRepo)
	importer := importing.NewService(sheetsIntegrator, importedRepo)
	authenticator := authenticating.NewService(cfg.Auth)

	importSyncService := scheduler.NewSheetsImportSyncService(importer, cfg.SheetsImportSync)
	if err := importSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de importação das planilhas")
	} else {
		logrus.Info("Agendador de importação das planilhas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Ledger:        ledgerService,
		Registry:      registryService,
		Importer:      importer,
		ImportSync:    importSyncService,
		Authenticator: authenticator,
		Database:      pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newSheetsClient escolhe a origem das planilhas: Google Sheets ou arquivo .xlsx local
func newSheetsClient(ctx context.Context, cfg config.Sheets) sheetsclient.Client {
	switch cfg.Source {
	case config.SheetsSourceWorkbook:
		logrus.WithField("path", cfg.WorkbookPath).Info("Importação configurada a partir de planilha local")
		return sheetsclient.NewWorkbookClient(cfg.WorkbookPath)
	case config.SheetsSourceGoogle:
		client, err := sheetsclient.NewGoogleClient(ctx, cfg)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar cliente do Google Sheets, importação indisponível")
			return sheetsclient.NewUnavailableClient(err)
		}
		logrus.Info("Importação configurada a partir do Google Sheets")
		return client
	default:
		logrus.Fatalf("Origem de planilhas desconhecida: %s", cfg.Source)
		return nil
	}
}
