// Package scheduler contém os serviços de agendamento para importação de dados
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cash-position-api/internal/config"
	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/internal/usecases/importing"
)

// ErrImportRunning indica que já existe uma importação em execução
var ErrImportRunning = errors.New("importação das planilhas já em andamento")

type SheetsImportSyncService struct {
	scheduler *gocron.Scheduler
	importer  importing.Importer
	config    config.SheetsImportSync

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastPayments        int
	lastReceipts        int
}

func NewSheetsImportSyncService(importer importing.Importer, cfg config.SheetsImportSync) *SheetsImportSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("Configuração do agendador de importação das planilhas carregada")

	return &SheetsImportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		importer:  importer,
		config:    cfg,
	}
}

func (s *SheetsImportSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de importação das planilhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de importação das planilhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); err != nil {
			logrus.WithError(err).Error("Erro na importação agendada das planilhas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar importação das planilhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de importação das planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa uma importação e espera o resultado.
// Retorna ErrImportRunning se outra execução ainda não terminou.
func (s *SheetsImportSyncService) RunNow(ctx context.Context) (*domain.ImportSnapshot, error) {
	if !s.begin() {
		logrus.Warn("Importação das planilhas já está em execução")
		return nil, ErrImportRunning
	}

	logrus.Info("Iniciando importação das planilhas")

	snapshot, err := s.importer.Run(ctx)
	s.finish(snapshot, err)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"payments": len(snapshot.Payments),
		"receipts": len(snapshot.Receipts),
	}).Info("Importação das planilhas concluída")

	return snapshot, nil
}

// TriggerManualSync inicia uma importação em segundo plano.
// Retorna false se já houver uma importação em andamento.
func (s *SheetsImportSyncService) TriggerManualSync(ctx context.Context) bool {
	if s.IsRunning() {
		logrus.Info("Importação das planilhas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando importação manual das planilhas")
	go func() {
		if _, err := s.RunNow(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, ErrImportRunning) {
			logrus.WithError(err).Error("Erro na importação manual das planilhas")
		}
	}()
	return true
}

func (s *SheetsImportSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *SheetsImportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"last_payments":          s.lastPayments,
		"last_receipts":          s.lastReceipts,
	}
}

func (s *SheetsImportSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *SheetsImportSyncService) finish(snapshot *domain.ImportSnapshot, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastSyncError = err.Error()
		return
	}

	s.lastSyncError = ""
	if snapshot != nil {
		s.lastPayments = len(snapshot.Payments)
		s.lastReceipts = len(snapshot.Receipts)
	}
}
