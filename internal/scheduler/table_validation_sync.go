package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/confixenvios/freight-quote-api/internal/config"
	"github.com/confixenvios/freight-quote-api/internal/usecases/quoting"
	"github.com/confixenvios/freight-quote-api/internal/usecases/validating"
)

// TableValidationSyncConfig representa a configuração do agendador de
// revalidação de tabelas de preço
type TableValidationSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// TableValidationSyncService revalida periodicamente as tabelas ativas.
// Planilhas remotas mudam sem aviso; a revalidação noturna detecta
// defeitos estruturais antes do primeiro cliente do dia.
type TableValidationSyncService struct {
	scheduler           *gocron.Scheduler
	config              TableValidationSyncConfig
	appConfig           *config.Config
	validator           validating.Validator
	quoter              quoting.Quoter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewTableValidationSyncService cria uma nova instância do serviço de revalidação
func NewTableValidationSyncService(
	validator validating.Validator,
	quoter quoting.Quoter,
	appConfig *config.Config,
) *TableValidationSyncService {
	syncConfig := TableValidationSyncConfig{
		CronSchedule:      appConfig.TableValidationSync.CronSchedule,
		MaxConcurrentJobs: appConfig.TableValidationSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.TableValidationSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de revalidação de tabelas carregada")

	return &TableValidationSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		validator:   validator,
		quoter:      quoter,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *TableValidationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Revalidação periódica de tabelas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de revalidação de tabelas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllTables(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar revalidação de tabelas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de revalidação de tabelas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllTables revalida todas as tabelas ativas e descarta o cache de
// cotações, já que os vereditos podem ter mudado
func (s *TableValidationSyncService) syncAllTables(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Revalidação de tabelas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	if err := s.validator.ValidateAll(ctx); err != nil {
		logrus.WithError(err).Error("Erro na revalidação periódica de tabelas")
		return
	}

	s.quoter.FlushCache()

	logrus.WithField("duration", time.Since(startTime).String()).
		Info("Revalidação periódica de tabelas concluída")
}
