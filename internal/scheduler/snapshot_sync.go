package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/refreshing"
)

// SnapshotSyncService gerencia a atualização periódica do snapshot de vendas
type SnapshotSyncService struct {
	scheduler *gocron.Scheduler
	config    config.SnapshotSync
	snapshots refreshing.Snapshotter
}

// NewSnapshotSyncService cria uma nova instância do agendador de atualização do snapshot
func NewSnapshotSyncService(snapshots refreshing.Snapshotter, appConfig *config.Config) *SnapshotSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.SnapshotSync.CronSchedule,
		"sync_enabled":  appConfig.SnapshotSync.Enabled,
	}).Info("Configuração do agendador de atualização do snapshot carregada")

	return &SnapshotSyncService{
		scheduler: scheduler,
		config:    appConfig.SnapshotSync,
		snapshots: snapshots,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização automática do snapshot desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do snapshot")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshot(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do snapshot: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do snapshot")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshot executa uma atualização do snapshot, ignorando quando já existe uma em voo
func (s *SnapshotSyncService) syncSnapshot(ctx context.Context) {
	startTime := time.Now()

	err := s.snapshots.Refresh(ctx)
	if errors.Is(err, refreshing.ErrRefreshInProgress) {
		logrus.Info("Atualização do snapshot já em andamento, ignorando")
		return
	}

	if err != nil {
		logrus.WithError(err).Error("Erro na atualização agendada do snapshot")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration_ms": time.Since(startTime).Milliseconds(),
		"sales_count": s.snapshots.Status().SalesCount,
	}).Info("Atualização agendada do snapshot concluída")
}
