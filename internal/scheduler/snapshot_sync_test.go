package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/refreshing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/refreshing/mocks"
	"go.uber.org/mock/gomock"
)

func testSchedulerConfig(enabled bool) *config.Config {
	return &config.Config{
		SnapshotSync: config.SnapshotSync{
			CronSchedule: "*/15 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestSnapshotSyncServiceStart(t *testing.T) {
	t.Run("Agendador desabilitado não agenda nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSnapshots := mocks.NewMockSnapshotter(ctrl)
		service := NewSnapshotSyncService(mockSnapshots, testSchedulerConfig(false))

		// Nenhuma expectativa no mock: Refresh não pode ser chamado
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("Agendador habilitado registra o job e para com o contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSnapshots := mocks.NewMockSnapshotter(ctrl)
		service := NewSnapshotSyncService(mockSnapshots, testSchedulerConfig(true))

		ctx, cancel := context.WithCancel(context.Background())

		assert.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)

		cancel()
	})

	t.Run("Expressão cron inválida retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSnapshots := mocks.NewMockSnapshotter(ctrl)

		cfg := testSchedulerConfig(true)
		cfg.SnapshotSync.CronSchedule = "isto não é cron"
		service := NewSnapshotSyncService(mockSnapshots, cfg)

		assert.Error(t, service.Start(context.Background()))
	})
}

func TestSyncSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("Atualização bem-sucedida consulta o status para o log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSnapshots := mocks.NewMockSnapshotter(ctrl)
		mockSnapshots.EXPECT().Refresh(gomock.Any()).Return(nil)
		mockSnapshots.EXPECT().Status().Return(domain.SnapshotStatus{SalesCount: 250})

		service := NewSnapshotSyncService(mockSnapshots, testSchedulerConfig(true))
		service.syncSnapshot(ctx)
	})

	t.Run("Atualização em andamento é ignorada sem consultar o status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSnapshots := mocks.NewMockSnapshotter(ctrl)
		mockSnapshots.EXPECT().Refresh(gomock.Any()).Return(refreshing.ErrRefreshInProgress)

		service := NewSnapshotSyncService(mockSnapshots, testSchedulerConfig(true))
		service.syncSnapshot(ctx)
	})

	t.Run("Falha no feed é registrada sem derrubar o agendador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSnapshots := mocks.NewMockSnapshotter(ctrl)
		mockSnapshots.EXPECT().Refresh(gomock.Any()).Return(errors.New("feed indisponível"))

		service := NewSnapshotSyncService(mockSnapshots, testSchedulerConfig(true))
		service.syncSnapshot(ctx)
	})
}
