package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/n8n"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/n8n/n8nclient"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/refreshing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feedClient := n8nclient.NewClient(cfg)
	feedIntegrator := n8n.New(cfg, feedClient)

	snapshotService := refreshing.NewService(feedIntegrator)
	derivingService := deriving.NewService()

	// Carga inicial do snapshot; uma falha aqui não derruba o serviço, o
	// dashboard sobe vazio e pode ser atualizado depois
	if cfg.SnapshotSync.RefreshOnStart {
		if err := snapshotService.Refresh(ctx); err != nil {
			logrus.WithError(err).Warn("Não foi possível carregar o snapshot inicial de vendas")
		}
	}

	// Inicializa o agendador de atualização do snapshot
	snapshotSyncService := scheduler.NewSnapshotSyncService(snapshotService, cfg)
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do snapshot")
	}

	server, err := api.New(cfg, derivingService, snapshotService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
