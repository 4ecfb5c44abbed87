package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/refreshing"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// RefreshSnapshot dispara uma atualização do snapshot a partir do feed.
// Uma atualização já em voo responde 409; falha no feed responde 502 e o
// snapshot anterior permanece servindo as demais rotas.
func RefreshSnapshot(snapshots refreshing.Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("snapshot: refresh requested")

		err := snapshots.Refresh(r.Context())
		if errors.Is(err, refreshing.ErrRefreshInProgress) {
			logger.Warn("snapshot: refresh already in progress")
			apiErrors.WriteError(w, apiErrors.ErrRefreshInProgress, "atualização já em andamento", nil)
			return
		}

		if err != nil {
			logger.WithError(err).Error("snapshot: refresh failed, previous snapshot kept")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "não foi possível conectar ao feed de vendas", nil)
			return
		}

		status := snapshots.Status()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("snapshot: failed to encode response")
		}
	})
}

// GetSnapshotStatus devolve o estado atual do snapshot de vendas
func GetSnapshotStatus(snapshots refreshing.Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := snapshots.Status()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("snapshot: failed to encode status response")
		}
	})
}
