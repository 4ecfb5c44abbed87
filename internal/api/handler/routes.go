package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/refreshing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Dashboard retorna as rotas das projeções derivadas do snapshot
func Dashboard(deriver deriving.Deriver, snapshots refreshing.Snapshotter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(deriver, snapshots),
		},
		{
			Path:    "/v1/dashboard/table",
			Method:  http.MethodGet,
			Handler: GetSalesTable(deriver, snapshots),
		},
	}
}

// Snapshot retorna as rotas de controle do snapshot de vendas
func Snapshot(snapshots refreshing.Snapshotter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/snapshot/refresh",
			Method:  http.MethodPost,
			Handler: RefreshSnapshot(snapshots),
		},
		{
			Path:    "/v1/snapshot/status",
			Method:  http.MethodGet,
			Handler: GetSnapshotStatus(snapshots),
		},
	}
}
