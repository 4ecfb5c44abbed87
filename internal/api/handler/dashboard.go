package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/refreshing"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseSaleFilters monta o filtro ativo a partir da query string. As datas
// usam o formato aaaa-mm-dd e "q" é a busca sobre a descrição da oferta.
func parseSaleFilters(r *http.Request) (*domain.SaleFilters, error) {
	filters := &domain.SaleFilters{
		OfferDescription: r.URL.Query().Get("q"),
	}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		startDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.StartDate = startDate
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		endDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.EndDate = endDate
	}

	return filters, nil
}

// GetDashboard deriva e devolve todas as projeções do dashboard (KPIs,
// série diária, top produtos, fontes e campanhas) para o filtro informado
func GetDashboard(deriver deriving.Deriver, snapshots refreshing.Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseSaleFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("dashboard: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "datas devem estar no formato aaaa-mm-dd", nil)
			return
		}

		dashboard := deriver.Dashboard(snapshots.Snapshot(), filters)

		logger.WithFields(log.Fields{
			"total_sales": dashboard.Stats.TotalSales,
		}).Debug("dashboard: derived views computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
		}
	})
}

// GetSalesTable devolve uma página da tabela de vendas, com busca secundária,
// ordenação e paginação por cima do filtro do dashboard
func GetSalesTable(deriver deriving.Deriver, snapshots refreshing.Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseSaleFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("table: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "datas devem estar no formato aaaa-mm-dd", nil)
			return
		}

		query := parseTableQuery(r)
		page := deriver.Table(snapshots.Snapshot(), filters, query)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(page); err != nil {
			logger.WithError(err).Error("table: failed to encode response")
		}
	})
}

// parseTableQuery lê busca, ordenação e página da query string. Campo de
// ordenação desconhecido cai para data do pedido; direção desconhecida cai
// para decrescente, o padrão de um campo recém-escolhido no painel.
func parseTableQuery(r *http.Request) domain.TableQuery {
	query := domain.TableQuery{
		Search:        r.URL.Query().Get("search"),
		SortField:     domain.SortByOrderDate,
		SortDirection: domain.SortDesc,
		Page:          1,
	}

	if field, ok := domain.ParseTableSortField(r.URL.Query().Get("sort_field")); ok {
		query.SortField = field
	}

	if r.URL.Query().Get("sort_dir") == domain.SortAsc {
		query.SortDirection = domain.SortAsc
	}

	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		query.Page = page
	}

	return query
}
