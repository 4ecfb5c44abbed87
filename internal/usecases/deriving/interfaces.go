package deriving

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Deriver constrói as projeções do dashboard a partir de um snapshot de
// vendas. Todas as derivações são funções puras do par (snapshot, filtro) e
// são recalculadas do zero a cada chamada.
type Deriver interface {
	// Dashboard deriva os KPIs e todos os gráficos para o filtro informado
	Dashboard(sales []domain.Sale, filters *domain.SaleFilters) *domain.DashboardResponse

	// Table deriva uma página da tabela de vendas, com busca e ordenação
	// próprias, por cima do mesmo filtro
	Table(sales []domain.Sale, filters *domain.SaleFilters, query domain.TableQuery) *domain.TablePage
}
