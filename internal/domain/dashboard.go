package domain

import "time"

// SaleFilters é o filtro ativo do dashboard: intervalo de datas sobre a data
// do pedido e busca textual sobre a descrição da oferta. Os dois limites são
// opcionais; um intervalo invertido não é rejeitado e produz resultado vazio.
type SaleFilters struct {
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	OfferDescription string     `json:"offer_description,omitempty"`
}

// Empty indica que nenhuma restrição está ativa
func (f *SaleFilters) Empty() bool {
	return f == nil || (f.StartDate == nil && f.EndDate == nil && f.OfferDescription == "")
}

// ConversionRateFixed é a taxa de conversão exibida no dashboard. O feed não
// traz dados de visitantes, então o valor é fixo, igual ao painel original.
const ConversionRateFixed = 3.2

// SalesStats são os KPIs exibidos nos cards do dashboard
type SalesStats struct {
	TotalSales     int     `json:"total_sales"`
	TotalRevenue   float64 `json:"total_revenue"`
	AverageTicket  float64 `json:"average_ticket"`
	SalesToday     int     `json:"sales_today"`
	RevenueToday   float64 `json:"revenue_today"`
	ConversionRate float64 `json:"conversion_rate"`
}

// DailySalesPoint é um dia do gráfico de vendas dos últimos 30 dias
type DailySalesPoint struct {
	Date    string  `json:"date"` // aaaa-mm-dd
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// ProductStat é uma linha do gráfico de top produtos
type ProductStat struct {
	ProductName string  `json:"product_name"`
	Count       int     `json:"count"`
	Revenue     float64 `json:"revenue"`
}

// SourceStat é uma fatia do gráfico de fontes de tráfego
type SourceStat struct {
	Source     string  `json:"source"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // participação no subconjunto, uma casa decimal
}

// CampaignTagStat é uma linha do gráfico de vendas por SCK
type CampaignTagStat struct {
	Tag     string  `json:"tag"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// DashboardResponse agrupa todas as projeções derivadas do subconjunto
// filtrado, prontas para renderização
type DashboardResponse struct {
	Stats        *SalesStats       `json:"stats"`
	DailySeries  []DailySalesPoint `json:"daily_series"`
	TopProducts  []ProductStat     `json:"top_products"`
	Sources      []SourceStat      `json:"sources"`
	CampaignTags []CampaignTagStat `json:"campaign_tags"`
	Filters      *SaleFilters      `json:"filters"`
}

// Campos de ordenação aceitos pela tabela de vendas
type TableSortField string

const (
	SortByOrderDate   TableSortField = "order_date"
	SortByValue       TableSortField = "value"
	SortByProductName TableSortField = "product_name"
	SortByBuyerName   TableSortField = "buyer_name"
)

// ParseTableSortField valida o campo de ordenação vindo da query string
func ParseTableSortField(s string) (TableSortField, bool) {
	switch TableSortField(s) {
	case SortByOrderDate, SortByValue, SortByProductName, SortByBuyerName:
		return TableSortField(s), true
	}
	return "", false
}

// Direções de ordenação da tabela
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// TablePageSize é o tamanho fixo de página da tabela de vendas
const TablePageSize = 10

// TableQuery é a consulta da tabela de vendas: busca secundária (nome, e-mail,
// produto ou transação), ordenação e página. Opera sobre o subconjunto já
// filtrado pelo SaleFilters.
type TableQuery struct {
	Search        string
	SortField     TableSortField
	SortDirection string
	Page          int
}

// TablePage é uma página da tabela de vendas
type TablePage struct {
	Rows       []Sale `json:"rows"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
}

// SnapshotStatus descreve o estado do snapshot de vendas em memória
type SnapshotStatus struct {
	SalesCount int        `json:"sales_count"`
	LastUpdate *time.Time `json:"last_update,omitempty"`
	Refreshing bool       `json:"refreshing"`
}
