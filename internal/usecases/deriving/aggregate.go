package deriving

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	dailySeriesWindowDays = 30
	topProductsLimit      = 5
	topCampaignTagsLimit  = 10
)

// Estrutura para acumular contagem e receita por categoria
type groupAccumulator struct {
	count   int
	revenue float64
}

// groupBy agrupa o subconjunto em uma única passada, comparando chaves por
// igualdade exata. A ordem de primeira aparição é preservada para que os
// empates das ordenações sejam estáveis.
func groupBy(sales []domain.Sale, key func(domain.Sale) string) ([]string, map[string]*groupAccumulator) {
	order := make([]string, 0)
	groups := make(map[string]*groupAccumulator)

	for _, sale := range sales {
		k := key(sale)

		acc, exists := groups[k]
		if !exists {
			acc = &groupAccumulator{}
			groups[k] = acc
			order = append(order, k)
		}

		acc.count++
		acc.revenue += sale.Value
	}

	return order, groups
}

// Summarize calcula os KPIs dos cards do dashboard. Os indicadores de "hoje"
// consideram o dia do calendário local de now; vendas com data irreconhecível
// ficam de fora deles. Subconjunto vazio produz zeros, nunca NaN.
func Summarize(sales []domain.Sale, now time.Time) *domain.SalesStats {
	var totalRevenue, revenueToday float64
	salesToday := 0

	for _, sale := range sales {
		totalRevenue += sale.Value

		if orderDate, ok := utils.ParseSaleDate(sale.OrderDate); ok && utils.SameDay(orderDate, now) {
			salesToday++
			revenueToday += sale.Value
		}
	}

	averageTicket := 0.0
	if len(sales) > 0 {
		averageTicket = totalRevenue / float64(len(sales))
	}

	return &domain.SalesStats{
		TotalSales:     len(sales),
		TotalRevenue:   utils.RoundWithTwoDecimalPlace(totalRevenue),
		AverageTicket:  utils.RoundWithTwoDecimalPlace(averageTicket),
		SalesToday:     salesToday,
		RevenueToday:   utils.RoundWithTwoDecimalPlace(revenueToday),
		ConversionRate: domain.ConversionRateFixed,
	}
}

// DailySeries monta o gráfico dos últimos 30 dias: um ponto por dia do
// calendário, do mais antigo para hoje, com zeros nos dias sem venda. Vendas
// fora da janela ou com data irreconhecível não entram; a janela é
// independente do intervalo do filtro ativo e as duas restrições se
// intersectam. Subconjunto vazio devolve série vazia.
func DailySeries(sales []domain.Sale, now time.Time) []domain.DailySalesPoint {
	series := make([]domain.DailySalesPoint, 0, dailySeriesWindowDays)

	if len(sales) == 0 {
		return series
	}

	totals := make(map[string]*groupAccumulator)
	for _, sale := range sales {
		orderDate, ok := utils.ParseSaleDate(sale.OrderDate)
		if !ok {
			continue
		}

		day := orderDate.Local().Format(time.DateOnly)

		acc, exists := totals[day]
		if !exists {
			acc = &groupAccumulator{}
			totals[day] = acc
		}

		acc.count++
		acc.revenue += sale.Value
	}

	start := utils.StartOfDay(now).AddDate(0, 0, -(dailySeriesWindowDays - 1))

	for i := 0; i < dailySeriesWindowDays; i++ {
		day := start.AddDate(0, 0, i).Format(time.DateOnly)

		point := domain.DailySalesPoint{Date: day}
		if acc, exists := totals[day]; exists {
			point.Count = acc.count
			point.Revenue = utils.RoundWithTwoDecimalPlace(acc.revenue)
		}

		series = append(series, point)
	}

	return series
}

// TopProducts agrupa por nome de produto e devolve os 5 maiores por receita,
// em ordem decrescente, com desempate estável pela ordem de entrada
func TopProducts(sales []domain.Sale) []domain.ProductStat {
	order, groups := groupBy(sales, func(s domain.Sale) string { return s.ProductName })

	stats := make([]domain.ProductStat, 0, len(order))
	for _, name := range order {
		acc := groups[name]
		stats = append(stats, domain.ProductStat{
			ProductName: name,
			Count:       acc.count,
			Revenue:     utils.RoundWithTwoDecimalPlace(acc.revenue),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Revenue > stats[j].Revenue
	})

	if len(stats) > topProductsLimit {
		stats = stats[:topProductsLimit]
	}

	return stats
}

// SourceDistribution agrupa por fonte de tráfego (src, com fallback "direct")
// e devolve todas as fontes em ordem decrescente de contagem, cada uma com a
// participação percentual no subconjunto, com uma casa decimal
func SourceDistribution(sales []domain.Sale) []domain.SourceStat {
	order, groups := groupBy(sales, domain.Sale.Source)

	total := len(sales)
	stats := make([]domain.SourceStat, 0, len(order))

	for _, source := range order {
		acc := groups[source]
		stats = append(stats, domain.SourceStat{
			Source:     source,
			Count:      acc.count,
			Percentage: utils.RoundWithOneDecimalPlace(float64(acc.count) / float64(total) * 100),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return stats
}

// TopCampaignTags agrupa por código de campanha (sck, com fallback "sem_sck")
// e devolve as 10 maiores por contagem de vendas, em ordem decrescente
func TopCampaignTags(sales []domain.Sale) []domain.CampaignTagStat {
	order, groups := groupBy(sales, domain.Sale.CampaignTag)

	stats := make([]domain.CampaignTagStat, 0, len(order))
	for _, tag := range order {
		acc := groups[tag]
		stats = append(stats, domain.CampaignTagStat{
			Tag:     tag,
			Count:   acc.count,
			Revenue: utils.RoundWithTwoDecimalPlace(acc.revenue),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	if len(stats) > topCampaignTagsLimit {
		stats = stats[:topCampaignTagsLimit]
	}

	return stats
}
