package deriving

import (
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// FilterSales aplica o filtro ativo sobre o snapshot e devolve o subconjunto
// na ordem original. O estágio de datas compara a data do pedido com o
// intervalo [início do dia inicial, fim do dia final]; limites ausentes caem
// para a época Unix e para o instante atual, respectivamente. Vendas com data
// de pedido irreconhecível são excluídas quando o estágio de datas está ativo.
// O resultado nunca é nil e um filtro vazio devolve uma cópia da entrada.
func FilterSales(sales []domain.Sale, filters *domain.SaleFilters, now time.Time) []domain.Sale {
	result := make([]domain.Sale, 0, len(sales))

	if filters.Empty() {
		return append(result, sales...)
	}

	dateStage := filters.StartDate != nil || filters.EndDate != nil

	var start, end time.Time
	if dateStage {
		start = time.Unix(0, 0)
		if filters.StartDate != nil {
			start = utils.StartOfDay(*filters.StartDate)
		}

		end = now
		if filters.EndDate != nil {
			end = utils.EndOfDay(*filters.EndDate)
		}
	}

	search := strings.ToLower(filters.OfferDescription)

	for _, sale := range sales {
		if dateStage {
			orderDate, ok := utils.ParseSaleDate(sale.OrderDate)
			if !ok {
				continue
			}

			if orderDate.Before(start) || orderDate.After(end) {
				continue
			}
		}

		if search != "" && !strings.Contains(strings.ToLower(sale.OfferDescription), search) {
			continue
		}

		result = append(result, sale)
	}

	return result
}
