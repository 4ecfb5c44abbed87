package deriving

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// TableView monta uma página da tabela de vendas a partir do subconjunto já
// filtrado. A busca da tabela é independente do filtro do dashboard: casa por
// substring, sem diferenciar maiúsculas, em nome do comprador, e-mail,
// produto ou código da transação. A ordenação é estável; campos textuais usam
// colação pt-BR. Página fora do intervalo é ajustada para a última página.
func TableView(sales []domain.Sale, query domain.TableQuery) *domain.TablePage {
	rows := searchRows(sales, query.Search)
	sortRows(rows, query.SortField, query.SortDirection)

	total := len(rows)
	totalPages := (total + domain.TablePageSize - 1) / domain.TablePageSize

	page := query.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * domain.TablePageSize
	if start > total {
		start = total
	}

	end := start + domain.TablePageSize
	if end > total {
		end = total
	}

	return &domain.TablePage{
		Rows:       rows[start:end],
		Page:       page,
		PageSize:   domain.TablePageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

func searchRows(sales []domain.Sale, search string) []domain.Sale {
	rows := make([]domain.Sale, 0, len(sales))

	if search == "" {
		return append(rows, sales...)
	}

	term := strings.ToLower(search)
	for _, sale := range sales {
		if strings.Contains(strings.ToLower(sale.BuyerName), term) ||
			strings.Contains(strings.ToLower(sale.BuyerEmail), term) ||
			strings.Contains(strings.ToLower(sale.ProductName), term) ||
			strings.Contains(strings.ToLower(sale.Transaction), term) {
			rows = append(rows, sale)
		}
	}

	return rows
}

func sortRows(rows []domain.Sale, field domain.TableSortField, direction string) {
	// O Collator não é seguro para uso concorrente, então cada ordenação cria o seu
	col := collate.New(language.BrazilianPortuguese)

	sort.SliceStable(rows, func(i, j int) bool {
		cmp := compareSales(col, rows[i], rows[j], field)
		if direction == domain.SortAsc {
			return cmp < 0
		}
		return cmp > 0
	})
}

func compareSales(col *collate.Collator, a, b domain.Sale, field domain.TableSortField) int {
	switch field {
	case domain.SortByValue:
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return 0
	case domain.SortByProductName:
		return col.CompareString(a.ProductName, b.ProductName)
	case domain.SortByBuyerName:
		return col.CompareString(a.BuyerName, b.BuyerName)
	default:
		// Datas irreconhecíveis ordenam como o tempo zero
		aDate, _ := utils.ParseSaleDate(a.OrderDate)
		bDate, _ := utils.ParseSaleDate(b.OrderDate)
		return aDate.Compare(bDate)
	}
}
