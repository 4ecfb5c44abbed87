package deriving

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func filterFixture() []domain.Sale {
	return []domain.Sale{
		{Transaction: "TXN001", OrderDate: "01/01/2024", OfferDescription: "Curso de Automação", Value: 100},
		{Transaction: "TXN002", OrderDate: "2024-01-02T10:00:00", OfferDescription: "Mentoria Premium", Value: 50},
		{Transaction: "TXN003", OrderDate: "03/01/2024 09:30", OfferDescription: "Curso Avançado", Value: 200},
		{Transaction: "TXN004", OrderDate: "data quebrada", OfferDescription: "Curso Legado", Value: 75},
	}
}

func dateP(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return &d
}

func TestFilterSales(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)
	sales := filterFixture()

	tests := []struct {
		name             string
		filters          *domain.SaleFilters
		wantTransactions []string
	}{
		{
			name:             "Filtro vazio devolve todas as vendas na ordem original",
			filters:          &domain.SaleFilters{},
			wantTransactions: []string{"TXN001", "TXN002", "TXN003", "TXN004"},
		},
		{
			name: "Intervalo de um único dia casa só as vendas daquele dia",
			filters: &domain.SaleFilters{
				StartDate: dateP(2024, time.January, 2),
				EndDate:   dateP(2024, time.January, 2),
			},
			wantTransactions: []string{"TXN002"},
		},
		{
			name: "Apenas data inicial vai até o instante atual",
			filters: &domain.SaleFilters{
				StartDate: dateP(2024, time.January, 2),
			},
			wantTransactions: []string{"TXN002", "TXN003"},
		},
		{
			name: "Apenas data final vai da época Unix até o fim do dia",
			filters: &domain.SaleFilters{
				EndDate: dateP(2024, time.January, 1),
			},
			wantTransactions: []string{"TXN001"},
		},
		{
			name: "Intervalo invertido produz resultado vazio",
			filters: &domain.SaleFilters{
				StartDate: dateP(2024, time.January, 5),
				EndDate:   dateP(2024, time.January, 2),
			},
			wantTransactions: []string{},
		},
		{
			name: "Data irreconhecível é excluída quando o intervalo está ativo",
			filters: &domain.SaleFilters{
				StartDate: dateP(2024, time.January, 1),
				EndDate:   dateP(2024, time.January, 10),
			},
			wantTransactions: []string{"TXN001", "TXN002", "TXN003"},
		},
		{
			name:             "Busca textual não diferencia maiúsculas",
			filters:          &domain.SaleFilters{OfferDescription: "CURSO"},
			wantTransactions: []string{"TXN001", "TXN003", "TXN004"},
		},
		{
			name:             "Busca sem correspondência devolve vazio",
			filters:          &domain.SaleFilters{OfferDescription: "xyz"},
			wantTransactions: []string{},
		},
		{
			name: "Intervalo e busca se intersectam",
			filters: &domain.SaleFilters{
				StartDate:        dateP(2024, time.January, 1),
				EndDate:          dateP(2024, time.January, 10),
				OfferDescription: "curso",
			},
			wantTransactions: []string{"TXN001", "TXN003"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterSales(sales, tt.filters, now)

			assert.NotNil(t, result)

			transactions := make([]string, 0, len(result))
			for _, sale := range result {
				transactions = append(transactions, sale.Transaction)
			}
			assert.Equal(t, tt.wantTransactions, transactions)
		})
	}
}

func TestFilterSalesDoesNotMutateInput(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)
	sales := filterFixture()

	result := FilterSales(sales, &domain.SaleFilters{}, now)
	result[0].Transaction = "alterado"

	assert.Equal(t, "TXN001", sales[0].Transaction)
}
