package deriving

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func tableFixture() []domain.Sale {
	return []domain.Sale{
		{Transaction: "TXN001", OrderDate: "05/01/2024 10:00", BuyerName: "Maria Silva", BuyerEmail: "maria.silva@email.com", ProductName: "Curso Completo", Value: 297},
		{Transaction: "TXN002", OrderDate: "03/01/2024 08:00", BuyerName: "João Santos", BuyerEmail: "joao.santos@email.com", ProductName: "Mentoria Premium", Value: 997},
		{Transaction: "TXN003", OrderDate: "04/01/2024 15:30", BuyerName: "Ana Costa", BuyerEmail: "ana.costa@email.com", ProductName: "Pack Templates", Value: 97},
	}
}

func defaultQuery() domain.TableQuery {
	return domain.TableQuery{
		SortField:     domain.SortByOrderDate,
		SortDirection: domain.SortDesc,
		Page:          1,
	}
}

func TestTableViewSearch(t *testing.T) {
	tests := []struct {
		name             string
		search           string
		wantTransactions []string
	}{
		{
			name:             "Busca por nome do comprador",
			search:           "maria",
			wantTransactions: []string{"TXN001"},
		},
		{
			name:             "Busca por e-mail",
			search:           "joao.santos@",
			wantTransactions: []string{"TXN002"},
		},
		{
			name:             "Busca por produto",
			search:           "pack",
			wantTransactions: []string{"TXN003"},
		},
		{
			name:             "Busca por código da transação",
			search:           "txn002",
			wantTransactions: []string{"TXN002"},
		},
		{
			name:             "Busca sem correspondência devolve página vazia",
			search:           "xyz",
			wantTransactions: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := defaultQuery()
			query.Search = tt.search

			page := TableView(tableFixture(), query)

			transactions := make([]string, 0, len(page.Rows))
			for _, row := range page.Rows {
				transactions = append(transactions, row.Transaction)
			}
			assert.Equal(t, tt.wantTransactions, transactions)
		})
	}
}

func TestTableViewSort(t *testing.T) {
	tests := []struct {
		name      string
		field     domain.TableSortField
		direction string
		wantOrder []string
	}{
		{
			name:      "Data do pedido decrescente é o padrão do painel",
			field:     domain.SortByOrderDate,
			direction: domain.SortDesc,
			wantOrder: []string{"TXN001", "TXN003", "TXN002"},
		},
		{
			name:      "Data do pedido crescente",
			field:     domain.SortByOrderDate,
			direction: domain.SortAsc,
			wantOrder: []string{"TXN002", "TXN003", "TXN001"},
		},
		{
			name:      "Valor crescente",
			field:     domain.SortByValue,
			direction: domain.SortAsc,
			wantOrder: []string{"TXN003", "TXN001", "TXN002"},
		},
		{
			name:      "Valor decrescente",
			field:     domain.SortByValue,
			direction: domain.SortDesc,
			wantOrder: []string{"TXN002", "TXN001", "TXN003"},
		},
		{
			name:      "Nome do comprador crescente com colação pt-BR",
			field:     domain.SortByBuyerName,
			direction: domain.SortAsc,
			wantOrder: []string{"TXN003", "TXN002", "TXN001"},
		},
		{
			name:      "Produto crescente",
			field:     domain.SortByProductName,
			direction: domain.SortAsc,
			wantOrder: []string{"TXN001", "TXN002", "TXN003"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := defaultQuery()
			query.SortField = tt.field
			query.SortDirection = tt.direction

			page := TableView(tableFixture(), query)

			order := make([]string, 0, len(page.Rows))
			for _, row := range page.Rows {
				order = append(order, row.Transaction)
			}
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestTableViewSortAccents(t *testing.T) {
	sales := []domain.Sale{
		{Transaction: "TXN001", BuyerName: "Bruno Lima"},
		{Transaction: "TXN002", BuyerName: "Álvaro Araújo"},
	}

	query := defaultQuery()
	query.SortField = domain.SortByBuyerName
	query.SortDirection = domain.SortAsc

	page := TableView(sales, query)

	// Na colação pt-BR, Á ordena junto de A, antes de B
	assert.Equal(t, "TXN002", page.Rows[0].Transaction)
	assert.Equal(t, "TXN001", page.Rows[1].Transaction)
}

func TestTableViewSortStability(t *testing.T) {
	sales := []domain.Sale{
		{Transaction: "TXN001", Value: 100},
		{Transaction: "TXN002", Value: 100},
		{Transaction: "TXN003", Value: 100},
	}

	query := defaultQuery()
	query.SortField = domain.SortByValue
	query.SortDirection = domain.SortAsc

	page := TableView(sales, query)

	order := make([]string, 0, len(page.Rows))
	for _, row := range page.Rows {
		order = append(order, row.Transaction)
	}
	assert.Equal(t, []string{"TXN001", "TXN002", "TXN003"}, order)
}

func TestTableViewPagination(t *testing.T) {
	sales := make([]domain.Sale, 0, 25)
	for i := 1; i <= 25; i++ {
		sales = append(sales, domain.Sale{
			Transaction: fmt.Sprintf("TXN%03d", i),
			Value:       float64(i),
		})
	}

	query := defaultQuery()
	query.SortField = domain.SortByValue
	query.SortDirection = domain.SortAsc

	t.Run("Primeira página tem dez linhas", func(t *testing.T) {
		q := query
		q.Page = 1

		page := TableView(sales, q)

		assert.Len(t, page.Rows, 10)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.PageSize)
		assert.Equal(t, 25, page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, "TXN001", page.Rows[0].Transaction)
	})

	t.Run("Última página tem o resto", func(t *testing.T) {
		q := query
		q.Page = 3

		page := TableView(sales, q)

		assert.Len(t, page.Rows, 5)
		assert.Equal(t, "TXN021", page.Rows[0].Transaction)
		assert.Equal(t, "TXN025", page.Rows[4].Transaction)
	})

	t.Run("Páginas concatenadas reconstroem o conjunto inteiro", func(t *testing.T) {
		seen := make([]string, 0, 25)
		for p := 1; p <= 3; p++ {
			q := query
			q.Page = p
			page := TableView(sales, q)
			for _, row := range page.Rows {
				seen = append(seen, row.Transaction)
			}
		}

		assert.Len(t, seen, 25)
		assert.Equal(t, "TXN001", seen[0])
		assert.Equal(t, "TXN025", seen[24])
	})

	t.Run("Página além do fim é ajustada para a última", func(t *testing.T) {
		q := query
		q.Page = 99

		page := TableView(sales, q)

		assert.Equal(t, 3, page.Page)
		assert.Len(t, page.Rows, 5)
	})

	t.Run("Página menor que um é ajustada para a primeira", func(t *testing.T) {
		q := query
		q.Page = 0

		page := TableView(sales, q)

		assert.Equal(t, 1, page.Page)
		assert.Len(t, page.Rows, 10)
	})

	t.Run("Conjunto vazio tem zero páginas", func(t *testing.T) {
		q := query
		q.Page = 1

		page := TableView([]domain.Sale{}, q)

		assert.Empty(t, page.Rows)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 0, page.Total)
		assert.Equal(t, 0, page.TotalPages)
	})
}
