package n8nclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

func testConfig(feedURL string) *config.Config {
	return &config.Config{
		SalesFeed: config.SalesFeed{
			URL:            feedURL,
			RequestTimeout: 5 * time.Second,
		},
	}
}

func TestGetSales(t *testing.T) {
	t.Run("Resposta 200 com array de vendas", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"transaction":"TXN001","order_date":"02/01/2024 10:30","product_name":"Curso","value":297.0,"currency":"BRL","src":"google","sck":"utm_001"},
				{"transaction":"TXN002","order_date":"2024-01-03T08:00:00","product_name":"Mentoria","value":997.0,"currency":"BRL"}
			]`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))

		sales, err := client.GetSales(context.Background())

		assert.NoError(t, err)
		assert.Len(t, sales, 2)
		assert.Equal(t, "TXN001", sales[0].Transaction)
		assert.Equal(t, 297.0, sales[0].Value)
		assert.Equal(t, "google", sales[0].Src)
		assert.Empty(t, sales[1].Src)
	})

	t.Run("Status diferente de 200 é falha de fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))

		sales, err := client.GetSales(context.Background())

		assert.Error(t, err)
		assert.Nil(t, sales)
	})

	t.Run("Corpo malformado é falha de fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"isto": "não é um array"`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))

		sales, err := client.GetSales(context.Background())

		assert.Error(t, err)
		assert.Nil(t, sales)
	})

	t.Run("Timeout da requisição é respeitado", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		cfg := testConfig(server.URL)
		cfg.SalesFeed.RequestTimeout = 50 * time.Millisecond

		client := NewClient(cfg)

		_, err := client.GetSales(context.Background())

		assert.Error(t, err)
	})
}
