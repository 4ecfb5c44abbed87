package n8nclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type Client interface {
	GetSales(ctx context.Context) ([]domain.Sale, error)
}

type N8NClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente do feed de vendas
func NewClient(cfg *config.Config) Client {
	return &N8NClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
