package n8n

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/n8n/n8nclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SalesFeedIntegrator é a fronteira com a fonte externa de dados: devolve a
// lista de vendas ou uma falha, nada mais.
type SalesFeedIntegrator interface {
	FetchSales(ctx context.Context) ([]domain.Sale, error)
}

type SalesFeedService struct {
	cfg    *config.Config
	Client n8nclient.Client
}

func New(cfg *config.Config, client n8nclient.Client) SalesFeedIntegrator {
	return &SalesFeedService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SalesFeedService) FetchSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.Client.GetSales(ctx)
	if err != nil {
		return nil, err
	}

	if sales == nil {
		sales = make([]domain.Sale, 0)
	}

	return sales, nil
}
