package deriving

import (
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type Service struct{}

// NewService cria o serviço de derivação do dashboard
func NewService() Deriver {
	return &Service{}
}

func (s *Service) Dashboard(sales []domain.Sale, filters *domain.SaleFilters) *domain.DashboardResponse {
	now := time.Now()
	subset := FilterSales(sales, filters, now)

	return &domain.DashboardResponse{
		Stats:        Summarize(subset, now),
		DailySeries:  DailySeries(subset, now),
		TopProducts:  TopProducts(subset),
		Sources:      SourceDistribution(subset),
		CampaignTags: TopCampaignTags(subset),
		Filters:      filters,
	}
}

func (s *Service) Table(sales []domain.Sale, filters *domain.SaleFilters, query domain.TableQuery) *domain.TablePage {
	subset := FilterSales(sales, filters, time.Now())
	return TableView(subset, query)
}
