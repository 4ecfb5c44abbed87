package refreshing

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/n8n"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// ErrRefreshInProgress indica que um refresh disparado encontrou outro em
// andamento e foi ignorado
var ErrRefreshInProgress = errors.New("atualização do snapshot já em andamento")

// Snapshotter é o dono do snapshot de vendas: a única peça de estado do
// processo. O snapshot é substituído por inteiro a cada fetch bem-sucedido e
// preservado quando o fetch falha.
type Snapshotter interface {
	// Refresh busca o feed e substitui o snapshot. Um refresh disparado com
	// outro em voo retorna ErrRefreshInProgress, sem enfileirar nem cancelar.
	Refresh(ctx context.Context) error

	// Snapshot devolve o snapshot atual. O slice publicado nunca é mutado,
	// então pode ser lido sem cópia.
	Snapshot() []domain.Sale

	// Status descreve o estado atual do snapshot
	Status() domain.SnapshotStatus
}

type Service struct {
	feed n8n.SalesFeedIntegrator

	mu         sync.RWMutex
	sales      []domain.Sale
	lastUpdate *time.Time

	refreshMu  sync.Mutex
	refreshing bool
}

// NewService cria o serviço de atualização do snapshot de vendas
func NewService(feed n8n.SalesFeedIntegrator) *Service {
	return &Service{
		feed:  feed,
		sales: make([]domain.Sale, 0),
	}
}

func (s *Service) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	if s.refreshing {
		s.refreshMu.Unlock()
		return ErrRefreshInProgress
	}
	s.refreshing = true
	s.refreshMu.Unlock()

	defer func() {
		s.refreshMu.Lock()
		s.refreshing = false
		s.refreshMu.Unlock()
	}()

	sales, err := s.feed.FetchSales(ctx)
	if err != nil {
		// O snapshot anterior permanece válido
		logrus.WithError(err).Error("Erro ao buscar vendas do feed, snapshot anterior mantido")
		return errors.Wrap(err, "erro ao atualizar o snapshot de vendas")
	}

	now := time.Now()

	s.mu.Lock()
	s.sales = sales
	s.lastUpdate = &now
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"sales_count": len(sales),
	}).Info("Snapshot de vendas atualizado com sucesso")

	return nil
}

func (s *Service) Snapshot() []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sales
}

func (s *Service) Status() domain.SnapshotStatus {
	s.refreshMu.Lock()
	refreshing := s.refreshing
	s.refreshMu.Unlock()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.SnapshotStatus{
		SalesCount: len(s.sales),
		LastUpdate: s.lastUpdate,
		Refreshing: refreshing,
	}
}
