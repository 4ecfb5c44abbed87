package n8nclient

import (
	"context"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetSales busca no webhook do n8n a lista completa de vendas. A resposta é
// um array JSON plano; qualquer status diferente de 200 ou corpo malformado
// é tratado como falha de fetch.
func (c *N8NClient) GetSales(ctx context.Context) ([]domain.Sale, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.config.SalesFeed.RequestTimeout)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.SalesFeed.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL do feed de vendas")
	}

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição ao feed falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	var sales []domain.Sale
	if err := json.NewDecoder(resp.Body).Decode(&sales); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do feed")
	}

	return sales, nil
}
