package mockfeed

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// product descreve uma oferta do catálogo fictício usado pelo feed local
type product struct {
	Code        string
	Name        string
	Description string
}

var products = []product{
	{Code: "EAA-001", Name: "Curso Completo de Automação", Description: "Automação completa com n8n"},
	{Code: "EAA-002", Name: "Mentoria Premium", Description: "Mentoria individual 1:1"},
	{Code: "EAA-003", Name: "Pack Templates n8n", Description: "50+ templates prontos"},
	{Code: "EAA-004", Name: "Curso APIs Avançadas", Description: "Integrações avançadas"},
	{Code: "EAA-005", Name: "Comunidade VIP", Description: "Acesso comunidade exclusiva"},
}

var sources = []string{"google", "instagram", "facebook", "youtube", "organic", "email", "tiktok"}

var campaignTags = []string{"utm_001", "utm_002", "utm_003", "utm_004", "utm_005", "direct", "ref_partner"}

var firstNames = []string{
	"João", "Maria", "Pedro", "Ana", "Carlos", "Fernanda", "Lucas", "Julia",
	"Gabriel", "Beatriz", "Rafael", "Camila", "Thiago", "Larissa", "Bruno", "Amanda",
}

var lastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Almeida",
	"Costa", "Gomes", "Martins", "Pereira", "Lima", "Araújo", "Barbosa",
}

var ticketValues = []float64{97, 197, 297, 497, 997, 1497, 1997}

const transactionAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSales produz um lote de vendas fictícias cobrindo os últimos seis
// meses, ordenado da mais recente para a mais antiga como o feed real devolve
func GenerateSales(count int) []domain.Sale {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	endDate := time.Now()
	startDate := endDate.AddDate(0, -6, 0)
	window := endDate.Sub(startDate)

	// O feed real devolve as vendas da mais recente para a mais antiga
	orderDates := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		orderDates = append(orderDates, startDate.Add(time.Duration(rng.Int63n(int64(window)))))
	}
	sort.Slice(orderDates, func(i, j int) bool {
		return orderDates[i].After(orderDates[j])
	})

	sales := make([]domain.Sale, 0, count)
	for _, orderDate := range orderDates {
		approvedDate := orderDate.Add(time.Duration(rng.Int63n(int64(24 * time.Hour))))
		receivedAt := approvedDate.Add(time.Duration(rng.Int63n(int64(time.Hour))))

		p := products[rng.Intn(len(products))]
		firstName := firstNames[rng.Intn(len(firstNames))]
		lastName := lastNames[rng.Intn(len(lastNames))]

		sales = append(sales, domain.Sale{
			Transaction:      generateTransactionID(),
			OrderDate:        orderDate.Format(time.RFC3339),
			ApprovedDate:     approvedDate.Format(time.RFC3339),
			OfferCode:        p.Code,
			OfferDescription: p.Description,
			ProductName:      p.Name,
			BuyerName:        fmt.Sprintf("%s %s", firstName, lastName),
			BuyerEmail:       fmt.Sprintf("%s.%s@email.com", strings.ToLower(firstName), strings.ToLower(lastName)),
			Value:            ticketValues[rng.Intn(len(ticketValues))],
			Currency:         "BRL",
			Src:              sources[rng.Intn(len(sources))],
			Sck:              campaignTags[rng.Intn(len(campaignTags))],
			ReceivedAt:       receivedAt.Format(time.RFC3339),
		})
	}

	return sales
}

func generateTransactionID() string {
	id, err := gonanoid.Generate(transactionAlphabet, 8)
	if err != nil {
		// gonanoid só falha com alfabeto ou tamanho inválidos
		panic(err)
	}
	return "TXN" + id
}
