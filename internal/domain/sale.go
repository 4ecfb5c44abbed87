package domain

// Rótulos usados quando a venda chega sem marcação de origem ou campanha
const (
	DirectSource  = "direct"
	NoCampaignTag = "sem_sck"
)

// Sale representa uma venda exatamente como recebida do feed (webhook do n8n).
// As datas chegam como string e podem vir em ISO-8601 ou no formato brasileiro
// dd/mm/aaaa, com ou sem horário. A conversão fica em utils.ParseSaleDate.
type Sale struct {
	Transaction      string  `json:"transaction"`
	OrderDate        string  `json:"order_date"`
	ApprovedDate     string  `json:"approved_date"`
	OfferCode        string  `json:"offer_code"`
	OfferDescription string  `json:"offer_description"`
	ProductName      string  `json:"product_name"`
	BuyerName        string  `json:"buyer_name"`
	BuyerEmail       string  `json:"buyer_email"`
	Value            float64 `json:"value"`
	Currency         string  `json:"currency"`
	Src              string  `json:"src"`
	Sck              string  `json:"sck"`
	ReceivedAt       string  `json:"received_at"`
}

// Source retorna a fonte de tráfego da venda, com fallback para "direct"
func (s Sale) Source() string {
	if s.Src == "" {
		return DirectSource
	}
	return s.Src
}

// CampaignTag retorna o código de campanha (sck) da venda, com fallback para "sem_sck"
func (s Sale) CampaignTag() string {
	if s.Sck == "" {
		return NoCampaignTag
	}
	return s.Sck
}
