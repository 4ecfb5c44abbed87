package utils

import "time"

// Formatos aceitos para a data de uma venda, tentados em ordem. O feed mistura
// o formato brasileiro (com e sem horário) e ISO-8601.
var saleDateLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate converte um parâmetro de data da query string (aaaa-mm-dd)
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseSaleDate converte a data de uma venda do feed. Nunca retorna erro:
// entrada vazia ou irreconhecível retorna ok=false, e cabe a quem consome
// excluir a venda das comparações cronológicas.
func ParseSaleDate(dateStr string) (time.Time, bool) {
	if dateStr == "" {
		return time.Time{}, false
	}

	for _, layout := range saleDateLayouts {
		if t, err := time.ParseInLocation(layout, dateStr, time.Local); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// StartOfDay retorna a meia-noite do dia de t, no fuso de t
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay retorna o último instante do dia de t, no fuso de t
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// SameDay indica se a e b caem no mesmo dia do calendário local
func SameDay(a, b time.Time) bool {
	return a.Local().Format(time.DateOnly) == b.Local().Format(time.DateOnly)
}
