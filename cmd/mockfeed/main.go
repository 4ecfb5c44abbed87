package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/mockfeed"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Servidor local que imita o webhook de vendas do n8n, útil para desenvolver
// o dashboard sem depender do fluxo real
func main() {
	port := flag.String("port", "4010", "porta do servidor do feed")
	count := flag.Int("count", 250, "quantidade de vendas geradas")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	sales := mockfeed.GenerateSales(*count)

	router := httprouter.New()
	router.Handler(http.MethodGet, "/webhook/sales-json", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			logrus.WithError(err).Error("Erro ao codificar as vendas do feed")
		}
	}))

	logrus.WithFields(logrus.Fields{
		"port":  *port,
		"sales": *count,
	}).Info("Feed de vendas local iniciado")

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", *port),
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		logrus.Fatal(err)
	}
}
