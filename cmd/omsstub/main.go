package main

import (
	"encoding/xml"
	"flag"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// incomingOrder is the subset of the order document the stub cares about.
type incomingOrder struct {
	XMLName     xml.Name `xml:"order"`
	OrderNumber string   `xml:"orderNumber"`
	BuyerEAN    int64    `xml:"buyerEan"`
	Articles    []struct {
		EANCode   int64  `xml:"eanCode"`
		Quantity  int    `xml:"quantity"`
		UnitPrice string `xml:"unitPrice"`
	} `xml:"articles>article"`
}

// omsstub is a local stand-in for the order management system. It accepts
// dispatched orders, logs them and replies 202.
func main() {
	addr := flag.String("a", ":8181", "address to listen on")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	router := chi.NewRouter()

	router.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		var order incomingOrder
		if err := xml.NewDecoder(r.Body).Decode(&order); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		logger.Info("order received",
			zap.String("number", order.OrderNumber),
			zap.Int64("buyer", order.BuyerEAN),
			zap.Int("articles", len(order.Articles)))

		w.WriteHeader(http.StatusAccepted)
	})

	logger.Info("Running OMS stub", zap.String("addr", *addr))

	if err := http.ListenAndServe(*addr, router); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
