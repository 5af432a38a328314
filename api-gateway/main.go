package main

import (
	"log"
	"net/http"

	"restaurant-storefront/api-gateway/internal/gateway"
	"restaurant-storefront/config"

	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	gw := gateway.NewGateway(gateway.Config{
		StorefrontSvcURL: cfg.StorefrontSvcURL,
		AnalyticsSvcURL:  cfg.AnalyticsSvcURL,
		FrontendDir:      cfg.FrontendDir,
	}, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	log.Printf("API Gateway starting on %s", cfg.GatewayAddr)
	log.Fatal(http.ListenAndServe(cfg.GatewayAddr, handler))
}
