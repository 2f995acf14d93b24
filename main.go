package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/abdul-09/slooze-restaurant/configs"
	"github.com/abdul-09/slooze-restaurant/middlewares"
	"github.com/abdul-09/slooze-restaurant/pkg/mailer"
	"github.com/abdul-09/slooze-restaurant/pkg/paypal"
	"github.com/abdul-09/slooze-restaurant/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedCategories(); err != nil {
		log.Fatalf("seed categories failed: %v", err)
	}

	// collaborators
	var mail mailer.Sender = mailer.NewSMTPSender(cfg.SMTPAddr, cfg.SMTPFrom)
	if cfg.SMTPAddr == "" {
		mail = mailer.LogSender{}
	}
	gateway := paypal.NewClient(cfg.PayPalBaseURL, cfg.PayPalClientID, cfg.PayPalSecret)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, gateway, mail)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
