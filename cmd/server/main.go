package main

import (
	"fmt"
	"log"

	"timesheet-backend/internal/config"
	"timesheet-backend/internal/database"
	"timesheet-backend/internal/handlers"
	"timesheet-backend/internal/mailer"
	"timesheet-backend/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN, cfg.BootstrapAdminUser, cfg.BootstrapAdminPass)

	m := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	handlers.Setup(cfg, m)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
