package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aishnar/aishnar-leads/internal/auth"
	"github.com/aishnar/aishnar-leads/internal/config"
	"github.com/aishnar/aishnar-leads/internal/form"
	"github.com/aishnar/aishnar-leads/internal/infra/database"
	"github.com/aishnar/aishnar-leads/internal/infra/http/handlers"
	appmiddleware "github.com/aishnar/aishnar-leads/internal/infra/http/middleware"
	"github.com/aishnar/aishnar-leads/internal/infra/mail"
	"github.com/aishnar/aishnar-leads/internal/infra/queue"
	"github.com/aishnar/aishnar-leads/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	operatorRepo := database.NewOperatorRepository(db)

	// 2. Auth and adapters
	sessions := auth.NewManager(operatorRepo, cfg.JWTSecret, cfg.SessionTTL)
	defer sessions.Close()

	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)

	// 3. Worker (consumes the queue and mails the review inbox)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender, cfg.NotifyEmail)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	submitUC := usecase.NewSubmitLeadUseCase(leadRepo, producer)
	statusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(submitUC)
	draftHandler := handlers.NewDraftHandler(form.NewStore(cfg.DraftTTL), submitUC)
	adminHandler := handlers.NewAdminHandler(leadRepo, statusUC)
	authHandler := handlers.NewAuthHandler(sessions)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Post("/leads", leadHandler.CaptureLead)
	r.Route("/leads/drafts", func(r chi.Router) {
		r.Post("/", draftHandler.HandleCreate)
		r.Get("/{id}", draftHandler.HandleGet)
		r.Patch("/{id}", draftHandler.HandlePatch)
		r.Post("/{id}/submit", draftHandler.HandleSubmit)
	})

	r.Post("/auth/login", authHandler.HandleLogin)
	r.Post("/auth/logout", authHandler.HandleLogout)
	r.Get("/auth/session", authHandler.HandleSession)

	r.Route("/admin", func(r chi.Router) {
		r.Use(appmiddleware.RequireSession(sessions))
		r.Get("/leads", adminHandler.HandleList)
		r.Patch("/leads/{id}/status", adminHandler.HandleUpdateStatus)
		r.Get("/leads/export", adminHandler.HandleExport)
		r.Get("/leads/stats", adminHandler.HandleStats)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("lead intake API listening on %s", addr)
	http.ListenAndServe(addr, r)
}
