package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/config"
	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/infra/database"
	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/infra/http/handlers"
	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/infra/http/middleware"
	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/infra/integration/mailjet"
	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/infra/mail"
	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/infra/queue"
	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/usecase"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalw("invalid configuration", "error", err)
	}

	addressing := mail.Addressing{
		FromEmail: cfg.FromEmail,
		FromName:  cfg.FromName,
		ToEmail:   cfg.ToEmail,
	}
	business := mail.Business{
		Name:  cfg.BusinessName,
		Phone: cfg.BusinessPhone,
		Email: cfg.BusinessEmail,
	}

	// 1. Email sender (one long-lived client for all requests)
	var mailer usecase.EmailService
	switch cfg.MailProvider {
	case config.ProviderSMTP:
		mailer = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, addressing, business)
	default:
		client := mailjet.NewClient(cfg.MailjetAPIKey, cfg.MailjetAPISecret, mailjet.DefaultBaseURL)
		mailer = mail.NewMailjetSender(client, addressing, business)
	}

	// 2. Lead backstop (optional)
	var db *sql.DB
	var store usecase.SubmissionStore
	if cfg.DatabaseURL != "" {
		db, err = database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			log.Fatalw("failed to connect to database", "error", err)
		}
		defer db.Close()
		store = database.NewSubmissionRepository(db)
	}

	// 3. Analytics reporter (optional, degraded startup is fine)
	var reporter usecase.EventReporter
	var amqpConn *amqp.Connection
	if cfg.AMQPURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.Warnw("analytics broker unavailable, events disabled", "error", err)
		} else {
			defer rabbitMQ.Close()
			reporter = queue.NewAMQPReporter(rabbitMQ.Ch, log)
			amqpConn = rabbitMQ.Conn
		}
	}

	// 4. UseCases
	submitUC := usecase.NewSubmitContactUseCase(mailer, store, reporter, log)

	// 5. Handlers
	contactHandler := handlers.NewContactHandler(submitUC, log)
	healthHandler := handlers.NewHealthHandler(db, amqpConn, true)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://septiccheetah.com", "http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/api/contact", contactHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Infow("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
