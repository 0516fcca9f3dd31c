package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/crescoflow/crescoflow-core/internal/infra/database"
	"github.com/crescoflow/crescoflow-core/internal/infra/http/handlers"
	"github.com/crescoflow/crescoflow-core/internal/infra/http/middleware"
	"github.com/crescoflow/crescoflow-core/internal/infra/integration/highlevel"
	"github.com/crescoflow/crescoflow-core/internal/infra/legacy"
	"github.com/crescoflow/crescoflow-core/internal/infra/logging"
	"github.com/crescoflow/crescoflow-core/internal/infra/mail"
	"github.com/crescoflow/crescoflow-core/internal/infra/queue"
	"github.com/crescoflow/crescoflow-core/internal/usecase"
)

func main() {
	godotenv.Load()
	logging.Init()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = filepath.Join(dataDir, "crescoflow.db")
	}

	db, err := database.Open(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db, dsn); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	campaignRepo := database.NewCampaignRepository(db)
	conversationRepo := database.NewConversationRepository(db)
	scriptRepo := database.NewScriptRepository(db)
	sessionRepo := database.NewSessionRepository(db)
	configRepo := database.NewConfigRepository(db)
	activityRepo := database.NewActivityRepository(db)
	snapshots := legacy.NewStore(dataDir)

	// 2. Queue + worker (optional; the core runs fine without a broker)
	var (
		rabbitConn *amqp091.Connection
		producer   usecase.SyncPublisher
	)
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err := queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
			host, os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		crmClient := highlevel.NewClient(os.Getenv("CRM_BASE_URL"), os.Getenv("CRM_API_TOKEN"))
		worker := queue.NewWorker(rabbitMQ.Ch, crmClient, leadRepo)
		go worker.Start(queue.QueueName)
	} else {
		log.Warn().Msg("RABBITMQ_HOST not set, CRM sync disabled")
	}

	// 3. Mail (optional)
	var mailer usecase.BackupMailer
	if host := os.Getenv("MAIL_HOST"); host != "" {
		mailer = mail.NewBackupSender(
			host, 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"), os.Getenv("MAIL_FROM"),
		)
	}

	// 4. UseCases
	dedup := usecase.NewDedupChecker(leadRepo)
	ingest := usecase.NewBulkIngest(leadRepo, dedup, activityRepo, producer)
	saveLead := usecase.NewSaveLead(leadRepo, activityRepo)

	migration := &usecase.LegacyMigration{
		Snapshot:      snapshots,
		Leads:         leadRepo,
		Campaigns:     campaignRepo,
		Conversations: conversationRepo,
		Scripts:       scriptRepo,
		Sessions:      sessionRepo,
		Config:        configRepo,
		Ingest:        ingest,
		Activity:      activityRepo,
	}

	loader := &usecase.LoadAccount{
		Leads:         leadRepo,
		Campaigns:     campaignRepo,
		Conversations: conversationRepo,
		Scripts:       scriptRepo,
		Sessions:      sessionRepo,
		Config:        configRepo,
	}

	backup := &usecase.Backup{
		Leads:         leadRepo,
		Campaigns:     campaignRepo,
		Conversations: conversationRepo,
		Scripts:       scriptRepo,
		Sessions:      sessionRepo,
		Config:        configRepo,
		Activity:      activityRepo,
	}

	// 5. Handlers
	accountHandler := handlers.NewAccountHandler(loader, migration)
	leadHandler := handlers.NewLeadHandler(leadRepo, saveLead, ingest)
	configHandler := handlers.NewConfigHandler(configRepo)
	backupHandler := handlers.NewBackupHandler(backup, mailer)
	collectionHandler := handlers.NewCollectionHandler(campaignRepo, conversationRepo, scriptRepo, sessionRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))
	r.Use(middleware.Metrics)

	r.Post("/unlock", accountHandler.HandleUnlock)

	r.Get("/leads", leadHandler.HandleList)
	r.Post("/leads", leadHandler.HandleSave)
	r.Post("/leads/bulk", leadHandler.HandleBulk)

	r.Get("/config", configHandler.HandleGet)
	r.Put("/config", configHandler.HandleSave)

	r.Get("/campaigns", collectionHandler.HandleListCampaigns)
	r.Post("/campaigns", collectionHandler.HandleSaveCampaign)
	r.Get("/conversations", collectionHandler.HandleListConversations)
	r.Post("/conversations", collectionHandler.HandleSaveConversation)
	r.Get("/scripts", collectionHandler.HandleListScripts)
	r.Post("/scripts", collectionHandler.HandleSaveScript)
	r.Get("/sessions", collectionHandler.HandleListSessions)
	r.Post("/sessions", collectionHandler.HandleSaveSession)

	r.Get("/backup", backupHandler.HandleDownload)
	r.Post("/backup/restore", backupHandler.HandleRestore)
	r.Post("/backup/email", backupHandler.HandleEmail)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Info().Str("addr", addr).Msg("CrescoFlow core listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
