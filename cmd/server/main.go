package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Kamaludyn/career-connect-backend/internal/config"
	"github.com/Kamaludyn/career-connect-backend/internal/events"
	"github.com/Kamaludyn/career-connect-backend/internal/handlers"
	"github.com/Kamaludyn/career-connect-backend/internal/logger"
	"github.com/Kamaludyn/career-connect-backend/internal/mailer"
	"github.com/Kamaludyn/career-connect-backend/internal/middleware"
	"github.com/Kamaludyn/career-connect-backend/internal/presence"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
	"github.com/Kamaludyn/career-connect-backend/internal/routes"
	"github.com/Kamaludyn/career-connect-backend/internal/service"
	"github.com/Kamaludyn/career-connect-backend/internal/ws"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("./config/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Development: cfg.App.Env == "development"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Infof("starting careerconnect backend (env=%s)", cfg.App.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Mongo
	mc, err := repository.NewMongoClient(cfg)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	db := mc.Database(cfg.Mongo.Database)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("mongo indexes: %v", err)
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis ping: %v", err)
	}

	// Kafka
	var pub events.Publisher = events.Nop{}
	if cfg.Kafka.Enabled {
		pub = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
	}

	// Mail
	var mail mailer.Mailer = mailer.Nop{}
	if cfg.Mail.Enabled {
		mail = mailer.New(cfg.Mail.APIKey, cfg.Mail.SenderEmail, cfg.Mail.SenderName, log)
	}

	// repositories
	userRepo := repository.NewUserRepo(db)
	convRepo := repository.NewConversationRepo(db)
	msgRepo := repository.NewMessageRepo(db)
	notifRepo := repository.NewNotificationRepo(db)
	jobRepo := repository.NewJobRepo(db)
	appRepo := repository.NewApplicationRepo(db)
	mentorRepo := repository.NewMentorshipRepo(db)
	resourceRepo := repository.NewResourceRepo(db)
	reportRepo := repository.NewReportRepo(db)

	// real-time relay
	registry := ws.NewRegistry()
	hub := ws.NewHub(registry)
	relay := ws.NewRelay(hub, log)

	presenceStore := presence.NewStore(rdb, cfg.Redis.Prefix)

	// services
	notifSvc := service.NewNotificationService(notifRepo, pub, log)
	authSvc := service.NewAuthService(userRepo, cfg.App.JWTSecret, cfg.TokenTTL)
	userSvc := service.NewUserService(userRepo)
	chatSvc := service.NewChatService(convRepo, msgRepo, userRepo, pub, log)
	jobSvc := service.NewJobService(jobRepo, userRepo, appRepo, notifSvc)
	appSvc := service.NewApplicationService(appRepo, jobRepo, userRepo, notifSvc)
	mentorSvc := service.NewMentorshipService(mentorRepo, userRepo, notifSvc, mail, log)
	resourceSvc := service.NewResourceService(resourceRepo)
	reportSvc := service.NewReportService(reportRepo)
	adminSvc := service.NewAdminService(userRepo, jobRepo, resourceRepo)
	searchSvc := service.NewSearchService(userRepo, jobRepo, resourceRepo)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	})
	app.Use(middleware.Recovery(log))
	app.Use(middleware.RequestLogger(log))

	routes.Register(app, routes.Deps{
		JWTSecret: cfg.App.JWTSecret,
		Users:     userRepo,

		Auth:          handlers.NewAuthHandler(authSvc, presenceStore, log),
		User:          handlers.NewUserHandler(userSvc, authSvc, presenceStore, log),
		Conversations: handlers.NewConversationHandler(chatSvc),
		Messages:      handlers.NewMessageHandler(chatSvc, relay),
		Notifications: handlers.NewNotificationHandler(notifSvc),
		Jobs:          handlers.NewJobHandler(jobSvc),
		Applications:  handlers.NewApplicationHandler(appSvc),
		Mentorships:   handlers.NewMentorshipHandler(mentorSvc),
		Resources:     handlers.NewResourceHandler(resourceSvc),
		Reports:       handlers.NewReportHandler(reportSvc),
		Admin:         handlers.NewAdminHandler(adminSvc),
		Search:        handlers.NewSearchHandler(searchSvc),

		Relay:       relay,
		RateLimiter: middleware.NewRateLimiter(rdb, cfg.Redis.Prefix, 30, time.Minute),
	})

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.App.Port)); err != nil {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	_ = app.Shutdown()
	_ = pub.Close()
	_ = mc.Disconnect(shutCtx)
	_ = rdb.Close()
	log.Info("shutdown complete")
}
