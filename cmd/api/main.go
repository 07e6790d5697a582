package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/jobs"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
	"github.com/BruksfildServices01/barber-booking/internal/payment"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	loc := timezone.Location(cfg.Timezone)

	if err := validators.Register(); err != nil {
		log.Fatalf("failed to register validators: %v", err)
	}

	// --------------------------------------------------
	// Collaborators
	// --------------------------------------------------
	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var mailer notification.Mailer = notification.LogMailer{}
	if cfg.ResendAPIKey != "" {
		mailer = notification.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom)
	} else {
		log.Println("RESEND_API_KEY not set, emails will only be logged")
	}
	notifier := notification.NewNotifier(mailer, loc, cfg.DashboardURL)

	deps := routes.Deps{
		DB:       db,
		Config:   cfg,
		Location: loc,
		Notifier: notifier,
		Audit:    auditDispatcher,
		AuditLog: auditLogger,
	}

	if cfg.AvatarUploadEnabled() {
		deps.Avatars = storage.NewAvatarStore(cfg)
	}

	if cfg.CheckoutEnabled() {
		mp, err := payment.NewMercadoPago(cfg.MercadoPagoToken)
		if err != nil {
			log.Fatalf("failed to configure mercado pago: %v", err)
		}
		deps.Gateway = mp
	}

	// --------------------------------------------------
	// Reminder job
	// --------------------------------------------------
	var locker jobs.Locker = jobs.NoopLocker{}
	if cfg.RedisURL != "" {
		rl, err := jobs.NewRedisLocker(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		defer rl.Close()
		locker = rl
	}

	reminder := jobs.NewReminder(infraRepo.NewBookingGormRepository(db), notifier, locker, loc)
	scheduler, err := jobs.Schedule(cfg.ReminderCron, reminder)
	if err != nil {
		log.Fatalf("invalid REMINDER_CRON %q: %v", cfg.ReminderCron, err)
	}
	scheduler.Start()

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.ServerErrorLog())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	<-scheduler.Stop().Done()
	notifier.Close()
	auditDispatcher.Close()
}
