package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sylvanite/backup-checker/internal/collector"
	"github.com/sylvanite/backup-checker/internal/config"
	"github.com/sylvanite/backup-checker/internal/domain"
	"github.com/sylvanite/backup-checker/internal/handler"
	"github.com/sylvanite/backup-checker/internal/health"
	"github.com/sylvanite/backup-checker/internal/infra/runrecorder"
	"github.com/sylvanite/backup-checker/internal/mail"
	"github.com/sylvanite/backup-checker/internal/observability"
	"github.com/sylvanite/backup-checker/internal/observability/logging"
	"github.com/sylvanite/backup-checker/internal/observability/metrics"
	"github.com/sylvanite/backup-checker/internal/service/check"
)

// Version is set via ldflags at build time
var Version = "dev"

const (
	exitOK      = 0
	exitError   = 1
	exitNoUsers = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return exitError
	}

	slog.SetDefault(logging.NewLogger(cfg.LogLevel, cfg.LogFormat))

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return exitError
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceName: "backup-checker",
		Version:     Version,
	})
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return exitError
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	checkMetrics, err := metrics.NewCheckMetrics()
	if err != nil {
		slog.Error("failed to initialize check metrics", slog.String("error", err.Error()))
		return exitError
	}

	recorder, err := runrecorder.NewRecorder(ctx, runrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize run recorder", slog.String("error", err.Error()))
		return exitError
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close run recorder", slog.String("error", err.Error()))
		}
	}()

	var mailer mail.Mailer
	if cfg.Mail.Enabled() {
		smtpMailer, err := mail.NewSMTPMailer(mail.SMTPConfig{
			Host:          cfg.Mail.Host,
			Port:          cfg.Mail.Port,
			Username:      cfg.Mail.Username,
			Password:      cfg.Mail.Password,
			From:          cfg.Mail.From,
			AddressDomain: cfg.Mail.AddressDomain,
		})
		if err != nil {
			slog.Error("failed to initialize mailer", slog.String("error", err.Error()))
			return exitError
		}
		mailer = smtpMailer

		slog.Info("mailer initialized",
			slog.String("host", cfg.Mail.Host),
			slog.Int("port", cfg.Mail.Port),
		)
	} else {
		slog.Warn("SMTP_HOST not set, mail delivery disabled")
	}

	rules := make([]collector.Rule, 0, len(cfg.Detection.Rules))
	for _, rule := range cfg.Detection.Rules {
		rules = append(rules, collector.Rule{
			Name:         rule.Name,
			HomeDirsGlob: rule.HomeDirsGlob,
			BackupSubdir: rule.BackupSubdir,
		})
	}
	coll := collector.New(rules, cfg.Detection.ExcludeUsers)

	checkService := check.NewService(coll, mailer, recorder, checkMetrics, cfg)

	switch cfg.Mode {
	case config.ModeServe:
		return runServe(ctx, cfg, checkService, mailer)
	default:
		return runOnce(ctx, checkService)
	}
}

// runOnce performs a single audit, prints the protocol to stdout, and
// maps the outcome to the exit-code contract: 0 on success, 2 when no
// users were found, 1 otherwise.
func runOnce(ctx context.Context, checkService *check.Service) int {
	result, err := checkService.Run(ctx, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNoUsers) {
			slog.Error("no users found on this server")
			return exitNoUsers
		}
		slog.Error("check run failed", slog.String("error", err.Error()))
		return exitError
	}

	fmt.Println(result.ReportWithLog())
	return exitOK
}

func runServe(ctx context.Context, cfg *config.Config, checkService *check.Service, mailer mail.Mailer) int {
	checkHandler := handler.NewCheckHandler(checkService)
	healthChecker := health.NewChecker(mailer, Version)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/check", checkHandler.HandleCheck)
		v1.GET("/report", checkHandler.HandleReport)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Bool("exclude_weekends", cfg.Check.ExcludeWeekends),
			slog.Bool("notify_users", cfg.Check.NotifyUsers),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return exitError
		}

		slog.Info("server exited properly")
		return exitOK

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return exitOK
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return exitError
	}
}
