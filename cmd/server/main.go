package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/garderie-etoiles/website/modules/leads"
	"github.com/garderie-etoiles/website/pkg/audit"
	"github.com/garderie-etoiles/website/pkg/config"
	"github.com/garderie-etoiles/website/pkg/email"
	"github.com/garderie-etoiles/website/pkg/httpserver"
	"github.com/garderie-etoiles/website/pkg/logger"
	"github.com/garderie-etoiles/website/pkg/ratelimit"
	"github.com/garderie-etoiles/website/pkg/redis"
)

type appConfig struct {
	Addr        string `env:"SERVER_ADDR" envDefault:":8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
	Mailer      string `env:"MAILER" envDefault:"smtp"`
	MailOutDir  string `env:"MAIL_OUT_DIR" envDefault:"./outbox"`
	SubmitLimit int    `env:"SUBMIT_LIMIT" envDefault:"3"`

	SubmitWindow time.Duration `env:"SUBMIT_WINDOW" envDefault:"1h"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var appCfg appConfig
	if err := config.Load(&appCfg); err != nil {
		return fmt.Errorf("load app config: %w", err)
	}

	var mailCfg email.Config
	if err := config.Load(&mailCfg); err != nil {
		return fmt.Errorf("load mail config: %w", err)
	}

	var redisCfg redis.Config
	if err := config.Load(&redisCfg); err != nil {
		return fmt.Errorf("load redis config: %w", err)
	}

	log := logger.New(
		logger.WithLevel(parseLevel(appCfg.LogLevel)),
		logger.WithFormat(logger.Format(appCfg.LogFormat)),
		logger.WithAttr(slog.String("app", "garderie-website")),
	)
	slog.SetDefault(log)

	store, err := newLimiterStore(ctx, redisCfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	limiter, err := ratelimit.NewFixedWindow(store, appCfg.SubmitLimit, appCfg.SubmitWindow)
	if err != nil {
		return fmt.Errorf("init rate limiter: %w", err)
	}

	sender, err := newSender(appCfg, mailCfg)
	if err != nil {
		return fmt.Errorf("init mail sender: %w", err)
	}

	auditLog := audit.NewLogger(audit.NewSlogStorage(log))
	svc := leads.NewService(limiter, auditLog, sender, mailCfg, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", httpserver.Healthcheck())
	r.Mount("/api", leads.Router(svc))

	srv := httpserver.New(
		httpserver.WithAddr(appCfg.Addr),
		httpserver.WithLogger(log),
	)
	return srv.Run(ctx, r)
}

// newLimiterStore picks Redis when REDIS_URL is configured so quota state
// survives restarts and is shared across replicas; otherwise the in-process
// store is enough.
func newLimiterStore(ctx context.Context, cfg redis.Config, log *slog.Logger) (ratelimit.Store, error) {
	if cfg.ConnectionURL == "" {
		log.Info("rate limit store: in-memory")
		return ratelimit.NewMemoryStore(), nil
	}

	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	log.Info("rate limit store: redis")
	return ratelimit.NewRedisStore(client), nil
}

func newSender(appCfg appConfig, mailCfg email.Config) (email.EmailSender, error) {
	switch appCfg.Mailer {
	case "smtp":
		return email.NewSMTPSender(mailCfg)
	case "postmark":
		return email.NewPostmarkSender(mailCfg)
	case "dev":
		return email.NewDevSender(appCfg.MailOutDir), nil
	default:
		return nil, fmt.Errorf("unknown mailer %q", appCfg.Mailer)
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
