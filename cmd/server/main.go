package main

import (
	"context"
	"encoding/base64"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"erpviews-backend/internal/config"
	"erpviews-backend/internal/db"
	"erpviews-backend/internal/fixtures"
	"erpviews-backend/internal/handler"
	"erpviews-backend/internal/repository"
	"erpviews-backend/internal/server"
	"erpviews-backend/internal/service"
	"erpviews-backend/internal/views"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// data source
	var (
		sources repository.Sources
		users   repository.UserStore
		health  handler.HealthChecker
	)
	if cfg.UsePostgres() {
		pg, err := db.New(ctx, cfg)
		if err != nil {
			logger.Error("failed to connect database", "err", err)
			os.Exit(1)
		}
		defer pg.Close()
		if err := pg.Migrate(ctx); err != nil {
			logger.Error("failed to migrate database", "err", err)
			os.Exit(1)
		}
		seeded, err := repository.SeedAll(ctx, repository.FixtureRecordRepository{DB: pg})
		if err != nil {
			logger.Error("failed to seed fixtures", "err", err)
			os.Exit(1)
		}
		logger.Info("fixtures seeded", "inserted", seeded)
		sources = repository.PostgresSources(pg)
		users = repository.UserRepository{DB: pg}
		health = pg
	} else {
		sources = repository.FixtureSources()
		users = repository.NewMemoryUserRepository()
	}

	// Firebase Auth (optional)
	var firebaseAuth *auth.Client
	if cfg.FirebaseProjectID != "" {
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, firebaseOptions(cfg)...)
		if err != nil {
			logger.Error("failed to init firebase app", "err", err)
			os.Exit(1)
		}
		client, err := app.Auth(ctx)
		if err != nil {
			logger.Error("failed to init firebase auth", "err", err)
			os.Exit(1)
		}
		firebaseAuth = client
	}

	// services
	authSvc := service.AuthService{Config: cfg, Users: users, Logger: logger, FirebaseAuth: firebaseAuth}
	created, err := authSvc.SeedAccounts(ctx, fixtures.SeedUsers(), cfg.DemoPassword)
	if err != nil {
		logger.Error("failed to seed accounts", "err", err)
		os.Exit(1)
	}
	if created > 0 {
		logger.Info("demo accounts created", "count", created)
	}

	registry := views.NewRegistry(sources, repository.NewOverlay(), views.Options{
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	})
	src := registry.Sources()
	processor := &service.Processor{
		Delay:  cfg.ProcessingDelay,
		Tasks:  service.DefaultTasks(registry, users),
		Logger: logger,
	}

	router := server.NewRouter(cfg, logger, server.Handlers{
		Health:    handler.HealthHandler{DB: health, DataSource: cfg.DataSource},
		Auth:      handler.AuthHandler{Service: &authSvc},
		Docs:      handler.DocsHandler{},
		Views:     handler.ViewHandler{Registry: registry},
		Inventory: handler.InventoryHandler{Service: service.InventoryService{Suggestions: src.ReorderSuggestions}, Registry: registry},
		Approvals: handler.ApprovalHandler{Service: service.ApprovalService{Entries: src.ApprovalEntries}},
		Badges:    handler.BadgeHandler{},
		Jobs:      handler.JobHandler{Processor: processor},
		Rules:     handler.RuleHandler{Registry: registry},
		Edits:     handler.EditHandler{Registry: registry},
	})

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func firebaseOptions(cfg config.Config) []option.ClientOption {
	if cfg.FirebaseCredFile == "" {
		return nil
	}

	cred := cfg.FirebaseCredFile
	// inline JSON or base64-encoded JSON
	if strings.HasPrefix(strings.TrimSpace(cred), "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cred))}
	}
	if decoded, err := base64.StdEncoding.DecodeString(cred); err == nil && strings.HasPrefix(strings.TrimSpace(string(decoded)), "{") {
		return []option.ClientOption{option.WithCredentialsJSON(decoded)}
	}

	return []option.ClientOption{option.WithCredentialsFile(cred)}
}
