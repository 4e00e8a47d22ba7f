package main

import (
	"context"
	"log"
	"os"

	"github.com/cloudwego/hertz/pkg/app/server"
	"go.uber.org/zap"

	mockflow "lexiq/internal/adapter/flows/mock"
	openaiflow "lexiq/internal/adapter/flows/openai"
	httpadapter "lexiq/internal/adapter/http"
	metricsinmem "lexiq/internal/adapter/metrics/inmemory"
	gormrepo "lexiq/internal/adapter/repo/gorm"
	"lexiq/internal/adapter/repo/memory"
	mongorepo "lexiq/internal/adapter/repo/mongo"
	"lexiq/internal/app/auth"
	"lexiq/internal/app/checkout"
	"lexiq/internal/app/companies"
	"lexiq/internal/app/dashboard"
	"lexiq/internal/app/diligence"
	"lexiq/internal/app/dispatch"
	"lexiq/internal/app/insights"
	"lexiq/internal/app/learn"
	"lexiq/internal/app/lookup"
	"lexiq/internal/app/ports"
	"lexiq/internal/app/validation"
	"lexiq/internal/config"
	"lexiq/internal/logging"
)

type flows interface {
	ports.DashboardAdvisor
	ports.ChecklistGenerator
	ports.LearningGuide
	ports.ReportAnalyst
	ports.CompanyRegistry
}

type repos struct {
	transactions ports.TransactionRepository
	companies    ports.CompanyRepository
	audit        ports.AuditRepository
	txManager    ports.TxManager
	close        func(context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := buildRepos(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("build repositories", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	ai, err := buildFlows(cfg)
	if err != nil {
		logger.Fatal("build ai flows", zap.String("provider", cfg.AI.Provider), zap.Error(err))
	}

	kpiRecorder := metricsinmem.NewRecorder()
	deps := dispatch.Deps{
		Logger:    logger,
		Metrics:   kpiRecorder,
		Validator: validation.MustNew(),
	}
	secret := []byte(cfg.Auth.JWTSecret)
	if len(secret) == 0 {
		logger.Warn("LEXIQ_JWT_SECRET is empty; every request is anonymous")
	}

	h := httpadapter.Handler{
		DashboardUC: dashboard.SuggestUseCase{Dispatch: deps, Advisor: ai},
		DiligenceUC: diligence.ChecklistUseCase{Dispatch: deps, Generator: ai},
		LearnUC:     learn.TopicUseCase{Dispatch: deps, Guide: ai},
		InsightsUC:  insights.ReportUseCase{Dispatch: deps, Analyst: ai},
		LookupUC:    lookup.CompanyUseCase{Dispatch: deps, Registry: ai},
		CheckoutBeginUC: checkout.BeginUseCase{
			Dispatch:     deps,
			Transactions: store.transactions,
			Audit:        store.audit,
			TxManager:    store.txManager,
		},
		CheckoutSubmitUC: checkout.SubmitReferenceUseCase{
			Dispatch:     deps,
			Transactions: store.transactions,
			Audit:        store.audit,
			TxManager:    store.txManager,
		},
		CheckoutStatusUC: checkout.StatusUseCase{
			Dispatch:     deps,
			Transactions: store.transactions,
			Audit:        store.audit,
		},
		SaveCompanyUC:   companies.SaveUseCase{Dispatch: deps, Companies: store.companies},
		ListCompaniesUC: companies.ListUseCase{Dispatch: deps, Companies: store.companies},
		SessionUC:       auth.VerifyUseCase{Secret: secret},
		KPI:             kpiRecorder,
		Logger:          logger,
		AllowedOrigins:  cfg.HTTP.AllowedOrigins,
	}

	s := server.Default(server.WithHostPorts(cfg.HTTP.Addr))
	s.OnShutdown = append(s.OnShutdown, func(ctx context.Context) {
		if err := store.close(ctx); err != nil {
			logger.Error("close store", zap.Error(err))
		}
	})
	h.RegisterRoutes(s)

	logger.Info("lexiq server listening",
		zap.String("addr", cfg.HTTP.Addr),
		zap.String("store", cfg.Store.Driver),
		zap.String("ai_provider", cfg.AI.Provider),
	)
	s.Spin()
}

func buildRepos(ctx context.Context, cfg config.Config, logger *zap.Logger) (repos, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := gormrepo.OpenPostgres(cfg.DB.DSN, gormrepo.PoolConfig{
			MaxOpenConns:    cfg.DB.MaxOpenConns,
			ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		})
		if err != nil {
			return repos{}, err
		}
		applied, err := gormrepo.ApplyMigrations(ctx, db, os.DirFS(cfg.DB.MigrationsDir))
		if err != nil {
			_ = gormrepo.Close(db)
			return repos{}, err
		}
		if len(applied) > 0 {
			logger.Info("applied migrations", zap.Strings("files", applied))
		}
		return repos{
			transactions: gormrepo.NewTransactionRepo(db),
			companies:    gormrepo.NewCompanyRepo(db),
			audit:        gormrepo.NewAuditRepo(db),
			txManager:    gormrepo.NewTxManager(db),
			close:        func(context.Context) error { return gormrepo.Close(db) },
		}, nil
	case config.StoreMongo:
		store, err := mongorepo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
		if err != nil {
			return repos{}, err
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = store.Close(ctx)
			return repos{}, err
		}
		return repos{
			transactions: mongorepo.NewTransactionRepo(store),
			companies:    mongorepo.NewCompanyRepo(store),
			audit:        mongorepo.NewAuditRepo(store),
			txManager:    mongorepo.NewTxManager(store),
			close:        store.Close,
		}, nil
	default:
		store := memory.NewStore()
		logger.Warn("using in-memory store; data is lost on restart")
		return repos{
			transactions: memory.NewTransactionRepo(store),
			companies:    memory.NewCompanyRepo(store),
			audit:        memory.NewAuditRepo(store),
			txManager:    memory.NewTxManager(store),
			close:        func(context.Context) error { return nil },
		}, nil
	}
}

func buildFlows(cfg config.Config) (flows, error) {
	if cfg.AI.Provider != config.AIProviderOpenAI {
		return mockflow.New(), nil
	}
	client, err := openaiflow.New(openaiflow.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.AI.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}
