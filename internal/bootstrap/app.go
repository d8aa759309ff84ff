// Package bootstrap wires configuration, storage, the model client and the
// HTTP surface into a runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-checker/internal/analyses"
	"resume-checker/internal/extract"
	"resume-checker/internal/llm"
	"resume-checker/internal/llm/openai"
	"resume-checker/internal/mailer"
	"resume-checker/internal/shared/config"
	"resume-checker/internal/shared/server"
	"resume-checker/internal/shared/storage/db"
	"resume-checker/internal/shared/storage/object"
	localstore "resume-checker/internal/shared/storage/object/local"
	s3store "resume-checker/internal/shared/storage/object/s3"
	"resume-checker/internal/shared/telemetry"
)

// App holds the wired application.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Store           object.ObjectStore
	AnalysesRepo    analyses.Repo
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
	Mailer          *mailer.Service
}

// Build prepares all dependencies and returns the application.
func Build(cfg config.Config) (*App, error) {
	telemetry.Init(cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo analyses.Repo
	if sqlDB != nil {
		repo = &analyses.PGRepo{DB: sqlDB}
	} else {
		repo = analyses.NewMemoryRepo()
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	mailSvc, err := buildMailer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc := &analyses.Service{
		Repo:         repo,
		Extractor:    extract.Extractor{},
		LLM:          llmClient,
		Mailer:       mailSvc,
		Archive:      store,
		ScoreTimeout: cfg.ScoreTimeout,
	}
	handler := &analyses.Handler{Service: svc}

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		Store:           store,
		AnalysesRepo:    repo,
		AnalysesService: svc,
		AnalysisHandler: handler,
		Mailer:          mailSvc,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: handler,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.IsDevLike() {
			telemetry.Info("bootstrap.memory_store", map[string]any{
				"reason": "DATABASE_URL empty",
			})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required outside dev")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.db_connect_failed", map[string]any{"err": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.migrations_failed", map[string]any{"err": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if cfg.AWSRegion == "" || cfg.S3Bucket == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	case "none":
		return nil, nil
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider != "openai" || cfg.OpenAIAPIKey == "" {
		if !cfg.IsDevLike() {
			return nil, fmt.Errorf("LLM_PROVIDER=openai and OPENAI_API_KEY are required outside dev")
		}
		telemetry.Warn("bootstrap.llm_placeholder", map[string]any{
			"provider": cfg.LLMProvider,
		})
		return llm.PlaceholderClient{}, nil
	}
	return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
}

func buildMailer(ctx context.Context, cfg config.Config) (*mailer.Service, error) {
	var sender mailer.Sender
	switch cfg.MailProvider {
	case "smtp":
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("MAIL_PROVIDER=smtp requires SMTP_HOST")
		}
		sender = &mailer.SMTPSender{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		}
	case "ses":
		if cfg.AWSRegion == "" {
			return nil, fmt.Errorf("MAIL_PROVIDER=ses requires AWS_REGION")
		}
		sesSender, err := mailer.NewSESSender(ctx, cfg.AWSRegion)
		if err != nil {
			return nil, err
		}
		sender = sesSender
	default:
		sender = mailer.LogSender{}
	}
	return &mailer.Service{Sender: sender, From: cfg.MailFrom}, nil
}
