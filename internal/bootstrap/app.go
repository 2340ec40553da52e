package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "jobtrack-backend/internal/auth"
	"jobtrack-backend/internal/jobs"
	"jobtrack-backend/internal/llm"
	"jobtrack-backend/internal/llm/gemini"
	"jobtrack-backend/internal/llm/pollinations"
	"jobtrack-backend/internal/matching"
	"jobtrack-backend/internal/resumes"
	"jobtrack-backend/internal/shared/config"
	"jobtrack-backend/internal/shared/server"
	"jobtrack-backend/internal/shared/storage/db"
	"jobtrack-backend/internal/shared/storage/object"
	localstore "jobtrack-backend/internal/shared/storage/object/local"
	s3store "jobtrack-backend/internal/shared/storage/object/s3"
	"jobtrack-backend/internal/users"
)

// App holds shared dependencies for the API process.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Store           object.ObjectStore
	LLM             llm.Client
	UsersRepo       users.Repo
	JobsRepo        jobs.Repo
	ResumesRepo     resumes.Repo
	UsersService    *users.Service
	JobsService     *jobs.Service
	ResumesService  *resumes.Service
	MatchingService *matching.Service
	JobsHandler     *jobs.Handler
	ResumesHandler  *resumes.Handler
	MatchingHandler *matching.Handler
	GoogleAuth      *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		LLM:    llmClient,
	}
	buildServices(app)

	var fileStore server.SignedFileStore
	if local, ok := store.(*localstore.Store); ok {
		fileStore = local
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		Users:           app.UsersService,
		JobsHandler:     app.JobsHandler,
		ResumesHandler:  app.ResumesHandler,
		MatchingHandler: app.MatchingHandler,
		GoogleAuth:      app.GoogleAuth,
		FileStore:       fileStore,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL, cfg.FileSigningSecret), nil
	}
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "gemini":
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
	default:
		return pollinations.NewClient(cfg.LLMBaseURL), nil
	}
}

func buildServices(app *App) {
	var userRepo users.Repo
	var jobRepo jobs.Repo
	var resumeRepo resumes.Repo

	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		jobRepo = &jobs.PGRepo{DB: app.DB}
		resumeRepo = &resumes.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
		jobRepo = jobs.NewMemoryRepo()
		resumeRepo = resumes.NewMemoryRepo()
	}

	userSvc := users.NewService(userRepo)
	jobSvc := &jobs.Service{Repo: jobRepo}
	resumeSvc := &resumes.Service{Store: app.Store, Repo: resumeRepo}
	matchSvc := &matching.Service{
		Resumes: resumeSvc,
		Jobs:    jobRepo,
		Store:   app.Store,
		LLM:     app.LLM,
	}

	app.UsersRepo = userRepo
	app.JobsRepo = jobRepo
	app.ResumesRepo = resumeRepo
	app.UsersService = userSvc
	app.JobsService = jobSvc
	app.ResumesService = resumeSvc
	app.MatchingService = matchSvc
	app.JobsHandler = jobs.NewHandler(jobSvc)
	app.ResumesHandler = resumes.NewHandler(resumeSvc)
	app.MatchingHandler = matching.NewHandler(matchSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
