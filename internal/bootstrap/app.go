package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"roleready-backend/internal/ats"
	googleauth "roleready-backend/internal/auth"
	"roleready-backend/internal/generator"
	"roleready-backend/internal/resumes"
	"roleready-backend/internal/shared/config"
	"roleready-backend/internal/shared/server"
	"roleready-backend/internal/shared/storage/db"
	"roleready-backend/internal/shared/storage/object"
	localstore "roleready-backend/internal/shared/storage/object/local"
	s3store "roleready-backend/internal/shared/storage/object/s3"
	"roleready-backend/internal/transfer"
	"roleready-backend/internal/users"
	"roleready-backend/internal/validation"
)

// App holds the wired dependency graph for the API server.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ResumesRepo resumes.Repo
	UsersRepo   users.Repo

	ResumesService *resumes.Service
	UsersService   *users.Service

	ResumesHandler    *resumes.Handler
	ATSHandler        *ats.Handler
	GeneratorHandler  *generator.Handler
	TransferHandler   *transfer.Handler
	ValidationHandler *validation.Handler
	UsersHandler      *users.Handler
	GoogleAuth        *googleauth.GoogleService
}

// Build prepares shared dependencies and the router. Dev-like environments
// fall back to in-memory repositories when no database is configured.
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

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		ResumesHandler:    app.ResumesHandler,
		ATSHandler:        app.ATSHandler,
		GeneratorHandler:  app.GeneratorHandler,
		TransferHandler:   app.TransferHandler,
		ValidationHandler: app.ValidationHandler,
		UsersHandler:      app.UsersHandler,
		GoogleAuth:        app.GoogleAuth,
		RateLimit:         server.DefaultRateLimit(),
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
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var resumesRepo resumes.Repo
	var usersRepo users.Repo
	if app.DB != nil {
		resumesRepo = &resumes.PGRepo{DB: app.DB}
		usersRepo = &users.PGRepo{DB: app.DB}
	} else {
		resumesRepo = resumes.NewMemoryRepo()
		usersRepo = users.NewMemoryRepo()
	}

	resumesSvc := &resumes.Service{Repo: resumesRepo}
	usersSvc := users.NewService(usersRepo)

	app.ResumesRepo = resumesRepo
	app.UsersRepo = usersRepo
	app.ResumesService = resumesSvc
	app.UsersService = usersSvc
	app.ResumesHandler = resumes.NewHandler(resumesSvc)
	app.ATSHandler = ats.NewHandler()
	app.GeneratorHandler = generator.NewHandler(generator.New())
	app.TransferHandler = transfer.NewHandler(app.Store)
	app.ValidationHandler = validation.NewHandler()
	app.UsersHandler = users.NewHandler(usersSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		usersSvc,
	)
}
