package routes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/dropwatch/internal/config"
	"github.com/xyz-asif/dropwatch/internal/database"
	"github.com/xyz-asif/dropwatch/internal/features/auth"
	"github.com/xyz-asif/dropwatch/internal/features/reports"
	"github.com/xyz-asif/dropwatch/internal/middleware"
	"github.com/xyz-asif/dropwatch/internal/pkg/cloudinary"
	"github.com/xyz-asif/dropwatch/internal/pkg/logger"
	"github.com/xyz-asif/dropwatch/internal/pkg/mail"
	"github.com/xyz-asif/dropwatch/internal/pkg/ratelimit"
	"github.com/xyz-asif/dropwatch/internal/pkg/sheets"
)

// mongoCollection holds the report rows when STORE_BACKEND=mongo.
const mongoCollection = "reports"

// App is everything the routes need from the outside world.
type App struct {
	Table    sheets.Table
	Mailer   mail.Sender
	Uploader reports.EvidenceUploader

	closers []func(context.Context) error
}

// NewApp opens the backing table for cfg.StoreBackend and builds the mail and
// evidence collaborators. Mail and uploads degrade to disabled when unconfigured.
func NewApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	app := &App{}
	width := len(reports.Columns)

	switch cfg.StoreBackend {
	case "sheets":
		client, err := sheets.NewClient(ctx, cfg.GoogleServiceAccountPath, cfg.SpreadsheetID, cfg.SheetName, width)
		if err != nil {
			return nil, err
		}
		hctx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
		defer cancel()
		if err := client.EnsureHeader(hctx, reports.Columns); err != nil {
			return nil, fmt.Errorf("failed to prepare sheet %q: %w", cfg.SheetName, err)
		}
		app.Table = client
		log.Info("Using Google Sheets backend (sheet %q)", cfg.SheetName)

	case "mongo":
		db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		app.closers = append(app.closers, db.Disconnect)
		table, err := database.NewMongoTable(ctx, db.Database, mongoCollection, width)
		if err != nil {
			_ = db.Disconnect(ctx)
			return nil, err
		}
		app.Table = table
		log.Info("Using MongoDB backend (%s.%s)", cfg.MongoDB, mongoCollection)

	case "memory":
		app.Table = sheets.NewMemoryTable(width)
		log.Warn("Using in-memory backend, reports are lost on restart")

	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	if cfg.SMTPHost != "" {
		app.Mailer = mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			Sender:   cfg.SMTPSender,
		}, log)
	} else {
		log.Warn("SMTP_HOST not set, confirmation emails will only be logged")
		app.Mailer = mail.LogSender{Log: log.Named("mail")}
	}

	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder)
	if err != nil {
		log.Info("Evidence uploads disabled: %v", err)
	} else {
		app.Uploader = cld
	}

	return app, nil
}

// Close releases backend connections.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c(ctx))
	}
	return errors.Join(errs...)
}

// SetupRoutes registers every feature under /api/v1.
func SetupRoutes(ctx context.Context, router *gin.Engine, app *App, cfg *config.Config, log *logger.Logger) error {
	api := router.Group("/api/v1")

	submitLimiter := ratelimit.New(cfg.SubmitRateLimit, time.Hour)
	submitLimiter.StartCleanup(ctx, 10*time.Minute)
	loginLimiter := ratelimit.New(10, 15*time.Minute)
	loginLimiter.StartCleanup(ctx, 10*time.Minute)

	// login stays outside the authenticated group
	verifier, err := auth.Setup(ctx, api.Group("/admin"), cfg, log, ratelimit.Middleware(loginLimiter))
	if err != nil {
		return err
	}
	admin := api.Group("/admin", middleware.AdminAuth(verifier))

	store := reports.NewStore(app.Table, log)
	svc := reports.NewService(store, app.Mailer, cfg.StoreTimeout, log)
	reports.RegisterRoutes(api, admin, reports.NewHandler(svc, app.Uploader, log), ratelimit.Middleware(submitLimiter))

	return nil
}
