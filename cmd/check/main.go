// Command check verifies that the configured backends are reachable before
// the API is started.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/xyz-asif/dropwatch/internal/config"
	"github.com/xyz-asif/dropwatch/internal/database"
	"github.com/xyz-asif/dropwatch/internal/features/auth"
	"github.com/xyz-asif/dropwatch/internal/features/reports"
	"github.com/xyz-asif/dropwatch/internal/pkg/cloudinary"
	"github.com/xyz-asif/dropwatch/internal/pkg/sheets"
)

type check struct {
	name string
	skip string // non-empty when the check does not apply
	run  func(ctx context.Context) error
}

func main() {
	cfg := config.Load()

	checks := []check{
		{
			name: "Google Sheets",
			skip: skipUnless(cfg.StoreBackend == "sheets", "STORE_BACKEND is not sheets"),
			run: func(ctx context.Context) error {
				client, err := sheets.NewClient(ctx, cfg.GoogleServiceAccountPath, cfg.SpreadsheetID, cfg.SheetName, len(reports.Columns))
				if err != nil {
					return err
				}
				rows, err := client.ReadRows(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("    %d report rows in %q\n", len(rows), cfg.SheetName)
				return nil
			},
		},
		{
			name: "MongoDB",
			skip: skipUnless(cfg.StoreBackend == "mongo", "STORE_BACKEND is not mongo"),
			run: func(ctx context.Context) error {
				db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
				if err != nil {
					return err
				}
				return db.Disconnect(ctx)
			},
		},
		{
			name: "Firebase Auth",
			skip: skipUnless(cfg.AdminAuthMode == auth.ModeFirebase, "ADMIN_AUTH_MODE is not firebase"),
			run: func(ctx context.Context) error {
				_, err := auth.InitFirebase(ctx, cfg.FirebaseServiceAccountPath)
				return err
			},
		},
		{
			name: "Cloudinary",
			skip: skipUnless(cfg.CloudinaryCloudName != "", "CLOUDINARY_CLOUD_NAME is not set"),
			run: func(ctx context.Context) error {
				_, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder)
				return err
			},
		},
		{
			name: "SMTP",
			skip: skipUnless(cfg.SMTPHost != "", "SMTP_HOST is not set"),
			run: func(ctx context.Context) error {
				fmt.Printf("    relay %s:%s, sender %s\n", cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPSender)
				return nil
			},
		},
	}

	failed := 0
	for _, c := range checks {
		if c.skip != "" {
			fmt.Printf("-  %s skipped (%s)\n", c.name, c.skip)
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err := c.run(ctx)
		cancel()
		if err != nil {
			failed++
			fmt.Printf("✗  %s: %v\n", c.name, err)
			continue
		}
		fmt.Printf("✓  %s ok\n", c.name)
	}

	if failed > 0 {
		fmt.Printf("\n%d check(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("\nAll configured backends are reachable.")
}

func skipUnless(cond bool, reason string) string {
	if cond {
		return ""
	}
	return reason
}
