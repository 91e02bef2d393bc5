package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/MrJamesThe3rd/tempo/internal/auth"
	"github.com/MrJamesThe3rd/tempo/internal/calendar"
	calendarStore "github.com/MrJamesThe3rd/tempo/internal/calendar/store"
	"github.com/MrJamesThe3rd/tempo/internal/company"
	companyStore "github.com/MrJamesThe3rd/tempo/internal/company/store"
	"github.com/MrJamesThe3rd/tempo/internal/config"
	"github.com/MrJamesThe3rd/tempo/internal/database"
	tempoHttp "github.com/MrJamesThe3rd/tempo/internal/http"
	calendarHandler "github.com/MrJamesThe3rd/tempo/internal/http/calendar"
	clientsHandler "github.com/MrJamesThe3rd/tempo/internal/http/clients"
	companyHandler "github.com/MrJamesThe3rd/tempo/internal/http/company"
	invoicesHandler "github.com/MrJamesThe3rd/tempo/internal/http/invoices"
	profileHandler "github.com/MrJamesThe3rd/tempo/internal/http/profile"
	"github.com/MrJamesThe3rd/tempo/internal/importer"
	"github.com/MrJamesThe3rd/tempo/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/tempo/internal/invoice/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if err := cfg.ValidateAuth(); err != nil {
		slog.Error("invalid auth config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	if cfg.Google.ClientID == "" {
		slog.Warn("GOOGLE_CLIENT_ID is not set, calendar connections will fail")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		Scopes:       cfg.Google.Scopes,
		Endpoint:     google.Endpoint,
	}

	var (
		issuer          = auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)
		companyService  = company.NewService(companyStore.New(db))
		calendarService = calendar.NewService(calendarStore.New(db), oauthConfig, companyService, cfg.Google.StateTTL)
		invoiceService  = invoice.NewService(invoiceStore.New(db))
		importService   = importer.NewService()
	)

	var (
		profileH  = profileHandler.NewHandler(companyService, calendarService)
		companyH  = companyHandler.NewHandler(companyService)
		calendarH = calendarHandler.NewHandler(calendarService)
		clientsH  = clientsHandler.NewHandler(importService, invoiceService)
		invoicesH = invoicesHandler.NewHandler(invoiceService)
	)

	router := tempoHttp.New(issuer, cfg.App.CORSOrigins, profileH, companyH, calendarH, clientsH, invoicesH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
