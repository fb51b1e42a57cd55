// Command issue_token prints a bearer token for local development and for
// API clients talking to a dev server. The token's company is created in
// the database when missing, so writes made with the token have a tenant.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/invoicing_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/invoicing_app/internal/core/services"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/SscSPs/invoicing_app/internal/platform/config"
	"github.com/SscSPs/invoicing_app/pkg/database"
	"github.com/SscSPs/invoicing_app/pkg/logger"
)

func main() {
	userID := flag.String("user", "", "user id (token subject)")
	companyID := flag.String("company", "", "company id")
	companyName := flag.String("company-name", "", "name used when the company is created (defaults to the id)")
	provision := flag.Bool("provision", true, "create the company if it does not exist")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	log := logger.New(logger.Config{Env: "development"})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if cfg.IsProduction {
		log.Fatal().Msg("Refusing to issue tokens in production")
	}

	token, err := middleware.IssueToken(cfg.JWTSecret, cfg.JWTIssuer, *userID, *companyID, *ttl)
	if err != nil {
		flag.Usage()
		log.Fatal().Err(err).Msg("Failed to issue token")
	}

	if *provision {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize database pool")
		}
		defer database.ClosePgxPool(dbPool)

		container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))
		company, err := container.System.ProvisionCompany(log.WithContext(ctx), *companyID, *companyName)
		if err != nil {
			log.Fatal().Err(err).Str("company_id", *companyID).Msg("Failed to provision company")
		}
		log.Info().Str("company_id", company.ID).Str("name", company.Name).Msg("Company ready")
	}

	fmt.Fprintln(os.Stdout, token)
}
