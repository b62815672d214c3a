package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DEFRA/mpdp-admin-frontend/internal/authz"
	"github.com/DEFRA/mpdp-admin-frontend/internal/common"
	"github.com/DEFRA/mpdp-admin-frontend/internal/config"
	"github.com/DEFRA/mpdp-admin-frontend/internal/interaction"
	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/database"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/database/inmemory"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/database/mysql"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/database/redisstore"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/downstreams/identityprovider"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/downstreams/paymentsapi"
	"github.com/DEFRA/mpdp-admin-frontend/internal/server"
	"github.com/DEFRA/mpdp-admin-frontend/internal/session"
	"github.com/DEFRA/mpdp-admin-frontend/internal/web/views"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           common.ApplicationName,
		Short:         "Admin frontend for managing published farm and land payment data",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "config.yaml", "path to the yaml configuration file")

	if err := rootCmd.Execute(); err != nil {
		logging.NoCtx().Error("%s", err.Error())
		os.Exit(1)
	}
}

func run(configPath string) error {
	logger := logging.NoCtx()

	conf, err := config.LoadConfiguration(configPath, logger.Error)
	if err != nil {
		return err
	}
	logging.SetupAutumnLogging(conf.Logging.Style, conf.Logging.Severity)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, err := openRepository(conf.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close session store: %s", err.Error())
		}
	}()
	if err := repo.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate session store: %w", err)
	}

	sessions, err := session.NewManager(repo, conf.Database.SessionTTL(), !conf.Security.InsecureCookies)
	if err != nil {
		return err
	}

	authorizer, err := authz.NewAuthorizer(conf.Security.AdminScope)
	if err != nil {
		return err
	}

	idp, err := identityprovider.New(ctx, conf.Security.Oidc)
	if err != nil {
		return fmt.Errorf("failed to set up identity provider: %w", err)
	}

	api, err := paymentsapi.New(conf.Service.BackendBaseURL(), conf.Service.BackendApiKey)
	if err != nil {
		return err
	}

	interactor, err := interaction.NewServiceInteractor(api, logger)
	if err != nil {
		return err
	}

	manifest, err := views.LoadManifest(conf.Service.ManifestPath)
	if err != nil {
		// pages still work, assets just resolve to their unhashed names
		logger.Error("%s", err.Error())
	}
	renderer, err := views.NewRenderer(conf.Service.Name, conf.Service.AssetPath, manifest)
	if err != nil {
		return err
	}

	router := server.CreateRouter(conf, server.Collaborators{
		Interactor: interactor,
		Sessions:   sessions,
		Authorizer: authorizer,
		Identity:   idp,
		Views:      renderer,
	})

	srv := server.NewServer(ctx, &conf.Server, router)
	return server.Serve(ctx, srv)
}

func openRepository(conf config.DatabaseConfig, logger logging.Logger) (database.Repository, error) {
	switch conf.Use {
	case config.Mysql:
		return mysql.NewMySQLConnector(conf, logger)
	case config.Redis:
		return redisstore.NewRedisConnector(conf, logger), nil
	default:
		logger.Warn("keeping sessions in memory, they are lost on restart")
		return inmemory.NewInMemoryProvider(), nil
	}
}
