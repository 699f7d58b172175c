package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/database"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/openai"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/elt-dashboard-api/internal/api"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/scheduler"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	log.SetEnvironment(cfg.App.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, conn); err != nil {
			log.L.WithError(err).Fatal("failed to migrate database")
		}
	}

	store, err := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.MaxSizeBytes)
	if err != nil {
		log.L.WithError(err).Fatal("failed to prepare upload directory")
	}

	metricRepo := repository.NewMetricRepository(conn)
	fileRepo := repository.NewFileRepository(conn)
	configRepo := repository.NewConfigRepository(conn)
	insightRepo := repository.NewInsightRepository(conn)

	hubspotService := hubspot.New(hubspotclient.NewClient(cfg.HubSpot))
	narrator := openai.New(openaiclient.NewClient(cfg.OpenAI), cfg.OpenAI)

	validator := ingesting.NewRowValidator(cfg.Validation)

	uploader := ingesting.NewService(fileRepo, store, validator)
	reporter := reporting.NewService(metricRepo, configRepo)
	insighter := insighting.NewService(metricRepo, insightRepo, narrator)
	syncer := syncing.NewService(hubspotService, metricRepo, validator, cfg.HubSpotSync)

	crmSyncService := scheduler.NewCRMSyncService(syncer, cfg.HubSpotSync)
	if err := crmSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("failed to start crm sync scheduler")
	}

	server, err := api.New(cfg, api.Services{
		Reporter:  reporter,
		Uploader:  uploader,
		Insighter: insighter,
		HubSpot:   hubspotService,
		Syncer:    syncer,
		CRMSync:   crmSyncService,
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("server exited with error")
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).WithField("driver", dbConfig.Driver).Fatal("failed to connect to database")
	}

	log.L.WithField("driver", dbConfig.Driver).Info("database connection established")
	return conn
}
