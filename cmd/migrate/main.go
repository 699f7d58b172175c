// Command migrate brings the database schema up to date and optionally imports
// dataset files through the same pipeline as the upload endpoint.
package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/database"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
)

func main() {
	seeds := pflag.StringSlice("seed", nil, "dataset files (.csv, .xlsx, .xls) to import after migrating")
	pflag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.SetEnvironment(cfg.App.Env)

	ctx := context.Background()

	if err := run(ctx, cfg, *seeds); err != nil {
		log.L.WithError(err).Fatal("migration failed")
	}
}

func run(ctx context.Context, cfg *config.Config, seeds []string) error {
	startTime := time.Now()

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		return errors.Wrap(err, "connecting to database")
	}
	defer conn.Close()

	if err := database.Migrate(ctx, conn); err != nil {
		return errors.Wrap(err, "migrating schema")
	}
	log.L.WithField("driver", cfg.Database.Driver).Info("schema up to date")

	if len(seeds) == 0 {
		return nil
	}

	store, err := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.MaxSizeBytes)
	if err != nil {
		return errors.Wrap(err, "preparing upload directory")
	}

	uploader := ingesting.NewService(
		repository.NewFileRepository(conn),
		store,
		ingesting.NewRowValidator(cfg.Validation),
	)

	imported := 0
	for _, path := range seeds {
		if err := seed(ctx, uploader, path); err != nil {
			log.L.WithError(err).WithField("upload_path", path).Error("seed file skipped")
			continue
		}
		imported++
	}

	log.L.WithFields(log.Fields{
		"upload_imported": imported,
		"upload_failed":   len(seeds) - imported,
		"elapsed":         time.Since(startTime).String(),
	}).Info("seeding finished")

	return nil
}

func seed(ctx context.Context, uploader ingesting.Uploader, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()

	result, err := uploader.Upload(ctx, ingesting.UploadInput{
		OriginalName: filepath.Base(path),
		Body:         file,
	})
	if err != nil {
		return errors.Wrapf(err, "importing %s", path)
	}

	logger := log.L.WithFields(log.Fields{
		"upload_file_id": result.FileID,
		"upload_rows":    result.ProcessedRows,
	})
	for _, warning := range result.Warnings {
		logger.Warn(warning.String())
	}
	logger.Info("seed file imported")

	return nil
}
