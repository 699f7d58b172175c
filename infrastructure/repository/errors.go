// Package repository persists metrics, uploaded files, dashboard configs and insight snapshots.
package repository

import (
	"errors"

	"github.com/lib/pq"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

// storageError wraps err as a domain.StorageError, keeping the Postgres SQLSTATE when present.
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}

	var storageErr *domain.StorageError
	if errors.As(err, &storageErr) {
		return err
	}

	wrapped := domain.NewStorageError(op, err)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		wrapped.Code = string(pqErr.Code)
	}

	return wrapped
}
