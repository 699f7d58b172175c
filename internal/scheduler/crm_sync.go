package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
)

// CRMSyncService periodically copies CRM aggregates into the metric store.
type CRMSyncService struct {
	scheduler *gocron.Scheduler
	config    config.HubSpotSync
	syncer    syncing.CRMSyncer

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncErrors      map[string]string
}

// CRMSyncStatus is the state reported by GET /cron/status.
type CRMSyncStatus struct {
	Enabled             bool              `json:"sync_enabled"`
	CronSchedule        string            `json:"sync_cron"`
	DataTypes           []string          `json:"sync_data_types"`
	Running             bool              `json:"sync_running"`
	LastSyncStartedAt   time.Time         `json:"last_sync_started_at"`
	LastSyncCompletedAt time.Time         `json:"last_sync_completed_at"`
	LastSyncErrors      map[string]string `json:"last_sync_errors,omitempty"`
}

func NewCRMSyncService(syncer syncing.CRMSyncer, cfg config.HubSpotSync) *CRMSyncService {
	log.L.WithFields(log.Fields{
		"cron_schedule": cfg.CronSchedule,
		"data_types":    cfg.DataTypes,
		"sync_enabled":  cfg.Enabled,
	}).Info("scheduler: crm sync configuration loaded")

	return &CRMSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		syncer:    syncer,
	}
}

// Start schedules the sync and stops the scheduler when ctx is cancelled.
func (s *CRMSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("scheduler: crm sync disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule crm sync: %w", err)
	}

	s.scheduler.StartAsync()
	log.L.WithField("cron", s.config.CronSchedule).Info("scheduler: crm sync started")

	go func() {
		<-ctx.Done()
		log.L.Info("scheduler: stopping crm sync")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync starts a sync in the background unless one is already running.
// It reports whether a new run was started.
func (s *CRMSyncService) TriggerManualSync() bool {
	if !s.beginSync() {
		log.L.Info("scheduler: crm sync already running, ignoring manual trigger")
		return false
	}

	log.L.Info("scheduler: manual crm sync requested")
	go s.runSync(context.Background())
	return true
}

func (s *CRMSyncService) GetStatus() CRMSyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return CRMSyncStatus{
		Enabled:             s.config.Enabled,
		CronSchedule:        s.config.CronSchedule,
		DataTypes:           s.config.DataTypes,
		Running:             s.syncRunning,
		LastSyncStartedAt:   s.lastSyncStartedAt,
		LastSyncCompletedAt: s.lastSyncCompletedAt,
		LastSyncErrors:      s.lastSyncErrors,
	}
}

// syncAll syncs every configured data type. Concurrent calls return immediately.
func (s *CRMSyncService) syncAll(ctx context.Context) {
	if !s.beginSync() {
		log.L.Info("scheduler: crm sync already running, skipping")
		return
	}
	s.runSync(ctx)
}

// beginSync marks a run as started. It returns false when another run holds the flag.
func (s *CRMSyncService) beginSync() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// runSync must only be called after a successful beginSync. A failed data type is
// logged and does not stop the others.
func (s *CRMSyncService) runSync(ctx context.Context) {
	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)

	failures := make(map[string]string)
	for _, dataType := range s.config.DataTypes {
		result, err := s.syncer.Sync(ctx, syncing.SyncRequest{DataType: dataType})
		if err != nil {
			failures[dataType] = err.Error()
			logger.WithError(err).WithField("data_type", dataType).Error("scheduler: crm sync failed")
			continue
		}
		logger.WithFields(log.Fields{
			"data_type": dataType,
			"rows":      len(result.Records),
			"period":    result.Period.Key(),
		}).Info("scheduler: crm data type synced")
	}

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncErrors = failures
	s.syncMutex.Unlock()

	logger.WithField("failed", len(failures)).Info("scheduler: crm sync finished")
}
