package worker

import (
	"errors"
	"fmt"

	"github.com/trknhr/creditrisk/internal/logger"
)

type SyncWorker interface {
	Key() string
	Path() string
	NeedsReload() bool
	Sync() error
}

// RunSyncWorkers runs each stale worker in turn and joins their failures.
func RunSyncWorkers(syncers ...SyncWorker) error {
	var errs []error
	for _, s := range syncers {
		if !s.NeedsReload() {
			logger.Debug("[%s] sync skipped (up-to-date)", s.Key())
			continue
		}
		if err := s.Sync(); err != nil {
			logger.Error("[%s] sync failed: %v", s.Key(), err)
			errs = append(errs, fmt.Errorf("%s: %w", s.Key(), err))
		} else {
			logger.Info("[%s] sync done", s.Key())
		}
	}
	return errors.Join(errs...)
}
