package worker

import (
	"os"
	"path/filepath"

	"github.com/trknhr/creditrisk/internal/dataset"
	"github.com/trknhr/creditrisk/internal/importance"
	"github.com/trknhr/creditrisk/internal/logger"
	"github.com/trknhr/creditrisk/internal/model"
	"github.com/trknhr/creditrisk/internal/store"
	"github.com/trknhr/creditrisk/internal/utils"
)

const (
	metaKeyModel   = "importance.model"
	metaKeyDataset = "importance.dataset"
)

// ImportanceJob names the inputs and outputs of one recomputation.
// DatasetPath is optional; without it no hold-out split is written.
type ImportanceJob struct {
	ModelPath    string
	FeaturesPath string
	DatasetPath  string
	Target       string
	TestSize     float64
	Seed         uint32
	OutputPath   string
	// SplitDir receives X_test.csv and y_test.csv. Defaults to the
	// directory of OutputPath.
	SplitDir string
}

func (j ImportanceJob) splitDir() string {
	if j.SplitDir != "" {
		return j.SplitDir
	}
	return filepath.Dir(j.OutputPath)
}

type ImportanceSyncWorker struct {
	job   ImportanceJob
	store store.ImportanceStore
	meta  store.MetaTracker
	force bool
	last  store.Run
}

func NewImportanceSyncWorker(job ImportanceJob, st store.ImportanceStore, meta store.MetaTracker, force bool) *ImportanceSyncWorker {
	return &ImportanceSyncWorker{job: job, store: st, meta: meta, force: force}
}

func (w *ImportanceSyncWorker) Key() string  { return "importance" }
func (w *ImportanceSyncWorker) Path() string { return w.job.ModelPath }

// Last is the run stored by the most recent successful Sync.
func (w *ImportanceSyncWorker) Last() store.Run { return w.last }

func (w *ImportanceSyncWorker) NeedsReload() bool {
	if w.force {
		return true
	}
	if _, err := os.Stat(w.job.OutputPath); err != nil {
		return true
	}
	if w.meta.NeedsReload(metaKeyModel, w.job.ModelPath) {
		return true
	}
	return w.job.DatasetPath != "" && w.meta.NeedsReload(metaKeyDataset, w.job.DatasetPath)
}

func (w *ImportanceSyncWorker) Sync() error {
	run := store.Run{ModelPath: w.job.ModelPath, DatasetPath: w.job.DatasetPath}

	if w.job.DatasetPath != "" {
		rows, err := w.writeHoldOut()
		if err != nil {
			return err
		}
		run.TestRows = rows
	}

	clf, err := model.LoadClassifier(w.job.ModelPath)
	if err != nil {
		return err
	}
	columns, err := model.LoadColumns(w.job.FeaturesPath)
	if err != nil {
		return err
	}
	table, err := importance.Extract(clf, columns)
	if err != nil {
		return err
	}
	run.Table = table

	if run.ModelHash, err = utils.HashFile(w.job.ModelPath); err != nil {
		return err
	}

	saved, err := w.store.SaveRun(run)
	if err != nil {
		return err
	}
	if err := importance.WriteCSV(w.job.OutputPath, table); err != nil {
		return err
	}
	w.last = saved

	if err := w.meta.TouchMeta(metaKeyModel, w.job.ModelPath); err != nil {
		logger.Warn("failed to record model mtime: %v", err)
	}
	if w.job.DatasetPath != "" {
		if err := w.meta.TouchMeta(metaKeyDataset, w.job.DatasetPath); err != nil {
			logger.Warn("failed to record dataset mtime: %v", err)
		}
	}
	logger.Info("feature importance saved to %s (run %s)", w.job.OutputPath, saved.ID)
	return nil
}

func (w *ImportanceSyncWorker) writeHoldOut() (int, error) {
	frame, err := dataset.ReadCSV(w.job.DatasetPath)
	if err != nil {
		return 0, err
	}
	x, y, err := dataset.HoldOut(frame, w.job.Target, w.job.TestSize, w.job.Seed)
	if err != nil {
		return 0, err
	}
	dir := w.job.splitDir()
	if err := x.WriteCSV(filepath.Join(dir, "X_test.csv")); err != nil {
		return 0, err
	}
	if err := y.WriteCSV(filepath.Join(dir, "y_test.csv")); err != nil {
		return 0, err
	}
	logger.Debug("wrote %d hold-out rows to %s", x.Len(), dir)
	return x.Len(), nil
}
