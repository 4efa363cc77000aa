package retention

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entrier is the logging surface the sweeper reports through.
// *logger.Logger satisfies it.
type Entrier interface {
	Info(msg string)
	Error(msg string)
}

// Sweeper deletes old files from a log directory.
type Sweeper struct {
	// Dir is the directory swept, usually the logger's FilePath.
	Dir string
	// Log receives the summary and the per-file failures.
	Log Entrier
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// New returns a Sweeper for dir reporting to log.
func New(dir string, log Entrier) *Sweeper {
	return &Sweeper{Dir: dir, Log: log}
}

// Sweep deletes every regular file in Dir last modified more than
// retentionDays days ago and returns how many were deleted. It does nothing
// when retentionDays <= 0. Failures are logged as ERROR entries and the
// sweep goes on; a summary INFO entry is always written.
func (s *Sweeper) Sweep(retentionDays int) int {
	if retentionDays <= 0 {
		return 0
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	threshold := now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		s.Log.Error(fmt.Sprintf("log cleanup failed: %s -> %v", s.Dir, err))
	}

	deleted := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			s.Log.Error(fmt.Sprintf("log cleanup failed: %s -> %v", e.Name(), err))
			continue
		}
		if !info.ModTime().Before(threshold) {
			continue
		}
		if err := os.Remove(filepath.Join(s.Dir, e.Name())); err != nil {
			s.Log.Error(fmt.Sprintf("log cleanup failed: %s -> %v", e.Name(), err))
			continue
		}
		deleted++
	}

	s.Log.Info(fmt.Sprintf("log cleanup finished deleted=%d retention_days=%d", deleted, retentionDays))
	return deleted
}
