// Package scheduler runs periodic background jobs.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/colllect/colllect/internal/audit"
)

// AuditCleanupScheduler purges login audit events past their retention
// window on a cron schedule.
type AuditCleanupScheduler struct {
	trail     *audit.Trail
	retention time.Duration
	schedule  string

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

// NewAuditCleanupScheduler creates a new scheduler instance.
func NewAuditCleanupScheduler(trail *audit.Trail, retentionDays int, schedule string) *AuditCleanupScheduler {
	return &AuditCleanupScheduler{
		trail:     trail,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		schedule:  schedule,
		cron:      cron.New(),
	}
}

// Start begins the scheduler.
func (s *AuditCleanupScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.runCleanup); err != nil {
		return fmt.Errorf("failed to schedule audit cleanup: %w", err)
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Audit cleanup scheduled (%s), retention %s", s.schedule, s.retention)
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *AuditCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
}

func (s *AuditCleanupScheduler) runCleanup() {
	removed, err := s.trail.PurgeOlderThan(s.retention)
	if err != nil {
		log.Printf("Audit cleanup failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Audit cleanup removed %d events", removed)
	}
}
