// Package audit records login attempts as JSON event files.
//
// Each event is written under the configured directory with a UUID4
// filename. Failure events carry an operator-only reason (unknown email,
// password mismatch, CSRF mismatch); that detail never reaches the
// end-user response.
package audit

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Outcome classifies a login attempt.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// LoginEvent is one recorded login attempt.
type LoginEvent struct {
	ID         string    `json:"id"`
	Outcome    Outcome   `json:"outcome"`
	Email      string    `json:"email"`
	ClientIP   string    `json:"client_ip"`
	Reason     string    `json:"reason,omitempty"` // Operator detail, failures only
	Remembered bool      `json:"remembered,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Trail persists login events to a directory.
type Trail struct {
	Dir string
}

// NewTrail creates a trail writing into dir.
func NewTrail(dir string) *Trail {
	return &Trail{Dir: dir}
}

// RecordSuccess writes a successful login event.
func (t *Trail) RecordSuccess(email, clientIP string, remembered bool) {
	t.record(LoginEvent{
		Outcome:    OutcomeSuccess,
		Email:      email,
		ClientIP:   clientIP,
		Remembered: remembered,
	})
}

// RecordFailure writes a failed login event with an operator-only reason.
func (t *Trail) RecordFailure(email, clientIP, reason string) {
	t.record(LoginEvent{
		Outcome:  OutcomeFailure,
		Email:    email,
		ClientIP: clientIP,
		Reason:   reason,
	})
}

// record writes the event to disk. Audit failures are logged and
// swallowed; they must never fail the login request itself.
func (t *Trail) record(event LoginEvent) {
	event.ID = uuid.New().String()
	event.OccurredAt = time.Now().UTC()

	if err := t.ensureDir(); err != nil {
		log.Printf("audit: %v", err)
		return
	}

	data, err := json.MarshalIndent(event, "", "  ")
	if err != nil {
		log.Printf("audit: failed to marshal event: %v", err)
		return
	}

	path := filepath.Join(t.Dir, event.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("audit: failed to write event file: %v", err)
	}
}

// PurgeOlderThan removes event files older than the retention window and
// returns the number of files removed.
func (t *Trail) PurgeOlderThan(retention time.Duration) (int, error) {
	entries, err := os.ReadDir(t.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read audit directory: %w", err)
	}

	cutoff := time.Now().Add(-retention)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(t.Dir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

func (t *Trail) ensureDir() error {
	if _, err := os.Stat(t.Dir); os.IsNotExist(err) {
		if err := os.MkdirAll(t.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create audit directory: %w", err)
		}
	}
	return nil
}
