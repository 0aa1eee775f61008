// Package audit keeps a JSON copy of every accepted mutation request.
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

// Entry is the document written for one request.
type Entry struct {
	ID         string    `json:"id"`
	Operation  string    `json:"operation"`
	ReceivedAt time.Time `json:"received_at"`
	Body       any       `json:"body"`
}

type Auditor struct {
	AuditDir string
}

// NewAuditor returns an auditor writing into auditDir. An empty directory
// disables auditing.
func NewAuditor(auditDir string) *Auditor {
	return &Auditor{
		AuditDir: auditDir,
	}
}

func (a *Auditor) Enabled() bool {
	return a.AuditDir != ""
}

// SaveJSON writes body, tagged with operation, to a file named after a fresh
// UUID and returns the file name. It does nothing when auditing is disabled.
func (a *Auditor) SaveJSON(operation string, body any) (string, error) {
	if !a.Enabled() {
		return "", nil
	}

	if err := a.ensureAuditDir(); err != nil {
		return "", fmt.Errorf("failed to ensure audit directory: %w", err)
	}

	entry := Entry{
		ID:         uuid.New().String(),
		Operation:  operation,
		ReceivedAt: time.Now().UTC(),
		Body:       body,
	}
	filename := entry.ID + ".json"
	path := filepath.Join(a.AuditDir, filename)

	jsonData, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}

	log.Printf("Saved audit file: %s", path)
	return filename, nil
}

func (a *Auditor) ensureAuditDir() error {
	if _, err := os.Stat(a.AuditDir); os.IsNotExist(err) {
		if err := os.MkdirAll(a.AuditDir, 0755); err != nil {
			return fmt.Errorf("failed to create audit directory: %w", err)
		}
	}
	return nil
}
